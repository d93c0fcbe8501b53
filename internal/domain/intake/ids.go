package intake

import "time"

// IDGenerator hands out patient ids.
type IDGenerator interface {
	Next() int
}

// Counter is a monotonically increasing IDGenerator. The zero value starts at
// 0, so the first id issued is 1. Ids are never reused.
//
// Counter is not safe for concurrent use. Share one between queues by passing
// it to each through WithIDGenerator.
type Counter struct {
	last int
}

// NewCounter returns a counter whose first id is 1.
func NewCounter() *Counter {
	return &Counter{}
}

// Next increments the counter and returns the new value.
func (c *Counter) Next() int {
	c.last++
	return c.last
}

// Last returns the most recently issued id, or 0 if none was issued.
func (c *Counter) Last() int {
	return c.last
}

// Clock returns the current wall-clock time.
type Clock func() time.Time
