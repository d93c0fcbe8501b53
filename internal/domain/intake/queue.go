package intake

import "time"

// Queue holds the patients waiting to be seen and the log of patients
// already treated. A patient is in exactly one of the two at any time.
//
// Queue is not safe for concurrent use.
type Queue struct {
	waiting *pool
	history []Patient
	ids     IDGenerator
	clock   Clock
}

// Option configures a Queue.
type Option func(*Queue)

// WithIDGenerator makes the queue draw ids from g instead of a private Counter.
func WithIDGenerator(g IDGenerator) Option {
	return func(q *Queue) { q.ids = g }
}

// WithClock sets the clock used to stamp arrival times.
func WithClock(c Clock) Option {
	return func(q *Queue) { q.clock = c }
}

// WithComparator replaces ByUrgency as the waiting-room order.
func WithComparator(c Comparator) Option {
	return func(q *Queue) { q.waiting = newPool(c) }
}

// NewQueue returns an empty queue ordered ByUrgency, with its own id Counter
// and the system clock.
func NewQueue(opts ...Option) *Queue {
	q := &Queue{
		waiting: newPool(ByUrgency),
		ids:     NewCounter(),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Admit records a new patient and puts them in the waiting room. The id and
// arrival time are assigned here. No field is validated.
func (q *Queue) Admit(name string, priority Priority, condition string) Patient {
	p := Patient{
		ID:          q.ids.Next(),
		Name:        name,
		Priority:    priority,
		Condition:   condition,
		ArrivalTime: q.clock().Format(ArrivalTimeLayout),
	}
	q.waiting.add(p)
	return p
}

// TreatNext removes the most urgent waiting patient, appends them to the
// history and returns them. It returns false and changes nothing when nobody
// is waiting.
func (q *Queue) TreatNext() (Patient, bool) {
	p, ok := q.waiting.popMin()
	if !ok {
		return Patient{}, false
	}
	q.history = append(q.history, p)
	return p, true
}

// Waiting returns the waiting patients, most urgent first.
func (q *Queue) Waiting() Listing {
	return newListing(q.waiting.sorted())
}

// History returns treated patients in the order they were treated.
func (q *Queue) History() Listing {
	return newListing(q.history)
}

// Len returns the number of waiting patients.
func (q *Queue) Len() int {
	return q.waiting.Len()
}

// Treated returns the number of patients in the history.
func (q *Queue) Treated() int {
	return len(q.history)
}
