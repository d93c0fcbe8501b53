package intake

import (
	"cmp"
	"strings"
)

// Comparator orders two patients. It returns a negative number when a should
// be treated before b, a positive number when after, and zero when the two
// are interchangeable.
type Comparator func(a, b Patient) int

// ByUrgency orders by priority ascending, then by arrival time ascending.
//
// There is no third key. Two patients with the same priority who arrive in
// the same minute compare equal, and which of them is listed or treated first
// is unspecified. Callers must not rely on insertion order for such ties.
func ByUrgency(a, b Patient) int {
	if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
		return c
	}
	return strings.Compare(a.ArrivalTime, b.ArrivalTime)
}
