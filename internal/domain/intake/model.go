package intake

import "fmt"

// ArrivalTimeLayout is the time-of-day format stored on every record.
// Zero-padded 24-hour time sorts chronologically as a plain string.
const ArrivalTimeLayout = "15:04"

// Priority is a clinical urgency level. Lower values are more urgent.
type Priority int

const (
	PriorityImmediate Priority = iota + 1
	PriorityUrgent
	PrioritySemiUrgent
	PriorityNonUrgent
)

// String returns the short display form, e.g. "P2".
func (p Priority) String() string {
	return fmt.Sprintf("P%d", int(p))
}

// Patient is a single admission. It is a value type: the queue hands out
// copies, so nothing a caller does to a Patient changes queue state.
type Patient struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Priority    Priority `json:"priority"`
	Condition   string   `json:"condition"`
	ArrivalTime string   `json:"arrival_time"`
}

// String renders the patient as "#3 [P2] Alice - chest pain (14:05)".
func (p Patient) String() string {
	return fmt.Sprintf("#%d [%s] %s - %s (%s)", p.ID, p.Priority, p.Name, p.Condition, p.ArrivalTime)
}

// Entry is a patient with its 1-based position in a listing.
type Entry struct {
	Rank    int     `json:"rank"`
	Patient Patient `json:"patient"`
}

// Listing is an ordered, ranked snapshot of patients.
type Listing struct {
	Count   int     `json:"count"`
	Entries []Entry `json:"entries"`
}

func newListing(patients []Patient) Listing {
	entries := make([]Entry, len(patients))
	for i, p := range patients {
		entries[i] = Entry{Rank: i + 1, Patient: p}
	}
	return Listing{Count: len(patients), Entries: entries}
}

// Patients returns the listed patients in rank order.
func (l Listing) Patients() []Patient {
	out := make([]Patient, len(l.Entries))
	for i, e := range l.Entries {
		out[i] = e.Patient
	}
	return out
}
