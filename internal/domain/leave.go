package domain

// Leave represents a referent's unavailability window. StartDate and
// EndDate are inclusive YYYY-MM-DD calendar dates. ReferentID references
// a Room of type office (UI-filtered, not type-enforced).
type Leave struct {
	ID         string `json:"id"`
	ReferentID string `json:"referentId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Title      string `json:"title"`
	Reason     string `json:"reason"`
}

// Covers returns true if the given date falls within the leave window,
// both ends inclusive. ISO dates compare correctly as strings.
func (l *Leave) Covers(date string) bool {
	return l.StartDate <= date && date <= l.EndDate
}

// LeaveUpdate carries the fields of a partial leave update.
// Nil fields keep their current value.
type LeaveUpdate struct {
	ReferentID *string
	StartDate  *string
	EndDate    *string
	Title      *string
	Reason     *string
}

// LeavesFilter filters leave projections. Empty fields are ignored.
type LeavesFilter struct {
	ReferentID string
	Date       string // leaves covering this date
}
