package domain

import (
	"strings"

	"github.com/m04kA/SMC-PlanningService/pkg/types"
)

// RecurrencePattern is the step unit used to advance from one occurrence
// of a recurring booking to the next
type RecurrencePattern string

const (
	RecurrenceDaily   RecurrencePattern = "daily"
	RecurrenceWeekly  RecurrencePattern = "weekly"
	RecurrenceMonthly RecurrencePattern = "monthly"
	RecurrenceYearly  RecurrencePattern = "yearly"
)

// IsValid returns true for a known recurrence pattern
func (p RecurrencePattern) IsValid() bool {
	switch p {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	}
	return false
}

// Booking represents a reservation of a room for a same-day time interval.
// The interval is half-open: [StartTime, EndTime). Date is a YYYY-MM-DD
// string, times are zero-padded HH:MM strings, so both compare
// lexicographically.
//
// A recurring booking acts as a template: it is expanded into one concrete
// booking per occurrence, each with ID "{templateID}-{date}".
type Booking struct {
	ID                string            `json:"id"`
	RoomID            string            `json:"roomId"`
	Title             string            `json:"title"`
	Date              string            `json:"date"`
	StartTime         types.TimeString  `json:"startTime"`
	EndTime           types.TimeString  `json:"endTime"`
	Type              string            `json:"type"`
	Description       string            `json:"description"`
	IsRecurring       bool              `json:"isRecurring,omitempty"`
	RecurrenceEndDate string            `json:"recurrenceEndDate,omitempty"`
	RecurrencePattern RecurrencePattern `json:"recurrencePattern,omitempty"`
}

// IsRecurringTemplate returns true if the booking must be expanded into
// dated occurrences
func (b *Booking) IsRecurringTemplate() bool {
	return b.IsRecurring && b.RecurrenceEndDate != ""
}

// InstanceID returns the id of the occurrence of this booking on the
// given date
func (b *Booking) InstanceID(date string) string {
	return b.ID + "-" + date
}

// MatchesOrInstanceOf returns true if the booking has the given id or is
// a recurring instance derived from it
func (b *Booking) MatchesOrInstanceOf(id string) bool {
	return b.ID == id || strings.HasPrefix(b.ID, id+"-")
}

// BookingsFilter filters booking projections. Nil/empty fields are ignored.
type BookingsFilter struct {
	RoomID  string   // single room
	RoomIDs []string // room set (multi-room overlay)
	Date    string   // exact date, YYYY-MM-DD
	Month   *int     // calendar month 1-12, with Year
	Year    *int     // calendar year
}
