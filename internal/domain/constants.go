package domain

// Time and date format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// FallbackRoomID is selected when the last remaining room is deleted.
const FallbackRoomID = "salle1"

// StorageSlot is the name of the single persisted state record.
// Kept identical to the web client's localStorage key so an exported
// snapshot stays recognizable.
const StorageSlot = "booking-storage"

// Business validation constants
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
	MaxReasonLength      = 500
)
