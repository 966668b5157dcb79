package domain

// TrainingType is a label attachable to a booking. Purely descriptive,
// no behavioral effect.
type TrainingType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
