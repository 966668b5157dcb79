package training_types

// CreateTrainingTypeRequest запрос на добавление типа формации
type CreateTrainingTypeRequest struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}
