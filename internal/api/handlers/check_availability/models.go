package check_availability

// LeaveInfo причина недоступности бюро: отпуск референта
type LeaveInfo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason,omitempty"`
}

// AvailabilityResponse результат проверки доступности. Leave заполняется
// только когда недоступность вызвана отпуском референта: форма показывает
// предупреждение с его заголовком.
type AvailabilityResponse struct {
	Available bool       `json:"available"`
	Leave     *LeaveInfo `json:"leave,omitempty"`
}
