package models

import "github.com/m04kA/SMC-PlanningService/internal/domain"

// CreateLeaveRequest запрос на создание отпуска референта
type CreateLeaveRequest struct {
	ID         string `json:"id,omitempty"`
	ReferentID string `json:"referentId"`
	StartDate  string `json:"startDate"` // YYYY-MM-DD, включительно
	EndDate    string `json:"endDate"`   // YYYY-MM-DD, включительно
	Title      string `json:"title"`
	Reason     string `json:"reason,omitempty"`
}

// UpdateLeaveRequest запрос на частичное обновление отпуска
type UpdateLeaveRequest struct {
	ReferentID *string `json:"referentId,omitempty"`
	StartDate  *string `json:"startDate,omitempty"`
	EndDate    *string `json:"endDate,omitempty"`
	Title      *string `json:"title,omitempty"`
	Reason     *string `json:"reason,omitempty"`
}

// LeaveResponse представление отпуска в ответе
type LeaveResponse struct {
	ID         string `json:"id"`
	ReferentID string `json:"referentId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Title      string `json:"title"`
	Reason     string `json:"reason,omitempty"`
}

// LeaveListResponse список отпусков
type LeaveListResponse struct {
	Leaves []LeaveResponse `json:"leaves"`
}

// FromDomainLeave конвертирует доменный отпуск в response
func FromDomainLeave(leave domain.Leave) *LeaveResponse {
	return &LeaveResponse{
		ID:         leave.ID,
		ReferentID: leave.ReferentID,
		StartDate:  leave.StartDate,
		EndDate:    leave.EndDate,
		Title:      leave.Title,
		Reason:     leave.Reason,
	}
}

// FromDomainLeaveList конвертирует список доменных отпусков в response
func FromDomainLeaveList(leaves []domain.Leave) *LeaveListResponse {
	out := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		out[i] = *FromDomainLeave(l)
	}
	return &LeaveListResponse{Leaves: out}
}
