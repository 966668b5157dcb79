package check_availability

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-PlanningService/internal/api/handlers"
	"github.com/m04kA/SMC-PlanningService/internal/domain"
	"github.com/m04kA/SMC-PlanningService/pkg/types"
)

const (
	msgMissingParams = "paramètres requis : roomId, date, startTime, endTime"
	msgInvalidDate   = "format de date invalide, attendu YYYY-MM-DD"
	msgInvalidTime   = "format d'heure invalide, attendu HH:MM"
)

type Handler struct {
	store  PlanningStore
	logger Logger
}

func NewHandler(store PlanningStore, logger Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Handle GET /api/v1/availability?roomId=&date=&startTime=&endTime=&excludeBookingId=
// Предикат без побочных эффектов: форма дергает его на каждое изменение
// даты или зала, чтобы показать предупреждение до отправки.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	roomID := query.Get("roomId")
	date := query.Get("date")
	startStr := query.Get("startTime")
	endStr := query.Get("endTime")
	excludeID := query.Get("excludeBookingId")

	if roomID == "" || date == "" || startStr == "" || endStr == "" {
		h.logger.Warn("GET /availability - Missing parameters")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		h.logger.Warn("GET /availability - Invalid date: %q", date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(startStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid startTime: %q", startStr)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}
	endTime, err := types.NewTimeStringFromString(endStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid endTime: %q", endStr)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	available := h.store.IsRoomAvailable(roomID, date, startTime, endTime, excludeID)

	resp := AvailabilityResponse{Available: available}
	if !available {
		if leave := h.store.FindLeaveConflict(roomID, date); leave != nil {
			resp.Leave = &LeaveInfo{
				ID:        leave.ID,
				Title:     leave.Title,
				StartDate: leave.StartDate,
				EndDate:   leave.EndDate,
				Reason:    leave.Reason,
			}
		}
	}

	h.logger.Info("GET /availability - room=%s date=%s available=%t", roomID, date, available)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
