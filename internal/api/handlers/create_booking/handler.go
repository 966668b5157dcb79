package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PlanningService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-PlanningService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidInput       = "données de réservation invalides"
	msgInvalidTimeRange   = "l'heure de fin doit être après l'heure de début"
	msgInvalidRecurrence  = "paramètres de récurrence invalides"
	msgSlotConflict       = "ce créneau est déjà réservé"
	msgReferentOnLeave    = "le référent est en congé à cette date"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: room=%s date=%s", req.RoomID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrReferentOnLeave):
			h.logger.Warn("POST /bookings - Referent on leave: room=%s date=%s", req.RoomID, req.Date)
			message := msgReferentOnLeave
			if result != nil && result.LeaveConflict != nil && result.LeaveConflict.Title != "" {
				message += " : " + result.LeaveConflict.Title
			}
			handlers.RespondError(w, http.StatusConflict, message)

		case errors.Is(err, createBooking.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings - Invalid time range: %s-%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createBooking.ErrInvalidRecurrence):
			h.logger.Warn("POST /bookings - Invalid recurrence: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRecurrence)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room=%s date=%s error=%v",
				req.RoomID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Created %d booking(s) for room=%s", len(result.Created), req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
