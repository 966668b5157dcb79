package delete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PlanningService/internal/api/handlers"
	"github.com/m04kA/SMC-PlanningService/internal/store"
)

const msgBookingNotFound = "réservation introuvable"

type Handler struct {
	store  PlanningStore
	logger Logger
}

func NewHandler(store PlanningStore, logger Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Handle DELETE /api/v1/bookings/{bookingId}
// Удаляет бронирование и все экземпляры его повторения.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["bookingId"]

	if err := h.store.RemoveBooking(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrBookingNotFound) {
			h.logger.Warn("DELETE /bookings/%s - Booking not found", id)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("DELETE /bookings/%s - Failed to delete booking: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /bookings/%s - Booking deleted", id)
	handlers.RespondNoContent(w)
}
