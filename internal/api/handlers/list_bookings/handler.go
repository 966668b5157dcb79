package list_bookings

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-PlanningService/internal/api/handlers"
	"github.com/m04kA/SMC-PlanningService/internal/domain"
)

const (
	msgInvalidMonth = "mois invalide, attendu 1-12"
	msgInvalidYear  = "année invalide"
)

type Handler struct {
	store  PlanningStore
	logger Logger
}

func NewHandler(store PlanningStore, logger Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Handle GET /api/v1/bookings?room=&rooms=&date=&month=&year=
// Параметры комбинируются: room задает один зал, rooms задает набор через
// запятую (мульти-режим), date точную дату, month+year календарный месяц.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := domain.BookingsFilter{
		RoomID: query.Get("room"),
		Date:   query.Get("date"),
	}

	if rooms := query.Get("rooms"); rooms != "" {
		filter.RoomIDs = strings.Split(rooms, ",")
	}

	if monthStr := query.Get("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			h.logger.Warn("GET /bookings - Invalid month: %q", monthStr)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		yearStr := query.Get("year")
		year, err := strconv.Atoi(yearStr)
		if err != nil || year < 1 {
			h.logger.Warn("GET /bookings - Invalid year: %q", yearStr)
			handlers.RespondBadRequest(w, msgInvalidYear)
			return
		}
		filter.Month = &month
		filter.Year = &year
	}

	bookings := h.store.ListBookings(filter)

	h.logger.Info("GET /bookings - Returned %d bookings", len(bookings))
	handlers.RespondJSON(w, http.StatusOK, FromDomainBookingList(bookings))
}
