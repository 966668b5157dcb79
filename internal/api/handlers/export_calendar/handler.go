package export_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-PlanningService/internal/api/handlers"
	exportCalendar "github.com/m04kA/SMC-PlanningService/internal/usecase/export_calendar"
)

const (
	msgInvalidMonth = "mois invalide, attendu 1-12"
	msgInvalidYear  = "année invalide"
)

type Handler struct {
	useCase ExportCalendarUseCase
	logger  Logger
}

func NewHandler(useCase ExportCalendarUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle GET /api/v1/export/csv?month=&year=&rooms=&multi=
// Без параметра rooms экспортируется текущий выбор стора: selectedRooms
// при multi=true, иначе selectedRoom.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		h.logger.Warn("GET /export/csv - Invalid month: %q", query.Get("month"))
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}
	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		h.logger.Warn("GET /export/csv - Invalid year: %q", query.Get("year"))
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	req := &exportCalendar.Request{
		Month:     month,
		Year:      year,
		MultiRoom: query.Get("multi") == "true",
	}
	if rooms := query.Get("rooms"); rooms != "" {
		req.RoomIDs = strings.Split(rooms, ",")
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, exportCalendar.ErrInvalidInput) {
			h.logger.Warn("GET /export/csv - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		h.logger.Error("GET /export/csv - Failed to export: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /export/csv - Exported %s", result.Filename)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(result.Content))
}
