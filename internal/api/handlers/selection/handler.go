package selection

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PlanningService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgMissingRoomID      = "roomId est requis"
)

type Handler struct {
	store  PlanningStore
	logger Logger
}

func NewHandler(store PlanningStore, logger Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// HandleGet GET /api/v1/selection
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	room, rooms := h.store.Selection()
	handlers.RespondJSON(w, http.StatusOK, SelectionResponse{SelectedRoom: room, SelectedRooms: rooms})
}

// HandleSetRoom PUT /api/v1/selection/room
func (h *Handler) HandleSetRoom(w http.ResponseWriter, r *http.Request) {
	var req SetRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /selection/room - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.RoomID == "" {
		h.logger.Warn("PUT /selection/room - Missing roomId")
		handlers.RespondBadRequest(w, msgMissingRoomID)
		return
	}

	h.store.SetSelectedRoom(r.Context(), req.RoomID)
	h.logger.Info("PUT /selection/room - Selected room %s", req.RoomID)

	room, rooms := h.store.Selection()
	handlers.RespondJSON(w, http.StatusOK, SelectionResponse{SelectedRoom: room, SelectedRooms: rooms})
}

// HandleSetRooms PUT /api/v1/selection/rooms
func (h *Handler) HandleSetRooms(w http.ResponseWriter, r *http.Request) {
	var req SetRoomsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /selection/rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.store.SetSelectedRooms(r.Context(), req.RoomIDs)
	h.logger.Info("PUT /selection/rooms - Selected %d rooms", len(req.RoomIDs))

	room, rooms := h.store.Selection()
	handlers.RespondJSON(w, http.StatusOK, SelectionResponse{SelectedRoom: room, SelectedRooms: rooms})
}

// HandleToggleRoom POST /api/v1/selection/rooms/{roomId}/toggle
func (h *Handler) HandleToggleRoom(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["roomId"]

	rooms := h.store.ToggleSelectedRoom(r.Context(), id)
	h.logger.Info("POST /selection/rooms/%s/toggle - Selection now has %d rooms", id, len(rooms))

	room, _ := h.store.Selection()
	handlers.RespondJSON(w, http.StatusOK, SelectionResponse{SelectedRoom: room, SelectedRooms: rooms})
}
