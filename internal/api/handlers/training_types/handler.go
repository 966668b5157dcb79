package training_types

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PlanningService/internal/api/handlers"
	"github.com/m04kA/SMC-PlanningService/internal/service/trainingtypes"
)

const (
	msgInvalidRequestBody   = "corps de requête invalide"
	msgInvalidTrainingType  = "données de type de formation invalides"
	msgTrainingTypeNotFound = "type de formation introuvable"
)

type Handler struct {
	service TrainingTypesService
	logger  Logger
}

func NewHandler(service TrainingTypesService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// HandleCreate POST /api/v1/training-types
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateTrainingTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /training-types - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	t, err := h.service.Create(r.Context(), req.ID, req.Name)
	if err != nil {
		if errors.Is(err, trainingtypes.ErrInvalidInput) {
			h.logger.Warn("POST /training-types - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTrainingType)
			return
		}
		h.logger.Error("POST /training-types - Failed to create training type: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, t)
}

// HandleDelete DELETE /api/v1/training-types/{typeId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["typeId"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, trainingtypes.ErrTrainingTypeNotFound) {
			h.logger.Warn("DELETE /training-types/%s - Training type not found", id)
			handlers.RespondNotFound(w, msgTrainingTypeNotFound)
			return
		}
		h.logger.Error("DELETE /training-types/%s - Failed to delete training type: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}

// HandleList GET /api/v1/training-types
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /training-types - Failed to list training types: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, types)
}
