package list_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	"github.com/m04kA/SMC-GymService/internal/service/availability"
)

const (
	msgInvalidTrainerID = "некорректный ID тренера"
	msgTrainerNotFound  = "тренер не найден"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/trainers/{trainerId}/availabilities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	trainerID, err := handlers.PathID(r, "trainerId")
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/availabilities - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	list, err := h.service.List(r.Context(), trainerID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrTrainerNotFound):
			h.logger.Warn("GET /trainers/{id}/availabilities - Trainer not found: trainer_id=%d", trainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		default:
			h.logger.Error("GET /trainers/{id}/availabilities - Failed to list availability: trainer_id=%d, error=%v",
				trainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trainers/{id}/availabilities - Availability retrieved: trainer_id=%d, count=%d",
		trainerID, len(list.Entries))
	handlers.RespondJSON(w, http.StatusOK, list)
}
