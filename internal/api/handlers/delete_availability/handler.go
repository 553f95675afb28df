package delete_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	"github.com/m04kA/SMC-GymService/internal/service/availability"
)

const (
	msgInvalidTrainerID      = "некорректный ID тренера"
	msgInvalidAvailabilityID = "некорректный ID записи доступности"
	msgTrainerNotFound       = "тренер не найден"
	msgAvailabilityNotFound  = "запись доступности не найдена"
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

// Handle DELETE /api/v1/trainers/{trainerId}/availabilities/{availabilityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	trainerID, err := handlers.PathID(r, "trainerId")
	if err != nil {
		h.logger.Warn("DELETE /trainers/{id}/availabilities/{id} - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	availabilityID, err := handlers.PathID(r, "availabilityId")
	if err != nil {
		h.logger.Warn("DELETE /trainers/{id}/availabilities/{id} - Invalid availability ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAvailabilityID)
		return
	}

	if err := h.service.Delete(r.Context(), trainerID, availabilityID); err != nil {
		switch {
		case errors.Is(err, availability.ErrTrainerNotFound):
			h.logger.Warn("DELETE /trainers/{id}/availabilities/{id} - Trainer not found: trainer_id=%d", trainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, availability.ErrAvailabilityNotFound):
			h.logger.Warn("DELETE /trainers/{id}/availabilities/{id} - Availability not found: trainer_id=%d, availability_id=%d",
				trainerID, availabilityID)
			handlers.RespondNotFound(w, msgAvailabilityNotFound)

		default:
			h.logger.Error("DELETE /trainers/{id}/availabilities/{id} - Failed to delete availability: availability_id=%d, error=%v",
				availabilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /trainers/{id}/availabilities/{id} - Availability deleted: trainer_id=%d, availability_id=%d",
		trainerID, availabilityID)
	handlers.RespondNoContent(w)
}
