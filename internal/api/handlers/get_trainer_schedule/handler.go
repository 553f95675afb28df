package get_trainer_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	"github.com/m04kA/SMC-GymService/internal/service/schedules"
)

const (
	msgInvalidTrainerID = "некорректный ID тренера"
	msgTrainerNotFound  = "тренер не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/trainers/{trainerId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	trainerID, err := handlers.PathID(r, "trainerId")
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/schedule - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	schedule, err := h.service.TrainerSchedule(r.Context(), trainerID)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrTrainerNotFound):
			h.logger.Warn("GET /trainers/{id}/schedule - Trainer not found: trainer_id=%d", trainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		default:
			h.logger.Error("GET /trainers/{id}/schedule - Failed to get schedule: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trainers/{id}/schedule - Schedule retrieved: trainer_id=%d, entries=%d",
		trainerID, len(schedule.Entries))
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
