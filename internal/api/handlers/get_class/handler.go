package get_class

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	"github.com/m04kA/SMC-GymService/internal/service/schedules"
)

const (
	msgInvalidClassID = "некорректный ID занятия"
	msgNotFound       = "занятие не найдено"
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

// Handle GET /api/v1/classes/{classId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	classID, err := handlers.PathID(r, "classId")
	if err != nil {
		h.logger.Warn("GET /classes/{id} - Invalid class ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClassID)
		return
	}

	class, err := h.service.GetClass(r.Context(), classID)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrClassNotFound):
			h.logger.Warn("GET /classes/{id} - Class not found: class_id=%d", classID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /classes/{id} - Failed to get class: class_id=%d, error=%v", classID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /classes/{id} - Class retrieved successfully: class_id=%d, remaining=%d",
		classID, class.RemainingSpots)
	handlers.RespondJSON(w, http.StatusOK, class)
}
