package list_classes

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	"github.com/m04kA/SMC-GymService/internal/api/middleware"
	"github.com/m04kA/SMC-GymService/internal/service/schedules"
)

const (
	msgMemberNotFound = "член клуба не найден"
)

type Handler struct {
	service ClassService
	logger  Logger
}

func NewHandler(service ClassService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/classes
// X-Member-ID необязателен: с ним отмечаются занятия, на которые член клуба уже записан
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.MemberIDPtr(r.Context())

	list, err := h.service.ListUpcomingClasses(r.Context(), memberID)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrMemberNotFound):
			h.logger.Warn("GET /classes - Member not found: member_id=%d", *memberID)
			handlers.RespondNotFound(w, msgMemberNotFound)

		default:
			h.logger.Error("GET /classes - Failed to list classes: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /classes - Classes listed: count=%d", len(list.Classes))
	handlers.RespondJSON(w, http.StatusOK, list)
}
