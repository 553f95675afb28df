package get_member_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	"github.com/m04kA/SMC-GymService/internal/api/middleware"
	"github.com/m04kA/SMC-GymService/internal/service/schedules"
)

const (
	msgInvalidMemberID = "некорректный ID члена клуба"
	msgMissingMemberID = "отсутствует ID члена клуба"
	msgForbidden       = "доступ запрещен"
	msgMemberNotFound  = "член клуба не найден"
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

// Handle GET /api/v1/members/{memberId}/schedule
// Член клуба видит только свое расписание
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID, err := handlers.PathID(r, "memberId")
	if err != nil {
		h.logger.Warn("GET /members/{id}/schedule - Invalid member ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMemberID)
		return
	}

	callerID, ok := middleware.GetMemberID(r.Context())
	if !ok {
		h.logger.Warn("GET /members/{id}/schedule - Missing member ID")
		handlers.RespondUnauthorized(w, msgMissingMemberID)
		return
	}

	if callerID != memberID {
		h.logger.Warn("GET /members/{id}/schedule - Access denied: member_id=%d, caller_id=%d", memberID, callerID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	schedule, err := h.service.MemberSchedule(r.Context(), memberID)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrMemberNotFound):
			h.logger.Warn("GET /members/{id}/schedule - Member not found: member_id=%d", memberID)
			handlers.RespondNotFound(w, msgMemberNotFound)

		default:
			h.logger.Error("GET /members/{id}/schedule - Failed to get schedule: member_id=%d, error=%v", memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /members/{id}/schedule - Schedule retrieved: member_id=%d, entries=%d",
		memberID, len(schedule.Entries))
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
