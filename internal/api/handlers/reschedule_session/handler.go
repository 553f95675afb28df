package reschedule_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	"github.com/m04kA/SMC-GymService/internal/api/middleware"
	rescheduleSession "github.com/m04kA/SMC-GymService/internal/usecase/reschedule_session"
)

const operation = "reschedule_session"

const (
	msgInvalidSessionID    = "некорректный ID тренировки"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgValidationFailed    = "ошибка валидации запроса"
	msgInvalidInterval     = "некорректный интервал тренировки"
	msgSessionNotFound     = "тренировка не найдена"
	msgTrainerNotFound     = "тренер не найден"
	msgRoomNotFound        = "зал не найден"
	msgRoomRequired        = "для персональной тренировки нужно указать зал"
	msgNotOwner            = "тренировка принадлежит другому члену клуба"
	msgAlreadyStarted      = "тренировка уже началась"
	msgTrainerNotAvailable = "тренер недоступен в выбранное время"
	msgTrainerConflict     = "у тренера уже есть тренировка или занятие в это время"
	msgMemberConflict      = "у члена клуба уже есть тренировка или занятие в это время"
	msgRoomConflict        = "зал занят в выбранное время"
	msgConcurrentBooking   = "время только что забронировали, попробуйте снова"
)

type Handler struct {
	useCase  RescheduleSessionUseCase
	recorder DecisionRecorder
	logger   Logger
}

func NewHandler(useCase RescheduleSessionUseCase, recorder DecisionRecorder, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		recorder: recorder,
		logger:   logger,
	}
}

// Handle PATCH /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := handlers.PathID(r, "sessionId")
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id} - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req RescheduleSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /sessions/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var verrs handlers.ValidationErrors
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PATCH /sessions/{id} - Validation failed: %v", err)
		if errors.As(err, &verrs) {
			handlers.RespondValidationErrors(w, msgValidationFailed, verrs)
		} else {
			handlers.RespondBadRequest(w, msgValidationFailed)
		}
		return
	}

	// Член клуба может переносить только свои тренировки, персонал - любые
	requesterID := middleware.MemberIDPtr(r.Context())

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID, requesterID))
	h.recorder.RecordDecision(operation, handlers.Outcome(err))
	if err != nil {
		switch {
		case errors.Is(err, rescheduleSession.ErrRoomRequired):
			h.logger.Warn("PATCH /sessions/{id} - Room required: session_id=%d", sessionID)
			handlers.RespondBadRequest(w, msgRoomRequired)

		case errors.Is(err, rescheduleSession.ErrInvalidInput):
			h.logger.Warn("PATCH /sessions/{id} - Invalid interval: session_id=%d, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, rescheduleSession.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id} - Session not found: session_id=%d", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, rescheduleSession.ErrTrainerNotFound):
			h.logger.Warn("PATCH /sessions/{id} - Trainer not found: session_id=%d", sessionID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, rescheduleSession.ErrRoomNotFound):
			h.logger.Warn("PATCH /sessions/{id} - Room not found: session_id=%d", sessionID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, rescheduleSession.ErrNotOwner):
			h.logger.Warn("PATCH /sessions/{id} - Not owner: session_id=%d", sessionID)
			handlers.RespondForbidden(w, msgNotOwner)

		case errors.Is(err, rescheduleSession.ErrAlreadyStarted):
			h.logger.Warn("PATCH /sessions/{id} - Already started: session_id=%d", sessionID)
			handlers.RespondConflict(w, msgAlreadyStarted)

		case errors.Is(err, rescheduleSession.ErrTrainerNotAvailable):
			h.logger.Warn("PATCH /sessions/{id} - Trainer not available: session_id=%d", sessionID)
			handlers.RespondConflict(w, msgTrainerNotAvailable)

		case errors.Is(err, rescheduleSession.ErrTrainerConflict):
			h.logger.Warn("PATCH /sessions/{id} - Trainer conflict: session_id=%d", sessionID)
			handlers.RespondConflict(w, msgTrainerConflict)

		case errors.Is(err, rescheduleSession.ErrMemberConflict):
			h.logger.Warn("PATCH /sessions/{id} - Member conflict: session_id=%d", sessionID)
			handlers.RespondConflict(w, msgMemberConflict)

		case errors.Is(err, rescheduleSession.ErrRoomConflict):
			h.logger.Warn("PATCH /sessions/{id} - Room conflict: session_id=%d", sessionID)
			handlers.RespondConflict(w, msgRoomConflict)

		case errors.Is(err, rescheduleSession.ErrConcurrentBooking):
			h.logger.Warn("PATCH /sessions/{id} - Concurrent booking: session_id=%d", sessionID)
			handlers.RespondConflict(w, msgConcurrentBooking)

		default:
			h.logger.Error("PATCH /sessions/{id} - Failed to reschedule session: session_id=%d, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sessions/{id} - Session rescheduled successfully: session_id=%d", sessionID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
