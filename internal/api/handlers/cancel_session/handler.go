package cancel_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	"github.com/m04kA/SMC-GymService/internal/api/middleware"
	cancelSession "github.com/m04kA/SMC-GymService/internal/usecase/cancel_session"
)

const operation = "cancel_session"

const (
	msgInvalidSessionID = "некорректный ID тренировки"
	msgSessionNotFound  = "тренировка не найдена"
	msgNotOwner         = "тренировка принадлежит другому члену клуба"
	msgAlreadyStarted   = "нельзя отменить уже начавшуюся тренировку"
	msgConcurrent       = "тренировка изменена параллельным запросом, повторите попытку"
)

type Handler struct {
	useCase  CancelSessionUseCase
	recorder DecisionRecorder
	logger   Logger
}

func NewHandler(useCase CancelSessionUseCase, recorder DecisionRecorder, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		recorder: recorder,
		logger:   logger,
	}
}

// Handle DELETE /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := handlers.PathID(r, "sessionId")
	if err != nil {
		h.logger.Warn("DELETE /sessions/{id} - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	err = h.useCase.Execute(r.Context(), &cancelSession.Request{
		SessionID:   sessionID,
		RequesterID: middleware.MemberIDPtr(r.Context()),
	})
	h.recorder.RecordDecision(operation, handlers.Outcome(err))
	if err != nil {
		switch {
		case errors.Is(err, cancelSession.ErrSessionNotFound):
			h.logger.Warn("DELETE /sessions/{id} - Session not found: session_id=%d", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, cancelSession.ErrNotOwner):
			h.logger.Warn("DELETE /sessions/{id} - Not owner: session_id=%d", sessionID)
			handlers.RespondForbidden(w, msgNotOwner)

		case errors.Is(err, cancelSession.ErrAlreadyStarted):
			h.logger.Warn("DELETE /sessions/{id} - Already started: session_id=%d", sessionID)
			handlers.RespondConflict(w, msgAlreadyStarted)

		case errors.Is(err, cancelSession.ErrConcurrentUpdate):
			h.logger.Warn("DELETE /sessions/{id} - Concurrent update: session_id=%d", sessionID)
			handlers.RespondConflict(w, msgConcurrent)

		default:
			h.logger.Error("DELETE /sessions/{id} - Failed to cancel session: session_id=%d, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sessions/{id} - Session cancelled successfully: session_id=%d", sessionID)
	handlers.RespondNoContent(w)
}
