package cancel_registration

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	"github.com/m04kA/SMC-GymService/internal/api/middleware"
	cancelRegistration "github.com/m04kA/SMC-GymService/internal/usecase/cancel_registration"
)

const operation = "cancel_registration"

const (
	msgInvalidRegistrationID = "некорректный ID записи"
	msgMissingMemberID       = "отсутствует ID члена клуба"
	msgRegistrationNotFound  = "запись не найдена"
	msgNotOwner              = "запись принадлежит другому члену клуба"
	msgAlreadyStarted        = "нельзя отменить запись на уже начавшееся занятие"
	msgConcurrent            = "запись изменена параллельным запросом, повторите попытку"
)

type Handler struct {
	useCase  CancelRegistrationUseCase
	recorder DecisionRecorder
	logger   Logger
}

func NewHandler(useCase CancelRegistrationUseCase, recorder DecisionRecorder, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		recorder: recorder,
		logger:   logger,
	}
}

// Handle DELETE /api/v1/registrations/{registrationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	registrationID, err := handlers.PathID(r, "registrationId")
	if err != nil {
		h.logger.Warn("DELETE /registrations/{id} - Invalid registration ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRegistrationID)
		return
	}

	memberID, ok := middleware.GetMemberID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /registrations/{id} - Missing member ID")
		handlers.RespondUnauthorized(w, msgMissingMemberID)
		return
	}

	err = h.useCase.Execute(r.Context(), &cancelRegistration.Request{
		RegistrationID: registrationID,
		MemberID:       memberID,
	})
	h.recorder.RecordDecision(operation, handlers.Outcome(err))
	if err != nil {
		switch {
		case errors.Is(err, cancelRegistration.ErrRegistrationNotFound):
			h.logger.Warn("DELETE /registrations/{id} - Registration not found: registration_id=%d", registrationID)
			handlers.RespondNotFound(w, msgRegistrationNotFound)

		case errors.Is(err, cancelRegistration.ErrNotOwner):
			h.logger.Warn("DELETE /registrations/{id} - Not owner: registration_id=%d, member_id=%d", registrationID, memberID)
			handlers.RespondForbidden(w, msgNotOwner)

		case errors.Is(err, cancelRegistration.ErrAlreadyStarted):
			h.logger.Warn("DELETE /registrations/{id} - Class already started: registration_id=%d", registrationID)
			handlers.RespondConflict(w, msgAlreadyStarted)

		case errors.Is(err, cancelRegistration.ErrConcurrentUpdate):
			h.logger.Warn("DELETE /registrations/{id} - Concurrent update: registration_id=%d", registrationID)
			handlers.RespondConflict(w, msgConcurrent)

		default:
			h.logger.Error("DELETE /registrations/{id} - Failed to cancel registration: registration_id=%d, error=%v",
				registrationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /registrations/{id} - Registration cancelled: registration_id=%d, member_id=%d",
		registrationID, memberID)
	handlers.RespondNoContent(w)
}
