package register_for_class

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	"github.com/m04kA/SMC-GymService/internal/api/middleware"
	registerForClass "github.com/m04kA/SMC-GymService/internal/usecase/register_for_class"
)

const operation = "register_for_class"

const (
	msgInvalidClassID     = "некорректный ID занятия"
	msgMissingMemberID    = "отсутствует ID члена клуба"
	msgMemberNotFound     = "член клуба не найден"
	msgClassNotFound      = "занятие не найдено"
	msgReferenceNotFound  = "член клуба или занятие не найдены"
	msgAlreadyStarted     = "занятие уже началось"
	msgAlreadyRegistered  = "вы уже записаны на это занятие"
	msgClassFull          = "на занятии нет свободных мест"
	msgMemberConflict     = "у вас уже есть тренировка или занятие в это время"
	msgConcurrentBooking  = "место только что заняли, попробуйте снова"
	msgInvalidRequestData = "некорректные параметры записи"
)

type Handler struct {
	useCase  RegisterForClassUseCase
	recorder DecisionRecorder
	logger   Logger
}

func NewHandler(useCase RegisterForClassUseCase, recorder DecisionRecorder, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		recorder: recorder,
		logger:   logger,
	}
}

// Handle POST /api/v1/classes/{classId}/registrations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	classID, err := handlers.PathID(r, "classId")
	if err != nil {
		h.logger.Warn("POST /classes/{id}/registrations - Invalid class ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClassID)
		return
	}

	memberID, ok := middleware.GetMemberID(r.Context())
	if !ok {
		h.logger.Warn("POST /classes/{id}/registrations - Missing member ID")
		handlers.RespondUnauthorized(w, msgMissingMemberID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &registerForClass.Request{
		MemberID: memberID,
		ClassID:  classID,
	})
	h.recorder.RecordDecision(operation, handlers.Outcome(err))
	if err != nil {
		switch {
		case errors.Is(err, registerForClass.ErrInvalidInput):
			h.logger.Warn("POST /classes/{id}/registrations - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestData)

		case errors.Is(err, registerForClass.ErrMemberNotFound):
			h.logger.Warn("POST /classes/{id}/registrations - Member not found: member_id=%d", memberID)
			handlers.RespondNotFound(w, msgMemberNotFound)

		case errors.Is(err, registerForClass.ErrClassNotFound):
			h.logger.Warn("POST /classes/{id}/registrations - Class not found: class_id=%d", classID)
			handlers.RespondNotFound(w, msgClassNotFound)

		case errors.Is(err, registerForClass.ErrReferenceNotFound):
			h.logger.Warn("POST /classes/{id}/registrations - Member or class removed: class_id=%d, member_id=%d", classID, memberID)
			handlers.RespondNotFound(w, msgReferenceNotFound)

		case errors.Is(err, registerForClass.ErrAlreadyStarted):
			h.logger.Warn("POST /classes/{id}/registrations - Class already started: class_id=%d", classID)
			handlers.RespondConflict(w, msgAlreadyStarted)

		case errors.Is(err, registerForClass.ErrAlreadyRegistered):
			h.logger.Warn("POST /classes/{id}/registrations - Already registered: class_id=%d, member_id=%d", classID, memberID)
			handlers.RespondConflict(w, msgAlreadyRegistered)

		case errors.Is(err, registerForClass.ErrClassFull):
			h.logger.Warn("POST /classes/{id}/registrations - Class is full: class_id=%d", classID)
			handlers.RespondConflict(w, msgClassFull)

		case errors.Is(err, registerForClass.ErrMemberConflict):
			h.logger.Warn("POST /classes/{id}/registrations - Member conflict: class_id=%d, member_id=%d", classID, memberID)
			handlers.RespondConflict(w, msgMemberConflict)

		case errors.Is(err, registerForClass.ErrConcurrentBooking):
			h.logger.Warn("POST /classes/{id}/registrations - Concurrent registration: class_id=%d", classID)
			handlers.RespondConflict(w, msgConcurrentBooking)

		default:
			h.logger.Error("POST /classes/{id}/registrations - Failed to register: class_id=%d, member_id=%d, error=%v",
				classID, memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /classes/{id}/registrations - Registered successfully: registration_id=%d, class_id=%d, member_id=%d, remaining=%d",
		result.ID, classID, memberID, result.RemainingSpots)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
