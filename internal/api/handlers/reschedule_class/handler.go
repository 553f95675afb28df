package reschedule_class

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	rescheduleClass "github.com/m04kA/SMC-GymService/internal/usecase/reschedule_class"
)

const operation = "reschedule_class"

const (
	msgInvalidClassID       = "некорректный ID занятия"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgValidationFailed     = "ошибка валидации запроса"
	msgInvalidClass         = "некорректные параметры занятия"
	msgClassNotFound        = "занятие не найдено"
	msgTrainerNotFound      = "тренер не найден"
	msgRoomNotFound         = "зал не найден"
	msgAlreadyStarted       = "занятие уже началось"
	msgRoomCapacityExceeded = "вместимость занятия превышает вместимость зала"
	msgBelowRegistrations   = "вместимость меньше числа уже записавшихся"
	msgTrainerNotAvailable  = "тренер недоступен в выбранное время"
	msgTrainerConflict      = "у тренера уже есть тренировка или занятие в это время"
	msgRoomConflict         = "зал занят в выбранное время"
	msgConcurrentBooking    = "время только что забронировали, попробуйте снова"
)

type Handler struct {
	useCase  RescheduleClassUseCase
	recorder DecisionRecorder
	logger   Logger
}

func NewHandler(useCase RescheduleClassUseCase, recorder DecisionRecorder, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		recorder: recorder,
		logger:   logger,
	}
}

// Handle PATCH /api/v1/classes/{classId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	classID, err := handlers.PathID(r, "classId")
	if err != nil {
		h.logger.Warn("PATCH /classes/{id} - Invalid class ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClassID)
		return
	}

	var req RescheduleClassRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /classes/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var verrs handlers.ValidationErrors
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PATCH /classes/{id} - Validation failed: %v", err)
		if errors.As(err, &verrs) {
			handlers.RespondValidationErrors(w, msgValidationFailed, verrs)
		} else {
			handlers.RespondBadRequest(w, msgValidationFailed)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(classID))
	h.recorder.RecordDecision(operation, handlers.Outcome(err))
	if err != nil {
		switch {
		case errors.Is(err, rescheduleClass.ErrInvalidInput):
			h.logger.Warn("PATCH /classes/{id} - Invalid class: class_id=%d, error=%v", classID, err)
			handlers.RespondBadRequest(w, msgInvalidClass)

		case errors.Is(err, rescheduleClass.ErrClassNotFound):
			h.logger.Warn("PATCH /classes/{id} - Class not found: class_id=%d", classID)
			handlers.RespondNotFound(w, msgClassNotFound)

		case errors.Is(err, rescheduleClass.ErrTrainerNotFound):
			h.logger.Warn("PATCH /classes/{id} - Trainer not found: class_id=%d", classID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, rescheduleClass.ErrRoomNotFound):
			h.logger.Warn("PATCH /classes/{id} - Room not found: class_id=%d", classID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, rescheduleClass.ErrAlreadyStarted):
			h.logger.Warn("PATCH /classes/{id} - Already started: class_id=%d", classID)
			handlers.RespondConflict(w, msgAlreadyStarted)

		case errors.Is(err, rescheduleClass.ErrRoomCapacityExceeded):
			h.logger.Warn("PATCH /classes/{id} - Capacity exceeds room: class_id=%d", classID)
			handlers.RespondConflict(w, msgRoomCapacityExceeded)

		case errors.Is(err, rescheduleClass.ErrBelowRegistrations):
			h.logger.Warn("PATCH /classes/{id} - Capacity below registrations: class_id=%d", classID)
			handlers.RespondConflict(w, msgBelowRegistrations)

		case errors.Is(err, rescheduleClass.ErrTrainerNotAvailable):
			h.logger.Warn("PATCH /classes/{id} - Trainer not available: class_id=%d", classID)
			handlers.RespondConflict(w, msgTrainerNotAvailable)

		case errors.Is(err, rescheduleClass.ErrTrainerConflict):
			h.logger.Warn("PATCH /classes/{id} - Trainer conflict: class_id=%d", classID)
			handlers.RespondConflict(w, msgTrainerConflict)

		case errors.Is(err, rescheduleClass.ErrRoomConflict):
			h.logger.Warn("PATCH /classes/{id} - Room conflict: class_id=%d", classID)
			handlers.RespondConflict(w, msgRoomConflict)

		case errors.Is(err, rescheduleClass.ErrConcurrentBooking):
			h.logger.Warn("PATCH /classes/{id} - Concurrent booking: class_id=%d", classID)
			handlers.RespondConflict(w, msgConcurrentBooking)

		default:
			h.logger.Error("PATCH /classes/{id} - Failed to reschedule class: class_id=%d, error=%v", classID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /classes/{id} - Class updated successfully: class_id=%d", classID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
