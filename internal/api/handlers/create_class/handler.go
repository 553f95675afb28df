package create_class

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	createClass "github.com/m04kA/SMC-GymService/internal/usecase/create_class"
)

const operation = "create_class"

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgValidationFailed     = "ошибка валидации запроса"
	msgInvalidClass         = "некорректные параметры занятия"
	msgTrainerNotFound      = "тренер не найден"
	msgRoomNotFound         = "зал не найден"
	msgRoomCapacityExceeded = "вместимость занятия превышает вместимость зала"
	msgTrainerNotAvailable  = "тренер недоступен в выбранное время"
	msgTrainerConflict      = "у тренера уже есть тренировка или занятие в это время"
	msgRoomConflict         = "зал занят в выбранное время"
	msgConcurrentBooking    = "время только что забронировали, попробуйте снова"
)

type Handler struct {
	useCase  CreateClassUseCase
	recorder DecisionRecorder
	logger   Logger
}

func NewHandler(useCase CreateClassUseCase, recorder DecisionRecorder, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		recorder: recorder,
		logger:   logger,
	}
}

// Handle POST /api/v1/classes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateClassRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /classes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var verrs handlers.ValidationErrors
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /classes - Validation failed: %v", err)
		if errors.As(err, &verrs) {
			handlers.RespondValidationErrors(w, msgValidationFailed, verrs)
		} else {
			handlers.RespondBadRequest(w, msgValidationFailed)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	h.recorder.RecordDecision(operation, handlers.Outcome(err))
	if err != nil {
		switch {
		case errors.Is(err, createClass.ErrInvalidInput):
			h.logger.Warn("POST /classes - Invalid class: %v", err)
			handlers.RespondBadRequest(w, msgInvalidClass)

		case errors.Is(err, createClass.ErrTrainerNotFound):
			h.logger.Warn("POST /classes - Trainer not found: trainer_id=%d", req.TrainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, createClass.ErrRoomNotFound):
			h.logger.Warn("POST /classes - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createClass.ErrRoomCapacityExceeded):
			h.logger.Warn("POST /classes - Capacity exceeds room: room_id=%d, capacity=%d", req.RoomID, req.Capacity)
			handlers.RespondConflict(w, msgRoomCapacityExceeded)

		case errors.Is(err, createClass.ErrTrainerNotAvailable):
			h.logger.Warn("POST /classes - Trainer not available: trainer_id=%d", req.TrainerID)
			handlers.RespondConflict(w, msgTrainerNotAvailable)

		case errors.Is(err, createClass.ErrTrainerConflict):
			h.logger.Warn("POST /classes - Trainer conflict: trainer_id=%d", req.TrainerID)
			handlers.RespondConflict(w, msgTrainerConflict)

		case errors.Is(err, createClass.ErrRoomConflict):
			h.logger.Warn("POST /classes - Room conflict: room_id=%d", req.RoomID)
			handlers.RespondConflict(w, msgRoomConflict)

		case errors.Is(err, createClass.ErrConcurrentBooking):
			h.logger.Warn("POST /classes - Concurrent booking: trainer_id=%d, room_id=%d", req.TrainerID, req.RoomID)
			handlers.RespondConflict(w, msgConcurrentBooking)

		default:
			h.logger.Error("POST /classes - Failed to create class: trainer_id=%d, room_id=%d, error=%v",
				req.TrainerID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /classes - Class created successfully: class_id=%d, trainer_id=%d, room_id=%d",
		result.ID, req.TrainerID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
