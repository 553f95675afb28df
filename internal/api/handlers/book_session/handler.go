package book_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	"github.com/m04kA/SMC-GymService/internal/api/middleware"
	bookSession "github.com/m04kA/SMC-GymService/internal/usecase/book_session"
)

const operation = "book_session"

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgValidationFailed    = "ошибка валидации запроса"
	msgMissingMemberID     = "отсутствует ID члена клуба"
	msgInvalidInterval     = "некорректный интервал тренировки"
	msgMemberNotFound      = "член клуба не найден"
	msgTrainerNotFound     = "тренер не найден"
	msgRoomNotFound        = "зал не найден"
	msgTrainerNotAvailable = "тренер недоступен в выбранное время"
	msgTrainerConflict     = "у тренера уже есть тренировка или занятие в это время"
	msgMemberConflict      = "у вас уже есть тренировка или занятие в это время"
	msgRoomConflict        = "зал занят в выбранное время"
	msgConcurrentBooking   = "время только что забронировали, попробуйте снова"
)

type Handler struct {
	useCase  BookSessionUseCase
	recorder DecisionRecorder
	logger   Logger
}

func NewHandler(useCase BookSessionUseCase, recorder DecisionRecorder, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		recorder: recorder,
		logger:   logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID, ok := middleware.GetMemberID(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions - Missing member ID")
		handlers.RespondUnauthorized(w, msgMissingMemberID)
		return
	}

	var req BookSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var verrs handlers.ValidationErrors
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /sessions - Validation failed: %v", err)
		if errors.As(err, &verrs) {
			handlers.RespondValidationErrors(w, msgValidationFailed, verrs)
		} else {
			handlers.RespondBadRequest(w, msgValidationFailed)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(memberID))
	h.recorder.RecordDecision(operation, handlers.Outcome(err))
	if err != nil {
		switch {
		case errors.Is(err, bookSession.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid interval: member_id=%d, error=%v", memberID, err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, bookSession.ErrMemberNotFound):
			h.logger.Warn("POST /sessions - Member not found: member_id=%d", memberID)
			handlers.RespondNotFound(w, msgMemberNotFound)

		case errors.Is(err, bookSession.ErrTrainerNotFound):
			h.logger.Warn("POST /sessions - Trainer not found: trainer_id=%d", req.TrainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, bookSession.ErrRoomNotFound):
			h.logger.Warn("POST /sessions - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, bookSession.ErrTrainerNotAvailable):
			h.logger.Warn("POST /sessions - Trainer not available: trainer_id=%d", req.TrainerID)
			handlers.RespondConflict(w, msgTrainerNotAvailable)

		case errors.Is(err, bookSession.ErrTrainerConflict):
			h.logger.Warn("POST /sessions - Trainer conflict: trainer_id=%d", req.TrainerID)
			handlers.RespondConflict(w, msgTrainerConflict)

		case errors.Is(err, bookSession.ErrMemberConflict):
			h.logger.Warn("POST /sessions - Member conflict: member_id=%d", memberID)
			handlers.RespondConflict(w, msgMemberConflict)

		case errors.Is(err, bookSession.ErrRoomConflict):
			h.logger.Warn("POST /sessions - Room conflict: room_id=%d", req.RoomID)
			handlers.RespondConflict(w, msgRoomConflict)

		case errors.Is(err, bookSession.ErrConcurrentBooking):
			h.logger.Warn("POST /sessions - Concurrent booking: member_id=%d, trainer_id=%d", memberID, req.TrainerID)
			handlers.RespondConflict(w, msgConcurrentBooking)

		default:
			h.logger.Error("POST /sessions - Failed to book session: member_id=%d, trainer_id=%d, error=%v",
				memberID, req.TrainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session booked successfully: session_id=%d, member_id=%d, trainer_id=%d",
		result.ID, memberID, req.TrainerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
