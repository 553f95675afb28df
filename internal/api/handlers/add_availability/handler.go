package add_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	addAvailability "github.com/m04kA/SMC-GymService/internal/usecase/add_availability"
)

const (
	msgInvalidTrainerID   = "некорректный ID тренера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации запроса"
	msgInvalidEntry       = "некорректная запись доступности"
	msgTrainerNotFound    = "тренер не найден"
	msgOverlap            = "запись пересекается с существующей доступностью тренера"
	msgConcurrent         = "доступность тренера изменена параллельным запросом, повторите попытку"
)

type Handler struct {
	useCase AddAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase AddAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/trainers/{trainerId}/availabilities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	trainerID, err := handlers.PathID(r, "trainerId")
	if err != nil {
		h.logger.Warn("POST /trainers/{id}/availabilities - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	var req AddAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /trainers/{id}/availabilities - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var verrs handlers.ValidationErrors
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /trainers/{id}/availabilities - Validation failed: %v", err)
		if errors.As(err, &verrs) {
			handlers.RespondValidationErrors(w, msgValidationFailed, verrs)
		} else {
			handlers.RespondBadRequest(w, msgValidationFailed)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(trainerID))
	if err != nil {
		switch {
		case errors.Is(err, addAvailability.ErrInvalidInput):
			h.logger.Warn("POST /trainers/{id}/availabilities - Invalid entry: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondBadRequest(w, msgInvalidEntry)

		case errors.Is(err, addAvailability.ErrTrainerNotFound):
			h.logger.Warn("POST /trainers/{id}/availabilities - Trainer not found: trainer_id=%d", trainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, addAvailability.ErrOverlap):
			h.logger.Warn("POST /trainers/{id}/availabilities - Overlapping entry: trainer_id=%d", trainerID)
			handlers.RespondConflict(w, msgOverlap)

		case errors.Is(err, addAvailability.ErrConcurrentUpdate):
			h.logger.Warn("POST /trainers/{id}/availabilities - Concurrent update: trainer_id=%d", trainerID)
			handlers.RespondConflict(w, msgConcurrent)

		default:
			h.logger.Error("POST /trainers/{id}/availabilities - Failed to add availability: trainer_id=%d, error=%v",
				trainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /trainers/{id}/availabilities - Availability added: availability_id=%d, trainer_id=%d, type=%s",
		result.ID, trainerID, result.Type)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
