package handlers

import (
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

// OutcomeOK исход успешной операции для метрик решений
const OutcomeOK = "ok"

// DecisionRecorder учитывает решения движка бронирований
type DecisionRecorder interface {
	RecordDecision(operation, outcome string)
}

// StatusForError возвращает HTTP статус по виду ошибки
func StatusForError(err error) int {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInvalidInput:
		return http.StatusBadRequest
	case domain.KindOwnership:
		return http.StatusForbidden
	case domain.KindNotAvailable,
		domain.KindResourceConflict,
		domain.KindCapacityExceeded,
		domain.KindAlreadyRegistered,
		domain.KindAlreadyStarted:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Outcome возвращает исход операции: OutcomeOK или вид ошибки
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	return string(domain.KindOf(err))
}

// RespondDomainError отправляет ошибку use case со статусом по ее виду
// Внутренние ошибки отдаются без подробностей
func RespondDomainError(w http.ResponseWriter, err error, message string) {
	status := StatusForError(err)
	if status == http.StatusInternalServerError {
		RespondInternalError(w)
		return
	}
	RespondError(w, status, message)
}
