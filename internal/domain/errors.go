package domain

import "errors"

// Виды ошибок движка бронирований
// Ошибки use case оборачивают один из них, адаптеры различают их через errors.Is
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotAvailable      = errors.New("not available")
	ErrResourceConflict  = errors.New("conflict")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrAlreadyStarted    = errors.New("already started")
	ErrOwnership         = errors.New("does not belong to member")
)

// ErrorKind вид ошибки для метрик и адаптеров
type ErrorKind string

const (
	KindNotFound          ErrorKind = "not_found"
	KindInvalidInput      ErrorKind = "invalid_input"
	KindNotAvailable      ErrorKind = "not_available"
	KindResourceConflict  ErrorKind = "resource_conflict"
	KindCapacityExceeded  ErrorKind = "capacity_exceeded"
	KindAlreadyRegistered ErrorKind = "already_registered"
	KindAlreadyStarted    ErrorKind = "already_started"
	KindOwnership         ErrorKind = "ownership"
	KindInternal          ErrorKind = "internal"
)

var kinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrNotFound, KindNotFound},
	{ErrInvalidInput, KindInvalidInput},
	{ErrNotAvailable, KindNotAvailable},
	{ErrResourceConflict, KindResourceConflict},
	{ErrCapacityExceeded, KindCapacityExceeded},
	{ErrAlreadyRegistered, KindAlreadyRegistered},
	{ErrAlreadyStarted, KindAlreadyStarted},
	{ErrOwnership, KindOwnership},
}

// KindOf возвращает вид ошибки; для nil возвращает пустую строку,
// для ошибок вне таксономии - KindInternal
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}
