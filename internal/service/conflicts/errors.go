package conflicts

import "errors"

var (
	// ErrUnknownResource возвращается для неизвестного вида ресурса
	ErrUnknownResource = errors.New("conflicts: unknown resource kind")

	// ErrInternal возвращается при ошибках чтения бронирований
	ErrInternal = errors.New("conflicts: internal error")
)
