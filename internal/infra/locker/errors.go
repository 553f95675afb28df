package locker

import "errors"

var (
	// ErrLockNotAcquired возвращается, когда ресурс удерживается другим запросом дольше времени ожидания
	ErrLockNotAcquired = errors.New("locker: resource is locked by another request")

	// ErrRedis возвращается при ошибках Redis
	ErrRedis = errors.New("locker: redis error")
)
