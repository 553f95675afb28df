package cancel_session

// Request модель запроса на отмену тренировки
type Request struct {
	SessionID   int64  // ID тренировки
	RequesterID *int64 // ID члена клуба, выполняющего отмену (опционально, для проверки владельца)
}
