package reschedule_session

import "time"

// Request модель запроса на перенос тренировки
type Request struct {
	SessionID    int64     // ID тренировки
	RequesterID  *int64    // ID члена клуба, выполняющего перенос (опционально, для проверки владельца)
	Start        time.Time // Новое начало
	End          time.Time // Новый конец (не включительно)
	NewTrainerID *int64    // Новый тренер (опционально, по умолчанию текущий)
	NewRoomID    *int64    // Новый зал (опционально, по умолчанию текущий)
}

// Response модель ответа с перенесенной тренировкой
type Response struct {
	ID        int64
	MemberID  int64
	TrainerID int64
	RoomID    *int64
	Start     time.Time
	End       time.Time
	UpdatedAt time.Time
}
