package book_session

import "time"

// Request модель запроса на бронирование персональной тренировки
type Request struct {
	MemberID  int64     // ID члена клуба
	TrainerID int64     // ID тренера
	RoomID    int64     // ID зала
	Start     time.Time // Начало тренировки
	End       time.Time // Конец тренировки (не включительно)
}

// Response модель ответа с созданной тренировкой
type Response struct {
	ID        int64
	MemberID  int64
	TrainerID int64
	RoomID    int64
	Start     time.Time
	End       time.Time
	CreatedAt time.Time
}
