package create_class

import "time"

// Request модель запроса на создание группового занятия
type Request struct {
	Name      string    // Название занятия
	TrainerID int64     // ID тренера
	RoomID    int64     // ID зала
	Start     time.Time // Начало занятия
	End       time.Time // Конец занятия (не включительно)
	Capacity  int       // Максимальное число участников
}

// Response модель ответа с созданным занятием
type Response struct {
	ID        int64
	Name      string
	TrainerID int64
	RoomID    int64
	Start     time.Time
	End       time.Time
	Capacity  int
	CreatedAt time.Time
}
