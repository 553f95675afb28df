package reschedule_class

import "time"

// Request модель запроса на перенос или изменение занятия
// Неуказанные поля сохраняют текущие значения
type Request struct {
	ClassID      int64      // ID занятия
	Start        *time.Time // Новое начало
	End          *time.Time // Новый конец (не включительно)
	NewTrainerID *int64     // Новый тренер
	NewRoomID    *int64     // Новый зал
	NewCapacity  *int       // Новая вместимость
}

// Response модель ответа с обновленным занятием
type Response struct {
	ID            int64
	Name          string
	TrainerID     int64
	RoomID        int64
	Start         time.Time
	End           time.Time
	Capacity      int
	Registrations int
	UpdatedAt     time.Time
}
