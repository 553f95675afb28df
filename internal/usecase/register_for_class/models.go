package register_for_class

import "time"

// Request модель запроса на запись на занятие
type Request struct {
	MemberID int64 // ID члена клуба
	ClassID  int64 // ID занятия
}

// Response модель ответа с созданной записью
type Response struct {
	ID             int64
	MemberID       int64
	ClassID        int64
	ClassStart     time.Time
	RemainingSpots int
	CreatedAt      time.Time
}
