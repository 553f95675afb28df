package domain

import "time"

// Session персональная тренировка
type Session struct {
	ID        int64
	MemberID  int64
	TrainerID int64
	RoomID    *int64 // может отсутствовать у старых записей, при бронировании обязателен
	Interval  TimeInterval
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasStarted true, если начало уже наступило (start <= now)
func (s *Session) HasStarted(now time.Time) bool {
	return !now.Before(s.Interval.Start)
}

// FitnessClass групповое занятие
type FitnessClass struct {
	ID        int64
	Name      string
	TrainerID int64
	RoomID    int64
	Interval  TimeInterval
	Capacity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasStarted true, если начало уже наступило (start <= now)
func (c *FitnessClass) HasStarted(now time.Time) bool {
	return !now.Before(c.Interval.Start)
}

// RemainingSpots свободные места при заданном числе записей
func (c *FitnessClass) RemainingSpots(registrations int) int {
	if registrations >= c.Capacity {
		return 0
	}
	return c.Capacity - registrations
}

// ClassOverview занятие для выбора перед записью: имена тренера и зала,
// число записей и признак записи запрашивающего члена клуба
type ClassOverview struct {
	Class         *FitnessClass
	TrainerName   string
	RoomName      string
	Registrations int
	IsRegistered  bool
}

// ClassRegistration запись члена клуба на групповое занятие
type ClassRegistration struct {
	ID             int64
	MemberID       int64
	FitnessClassID int64
	ClassStart     time.Time // начало занятия, заполняется репозиторием
	CreatedAt      time.Time
}

// BookingKind вид бронирования
type BookingKind string

const (
	BookingSession BookingKind = "session"
	BookingClass   BookingKind = "class"
)

// Booking бронирование ресурса на интервал: сессия или занятие
type Booking struct {
	Kind     BookingKind
	ID       int64
	Interval TimeInterval
}

// SessionBooking представляет сессию как бронирование
func SessionBooking(s *Session) Booking {
	return Booking{Kind: BookingSession, ID: s.ID, Interval: s.Interval}
}

// ClassBooking представляет занятие как бронирование
func ClassBooking(c *FitnessClass) Booking {
	return Booking{Kind: BookingClass, ID: c.ID, Interval: c.Interval}
}

// Ignore бронирования, исключаемые из проверки конфликтов (перенос на месте)
type Ignore struct {
	SessionID *int64
	ClassID   *int64
}

// IgnoreSession исключает сессию id
func IgnoreSession(id int64) Ignore { return Ignore{SessionID: &id} }

// IgnoreClass исключает занятие id
func IgnoreClass(id int64) Ignore { return Ignore{ClassID: &id} }

// Skips true, если бронирование должно быть пропущено
func (ig Ignore) Skips(b Booking) bool {
	switch b.Kind {
	case BookingSession:
		return ig.SessionID != nil && *ig.SessionID == b.ID
	case BookingClass:
		return ig.ClassID != nil && *ig.ClassID == b.ID
	}
	return false
}

// FirstConflict возвращает первое бронирование, пересекающееся с кандидатом
func FirstConflict(candidate TimeInterval, bookings []Booking, ignore Ignore) (Booking, bool) {
	for _, b := range bookings {
		if ignore.Skips(b) {
			continue
		}
		if Overlaps(candidate, b.Interval) {
			return b, true
		}
	}
	return Booking{}, false
}

// BookingFilter фильтр выборки бронирований
type BookingFilter struct {
	TrainerID  *int64        // по тренеру (опционально)
	RoomID     *int64        // по залу (опционально)
	MemberID   *int64        // по члену клуба (опционально)
	Window     *TimeInterval // только пересекающиеся с окном (опционально)
	StartsFrom *time.Time    // только начинающиеся не раньше (опционально)
}
