package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Slot grid policy: one-hour slots starting every hour from 06:00 to 20:00 local time
const (
	SlotFirstHour = 6
	SlotLastHour  = 20
	SlotDuration  = time.Hour
)

// Business validation constants
const (
	MinClassCapacity = 1
	MaxClassNameLen  = 200
)

// WeeklyAnchorDate дата, к которой привязаны значения времени суток еженедельной доступности
// Время суток хранится как UTC-значение на эту дату
var WeeklyAnchorDate = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
