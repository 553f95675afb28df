package get_member_schedule

import (
	"context"

	"github.com/m04kA/SMC-GymService/internal/service/schedules/models"
)

type ScheduleService interface {
	MemberSchedule(ctx context.Context, memberID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
