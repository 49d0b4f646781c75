package get_day_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetWeekdayGrid(ctx context.Context, venueID int64, day time.Weekday) (*models.WeekdayGridResponse, error)
	GetDayGrid(ctx context.Context, venueID int64, date time.Time) (*models.DayGridResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
