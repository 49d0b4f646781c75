package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// VenueRepository интерфейс репозитория заведений
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// TemplateRepository интерфейс репозитория шаблонов расписания
type TemplateRepository interface {
	ListByDay(ctx context.Context, venueID int64, day time.Weekday) ([]*domain.ScheduleTemplate, error)
}

// OverrideRepository интерфейс репозитория оверрайдов
type OverrideRepository interface {
	ListByTemplatesAndDate(ctx context.Context, templateIDs []int64, date time.Time) ([]*domain.TimeSlotOverride, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
