package resolve_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// VenueRepository интерфейс репозитория заведений
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// TemplateRepository интерфейс репозитория шаблонов расписания
type TemplateRepository interface {
	GetByKey(ctx context.Context, venueID int64, day time.Weekday, start types.TimeString, size domain.PartySize) (*domain.ScheduleTemplate, error)
}

// OverrideRepository интерфейс репозитория оверрайдов
type OverrideRepository interface {
	GetByTemplateAndDate(ctx context.Context, templateID int64, date time.Time) (*domain.TimeSlotOverride, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
