package duplicate_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/storage/template"
)

// VenueRepository интерфейс репозитория заведений
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// TemplateRepository интерфейс репозитория шаблонов расписания
type TemplateRepository interface {
	ListByDay(ctx context.Context, venueID int64, day time.Weekday) ([]*domain.ScheduleTemplate, error)
	BulkUpdateTables(ctx context.Context, updates []template.TablesUpdate) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
