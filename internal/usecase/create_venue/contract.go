package create_venue

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// VenueRepository интерфейс репозитория заведений
type VenueRepository interface {
	Create(ctx context.Context, v *domain.Venue) (*domain.Venue, error)
}

// TemplateRepository интерфейс репозитория шаблонов расписания
type TemplateRepository interface {
	BulkInsert(ctx context.Context, rows []*domain.ScheduleTemplate) error
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
