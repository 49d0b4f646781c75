package venues

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// VenueRepository интерфейс репозитория заведений
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
