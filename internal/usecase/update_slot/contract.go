package update_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	scheduleModels "github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// VenueRepository интерфейс репозитория заведений
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// TemplateRepository интерфейс репозитория шаблонов расписания
type TemplateRepository interface {
	DayBounds(ctx context.Context, venueID int64, day time.Weekday) (types.TimeString, types.TimeString, error)
	UpdateFieldsByKey(ctx context.Context, venueID int64, day time.Weekday, start types.TimeString, size domain.PartySize, fields domain.SlotFields) error
	UpdateFieldsByDayTime(ctx context.Context, venueID int64, day time.Weekday, start types.TimeString, fields domain.SlotFields) (int64, error)
}

// ScheduleReader интерфейс чтения сетки расписания для ресинка после правки
type ScheduleReader interface {
	GetWeekdayGrid(ctx context.Context, venueID int64, day time.Weekday) (*scheduleModels.WeekdayGridResponse, error)
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
