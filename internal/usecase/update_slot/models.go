package update_slot

import (
	"time"

	scheduleModels "github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request запрос на правку строки еженедельного шаблона
// PartySize == nil означает wildcard: правятся все размеры компании
// на этом (дне, времени) разом
type Request struct {
	UserID    int64
	VenueID   int64
	DayOfWeek time.Weekday
	StartTime types.TimeString
	PartySize *int

	IsAvailable          bool
	PrimeTime            bool
	AvailableTables      int
	PricePerHead         int64
	MinimumSpendPerGuest int64
}

// Response результат правки: количество затронутых строк и свежая сетка
// дня, перечитанная после коммита
type Response struct {
	VenueID     int64                               `json:"venueId"`
	DayOfWeek   time.Weekday                        `json:"dayOfWeek"`
	RowsUpdated int64                               `json:"rowsUpdated"`
	Grid        *scheduleModels.WeekdayGridResponse `json:"grid"`
}
