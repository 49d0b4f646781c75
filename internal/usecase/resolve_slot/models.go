package resolve_slot

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса на резолв слота
type Request struct {
	VenueID   int64            // ID заведения
	Date      time.Time        // Календарная дата бронирования
	StartTime types.TimeString // Время начала слота ("HH:MM", шаг 30 минут)
	PartySize domain.PartySize // Размер компании из каталога заведения
}

// Response эффективное состояние слота после слияния шаблона, оверрайда и cutoff
// Available=false с нулевыми остальными полями означает "слот не сконфигурирован"
type Response struct {
	VenueID   int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	PartySize domain.PartySize

	Available            bool
	PrimeTime            bool
	AvailableTables      int // advisory: пайплайн бронирования делает собственный атомарный декремент
	PricePerHead         int64
	MinimumSpendPerGuest int64
	HasOverride          bool

	// Fee стоимость бронирования в минорных единицах валюты
	// nil, когда слот недоступен
	Fee *int64
}
