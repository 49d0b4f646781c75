package create_venue

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса на создание заведения с дефолтной матрицей расписания
type Request struct {
	UserID int64 // ID менеджера (для логирования)

	Name                string
	Timezone            string
	PartySizes          []domain.PartySize // каталог, без Special Request
	AllowSpecialRequest bool

	NonPrimeFeePerHead int64
	PrimeBasePrice     int64
	PrimeBaseCovers    domain.PartySize
	PrimeExtraGuestFee int64

	CutoffMinutes   int
	OpenTime        types.TimeString
	CloseTime       types.TimeString
	OpenDays        domain.OpenDays
	DefaultTables   int   // столов на слот в открытые дни
	DefaultPrice    int64 // price_per_head по умолчанию
	DefaultMinSpend int64 // minimum_spend_per_guest по умолчанию
}

// Response модель ответа с созданным заведением
type Response struct {
	VenueID          int64
	TemplateRowCount int // количество созданных строк шаблона
	CreatedAt        time.Time
}
