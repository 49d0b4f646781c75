package resolve_slot

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	resolveSlot "github.com/m04kA/SMC-ScheduleService/internal/usecase/resolve_slot"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// SlotResponse HTTP response model эффективного состояния слота
type SlotResponse struct {
	VenueID   int64  `json:"venueId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime,omitempty"`
	PartySize int    `json:"partySize"`

	Available            bool   `json:"available"`
	PrimeTime            bool   `json:"primeTime"`
	AvailableTables      int    `json:"availableTables"`
	PricePerHead         int64  `json:"pricePerHead"`
	MinimumSpendPerGuest int64  `json:"minimumSpendPerGuest"`
	HasOverride          bool   `json:"hasOverride"`
	Fee                  *int64 `json:"fee,omitempty"`
}

// ParseDate парсит дату из query параметра
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(domain.DateFormat, dateStr)
}

// ParseStartTime парсит время начала слота из query параметра
func ParseStartTime(timeStr string) (types.TimeString, error) {
	return types.NewTimeStringFromString(timeStr)
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveSlot.Response) *SlotResponse {
	return &SlotResponse{
		VenueID:              resp.VenueID,
		Date:                 resp.Date.Format(domain.DateFormat),
		StartTime:            string(resp.StartTime),
		EndTime:              string(resp.EndTime),
		PartySize:            int(resp.PartySize),
		Available:            resp.Available,
		PrimeTime:            resp.PrimeTime,
		AvailableTables:      resp.AvailableTables,
		PricePerHead:         resp.PricePerHead,
		MinimumSpendPerGuest: resp.MinimumSpendPerGuest,
		HasOverride:          resp.HasOverride,
		Fee:                  resp.Fee,
	}
}
