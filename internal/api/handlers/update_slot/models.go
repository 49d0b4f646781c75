package update_slot

import (
	"time"

	updateSlot "github.com/m04kA/SMC-ScheduleService/internal/usecase/update_slot"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// UpdateSlotRequest HTTP request model
// PartySize == nil означает wildcard: правятся все размеры компании
// на этом (дне, времени) разом
type UpdateSlotRequest struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	PartySize *int   `json:"partySize,omitempty"`

	IsAvailable          bool  `json:"isAvailable"`
	PrimeTime            bool  `json:"primeTime"`
	AvailableTables      int   `json:"availableTables"`
	PricePerHead         int64 `json:"pricePerHead"`
	MinimumSpendPerGuest int64 `json:"minimumSpendPerGuest"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateSlotRequest) ToUseCaseRequest(userID, venueID int64) (*updateSlot.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &updateSlot.Request{
		UserID:               userID,
		VenueID:              venueID,
		DayOfWeek:            time.Weekday(r.DayOfWeek),
		StartTime:            startTime,
		PartySize:            r.PartySize,
		IsAvailable:          r.IsAvailable,
		PrimeTime:            r.PrimeTime,
		AvailableTables:      r.AvailableTables,
		PricePerHead:         r.PricePerHead,
		MinimumSpendPerGuest: r.MinimumSpendPerGuest,
	}, nil
}
