package update_slot

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if req.DayOfWeek < time.Sunday || req.DayOfWeek > time.Saturday {
		return fmt.Errorf("%w: dayOfWeek must be in range 0-6", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if req.PartySize != nil {
		size := domain.PartySize(*req.PartySize)
		if !size.IsValid() || size.IsSpecialRequest() {
			return fmt.Errorf("%w: partySize must be between 1 and %d", ErrInvalidInput, domain.MaxPartySize)
		}
	}

	if req.AvailableTables < 0 || req.AvailableTables > domain.MaxAvailableTables {
		return fmt.Errorf("%w: availableTables must be between 0 and %d", ErrInvalidInput, domain.MaxAvailableTables)
	}

	if req.PricePerHead < 0 || req.PricePerHead > domain.MaxPriceMinorUnits {
		return fmt.Errorf("%w: pricePerHead must be between 0 and %d", ErrInvalidInput, domain.MaxPriceMinorUnits)
	}

	if req.MinimumSpendPerGuest < 0 || req.MinimumSpendPerGuest > domain.MaxPriceMinorUnits {
		return fmt.Errorf("%w: minimumSpendPerGuest must be between 0 and %d", ErrInvalidInput, domain.MaxPriceMinorUnits)
	}

	return nil
}
