package resolve_slot

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Special Request не резолвится через матрицу слотов - такие заявки
// обрабатываются менеджером вручную
func validateRequest(req *Request) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	if req.StartTime.Minute()%domain.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: startTime must be aligned to %d-minute grid", ErrInvalidInput, domain.SlotDurationMinutes)
	}

	if req.PartySize.IsSpecialRequest() {
		return fmt.Errorf("%w: special request party size cannot be resolved to a slot", ErrInvalidInput)
	}

	if !req.PartySize.IsValid() || req.PartySize < 0 {
		return fmt.Errorf("%w: invalid party size", ErrInvalidInput)
	}

	return nil
}

// validatePartySizeOffered проверяет, что размер компании есть в каталоге заведения
func validatePartySizeOffered(venue *domain.Venue, size domain.PartySize) error {
	if !venue.OffersPartySize(size) {
		return fmt.Errorf("%w: party size %d is not offered by venue %d", ErrInvalidInput, int(size), venue.ID)
	}
	return nil
}
