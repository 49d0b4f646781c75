package create_venue

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Все ошибки валидации возвращаются до какой-либо записи в БД
func validateRequest(req *Request) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if _, err := time.LoadLocation(req.Timezone); err != nil {
		return fmt.Errorf("%w: invalid timezone %q", ErrInvalidInput, req.Timezone)
	}

	if len(req.PartySizes) == 0 {
		return fmt.Errorf("%w: at least one party size is required", ErrInvalidInput)
	}
	seen := make(map[domain.PartySize]bool, len(req.PartySizes))
	for _, size := range req.PartySizes {
		if size.IsSpecialRequest() {
			return fmt.Errorf("%w: special request must not be listed in the party size catalog", ErrInvalidInput)
		}
		if size < 0 || !size.IsValid() {
			return fmt.Errorf("%w: invalid party size %d", ErrInvalidInput, int(size))
		}
		if seen[size] {
			return fmt.Errorf("%w: duplicate party size %d", ErrInvalidInput, int(size))
		}
		seen[size] = true
	}

	if err := req.OpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: openTime: %v", ErrInvalidInput, err)
	}
	if err := req.CloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: closeTime: %v", ErrInvalidInput, err)
	}
	if !req.OpenTime.IsBefore(req.CloseTime) {
		return fmt.Errorf("%w: openTime must be before closeTime", ErrInvalidInput)
	}
	if req.OpenTime.Minute()%domain.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: openTime must be aligned to %d-minute grid", ErrInvalidInput, domain.SlotDurationMinutes)
	}

	if req.CutoffMinutes < domain.MinCutoffMinutes || req.CutoffMinutes > domain.MaxCutoffMinutes {
		return fmt.Errorf("%w: cutoffMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinCutoffMinutes, domain.MaxCutoffMinutes)
	}

	if req.DefaultTables < 0 || req.DefaultTables > domain.MaxAvailableTables {
		return fmt.Errorf("%w: defaultTables must be between 0 and %d", ErrInvalidInput, domain.MaxAvailableTables)
	}

	if req.NonPrimeFeePerHead < 0 || req.PrimeBasePrice < 0 || req.PrimeExtraGuestFee < 0 ||
		req.DefaultPrice < 0 || req.DefaultMinSpend < 0 {
		return fmt.Errorf("%w: fees must be non-negative", ErrInvalidInput)
	}
	if req.PrimeBaseCovers < 0 {
		return fmt.Errorf("%w: primeBaseCovers must be non-negative", ErrInvalidInput)
	}

	return nil
}
