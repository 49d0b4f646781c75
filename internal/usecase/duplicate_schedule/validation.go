package duplicate_schedule

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if req.SourceDay < time.Sunday || req.SourceDay > time.Saturday {
		return fmt.Errorf("%w: sourceDay must be in range 0-6", ErrInvalidInput)
	}

	if len(req.TargetDays) == 0 {
		return fmt.Errorf("%w: targetDays must not be empty", ErrInvalidInput)
	}

	for _, day := range req.TargetDays {
		if day < time.Sunday || day > time.Saturday {
			return fmt.Errorf("%w: targetDays must be in range 0-6", ErrInvalidInput)
		}
	}

	return nil
}

// normalizeTargets убирает дубли и сам исходный день из списка целей,
// сохраняя порядок первого вхождения
func normalizeTargets(source time.Weekday, targets []time.Weekday) []time.Weekday {
	seen := make(map[time.Weekday]bool, len(targets))
	result := make([]time.Weekday, 0, len(targets))

	for _, day := range targets {
		if day == source || seen[day] {
			continue
		}
		seen[day] = true
		result = append(result, day)
	}

	return result
}
