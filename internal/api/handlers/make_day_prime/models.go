package make_day_prime

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	makeDayPrime "github.com/m04kA/SMC-ScheduleService/internal/usecase/make_day_prime"
)

// MakeDayPrimeResponse HTTP response model
type MakeDayPrimeResponse struct {
	VenueID          int64  `json:"venueId"`
	Date             string `json:"date"`
	OverridesWritten int    `json:"overridesWritten"`
	SkippedClosed    int    `json:"skippedClosed"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *makeDayPrime.Response) *MakeDayPrimeResponse {
	return &MakeDayPrimeResponse{
		VenueID:          resp.VenueID,
		Date:             resp.Date.Format(domain.DateFormat),
		OverridesWritten: resp.OverridesWritten,
		SkippedClosed:    resp.SkippedClosed,
	}
}
