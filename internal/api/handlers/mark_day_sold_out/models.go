package mark_day_sold_out

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	markDaySoldOut "github.com/m04kA/SMC-ScheduleService/internal/usecase/mark_day_sold_out"
)

// MarkDaySoldOutResponse HTTP response model
type MarkDaySoldOutResponse struct {
	VenueID          int64  `json:"venueId"`
	Date             string `json:"date"`
	OverridesWritten int    `json:"overridesWritten"`
	SkippedClosed    int    `json:"skippedClosed"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *markDaySoldOut.Response) *MarkDaySoldOutResponse {
	return &MarkDaySoldOutResponse{
		VenueID:          resp.VenueID,
		Date:             resp.Date.Format(domain.DateFormat),
		OverridesWritten: resp.OverridesWritten,
		SkippedClosed:    resp.SkippedClosed,
	}
}
