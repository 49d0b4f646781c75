package close_day

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	closeDay "github.com/m04kA/SMC-ScheduleService/internal/usecase/close_day"
)

// CloseDayResponse HTTP response model
type CloseDayResponse struct {
	VenueID          int64  `json:"venueId"`
	Date             string `json:"date"`
	OverridesWritten int    `json:"overridesWritten"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *closeDay.Response) *CloseDayResponse {
	return &CloseDayResponse{
		VenueID:          resp.VenueID,
		Date:             resp.Date.Format(domain.DateFormat),
		OverridesWritten: resp.OverridesWritten,
	}
}
