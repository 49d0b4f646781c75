package duplicate_schedule

import (
	"time"

	duplicateSchedule "github.com/m04kA/SMC-ScheduleService/internal/usecase/duplicate_schedule"
)

// DuplicateScheduleRequest HTTP request model
type DuplicateScheduleRequest struct {
	SourceDay  int   `json:"sourceDay"`
	TargetDays []int `json:"targetDays"`
}

// DuplicateScheduleResponse HTTP response model
type DuplicateScheduleResponse struct {
	VenueID     int64 `json:"venueId"`
	SourceDay   int   `json:"sourceDay"`
	AppliedDays []int `json:"appliedDays"`
	SkippedDays []int `json:"skippedDays"`
	RowsUpdated int64 `json:"rowsUpdated"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *DuplicateScheduleRequest) ToUseCaseRequest(userID, venueID int64) *duplicateSchedule.Request {
	targets := make([]time.Weekday, len(r.TargetDays))
	for i, d := range r.TargetDays {
		targets[i] = time.Weekday(d)
	}

	return &duplicateSchedule.Request{
		UserID:     userID,
		VenueID:    venueID,
		SourceDay:  time.Weekday(r.SourceDay),
		TargetDays: targets,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *duplicateSchedule.Response) *DuplicateScheduleResponse {
	return &DuplicateScheduleResponse{
		VenueID:     resp.VenueID,
		SourceDay:   int(resp.SourceDay),
		AppliedDays: weekdaysToInts(resp.AppliedDays),
		SkippedDays: weekdaysToInts(resp.SkippedDays),
		RowsUpdated: resp.RowsUpdated,
	}
}

func weekdaysToInts(days []time.Weekday) []int {
	result := make([]int, len(days))
	for i, d := range days {
		result[i] = int(d)
	}
	return result
}
