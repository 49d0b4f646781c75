package duplicate_schedule

import "time"

// Request запрос на копирование матрицы столов одного дня недели на другие дни
type Request struct {
	UserID     int64
	VenueID    int64
	SourceDay  time.Weekday
	TargetDays []time.Weekday
}

// Response результат копирования расписания
type Response struct {
	VenueID     int64          `json:"venue_id"`
	SourceDay   time.Weekday   `json:"source_day"`
	AppliedDays []time.Weekday `json:"applied_days"`
	SkippedDays []time.Weekday `json:"skipped_days"`
	RowsUpdated int64          `json:"rows_updated"`
}
