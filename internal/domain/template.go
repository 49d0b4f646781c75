package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// SlotFields are the mutable availability/pricing fields shared by templates,
// overrides and the resolved effective view. Overrides always carry a complete
// set of fields: a missing field is indistinguishable from an explicitly
// cleared one, so partial payloads are never written.
type SlotFields struct {
	IsAvailable          bool
	PrimeTime            bool
	AvailableTables      int
	PricePerHead         int64 // minor currency units
	MinimumSpendPerGuest int64 // minor currency units
}

// ScheduleTemplate is the recurring weekly rule for one
// (venue, weekday, start time, party size) cell of the schedule matrix.
// Templates are created in bulk at venue setup and are never deleted,
// only updated.
type ScheduleTemplate struct {
	ID        int64
	VenueID   int64
	DayOfWeek time.Weekday
	StartTime types.TimeString
	EndTime   types.TimeString
	PartySize PartySize

	SlotFields

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TimeSlotOverride is a date-specific exception layered on top of exactly one
// template row. Absence of a row means "inherit template". Rows are upserted
// by the natural key (schedule_template_id, booking_date), never duplicated.
type TimeSlotOverride struct {
	ID                 int64
	ScheduleTemplateID int64
	BookingDate        time.Time

	SlotFields

	CreatedAt time.Time
	UpdatedAt time.Time
}
