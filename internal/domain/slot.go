package domain

import (
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// EffectiveSlot is the result of merging a template with its optional
// date-specific override. Produced by the resolver and the editor grid,
// never persisted.
type EffectiveSlot struct {
	TemplateID int64
	StartTime  types.TimeString
	EndTime    types.TimeString
	PartySize  PartySize

	SlotFields

	HasOverride bool
}

// HasTables returns true if the slot has at least one table left.
func (s *EffectiveSlot) HasTables() bool {
	return s.AvailableTables > 0
}

// IsBookable returns true if the slot is available and has tables.
// AvailableTables is advisory: the booking pipeline performs its own
// atomic decrement.
func (s *EffectiveSlot) IsBookable() bool {
	return s.IsAvailable && s.HasTables()
}

// MergeEffective merges a template row with its optional override.
// When the override is present every field comes from the override,
// otherwise every field comes from the template. Fields are never mixed.
func MergeEffective(t *ScheduleTemplate, o *TimeSlotOverride) EffectiveSlot {
	slot := EffectiveSlot{
		TemplateID: t.ID,
		StartTime:  t.StartTime,
		EndTime:    t.EndTime,
		PartySize:  t.PartySize,
		SlotFields: t.SlotFields,
	}
	if o != nil {
		slot.SlotFields = o.SlotFields
		slot.HasOverride = true
	}
	return slot
}

// SlotTimes returns the half-hour slot start boundaries between open and
// close: open, open+30m, ... strictly before close.
func SlotTimes(open, close types.TimeString) []types.TimeString {
	slots := make([]types.TimeString, 0)
	current := open

	for current.IsBefore(close) {
		slots = append(slots, current)
		next, err := current.AddMinutes(SlotDurationMinutes)
		if err != nil || !next.IsAfter(current) {
			// дошли до границы суток
			break
		}
		current = next
	}

	return slots
}

// IsValidSlotStart returns true if t is one of the boundaries produced by
// SlotTimes(open, close): aligned to the half-hour grid and inside the range.
func IsValidSlotStart(open, close, t types.TimeString) bool {
	if t.IsBefore(open) || !t.IsBefore(close) {
		return false
	}
	return open.MinutesUntil(t)%SlotDurationMinutes == 0
}
