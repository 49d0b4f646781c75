package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func TestSlotTimes(t *testing.T) {
	tests := []struct {
		name  string
		open  types.TimeString
		close types.TimeString
		want  []types.TimeString
	}{
		{
			name:  "two hour window",
			open:  "17:00",
			close: "19:00",
			want:  []types.TimeString{"17:00", "17:30", "18:00", "18:30"},
		},
		{
			name:  "close not included",
			open:  "11:00",
			close: "11:30",
			want:  []types.TimeString{"11:00"},
		},
		{
			name:  "until end of day",
			open:  "23:00",
			close: "23:59",
			want:  []types.TimeString{"23:00", "23:30"},
		},
		{
			name:  "open equals close",
			open:  "12:00",
			close: "12:00",
			want:  []types.TimeString{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlotTimes(tt.open, tt.close))
		})
	}
}

func TestIsValidSlotStart(t *testing.T) {
	open := types.TimeString("17:00")
	close := types.TimeString("22:00")

	assert.True(t, IsValidSlotStart(open, close, "17:00"))
	assert.True(t, IsValidSlotStart(open, close, "19:30"))
	assert.True(t, IsValidSlotStart(open, close, "21:30"))

	assert.False(t, IsValidSlotStart(open, close, "22:00"), "closing time is not a slot")
	assert.False(t, IsValidSlotStart(open, close, "16:30"), "before opening")
	assert.False(t, IsValidSlotStart(open, close, "19:15"), "off the half-hour grid")
}

func TestMergeEffective(t *testing.T) {
	template := &ScheduleTemplate{
		ID:        42,
		VenueID:   1,
		StartTime: "18:00",
		EndTime:   "18:30",
		PartySize: 4,
		SlotFields: SlotFields{
			IsAvailable:          true,
			PrimeTime:            false,
			AvailableTables:      10,
			PricePerHead:         1500,
			MinimumSpendPerGuest: 2000,
		},
	}

	t.Run("no override keeps template fields", func(t *testing.T) {
		slot := MergeEffective(template, nil)

		assert.Equal(t, int64(42), slot.TemplateID)
		assert.Equal(t, types.TimeString("18:00"), slot.StartTime)
		assert.Equal(t, PartySize(4), slot.PartySize)
		assert.Equal(t, template.SlotFields, slot.SlotFields)
		assert.False(t, slot.HasOverride)
	})

	t.Run("override replaces every field", func(t *testing.T) {
		ov := &TimeSlotOverride{
			ScheduleTemplateID: 42,
			SlotFields: SlotFields{
				IsAvailable:          true,
				PrimeTime:            true,
				AvailableTables:      3,
				PricePerHead:         2500,
				MinimumSpendPerGuest: 5000,
			},
		}

		slot := MergeEffective(template, ov)

		// Поля никогда не смешиваются: либо все из оверрайда, либо все из шаблона
		assert.Equal(t, ov.SlotFields, slot.SlotFields)
		assert.True(t, slot.HasOverride)
		assert.Equal(t, types.TimeString("18:00"), slot.StartTime)
	})

	t.Run("closing override wins over open template", func(t *testing.T) {
		ov := &TimeSlotOverride{
			ScheduleTemplateID: 42,
			SlotFields: SlotFields{
				IsAvailable:     false,
				AvailableTables: 0,
			},
		}

		slot := MergeEffective(template, ov)

		assert.False(t, slot.IsAvailable)
		assert.False(t, slot.IsBookable())
	})
}

func TestEffectiveSlot_IsBookable(t *testing.T) {
	slot := EffectiveSlot{SlotFields: SlotFields{IsAvailable: true, AvailableTables: 1}}
	assert.True(t, slot.IsBookable())

	slot.AvailableTables = 0
	assert.False(t, slot.IsBookable(), "sold out day is visible but not bookable")

	slot.AvailableTables = 5
	slot.IsAvailable = false
	assert.False(t, slot.IsBookable())
}
