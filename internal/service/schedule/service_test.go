package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type fakeVenueRepo struct {
	venue *domain.Venue
	err   error
}

func (f *fakeVenueRepo) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.venue, nil
}

type fakeTemplateRepo struct {
	templates []*domain.ScheduleTemplate
	err       error
}

func (f *fakeTemplateRepo) ListByDay(ctx context.Context, venueID int64, day time.Weekday) ([]*domain.ScheduleTemplate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.templates, nil
}

type fakeOverrideRepo struct {
	overrides []*domain.TimeSlotOverride
	err       error
}

func (f *fakeOverrideRepo) ListByTemplatesAndDate(ctx context.Context, templateIDs []int64, date time.Time) ([]*domain.TimeSlotOverride, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.overrides, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var gridDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

func dayTemplates() []*domain.ScheduleTemplate {
	return []*domain.ScheduleTemplate{
		{
			ID: 10, VenueID: 1, DayOfWeek: time.Tuesday, StartTime: "18:00", EndTime: "18:30", PartySize: 2,
			SlotFields: domain.SlotFields{IsAvailable: true, AvailableTables: 6, PricePerHead: 1500, MinimumSpendPerGuest: 2000},
		},
		{
			ID: 11, VenueID: 1, DayOfWeek: time.Tuesday, StartTime: "18:00", EndTime: "18:30", PartySize: 4,
			SlotFields: domain.SlotFields{IsAvailable: true, AvailableTables: 3, PricePerHead: 1500, MinimumSpendPerGuest: 2000},
		},
	}
}

func TestGetWeekdayGrid_ReturnsRawTemplateRows(t *testing.T) {
	svc := NewService(
		&fakeVenueRepo{venue: &domain.Venue{ID: 1, Timezone: "UTC"}},
		&fakeTemplateRepo{templates: dayTemplates()},
		&fakeOverrideRepo{},
		nopLogger{},
	)

	grid, err := svc.GetWeekdayGrid(context.Background(), 1, time.Tuesday)

	require.NoError(t, err)
	assert.Equal(t, int64(1), grid.VenueID)
	assert.Equal(t, int(time.Tuesday), grid.DayOfWeek)
	require.Len(t, grid.Slots, 2)

	for _, slot := range grid.Slots {
		assert.False(t, slot.HasOverride)
	}
	assert.Equal(t, 6, grid.Slots[0].AvailableTables)
	assert.Equal(t, 3, grid.Slots[1].AvailableTables)
}

func TestGetWeekdayGrid_DayNotConfigured(t *testing.T) {
	svc := NewService(
		&fakeVenueRepo{venue: &domain.Venue{ID: 1, Timezone: "UTC"}},
		&fakeTemplateRepo{},
		&fakeOverrideRepo{},
		nopLogger{},
	)

	_, err := svc.GetWeekdayGrid(context.Background(), 1, time.Monday)
	assert.ErrorIs(t, err, ErrDayNotConfigured)
}

func TestGetDayGrid_AppliesOverrides(t *testing.T) {
	// Оверрайд закрывает только строку шаблона id=11
	overrides := []*domain.TimeSlotOverride{
		{
			ID: 100, ScheduleTemplateID: 11, BookingDate: gridDate,
			SlotFields: domain.SlotFields{IsAvailable: false, AvailableTables: 0, PricePerHead: 1500, MinimumSpendPerGuest: 2000},
		},
	}

	svc := NewService(
		&fakeVenueRepo{venue: &domain.Venue{ID: 1, Timezone: "UTC"}},
		&fakeTemplateRepo{templates: dayTemplates()},
		&fakeOverrideRepo{overrides: overrides},
		nopLogger{},
	)

	grid, err := svc.GetDayGrid(context.Background(), 1, gridDate)

	require.NoError(t, err)
	assert.Equal(t, gridDate.Format(domain.DateFormat), grid.Date)
	assert.Equal(t, int(time.Tuesday), grid.DayOfWeek)
	require.Len(t, grid.Slots, 2)

	assert.False(t, grid.Slots[0].HasOverride)
	assert.True(t, grid.Slots[0].IsAvailable)

	assert.True(t, grid.Slots[1].HasOverride)
	assert.False(t, grid.Slots[1].IsAvailable)
	assert.Zero(t, grid.Slots[1].AvailableTables)
}

func TestGetDayGrid_VenueNotFound(t *testing.T) {
	svc := NewService(
		&fakeVenueRepo{err: assert.AnError},
		&fakeTemplateRepo{},
		&fakeOverrideRepo{},
		nopLogger{},
	)

	_, err := svc.GetDayGrid(context.Background(), 99, gridDate)
	assert.ErrorIs(t, err, ErrInternal)
}
