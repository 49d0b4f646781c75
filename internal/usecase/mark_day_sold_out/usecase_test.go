package mark_day_sold_out

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
	upserted []*domain.TimeSlotOverride
	err      error
}

func (f *fakeOverrideRepo) BulkUpsert(ctx context.Context, overrides []*domain.TimeSlotOverride) error {
	if f.err != nil {
		return f.err
	}
	f.upserted = append(f.upserted, overrides...)
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var soldOutDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

func TestExecute_ZeroesTablesKeepsVisibility(t *testing.T) {
	templates := []*domain.ScheduleTemplate{
		{
			ID: 30, VenueID: 1, DayOfWeek: time.Tuesday, StartTime: "18:00", PartySize: 2,
			SlotFields: domain.SlotFields{IsAvailable: true, AvailableTables: 6, PricePerHead: 1500, MinimumSpendPerGuest: 2000},
		},
		{
			ID: 31, VenueID: 1, DayOfWeek: time.Tuesday, StartTime: "18:00", PartySize: 4,
			SlotFields: domain.SlotFields{IsAvailable: true, PrimeTime: true, AvailableTables: 3, PricePerHead: 2500, MinimumSpendPerGuest: 4000},
		},
		{
			ID: 32, VenueID: 1, DayOfWeek: time.Tuesday, StartTime: "18:30", PartySize: 2,
			SlotFields: domain.SlotFields{IsAvailable: false, AvailableTables: 0},
		},
	}

	overrides := &fakeOverrideRepo{}
	uc := NewUseCase(
		&fakeVenueRepo{venue: &domain.Venue{ID: 1, Timezone: "UTC"}},
		&fakeTemplateRepo{templates: templates},
		overrides,
		passthroughTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 5, VenueID: 1, Date: soldOutDate})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.OverridesWritten)
	assert.Equal(t, 1, resp.SkippedClosed)
	require.Len(t, overrides.upserted, 2)

	for _, ov := range overrides.upserted {
		// Слоты остаются видимыми, но столов нет
		assert.True(t, ov.IsAvailable)
		assert.Equal(t, 0, ov.AvailableTables)
		assert.Equal(t, soldOutDate, ov.BookingDate)
	}

	// Прайм-флаг и цены переносятся из шаблона как есть
	assert.False(t, overrides.upserted[0].PrimeTime)
	assert.Equal(t, int64(1500), overrides.upserted[0].PricePerHead)
	assert.True(t, overrides.upserted[1].PrimeTime)
	assert.Equal(t, int64(2500), overrides.upserted[1].PricePerHead)
	assert.Equal(t, int64(4000), overrides.upserted[1].MinimumSpendPerGuest)
}

func TestExecute_DayNotConfigured(t *testing.T) {
	uc := NewUseCase(
		&fakeVenueRepo{venue: &domain.Venue{ID: 1, Timezone: "UTC"}},
		&fakeTemplateRepo{},
		&fakeOverrideRepo{},
		passthroughTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{UserID: 5, VenueID: 1, Date: soldOutDate})
	assert.ErrorIs(t, err, ErrDayNotConfigured)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(
		&fakeVenueRepo{venue: &domain.Venue{ID: 1, Timezone: "UTC"}},
		&fakeTemplateRepo{},
		&fakeOverrideRepo{},
		passthroughTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{UserID: 5, VenueID: 0, Date: soldOutDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 5, VenueID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
