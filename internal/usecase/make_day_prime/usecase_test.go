package make_day_prime

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

// 2025-06-14 - суббота
var primeDate = time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

func TestExecute_PromotesOnlyAvailableRows(t *testing.T) {
	templates := []*domain.ScheduleTemplate{
		{
			ID: 20, VenueID: 1, DayOfWeek: time.Saturday, StartTime: "18:00", PartySize: 2,
			SlotFields: domain.SlotFields{IsAvailable: true, AvailableTables: 6, PricePerHead: 1500, MinimumSpendPerGuest: 2000},
		},
		{
			ID: 21, VenueID: 1, DayOfWeek: time.Saturday, StartTime: "18:00", PartySize: 4,
			SlotFields: domain.SlotFields{IsAvailable: false, AvailableTables: 0, PricePerHead: 1500, MinimumSpendPerGuest: 2000},
		},
		{
			ID: 22, VenueID: 1, DayOfWeek: time.Saturday, StartTime: "18:30", PartySize: 2,
			SlotFields: domain.SlotFields{IsAvailable: true, PrimeTime: true, AvailableTables: 4, PricePerHead: 2500, MinimumSpendPerGuest: 3000},
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

	resp, err := uc.Execute(context.Background(), &Request{UserID: 5, VenueID: 1, Date: primeDate})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.OverridesWritten)
	assert.Equal(t, 1, resp.SkippedClosed)

	// Недоступная по шаблону строка остаётся без оверрайда
	require.Len(t, overrides.upserted, 2)
	assert.Equal(t, int64(20), overrides.upserted[0].ScheduleTemplateID)
	assert.Equal(t, int64(22), overrides.upserted[1].ScheduleTemplateID)

	for _, ov := range overrides.upserted {
		assert.True(t, ov.IsAvailable)
		assert.True(t, ov.PrimeTime)
		assert.Equal(t, primeDate, ov.BookingDate)
	}

	// Столы и цены переносятся из шаблона
	assert.Equal(t, 6, overrides.upserted[0].AvailableTables)
	assert.Equal(t, int64(1500), overrides.upserted[0].PricePerHead)
	assert.Equal(t, 4, overrides.upserted[1].AvailableTables)
	assert.Equal(t, int64(2500), overrides.upserted[1].PricePerHead)
}

func TestExecute_AllRowsClosed(t *testing.T) {
	templates := []*domain.ScheduleTemplate{
		{ID: 20, VenueID: 1, DayOfWeek: time.Saturday, StartTime: "18:00", PartySize: 2,
			SlotFields: domain.SlotFields{IsAvailable: false}},
	}

	overrides := &fakeOverrideRepo{}
	uc := NewUseCase(
		&fakeVenueRepo{venue: &domain.Venue{ID: 1, Timezone: "UTC"}},
		&fakeTemplateRepo{templates: templates},
		overrides,
		passthroughTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 5, VenueID: 1, Date: primeDate})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.OverridesWritten)
	assert.Equal(t, 1, resp.SkippedClosed)
	assert.Empty(t, overrides.upserted)
}

func TestExecute_DayNotConfigured(t *testing.T) {
	uc := NewUseCase(
		&fakeVenueRepo{venue: &domain.Venue{ID: 1, Timezone: "UTC"}},
		&fakeTemplateRepo{},
		&fakeOverrideRepo{},
		passthroughTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{UserID: 5, VenueID: 1, Date: primeDate})
	assert.ErrorIs(t, err, ErrDayNotConfigured)
}
