package close_day

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	venueRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/venue"
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

	listedDay time.Weekday
}

func (f *fakeTemplateRepo) ListByDay(ctx context.Context, venueID int64, day time.Weekday) ([]*domain.ScheduleTemplate, error) {
	f.listedDay = day
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

// passthroughTxManager выполняет функцию без настоящей транзакции
type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testVenue() *domain.Venue {
	return &domain.Venue{
		ID:       1,
		Name:     "Test Brasserie",
		Timezone: "America/New_York",
	}
}

func dayTemplates() []*domain.ScheduleTemplate {
	return []*domain.ScheduleTemplate{
		{
			ID: 10, VenueID: 1, DayOfWeek: time.Tuesday, StartTime: "18:00", EndTime: "18:30", PartySize: 2,
			SlotFields: domain.SlotFields{IsAvailable: true, AvailableTables: 5, PricePerHead: 1500, MinimumSpendPerGuest: 2000},
		},
		{
			ID: 11, VenueID: 1, DayOfWeek: time.Tuesday, StartTime: "18:00", EndTime: "18:30", PartySize: 4,
			SlotFields: domain.SlotFields{IsAvailable: true, PrimeTime: true, AvailableTables: 3, PricePerHead: 2500, MinimumSpendPerGuest: 4000},
		},
		{
			ID: 12, VenueID: 1, DayOfWeek: time.Tuesday, StartTime: "18:30", EndTime: "19:00", PartySize: 2,
			SlotFields: domain.SlotFields{IsAvailable: false, AvailableTables: 0, PricePerHead: 1500, MinimumSpendPerGuest: 2000},
		},
	}
}

// 2025-06-10 - вторник
var closeDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

func TestExecute_ClosesEveryRow(t *testing.T) {
	overrides := &fakeOverrideRepo{}
	txMgr := &passthroughTxManager{}
	templates := &fakeTemplateRepo{templates: dayTemplates()}

	uc := NewUseCase(&fakeVenueRepo{venue: testVenue()}, templates, overrides, txMgr, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 5, VenueID: 1, Date: closeDate})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.OverridesWritten)
	assert.Equal(t, 1, txMgr.calls)
	assert.Equal(t, time.Tuesday, templates.listedDay)

	// Каждая строка шаблона получает полный закрывающий оверрайд,
	// включая уже недоступные по шаблону
	require.Len(t, overrides.upserted, 3)
	for _, ov := range overrides.upserted {
		assert.False(t, ov.IsAvailable)
		assert.False(t, ov.PrimeTime)
		assert.Equal(t, 0, ov.AvailableTables)
		assert.Equal(t, closeDate, ov.BookingDate)
	}

	// Цены переносятся из соответствующей строки шаблона
	assert.Equal(t, int64(2500), overrides.upserted[1].PricePerHead)
	assert.Equal(t, int64(4000), overrides.upserted[1].MinimumSpendPerGuest)
}

func TestExecute_DayNotConfigured(t *testing.T) {
	uc := NewUseCase(
		&fakeVenueRepo{venue: testVenue()},
		&fakeTemplateRepo{templates: nil},
		&fakeOverrideRepo{},
		&passthroughTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{UserID: 5, VenueID: 1, Date: closeDate})
	assert.ErrorIs(t, err, ErrDayNotConfigured)
}

func TestExecute_VenueNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeVenueRepo{err: venueRepo.ErrVenueNotFound},
		&fakeTemplateRepo{},
		&fakeOverrideRepo{},
		&passthroughTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{UserID: 5, VenueID: 99, Date: closeDate})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeVenueRepo{venue: testVenue()}, &fakeTemplateRepo{}, &fakeOverrideRepo{}, &passthroughTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 5, VenueID: 0, Date: closeDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 5, VenueID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
