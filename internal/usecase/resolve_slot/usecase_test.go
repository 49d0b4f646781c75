package resolve_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	overrideRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/override"
	templateRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/template"
	venueRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
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
	template *domain.ScheduleTemplate
	err      error
}

func (f *fakeTemplateRepo) GetByKey(ctx context.Context, venueID int64, day time.Weekday, start types.TimeString, size domain.PartySize) (*domain.ScheduleTemplate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.template, nil
}

type fakeOverrideRepo struct {
	override *domain.TimeSlotOverride
	err      error
}

func (f *fakeOverrideRepo) GetByTemplateAndDate(ctx context.Context, templateID int64, date time.Time) (*domain.TimeSlotOverride, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.override, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testVenue() *domain.Venue {
	return &domain.Venue{
		ID:                 1,
		Name:               "Test Brasserie",
		Timezone:           "America/New_York",
		PartySizes:         []domain.PartySize{2, 4, 8},
		NonPrimeFeePerHead: 1500,
		PrimeBasePrice:     30000,
		PrimeBaseCovers:    5,
		PrimeExtraGuestFee: 6000,
		CutoffMinutes:      60,
		OpenTime:           "17:00",
		CloseTime:          "22:00",
	}
}

func testTemplate() *domain.ScheduleTemplate {
	return &domain.ScheduleTemplate{
		ID:        7,
		VenueID:   1,
		DayOfWeek: time.Tuesday,
		StartTime: "18:00",
		EndTime:   "18:30",
		PartySize: 4,
		SlotFields: domain.SlotFields{
			IsAvailable:          true,
			PrimeTime:            false,
			AvailableTables:      5,
			PricePerHead:         1500,
			MinimumSpendPerGuest: 2000,
		},
	}
}

func newTestUseCase(venues *fakeVenueRepo, templates *fakeTemplateRepo, overrides *fakeOverrideRepo, now time.Time) *UseCase {
	uc := NewUseCase(venues, templates, overrides, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

// 2025-06-10 - вторник
var bookingDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

// за день до bookingDate, cutoff не влияет
var dayBefore = time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)

func TestExecute_TemplateOnly(t *testing.T) {
	uc := newTestUseCase(
		&fakeVenueRepo{venue: testVenue()},
		&fakeTemplateRepo{template: testTemplate()},
		&fakeOverrideRepo{err: overrideRepo.ErrOverrideNotFound},
		dayBefore,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID:   1,
		Date:      bookingDate,
		StartTime: "18:00",
		PartySize: 4,
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.False(t, resp.PrimeTime)
	assert.Equal(t, 5, resp.AvailableTables)
	assert.Equal(t, int64(1500), resp.PricePerHead)
	assert.False(t, resp.HasOverride)
	require.NotNil(t, resp.Fee)
	assert.Equal(t, int64(6000), *resp.Fee)
}

func TestExecute_Idempotent(t *testing.T) {
	uc := newTestUseCase(
		&fakeVenueRepo{venue: testVenue()},
		&fakeTemplateRepo{template: testTemplate()},
		&fakeOverrideRepo{err: overrideRepo.ErrOverrideNotFound},
		dayBefore,
	)

	req := &Request{VenueID: 1, Date: bookingDate, StartTime: "18:00", PartySize: 4}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_OverrideWins(t *testing.T) {
	ov := &domain.TimeSlotOverride{
		ID:                 100,
		ScheduleTemplateID: 7,
		BookingDate:        bookingDate,
		SlotFields: domain.SlotFields{
			IsAvailable:          true,
			PrimeTime:            true,
			AvailableTables:      2,
			PricePerHead:         2500,
			MinimumSpendPerGuest: 5000,
		},
	}

	uc := newTestUseCase(
		&fakeVenueRepo{venue: testVenue()},
		&fakeTemplateRepo{template: testTemplate()},
		&fakeOverrideRepo{override: ov},
		dayBefore,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID:   1,
		Date:      bookingDate,
		StartTime: "18:00",
		PartySize: 4,
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.True(t, resp.PrimeTime)
	assert.Equal(t, 2, resp.AvailableTables)
	assert.Equal(t, int64(2500), resp.PricePerHead)
	assert.True(t, resp.HasOverride)

	// prime-цена: база покрывает 5 гостей, компания из 4 платит базу
	require.NotNil(t, resp.Fee)
	assert.Equal(t, int64(30000), *resp.Fee)
}

func TestExecute_NoTemplateIsUnavailableNotError(t *testing.T) {
	uc := newTestUseCase(
		&fakeVenueRepo{venue: testVenue()},
		&fakeTemplateRepo{err: templateRepo.ErrTemplateNotFound},
		&fakeOverrideRepo{},
		dayBefore,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID:   1,
		Date:      bookingDate,
		StartTime: "18:00",
		PartySize: 4,
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Nil(t, resp.Fee)
	assert.Equal(t, 0, resp.AvailableTables)
}

func TestExecute_CutoffVeto(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 17:30 в день бронирования: слот 18:00 внутри часового cutoff
	sameDay := time.Date(2025, 6, 10, 17, 30, 0, 0, loc)

	uc := newTestUseCase(
		&fakeVenueRepo{venue: testVenue()},
		&fakeTemplateRepo{template: testTemplate()},
		&fakeOverrideRepo{err: overrideRepo.ErrOverrideNotFound},
		sameDay,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID:   1,
		Date:      bookingDate,
		StartTime: "18:00",
		PartySize: 4,
	})

	require.NoError(t, err)
	assert.False(t, resp.Available, "slot inside cutoff window must be downgraded")
	assert.Nil(t, resp.Fee)
	// остальные поля слота сохраняются для отображения
	assert.Equal(t, 5, resp.AvailableTables)
	assert.Equal(t, int64(1500), resp.PricePerHead)
}

func TestExecute_CutoffDoesNotAffectLaterSlot(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	sameDay := time.Date(2025, 6, 10, 17, 30, 0, 0, loc)

	tpl := testTemplate()
	tpl.StartTime = "19:00"
	tpl.EndTime = "19:30"

	uc := newTestUseCase(
		&fakeVenueRepo{venue: testVenue()},
		&fakeTemplateRepo{template: tpl},
		&fakeOverrideRepo{err: overrideRepo.ErrOverrideNotFound},
		sameDay,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID:   1,
		Date:      bookingDate,
		StartTime: "19:00",
		PartySize: 4,
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	require.NotNil(t, resp.Fee)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(
		&fakeVenueRepo{venue: testVenue()},
		&fakeTemplateRepo{template: testTemplate()},
		&fakeOverrideRepo{},
		dayBefore,
	)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "special request party size", req: &Request{VenueID: 1, Date: bookingDate, StartTime: "18:00", PartySize: 0}},
		{name: "off-grid start time", req: &Request{VenueID: 1, Date: bookingDate, StartTime: "18:15", PartySize: 4}},
		{name: "missing date", req: &Request{VenueID: 1, StartTime: "18:00", PartySize: 4}},
		{name: "bad venue id", req: &Request{VenueID: 0, Date: bookingDate, StartTime: "18:00", PartySize: 4}},
		{name: "size not in catalog", req: &Request{VenueID: 1, Date: bookingDate, StartTime: "18:00", PartySize: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_VenueNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeVenueRepo{err: venueRepo.ErrVenueNotFound},
		&fakeTemplateRepo{},
		&fakeOverrideRepo{},
		dayBefore,
	)

	_, err := uc.Execute(context.Background(), &Request{
		VenueID:   99,
		Date:      bookingDate,
		StartTime: "18:00",
		PartySize: 4,
	})

	assert.ErrorIs(t, err, ErrVenueNotFound)
}
