package mark_day_sold_out

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	venueRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/venue"
)

// UseCase use case пометки дня как распроданного: строки, доступные
// по шаблону, получают датный оверрайд available_tables=0 при
// is_available=true - день виден, но бронировать нечего.
// Prime-статус и цены переносятся из шаблона без изменений
type UseCase struct {
	venueRepo    VenueRepository
	templateRepo TemplateRepository
	overrideRepo OverrideRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueRepo VenueRepository,
	templateRepo TemplateRepository,
	overrideRepo OverrideRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueRepo:    venueRepo,
		templateRepo: templateRepo,
		overrideRepo: overrideRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case пометки дня как распроданного
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MarkDaySoldOut: venue=%d, date=%s, by user=%d",
		req.VenueID, req.Date.Format(domain.DateFormat), req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("MarkDaySoldOut: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем заведение
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("MarkDaySoldOut: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("MarkDaySoldOut: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	day := venue.Weekday(req.Date)

	var result *Response

	// 3. Все записи дня - одна атомарная операция
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		templates, err := uc.templateRepo.ListByDay(txCtx, req.VenueID, day)
		if err != nil {
			uc.logger.Error("MarkDaySoldOut: failed to list templates for venue=%d, day=%d: %v",
				req.VenueID, int(day), err)
			return fmt.Errorf("%w: failed to list templates: %v", ErrInternal, err)
		}
		if len(templates) == 0 {
			uc.logger.Warn("MarkDaySoldOut: venue=%d has no template rows for day=%d", req.VenueID, int(day))
			return ErrDayNotConfigured
		}

		overrides := make([]*domain.TimeSlotOverride, 0, len(templates))
		skipped := 0
		for _, t := range templates {
			if !t.IsAvailable {
				skipped++
				continue
			}
			overrides = append(overrides, &domain.TimeSlotOverride{
				ScheduleTemplateID: t.ID,
				BookingDate:        req.Date,
				SlotFields: domain.SlotFields{
					IsAvailable:          true,
					PrimeTime:            t.PrimeTime,
					AvailableTables:      0,
					PricePerHead:         t.PricePerHead,
					MinimumSpendPerGuest: t.MinimumSpendPerGuest,
				},
			})
		}

		if len(overrides) > 0 {
			if err := uc.overrideRepo.BulkUpsert(txCtx, overrides); err != nil {
				uc.logger.Error("MarkDaySoldOut: failed to upsert overrides for venue=%d, date=%s: %v",
					req.VenueID, req.Date.Format(domain.DateFormat), err)
				return fmt.Errorf("%w: failed to upsert overrides: %v", ErrInternal, err)
			}
		}

		result = &Response{
			VenueID:          req.VenueID,
			Date:             req.Date,
			OverridesWritten: len(overrides),
			SkippedClosed:    skipped,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("MarkDaySoldOut: venue=%d, date=%s -> %d overrides written, %d closed rows skipped",
		req.VenueID, req.Date.Format(domain.DateFormat), result.OverridesWritten, result.SkippedClosed)

	return result, nil
}
