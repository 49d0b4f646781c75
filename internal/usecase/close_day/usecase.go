package close_day

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	venueRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/venue"
)

// UseCase use case закрытия дня: на каждую строку шаблона дня недели
// записывается датный оверрайд is_available=false
// Вся операция выполняется в одной сериализуемой транзакции -
// частично закрытый день невозможен
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

// Execute выполняет use case закрытия дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CloseDay: venue=%d, date=%s, by user=%d",
		req.VenueID, req.Date.Format(domain.DateFormat), req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CloseDay: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем заведение
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("CloseDay: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CloseDay: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	day := venue.Weekday(req.Date)

	var result *Response

	// 3. Все записи дня - одна атомарная операция
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Строки шаблона дня (блокируются FOR UPDATE внутри транзакции)
		templates, err := uc.templateRepo.ListByDay(txCtx, req.VenueID, day)
		if err != nil {
			uc.logger.Error("CloseDay: failed to list templates for venue=%d, day=%d: %v",
				req.VenueID, int(day), err)
			return fmt.Errorf("%w: failed to list templates: %v", ErrInternal, err)
		}
		if len(templates) == 0 {
			uc.logger.Warn("CloseDay: venue=%d has no template rows for day=%d", req.VenueID, int(day))
			return ErrDayNotConfigured
		}

		// 3.2. Полный payload оверрайда на каждую строку: закрыто, не prime,
		// столов нет; цены переносятся из шаблона - оверрайд всегда пишется целиком
		overrides := make([]*domain.TimeSlotOverride, 0, len(templates))
		for _, t := range templates {
			overrides = append(overrides, &domain.TimeSlotOverride{
				ScheduleTemplateID: t.ID,
				BookingDate:        req.Date,
				SlotFields: domain.SlotFields{
					IsAvailable:          false,
					PrimeTime:            false,
					AvailableTables:      0,
					PricePerHead:         t.PricePerHead,
					MinimumSpendPerGuest: t.MinimumSpendPerGuest,
				},
			})
		}

		// 3.3. Upsert чанками внутри транзакции
		if err := uc.overrideRepo.BulkUpsert(txCtx, overrides); err != nil {
			uc.logger.Error("CloseDay: failed to upsert overrides for venue=%d, date=%s: %v",
				req.VenueID, req.Date.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: failed to upsert overrides: %v", ErrInternal, err)
		}

		result = &Response{
			VenueID:          req.VenueID,
			Date:             req.Date,
			OverridesWritten: len(overrides),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CloseDay: venue=%d, date=%s closed, %d overrides written",
		req.VenueID, req.Date.Format(domain.DateFormat), result.OverridesWritten)

	return result, nil
}
