package resolve_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	overrideRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/override"
	templateRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/template"
	venueRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/venue"
)

// UseCase use case резолва эффективного состояния слота
// Read-only и идемпотентный: повторный вызов без записей между ними
// возвращает идентичный результат
type UseCase struct {
	venueRepo    VenueRepository
	templateRepo TemplateRepository
	overrideRepo OverrideRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueRepo VenueRepository,
	templateRepo TemplateRepository,
	overrideRepo OverrideRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueRepo:    venueRepo,
		templateRepo: templateRepo,
		overrideRepo: overrideRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute резолвит слот: шаблон + оверрайд + cutoff -> эффективное состояние
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveSlot: venue=%d, date=%s, time=%s, partySize=%d",
		req.VenueID, req.Date.Format(domain.DateFormat), req.StartTime, int(req.PartySize))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем заведение
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("ResolveSlot: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("ResolveSlot: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 3. Проверяем размер компании по каталогу заведения
	if err := validatePartySizeOffered(venue, req.PartySize); err != nil {
		uc.logger.Warn("ResolveSlot: %v", err)
		return nil, err
	}

	// 4. День недели запрошенной даты
	day := venue.Weekday(req.Date)

	// 5. Ищем строку шаблона по натуральному ключу
	// Отсутствие шаблона - не ошибка: слот никогда не был сконфигурирован
	template, err := uc.templateRepo.GetByKey(ctx, req.VenueID, day, req.StartTime, req.PartySize)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			uc.logger.Info("ResolveSlot: no template for venue=%d, day=%d, time=%s, size=%d - unavailable",
				req.VenueID, int(day), req.StartTime, int(req.PartySize))
			return uc.unavailableResponse(req), nil
		}
		uc.logger.Error("ResolveSlot: failed to get template: %v", err)
		return nil, fmt.Errorf("%w: failed to get template: %v", ErrInternal, err)
	}

	// 6. Ищем оверрайд на дату
	ov, err := uc.overrideRepo.GetByTemplateAndDate(ctx, template.ID, req.Date)
	if err != nil && !errors.Is(err, overrideRepo.ErrOverrideNotFound) {
		uc.logger.Error("ResolveSlot: failed to get override: %v", err)
		return nil, fmt.Errorf("%w: failed to get override: %v", ErrInternal, err)
	}

	// 7. Слияние: при наличии оверрайда каждое поле берется из него,
	// иначе каждое поле берется из шаблона
	slot := domain.MergeEffective(template, ov)

	// 8. Cutoff: same-day слоты ближе чем cutoff_minutes к началу
	// недоступны только в возвращаемом представлении, ничего не персистится
	loc, err := venue.Location()
	if err != nil {
		uc.logger.Error("ResolveSlot: venue id=%d has invalid timezone %q: %v", venue.ID, venue.Timezone, err)
		return nil, ErrInvalidTimezone
	}

	now := uc.timeProvider.Now()
	if slot.IsAvailable && !domain.CutoffPermits(loc, venue.CutoffMinutes, req.Date, req.StartTime, now) {
		uc.logger.Info("ResolveSlot: cutoff veto for venue=%d, date=%s, time=%s",
			req.VenueID, req.Date.Format(domain.DateFormat), req.StartTime)
		slot.IsAvailable = false
	}

	// 9. Считаем стоимость для доступного слота
	resp := &Response{
		VenueID:              req.VenueID,
		Date:                 req.Date,
		StartTime:            slot.StartTime,
		EndTime:              slot.EndTime,
		PartySize:            slot.PartySize,
		Available:            slot.IsAvailable,
		PrimeTime:            slot.PrimeTime,
		AvailableTables:      slot.AvailableTables,
		PricePerHead:         slot.PricePerHead,
		MinimumSpendPerGuest: slot.MinimumSpendPerGuest,
		HasOverride:          slot.HasOverride,
	}

	if slot.IsAvailable {
		fee, err := venue.QuoteFee(slot.PrimeTime, slot.PartySize)
		if err != nil {
			uc.logger.Error("ResolveSlot: failed to quote fee: %v", err)
			return nil, fmt.Errorf("%w: failed to quote fee: %v", ErrInternal, err)
		}
		resp.Fee = &fee
	}

	uc.logger.Info("ResolveSlot: venue=%d, date=%s, time=%s, size=%d -> available=%t, prime=%t, tables=%d, override=%t",
		req.VenueID, req.Date.Format(domain.DateFormat), req.StartTime, int(req.PartySize),
		resp.Available, resp.PrimeTime, resp.AvailableTables, resp.HasOverride)

	return resp, nil
}

// unavailableResponse представление несконфигурированного слота
// Никаких сфабрикованных дефолтов - только факт недоступности
func (uc *UseCase) unavailableResponse(req *Request) *Response {
	return &Response{
		VenueID:   req.VenueID,
		Date:      req.Date,
		StartTime: req.StartTime,
		PartySize: req.PartySize,
		Available: false,
	}
}
