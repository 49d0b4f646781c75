package update_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	templateRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/template"
	venueRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/venue"
)

// UseCase use case правки строки еженедельного шаблона
// Правка не трогает датные оверрайды: даты, размеченные вручную,
// сохраняют свои значения поверх обновленного шаблона
type UseCase struct {
	venueRepo      VenueRepository
	templateRepo   TemplateRepository
	scheduleReader ScheduleReader
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueRepo VenueRepository,
	templateRepo TemplateRepository,
	scheduleReader ScheduleReader,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueRepo:      venueRepo,
		templateRepo:   templateRepo,
		scheduleReader: scheduleReader,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case правки строки шаблона
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateSlot: venue=%d, day=%d, start=%s, size=%v, by user=%d",
		req.VenueID, int(req.DayOfWeek), req.StartTime, req.PartySize, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем заведение
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("UpdateSlot: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("UpdateSlot: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 3. Границы сетки берём из фактических доступных строк дня;
	// если доступных строк ещё нет, откатываемся на заявленные часы заведения
	open, close := venue.OpenTime, venue.CloseTime
	dayOpen, dayClose, err := uc.templateRepo.DayBounds(ctx, req.VenueID, req.DayOfWeek)
	switch {
	case err == nil:
		open, close = dayOpen, dayClose
	case errors.Is(err, templateRepo.ErrNoAvailableSlots):
		// нет ни одной доступной строки, остаёмся на часах заведения
	default:
		uc.logger.Error("UpdateSlot: failed to get day bounds for venue=%d, day=%d: %v",
			req.VenueID, int(req.DayOfWeek), err)
		return nil, fmt.Errorf("%w: failed to get day bounds: %v", ErrInternal, err)
	}

	if !domain.IsValidSlotStart(open, close, req.StartTime) {
		uc.logger.Warn("UpdateSlot: start=%s is outside the slot grid %s-%s",
			req.StartTime, open, close)
		return nil, fmt.Errorf("%w: startTime is not a valid slot boundary", ErrInvalidInput)
	}

	if req.PartySize != nil && !venue.OffersPartySize(domain.PartySize(*req.PartySize)) {
		uc.logger.Warn("UpdateSlot: venue=%d does not offer party size %d", req.VenueID, *req.PartySize)
		return nil, ErrPartySizeNotOffered
	}

	fields := domain.SlotFields{
		IsAvailable:          req.IsAvailable,
		PrimeTime:            req.PrimeTime,
		AvailableTables:      req.AvailableTables,
		PricePerHead:         req.PricePerHead,
		MinimumSpendPerGuest: req.MinimumSpendPerGuest,
	}

	var rowsUpdated int64

	// 4. Правка в транзакции: одна строка по ключу или wildcard по всем размерам
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if req.PartySize != nil {
			err := uc.templateRepo.UpdateFieldsByKey(txCtx, req.VenueID, req.DayOfWeek,
				req.StartTime, domain.PartySize(*req.PartySize), fields)
			if err != nil {
				if errors.Is(err, templateRepo.ErrTemplateNotFound) {
					return ErrSlotNotFound
				}
				uc.logger.Error("UpdateSlot: failed to update slot: %v", err)
				return fmt.Errorf("%w: failed to update slot: %v", ErrInternal, err)
			}
			rowsUpdated = 1
			return nil
		}

		updated, err := uc.templateRepo.UpdateFieldsByDayTime(txCtx, req.VenueID, req.DayOfWeek,
			req.StartTime, fields)
		if err != nil {
			if errors.Is(err, templateRepo.ErrTemplateNotFound) {
				return ErrSlotNotFound
			}
			uc.logger.Error("UpdateSlot: failed to update slots: %v", err)
			return fmt.Errorf("%w: failed to update slots: %v", ErrInternal, err)
		}
		rowsUpdated = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 5. Ресинк: перечитываем сетку дня после коммита, чтобы клиент
	// гарантированно увидел сохраненное состояние, а не свой локальный черновик
	grid, err := uc.scheduleReader.GetWeekdayGrid(ctx, req.VenueID, req.DayOfWeek)
	if err != nil {
		uc.logger.Error("UpdateSlot: failed to reload day grid for venue=%d, day=%d: %v",
			req.VenueID, int(req.DayOfWeek), err)
		return nil, fmt.Errorf("%w: failed to reload day grid: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateSlot: venue=%d, day=%d, start=%s -> %d rows updated",
		req.VenueID, int(req.DayOfWeek), req.StartTime, rowsUpdated)

	return &Response{
		VenueID:     req.VenueID,
		DayOfWeek:   req.DayOfWeek,
		RowsUpdated: rowsUpdated,
		Grid:        grid,
	}, nil
}
