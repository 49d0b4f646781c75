package duplicate_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/storage/template"
	venueRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// UseCase use case копирования матрицы available_tables с одного дня недели
// на другие: цены, prime-статус и доступность целевых дней не трогаются
type UseCase struct {
	venueRepo    VenueRepository
	templateRepo TemplateRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueRepo VenueRepository,
	templateRepo TemplateRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueRepo:    venueRepo,
		templateRepo: templateRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// slotKey натуральный ключ строки внутри дня: время начала + размер компании
type slotKey struct {
	start types.TimeString
	size  domain.PartySize
}

// Execute выполняет use case копирования расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DuplicateSchedule: venue=%d, source day=%d, targets=%v, by user=%d",
		req.VenueID, int(req.SourceDay), req.TargetDays, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DuplicateSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем заведение
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("DuplicateSchedule: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("DuplicateSchedule: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	if !venue.OpenDays.IsOpen(req.SourceDay) {
		uc.logger.Warn("DuplicateSchedule: venue=%d source day=%d is closed", req.VenueID, int(req.SourceDay))
		return nil, ErrSourceDayClosed
	}

	targets := normalizeTargets(req.SourceDay, req.TargetDays)

	result := &Response{
		VenueID:     req.VenueID,
		SourceDay:   req.SourceDay,
		AppliedDays: make([]time.Weekday, 0, len(targets)),
		SkippedDays: make([]time.Weekday, 0),
	}

	// 3. Источник и все цели читаются и пишутся в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		sourceRows, err := uc.templateRepo.ListByDay(txCtx, req.VenueID, req.SourceDay)
		if err != nil {
			uc.logger.Error("DuplicateSchedule: failed to list source day=%d for venue=%d: %v",
				int(req.SourceDay), req.VenueID, err)
			return fmt.Errorf("%w: failed to list source templates: %v", ErrInternal, err)
		}
		if len(sourceRows) == 0 {
			return ErrDayNotConfigured
		}

		sourceTables := make(map[slotKey]int, len(sourceRows))
		for _, row := range sourceRows {
			sourceTables[slotKey{start: row.StartTime, size: row.PartySize}] = row.AvailableTables
		}

		for _, day := range targets {
			// Закрытые дни пропускаются: их строки остаются недоступными
			if !venue.OpenDays.IsOpen(day) {
				result.SkippedDays = append(result.SkippedDays, day)
				continue
			}

			targetRows, err := uc.templateRepo.ListByDay(txCtx, req.VenueID, day)
			if err != nil {
				uc.logger.Error("DuplicateSchedule: failed to list target day=%d for venue=%d: %v",
					int(day), req.VenueID, err)
				return fmt.Errorf("%w: failed to list target templates: %v", ErrInternal, err)
			}

			updates := make([]template.TablesUpdate, 0, len(targetRows))
			for _, row := range targetRows {
				tables, ok := sourceTables[slotKey{start: row.StartTime, size: row.PartySize}]
				if !ok {
					continue
				}
				if tables == row.AvailableTables {
					continue
				}
				updates = append(updates, template.TablesUpdate{
					TemplateID: row.ID,
					Tables:     tables,
				})
			}

			if len(updates) > 0 {
				updated, err := uc.templateRepo.BulkUpdateTables(txCtx, updates)
				if err != nil {
					uc.logger.Error("DuplicateSchedule: failed to update tables for venue=%d, day=%d: %v",
						req.VenueID, int(day), err)
					return fmt.Errorf("%w: failed to update tables: %v", ErrInternal, err)
				}
				result.RowsUpdated += updated
			}

			result.AppliedDays = append(result.AppliedDays, day)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("DuplicateSchedule: venue=%d, source day=%d -> %d days applied, %d skipped, %d rows updated",
		req.VenueID, int(req.SourceDay), len(result.AppliedDays), len(result.SkippedDays), result.RowsUpdated)

	return result, nil
}
