package create_venue

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// UseCase use case создания заведения вместе с дефолтной матрицей расписания
// Заведение и все строки шаблона создаются в одной сериализуемой транзакции:
// заведение без матрицы существовать не должно
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

// Execute выполняет use case создания заведения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateVenue: name=%q, tz=%s, partySizes=%d, by user=%d",
		req.Name, req.Timezone, len(req.PartySizes), req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateVenue: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	// 2. Создаем заведение и матрицу шаблона в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		venue := &domain.Venue{
			Name:                req.Name,
			Timezone:            req.Timezone,
			PartySizes:          req.PartySizes,
			AllowSpecialRequest: req.AllowSpecialRequest,
			NonPrimeFeePerHead:  req.NonPrimeFeePerHead,
			PrimeBasePrice:      req.PrimeBasePrice,
			PrimeBaseCovers:     req.PrimeBaseCovers,
			PrimeExtraGuestFee:  req.PrimeExtraGuestFee,
			CutoffMinutes:       req.CutoffMinutes,
			OpenTime:            req.OpenTime,
			CloseTime:           req.CloseTime,
			OpenDays:            req.OpenDays,
		}

		created, err := uc.venueRepo.Create(txCtx, venue)
		if err != nil {
			uc.logger.Error("CreateVenue: failed to create venue: %v", err)
			return fmt.Errorf("%w: failed to create venue: %v", ErrInternal, err)
		}

		// 2.1. Строим матрицу: день недели x получасовой слот x размер компании
		rows := buildTemplateMatrix(created, req)

		// 2.2. Вставляем строки чанками внутри транзакции
		if err := uc.templateRepo.BulkInsert(txCtx, rows); err != nil {
			uc.logger.Error("CreateVenue: failed to insert template matrix for venue=%d: %v", created.ID, err)
			return fmt.Errorf("%w: failed to insert template matrix: %v", ErrInternal, err)
		}

		result = &Response{
			VenueID:          created.ID,
			TemplateRowCount: len(rows),
			CreatedAt:        created.CreatedAt,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateVenue: created venue id=%d with %d template rows",
		result.VenueID, result.TemplateRowCount)

	return result, nil
}
