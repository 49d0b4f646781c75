package override

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с датными оверрайдами слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория оверрайдов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var overrideColumns = []string{
	"id",
	"schedule_template_id",
	"booking_date",
	"is_available",
	"prime_time",
	"available_tables",
	"price_per_head",
	"minimum_spend_per_guest",
	"created_at",
	"updated_at",
}

// upsertSuffix upsert по натуральному ключу (schedule_template_id, booking_date)
// Повторная отправка той же правки безопасна: last write wins, дублей не бывает
const upsertSuffix = `ON CONFLICT (schedule_template_id, booking_date) DO UPDATE SET
	is_available = EXCLUDED.is_available,
	prime_time = EXCLUDED.prime_time,
	available_tables = EXCLUDED.available_tables,
	price_per_head = EXCLUDED.price_per_head,
	minimum_spend_per_guest = EXCLUDED.minimum_spend_per_guest,
	updated_at = NOW()`

// GetByTemplateAndDate получает оверрайд по строке шаблона и дате
func (r *Repository) GetByTemplateAndDate(ctx context.Context, templateID int64, date time.Time) (*domain.TimeSlotOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(overrideColumns...).
		From("time_slot_overrides").
		Where(squirrel.Eq{
			"schedule_template_id": templateID,
			"booking_date":         dateOnly(date),
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTemplateAndDate - build select query: %v", ErrBuildQuery, err)
	}

	o, err := r.scanOverride(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTemplateAndDate - scan override: %v", ErrScanRow, err)
	}

	return o, nil
}

// ListByTemplatesAndDate получает оверрайды на дату для набора строк шаблона
// Используется read-моделью дневной сетки
func (r *Repository) ListByTemplatesAndDate(ctx context.Context, templateIDs []int64, date time.Time) ([]*domain.TimeSlotOverride, error) {
	if len(templateIDs) == 0 {
		return []*domain.TimeSlotOverride{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(overrideColumns...).
		From("time_slot_overrides").
		Where(squirrel.Eq{
			"schedule_template_id": templateIDs,
			"booking_date":         dateOnly(date),
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByTemplatesAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTemplatesAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]*domain.TimeSlotOverride, 0)
	for rows.Next() {
		o, err := r.scanOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByTemplatesAndDate - scan row: %v", ErrScanRow, err)
		}
		overrides = append(overrides, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByTemplatesAndDate - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// BulkUpsert создает или обновляет оверрайды пачками по domain.BulkWriteChunkSize
// Всегда вызывается внутри транзакции bulk-операции: частично применённый день
// невозможен, откат транзакции отменяет все чанки разом
func (r *Repository) BulkUpsert(ctx context.Context, overrides []*domain.TimeSlotOverride) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for start := 0; start < len(overrides); start += domain.BulkWriteChunkSize {
		end := start + domain.BulkWriteChunkSize
		if end > len(overrides) {
			end = len(overrides)
		}

		insertBuilder := psqlbuilder.Insert("time_slot_overrides").
			Columns(
				"schedule_template_id",
				"booking_date",
				"is_available",
				"prime_time",
				"available_tables",
				"price_per_head",
				"minimum_spend_per_guest",
			)

		for _, o := range overrides[start:end] {
			insertBuilder = insertBuilder.Values(
				o.ScheduleTemplateID,
				dateOnly(o.BookingDate),
				o.IsAvailable,
				o.PrimeTime,
				o.AvailableTables,
				o.PricePerHead,
				o.MinimumSpendPerGuest,
			)
		}

		query, args, err := insertBuilder.Suffix(upsertSuffix).ToSql()
		if err != nil {
			return fmt.Errorf("%w: BulkUpsert - build upsert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: BulkUpsert - execute upsert: %v", ErrExecQuery, err)
		}
	}

	return nil
}

// DeleteByTemplateAndDate удаляет оверрайд, возвращая дату к шаблону
// Bulk-операторы этим не пользуются (они всегда пишут явные значения),
// но storage-слой поддерживает сброс на случай ручной правки
func (r *Repository) DeleteByTemplateAndDate(ctx context.Context, templateID int64, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_slot_overrides").
		Where(squirrel.Eq{
			"schedule_template_id": templateID,
			"booking_date":         dateOnly(date),
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByTemplateAndDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByTemplateAndDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByTemplateAndDate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

// dateOnly обнуляет компонент времени, в БД хранится чистая дата
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanOverride(row scanner) (*domain.TimeSlotOverride, error) {
	var o domain.TimeSlotOverride
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&o.ID,
		&o.ScheduleTemplateID,
		&o.BookingDate,
		&o.IsAvailable,
		&o.PrimeTime,
		&o.AvailableTables,
		&o.PricePerHead,
		&o.MinimumSpendPerGuest,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return &o, nil
}
