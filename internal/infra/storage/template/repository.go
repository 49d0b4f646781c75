package template

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Repository репозиторий для работы со строками шаблона расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория шаблонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var templateColumns = []string{
	"id",
	"venue_id",
	"day_of_week",
	"start_time",
	"end_time",
	"party_size",
	"is_available",
	"prime_time",
	"available_tables",
	"price_per_head",
	"minimum_spend_per_guest",
	"created_at",
	"updated_at",
}

// BulkInsert создает строки шаблона пачками по domain.BulkWriteChunkSize
// Вызывается при создании заведения внутри транзакции: чанки нужны только
// для пропускной способности, атомарность обеспечивает транзакция в контексте
func (r *Repository) BulkInsert(ctx context.Context, rows []*domain.ScheduleTemplate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for start := 0; start < len(rows); start += domain.BulkWriteChunkSize {
		end := start + domain.BulkWriteChunkSize
		if end > len(rows) {
			end = len(rows)
		}

		insertBuilder := psqlbuilder.Insert("schedule_templates").
			Columns(
				"venue_id",
				"day_of_week",
				"start_time",
				"end_time",
				"party_size",
				"is_available",
				"prime_time",
				"available_tables",
				"price_per_head",
				"minimum_spend_per_guest",
			)

		for _, row := range rows[start:end] {
			insertBuilder = insertBuilder.Values(
				row.VenueID,
				int(row.DayOfWeek),
				row.StartTime,
				row.EndTime,
				int(row.PartySize),
				row.IsAvailable,
				row.PrimeTime,
				row.AvailableTables,
				row.PricePerHead,
				row.MinimumSpendPerGuest,
			)
		}

		query, args, err := insertBuilder.ToSql()
		if err != nil {
			return fmt.Errorf("%w: BulkInsert - build insert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: BulkInsert - execute insert: %v", ErrExecQuery, err)
		}
	}

	return nil
}

// GetByKey получает строку шаблона по натуральному ключу
// (venue_id, day_of_week, start_time, party_size)
func (r *Repository) GetByKey(ctx context.Context, venueID int64, day time.Weekday, start types.TimeString, size domain.PartySize) (*domain.ScheduleTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(templateColumns...).
		From("schedule_templates").
		Where(squirrel.Eq{
			"venue_id":    venueID,
			"day_of_week": int(day),
			"start_time":  start,
			"party_size":  int(size),
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	row, err := r.scanTemplate(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - scan template: %v", ErrScanRow, err)
	}

	return row, nil
}

// ListByDay получает все строки шаблона заведения на день недели,
// отсортированные по времени и размеру компании
// Внутри транзакции строки блокируются (FOR UPDATE) - используется bulk-операциями
func (r *Repository) ListByDay(ctx context.Context, venueID int64, day time.Weekday) ([]*domain.ScheduleTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(templateColumns...).
		From("schedule_templates").
		Where(squirrel.Eq{
			"venue_id":    venueID,
			"day_of_week": int(day),
		}).
		OrderBy("start_time ASC, party_size ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTemplates(rows)
}

// UpdateFieldsByKey обновляет поля одной строки шаблона по натуральному ключу
func (r *Repository) UpdateFieldsByKey(ctx context.Context, venueID int64, day time.Weekday, start types.TimeString, size domain.PartySize, fields domain.SlotFields) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.updateFieldsBuilder(fields).
		Where(squirrel.Eq{
			"venue_id":    venueID,
			"day_of_week": int(day),
			"start_time":  start,
			"party_size":  int(size),
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateFieldsByKey - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateFieldsByKey - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateFieldsByKey - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTemplateNotFound
	}

	return nil
}

// UpdateFieldsByDayTime обновляет поля всех строк шаблона на (день, время)
// разом - для wildcard-редактирования по всем размерам компании
func (r *Repository) UpdateFieldsByDayTime(ctx context.Context, venueID int64, day time.Weekday, start types.TimeString, fields domain.SlotFields) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.updateFieldsBuilder(fields).
		Where(squirrel.Eq{
			"venue_id":    venueID,
			"day_of_week": int(day),
			"start_time":  start,
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: UpdateFieldsByDayTime - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: UpdateFieldsByDayTime - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: UpdateFieldsByDayTime - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return 0, ErrTemplateNotFound
	}

	return rowsAffected, nil
}

func (r *Repository) updateFieldsBuilder(fields domain.SlotFields) squirrel.UpdateBuilder {
	return psqlbuilder.Update("schedule_templates").
		Set("is_available", fields.IsAvailable).
		Set("prime_time", fields.PrimeTime).
		Set("available_tables", fields.AvailableTables).
		Set("price_per_head", fields.PricePerHead).
		Set("minimum_spend_per_guest", fields.MinimumSpendPerGuest).
		Set("updated_at", squirrel.Expr("NOW()"))
}

// TablesUpdate пара (id строки шаблона, новое количество столов)
// для пакетного копирования матрицы available_tables
type TablesUpdate struct {
	TemplateID int64
	Tables     int
}

// BulkUpdateTables обновляет available_tables у набора строк шаблона
// одним UPDATE ... FROM (VALUES ...) на чанк
func (r *Repository) BulkUpdateTables(ctx context.Context, updates []TablesUpdate) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var total int64

	for start := 0; start < len(updates); start += domain.BulkWriteChunkSize {
		end := start + domain.BulkWriteChunkSize
		if end > len(updates) {
			end = len(updates)
		}
		chunk := updates[start:end]

		values := make([]string, 0, len(chunk))
		args := make([]interface{}, 0, len(chunk)*2)
		for i, u := range chunk {
			values = append(values, fmt.Sprintf("($%d::bigint, $%d::int)", i*2+1, i*2+2))
			args = append(args, u.TemplateID, u.Tables)
		}

		query := fmt.Sprintf(
			`UPDATE schedule_templates AS t
			 SET available_tables = v.tables, updated_at = NOW()
			 FROM (VALUES %s) AS v(id, tables)
			 WHERE t.id = v.id`,
			strings.Join(values, ", "),
		)

		result, err := executor.ExecContext(ctx, query, args...)
		if err != nil {
			return total, fmt.Errorf("%w: BulkUpdateTables - execute update: %v", ErrExecQuery, err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return total, fmt.Errorf("%w: BulkUpdateTables - get rows affected: %v", ErrExecQuery, err)
		}
		total += rowsAffected
	}

	return total, nil
}

// DayBounds возвращает минимальное start_time и максимальное end_time
// среди доступных строк шаблона на день - границы для генерации слотов
func (r *Repository) DayBounds(ctx context.Context, venueID int64, day time.Weekday) (types.TimeString, types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("MIN(start_time)", "MAX(end_time)").
		From("schedule_templates").
		Where(squirrel.Eq{
			"venue_id":     venueID,
			"day_of_week":  int(day),
			"is_available": true,
		}).
		ToSql()

	if err != nil {
		return "", "", fmt.Errorf("%w: DayBounds - build select query: %v", ErrBuildQuery, err)
	}

	var open, close sql.NullString
	err = executor.QueryRowContext(ctx, query, args...).Scan(&open, &close)
	if err != nil {
		return "", "", fmt.Errorf("%w: DayBounds - scan bounds: %v", ErrScanRow, err)
	}

	if !open.Valid || !close.Valid {
		return "", "", ErrNoAvailableSlots
	}

	openTime, err := types.NewTimeStringFromString(open.String)
	if err != nil {
		return "", "", fmt.Errorf("%w: DayBounds - parse open time: %v", ErrScanRow, err)
	}
	closeTime, err := types.NewTimeStringFromString(close.String)
	if err != nil {
		return "", "", fmt.Errorf("%w: DayBounds - parse close time: %v", ErrScanRow, err)
	}

	return openTime, closeTime, nil
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanTemplate(row scanner) (*domain.ScheduleTemplate, error) {
	var t domain.ScheduleTemplate
	var day int
	var size int
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.VenueID,
		&day,
		&t.StartTime,
		&t.EndTime,
		&size,
		&t.IsAvailable,
		&t.PrimeTime,
		&t.AvailableTables,
		&t.PricePerHead,
		&t.MinimumSpendPerGuest,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.DayOfWeek = time.Weekday(day)
	t.PartySize = domain.PartySize(size)
	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}

func (r *Repository) scanTemplates(rows *sql.Rows) ([]*domain.ScheduleTemplate, error) {
	templates := make([]*domain.ScheduleTemplate, 0)

	for rows.Next() {
		t, err := r.scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTemplates - scan row: %v", ErrScanRow, err)
		}
		templates = append(templates, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTemplates - rows error: %v", ErrScanRow, err)
	}

	return templates, nil
}
