package override

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type execCall struct {
	query string
	args  []interface{}
}

// fakeExecutor перехватывает запросы, не ходя в БД
type fakeExecutor struct {
	calls []execCall
}

func (f *fakeExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.calls = append(f.calls, execCall{query: query, args: args})
	return fakeResult{}, nil
}

func (f *fakeExecutor) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

type fakeResult struct{}

func (fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (fakeResult) RowsAffected() (int64, error) { return 1, nil }

func makeOverrides(n int) []*domain.TimeSlotOverride {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	overrides := make([]*domain.TimeSlotOverride, 0, n)
	for i := 0; i < n; i++ {
		overrides = append(overrides, &domain.TimeSlotOverride{
			ScheduleTemplateID: int64(i + 1),
			BookingDate:        date,
			SlotFields:         domain.SlotFields{IsAvailable: false, PricePerHead: 1500},
		})
	}
	return overrides
}

func TestBulkUpsert_ChunksLargeDay(t *testing.T) {
	executor := &fakeExecutor{}
	repo := NewRepository(executor)

	// 120 оверрайдов при чанке в 100: два upsert, атомарность даёт транзакция вызывающего
	err := repo.BulkUpsert(context.Background(), makeOverrides(120))

	require.NoError(t, err)
	require.Len(t, executor.calls, 2)

	const argsPerRow = 7
	assert.Len(t, executor.calls[0].args, domain.BulkWriteChunkSize*argsPerRow)
	assert.Len(t, executor.calls[1].args, 20*argsPerRow)

	for _, call := range executor.calls {
		assert.Contains(t, call.query, "INSERT INTO time_slot_overrides")
		assert.Contains(t, call.query, "ON CONFLICT (schedule_template_id, booking_date)")
	}

	// Чанки продолжают исходный список без пропусков и дублей
	assert.Equal(t, int64(1), executor.calls[0].args[0])
	assert.Equal(t, int64(101), executor.calls[1].args[0])
	assert.Equal(t, int64(120), executor.calls[1].args[len(executor.calls[1].args)-argsPerRow])
}

func TestBulkUpsert_NoRowsNoQueries(t *testing.T) {
	executor := &fakeExecutor{}
	repo := NewRepository(executor)

	err := repo.BulkUpsert(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, executor.calls)
}
