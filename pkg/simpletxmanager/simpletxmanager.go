package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
)

const (
	maxRetries = 3
	retryDelay = 50 * time.Millisecond
)

// TransactionManager управляет сериализуемыми транзакциями поверх обычного *sql.DB
// Используется, когда метрики выключены
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает новый transaction manager
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn внутри сериализуемой транзакции с ретраями на 40001
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryDelay * time.Duration(attempt)):
			}
		}

		err := m.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !txmanager.IsSerializationFailure(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("simpletxmanager: serialization retries exhausted: %w", lastErr)
}

func (m *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("simpletxmanager: begin transaction: %w", err)
	}

	wrapped := &dbmetrics.SqlTxWrapper{Tx: tx}
	txCtx := dbmetrics.WithTx(ctx, wrapped)

	if err := fn(txCtx); err != nil {
		if rbErr := wrapped.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("simpletxmanager: rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := wrapped.Commit(); err != nil {
		return fmt.Errorf("simpletxmanager: commit: %w", err)
	}

	return nil
}
