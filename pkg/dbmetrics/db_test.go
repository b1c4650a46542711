package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	DBExecutor
}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

func TestGetExecutor(t *testing.T) {
	db := Wrap(&sql.DB{}, nil)

	t.Run("without transaction", func(t *testing.T) {
		ctx := context.Background()
		assert.False(t, IsInTransaction(ctx))
		assert.Same(t, db, GetExecutor(ctx, db))
	})

	t.Run("with transaction", func(t *testing.T) {
		tx := &fakeTx{}
		ctx := WithTx(context.Background(), tx)
		assert.True(t, IsInTransaction(ctx))
		assert.Same(t, tx, GetExecutor(ctx, db))
	})
}

func TestOperationOf(t *testing.T) {
	assert.Equal(t, "select", operationOf("SELECT payload FROM day_schedules"))
	assert.Equal(t, "insert", operationOf("  INSERT INTO day_schedules"))
	assert.Equal(t, "unknown", operationOf(""))
}
