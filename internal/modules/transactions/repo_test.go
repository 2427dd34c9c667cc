package transactions

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Transaction{}))
	return db
}

func pendingTxn(reference string) *Transaction {
	now := time.Now()
	d := 3
	return &Transaction{
		ID:            uuid.NewString(),
		UserID:        uuid.NewString(),
		Reference:     reference,
		Amount:        34000,
		Status:        StatusPending,
		PaymentType:   TypeSubscription,
		Duration:      &d,
		PaymentMethod: MethodPaystack,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestRepoCreateDuplicateReference(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, pendingTxn("TX-1")))

	err := repo.Create(ctx, pendingTxn("TX-1"))
	assert.ErrorIs(t, err, ErrDuplicateReference)
}

func TestRepoFindByReference(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, pendingTxn("TX-2")))

	got, err := repo.FindByReference(ctx, "TX-2")
	require.NoError(t, err)
	assert.Equal(t, "TX-2", got.Reference)
	assert.Equal(t, StatusPending, got.Status)

	_, err = repo.FindByReference(ctx, "TX-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkTerminalWinsOnlyOnce(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, pendingTxn("TX-3")))

	won, err := MarkTerminal(ctx, db, "TX-3", StatusSuccess)
	require.NoError(t, err)
	assert.True(t, won, "first transition should win")

	// Second delivery for the same reference loses the conditional update.
	won, err = MarkTerminal(ctx, db, "TX-3", StatusSuccess)
	require.NoError(t, err)
	assert.False(t, won)

	got, err := repo.FindByReference(ctx, "TX-3")
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, got.Status)
}

func TestMarkTerminalDoesNotReviveFailed(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, pendingTxn("TX-4")))

	won, err := MarkTerminal(ctx, db, "TX-4", StatusFailed)
	require.NoError(t, err)
	require.True(t, won)

	// A late success event must not flip a failed transaction.
	won, err = MarkTerminal(ctx, db, "TX-4", StatusSuccess)
	require.NoError(t, err)
	assert.False(t, won)

	got, err := repo.FindByReference(ctx, "TX-4")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, got.Status)
}

func TestMarkTerminalUnknownReference(t *testing.T) {
	db := newTestDB(t)

	won, err := MarkTerminal(context.Background(), db, "TX-nope", StatusSuccess)
	require.NoError(t, err)
	assert.False(t, won)
}
