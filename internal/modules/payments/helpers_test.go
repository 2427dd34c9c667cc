package payments

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/notifications"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/orders"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/transactions"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/users"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&users.User{},
		&transactions.Transaction{},
		&orders.Order{},
		&notifications.Notification{},
		&WebhookEvent{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) users.User {
	t.Helper()
	now := time.Now()
	u := users.User{
		ID:           uuid.NewString(),
		Name:         "Ada Obi",
		Email:        "ada@example.com",
		Phone:        "+2348012345678",
		Username:     "ada_" + uuid.NewString()[:8],
		PasswordHash: "x",
		IsVerified:   true,
		AccountType:  users.AccountPersonal,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedPendingTxn(t *testing.T, db *gorm.DB, userID, paymentType string, duration, cards int) transactions.Transaction {
	t.Helper()
	now := time.Now()
	txn := transactions.Transaction{
		ID:            uuid.NewString(),
		UserID:        userID,
		Reference:     NewReference(),
		Amount:        34000,
		Status:        transactions.StatusPending,
		PaymentType:   paymentType,
		PaymentMethod: transactions.MethodPaystack,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if duration > 0 {
		txn.Duration = &duration
	}
	if cards > 0 {
		txn.NumberOfCards = &cards
	}
	require.NoError(t, db.Create(&txn).Error)
	return txn
}

// fakeGateway records initialize calls and returns a canned response.
type fakeGateway struct {
	lastReq InitializeTransactionRequest
	calls   int
	resp    InitializeTransactionResponse
	err     error
}

func (f *fakeGateway) Name() string { return "paystack" }

func (f *fakeGateway) InitializeTransaction(_ context.Context, req InitializeTransactionRequest) (InitializeTransactionResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return InitializeTransactionResponse{}, f.err
	}
	resp := f.resp
	if resp.Reference == "" {
		resp.Reference = req.Reference
	}
	return resp, nil
}

// recordingMail implements email.Service and counts deliveries.
type recordingMail struct {
	sentTo []string
	err    error
}

func (r *recordingMail) SendEmail(to, toName, subject, htmlBody, textBody string) error {
	if r.err != nil {
		return r.err
	}
	r.sentTo = append(r.sentTo, to)
	return nil
}
