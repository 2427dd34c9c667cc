package payments

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmanuel-dcoder/tap-sync-api/internal/config"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/transactions"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/users"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/shared/apperr"
)

var testPricing = config.PricingConfig{UnitCardPrice: 4000, SubscriptionPrice: 34000}

func newInitiator(t *testing.T) (*Service, *fakeGateway, *transactions.Repo, users.User) {
	t.Helper()
	db := newTestDB(t)
	user := seedUser(t, db)
	gw := &fakeGateway{resp: InitializeTransactionResponse{
		AuthorizationURL: "https://checkout.paystack.com/abc123",
		AccessCode:       "abc123",
	}}
	txnRepo := transactions.NewRepo(db)
	svc := NewService(gw, users.NewRepo(db), txnRepo, testPricing, "https://tapsync.app/payment/callback", nil)
	return svc, gw, txnRepo, user
}

func TestInitializeCardAmountIsUnitPriceTimesQuantity(t *testing.T) {
	svc, gw, txnRepo, user := newInitiator(t)

	res, err := svc.Initialize(context.Background(), InitializeInput{
		UserID:        user.ID,
		PaymentType:   transactions.TypeCard,
		NumberOfCards: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.paystack.com/abc123", res.AuthorizationURL)
	assert.True(t, strings.HasPrefix(res.Reference, "TX-"))

	// 3 * 4000 major units, sent to the gateway in minor units.
	assert.Equal(t, 12000*100, gw.lastReq.AmountMinor)
	assert.Equal(t, user.Email, gw.lastReq.Email)
	assert.Equal(t, "https://tapsync.app/payment/callback", gw.lastReq.CallbackURL)

	txn, err := txnRepo.FindByReference(context.Background(), res.Reference)
	require.NoError(t, err)
	assert.Equal(t, 12000, txn.Amount)
	assert.Equal(t, transactions.StatusPending, txn.Status)
	assert.Equal(t, transactions.TypeCard, txn.PaymentType)
	require.NotNil(t, txn.NumberOfCards)
	assert.Equal(t, 3, *txn.NumberOfCards)
	assert.Nil(t, txn.Duration)
	assert.Equal(t, transactions.MethodPaystack, txn.PaymentMethod)
}

func TestInitializeSubscriptionIsFlatRate(t *testing.T) {
	svc, gw, txnRepo, user := newInitiator(t)

	// Flat rate: 12 months costs the same as 1 month.
	res, err := svc.Initialize(context.Background(), InitializeInput{
		UserID:      user.ID,
		PaymentType: transactions.TypeSubscription,
		Duration:    12,
	})
	require.NoError(t, err)

	assert.Equal(t, 34000*100, gw.lastReq.AmountMinor)

	txn, err := txnRepo.FindByReference(context.Background(), res.Reference)
	require.NoError(t, err)
	assert.Equal(t, 34000, txn.Amount)
	require.NotNil(t, txn.Duration)
	assert.Equal(t, 12, *txn.Duration)
	assert.Nil(t, txn.NumberOfCards)
}

func TestInitializeValidation(t *testing.T) {
	svc, gw, _, user := newInitiator(t)

	tests := []struct {
		name string
		in   InitializeInput
	}{
		{
			name: "card without number_of_cards",
			in:   InitializeInput{UserID: user.ID, PaymentType: transactions.TypeCard},
		},
		{
			name: "subscription without duration",
			in:   InitializeInput{UserID: user.ID, PaymentType: transactions.TypeSubscription},
		},
		{
			name: "unknown payment type",
			in:   InitializeInput{UserID: user.ID, PaymentType: "wire"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Initialize(context.Background(), tt.in)
			require.Error(t, err)
			ae, ok := apperr.As(err)
			require.True(t, ok)
			assert.Equal(t, apperr.Invalid, ae.Kind)
		})
	}

	// validation failures never reach the gateway
	assert.Equal(t, 0, gw.calls)
}

func TestInitializeUnknownUser(t *testing.T) {
	svc, gw, _, _ := newInitiator(t)

	_, err := svc.Initialize(context.Background(), InitializeInput{
		UserID:      "no-such-user",
		PaymentType: transactions.TypeSubscription,
		Duration:    1,
	})
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.NotFound, ae.Kind)
	assert.Equal(t, 0, gw.calls)
}

func TestInitializeGatewayFailureLeavesNoTransaction(t *testing.T) {
	svc, gw, txnRepo, user := newInitiator(t)
	gw.err = apperr.BadGatewayErr("Payment provider rejected the transaction.", errors.New("paystack: 400"))

	_, err := svc.Initialize(context.Background(), InitializeInput{
		UserID:      user.ID,
		PaymentType: transactions.TypeSubscription,
		Duration:    3,
	})
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.BadGateway, ae.Kind)

	// No dangling pending row when the gateway says no.
	list, err := txnRepo.ListByUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNewReferenceIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref := NewReference()
		assert.True(t, strings.HasPrefix(ref, "TX-"))
		assert.False(t, seen[ref], "reference collision: %s", ref)
		seen[ref] = true
	}
}
