package payments

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/emmanuel-dcoder/tap-sync-api/internal/config"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/transactions"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/users"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/shared/apperr"
)

// Service is the payment initiator: it prices the request from policy,
// obtains a redirect URL from the gateway and persists a pending
// transaction. Amounts always come from the configured policy, never from
// the caller.
type Service struct {
	gateway  Gateway
	users    *users.Repo
	txns     *transactions.Repo
	pricing  config.PricingConfig
	callback string
	logger   *slog.Logger
}

func NewService(gateway Gateway, usersRepo *users.Repo, txnRepo *transactions.Repo, pricing config.PricingConfig, callbackURL string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		gateway:  gateway,
		users:    usersRepo,
		txns:     txnRepo,
		pricing:  pricing,
		callback: callbackURL,
		logger:   logger,
	}
}

type InitializeInput struct {
	UserID        string
	PaymentType   string
	Duration      int // months, subscription only
	NumberOfCards int // card only
}

type InitializeResult struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

func (s *Service) Initialize(ctx context.Context, in InitializeInput) (InitializeResult, error) {
	switch in.PaymentType {
	case transactions.TypeCard:
		if in.NumberOfCards <= 0 {
			return InitializeResult{}, apperr.InvalidErr(
				"number_of_cards cannot be empty for card payment type",
				map[string]string{"number_of_cards": "must be greater than zero"})
		}
	case transactions.TypeSubscription:
		if in.Duration <= 0 {
			return InitializeResult{}, apperr.InvalidErr(
				"duration cannot be empty for subscription payment type",
				map[string]string{"duration": "must be greater than zero"})
		}
	default:
		return InitializeResult{}, apperr.InvalidErr(
			"payment_type must be card or subscription",
			map[string]string{"payment_type": "must be card or subscription"})
	}

	user, err := s.users.FindByID(ctx, in.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return InitializeResult{}, apperr.NotFoundErr("User not found.")
	}
	if err != nil {
		return InitializeResult{}, err
	}

	totalAmount := s.totalAmount(in)
	reference := NewReference()

	// Gateway first: a rejected initialize must not leave a dangling
	// pending transaction behind.
	resp, err := s.gateway.InitializeTransaction(ctx, InitializeTransactionRequest{
		Email:       user.Email,
		AmountMinor: totalAmount * 100,
		Reference:   reference,
		CallbackURL: s.callback,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "gateway initialize failed",
			"user_id", in.UserID, "reference", reference, "err", err)
		return InitializeResult{}, err
	}

	now := time.Now()
	txn := transactions.Transaction{
		ID:            uuid.NewString(),
		UserID:        user.ID,
		Reference:     reference,
		Amount:        totalAmount,
		Status:        transactions.StatusPending,
		PaymentType:   in.PaymentType,
		PaymentMethod: transactions.MethodPaystack,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.PaymentType == transactions.TypeSubscription {
		d := in.Duration
		txn.Duration = &d
	}
	if in.PaymentType == transactions.TypeCard {
		n := in.NumberOfCards
		txn.NumberOfCards = &n
	}

	if err := s.txns.Create(ctx, &txn); err != nil {
		return InitializeResult{}, err
	}

	s.logger.InfoContext(ctx, "payment initialized",
		"user_id", user.ID, "reference", reference,
		"payment_type", in.PaymentType, "amount", totalAmount)

	return InitializeResult{
		AuthorizationURL: resp.AuthorizationURL,
		AccessCode:       resp.AccessCode,
		Reference:        resp.Reference,
	}, nil
}

// totalAmount applies the pricing policy: card payments are priced per
// card; subscription payments at the flat rate. Duration deliberately does
// not multiply the subscription price.
func (s *Service) totalAmount(in InitializeInput) int {
	if in.PaymentType == transactions.TypeCard {
		return in.NumberOfCards * s.pricing.UnitCardPrice
	}
	return s.pricing.SubscriptionPrice
}

// NewReference generates the idempotency key shared with the gateway. The
// timestamp keeps it human-sortable; the random suffix keeps the unique
// index happy when two initializations land in the same millisecond.
func NewReference() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("TX-%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("TX-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(b))
}
