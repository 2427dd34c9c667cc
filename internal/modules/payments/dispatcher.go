package payments

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/email"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/notifications"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/orders"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/transactions"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/users"
)

// SideEffects fans out the consequences of a successful reconciliation.
// ApplySuccess runs inside the reconciler's database transaction and must
// succeed for the transition to commit; Notify runs after commit and is
// best-effort.
type SideEffects struct {
	users         *users.Repo
	notifications *notifications.Service
	mail          email.Service
	logger        *slog.Logger
}

func NewSideEffects(usersRepo *users.Repo, notifSvc *notifications.Service, mail email.Service, logger *slog.Logger) *SideEffects {
	if logger == nil {
		logger = slog.Default()
	}
	return &SideEffects{users: usersRepo, notifications: notifSvc, mail: mail, logger: logger}
}

// ApplySuccess activates the subscription entitlement and opens a new
// order window. Card payments carry no entitlement; their fulfillment is
// handled by the card-request subsystem.
func (fx *SideEffects) ApplySuccess(ctx context.Context, tx *gorm.DB, txn transactions.Transaction) error {
	if txn.PaymentType != transactions.TypeSubscription {
		return nil
	}

	if err := users.SetSubscribed(ctx, tx, txn.UserID, true); err != nil {
		return err
	}

	if txn.Duration == nil || *txn.Duration <= 0 {
		// Should not happen: the initiator validates duration for
		// subscription payments. Flag it loudly rather than invent a window.
		return fmt.Errorf("subscription transaction %s has no duration", txn.Reference)
	}

	ord := orders.NewOrder(txn.UserID, *txn.Duration, time.Now())
	return tx.WithContext(ctx).Create(&ord).Error
}

// Notify emits one notification row and one confirmation email. Failures
// are logged and discarded; the payment outcome is already committed and
// must not be affected by delivery problems.
func (fx *SideEffects) Notify(ctx context.Context, txn transactions.Transaction) {
	user, err := fx.users.FindByID(ctx, txn.UserID)
	if err != nil {
		fx.logger.ErrorContext(ctx, "notify: user lookup failed",
			"user_id", txn.UserID, "reference", txn.Reference, "err", err)
		return
	}

	body := fmt.Sprintf("Your %s payment (%s) was successful.", txn.PaymentType, txn.Reference)
	if _, err := fx.notifications.Create(ctx, "Payment Successful", body, notifications.UserTypeUser, user.ID); err != nil {
		fx.logger.ErrorContext(ctx, "notify: notification create failed",
			"user_id", user.ID, "reference", txn.Reference, "err", err)
	}

	if err := email.SendPaymentConfirmation(fx.mail, user.Email, user.Name, txn.Reference, txn.Amount, txn.PaymentType); err != nil {
		fx.logger.ErrorContext(ctx, "notify: confirmation email failed",
			"user_id", user.ID, "reference", txn.Reference, "err", err)
	}
}
