package payments

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/transactions"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/shared/apperr"
)

// WebhookService reconciles asynchronous gateway events with the
// transaction store. The state machine is pending -> success and
// pending -> failed, each exactly once; a terminal row is never touched
// again and never re-triggers side effects.
type WebhookService struct {
	db       *gorm.DB
	verifier *Verifier
	provider string
	sideFx   *SideEffects
	logger   *slog.Logger
}

func NewWebhookService(db *gorm.DB, verifier *Verifier, providerName string, sideFx *SideEffects, logger *slog.Logger) *WebhookService {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookService{
		db:       db,
		verifier: verifier,
		provider: providerName,
		sideFx:   sideFx,
		logger:   logger,
	}
}

// Reconcile verifies and applies one webhook delivery. It returns the
// matching transaction for charge events, or nil for event types that are
// accepted but deliberately ignored.
func (s *WebhookService) Reconcile(ctx context.Context, rawBody []byte, signature string) (*transactions.Transaction, error) {
	if err := s.verifier.Verify(rawBody, signature); err != nil {
		// Potential security event: tampered payload or wrong secret.
		s.logger.WarnContext(ctx, "webhook signature rejected", "provider", s.provider)
		return nil, apperr.UnauthorizedErr("Invalid signature.")
	}

	ev, err := ParseEvent(rawBody)
	if err != nil {
		return nil, apperr.InvalidErr("Malformed webhook payload.", nil)
	}

	if !ev.Handled() {
		s.recordIgnored(ctx, ev, rawBody)
		s.logger.InfoContext(ctx, "webhook event ignored", "provider", s.provider, "type", ev.Type)
		return nil, nil
	}

	if ev.Data.Reference == "" {
		return nil, apperr.InvalidErr("Webhook payload has no reference.", nil)
	}

	target := transactions.StatusSuccess
	if ev.Type == EventChargeFailed {
		target = transactions.StatusFailed
	}

	var result transactions.Transaction
	var transitioned bool

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s.recordDelivery(ctx, tx, ev, rawBody)

		var txn transactions.Transaction
		if err := tx.WithContext(ctx).First(&txn, "reference = ?", ev.Data.Reference).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundErr("Unknown transaction reference.")
			}
			return err
		}

		// Idempotent short-circuit: terminal rows stay as they are, even
		// for a late success after a failure.
		if txn.Terminal() {
			result = txn
			return nil
		}

		won, err := transactions.MarkTerminal(ctx, tx, ev.Data.Reference, target)
		if err != nil {
			return err
		}
		if !won {
			// A concurrent delivery for the same reference committed
			// first; re-read and return whatever it decided.
			if err := tx.WithContext(ctx).First(&txn, "reference = ?", ev.Data.Reference).Error; err != nil {
				return err
			}
			result = txn
			return nil
		}

		txn.Status = target
		txn.UpdatedAt = time.Now()

		if target == transactions.StatusSuccess {
			if err := s.sideFx.ApplySuccess(ctx, tx, txn); err != nil {
				return err
			}
		}

		transitioned = true
		result = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	if transitioned {
		s.logger.InfoContext(ctx, "transaction reconciled",
			"provider", s.provider, "reference", result.Reference, "status", result.Status)
		if result.Status == transactions.StatusSuccess {
			// Best-effort: the webhook acknowledgment must not wait on or
			// fail because of notification delivery.
			s.sideFx.Notify(ctx, result)
		}
	}

	return &result, nil
}

// recordDelivery appends the verified payload to the webhook audit table.
// A duplicate (provider, event key) insert means a provider retry; that is
// logged and otherwise harmless since the conditional update guards the
// actual transition.
func (s *WebhookService) recordDelivery(ctx context.Context, tx *gorm.DB, ev Event, rawBody []byte) {
	now := time.Now()
	we := WebhookEvent{
		ID:          uuid.NewString(),
		Provider:    s.provider,
		EventKey:    ev.Key(),
		EventType:   ev.Type,
		PayloadJSON: datatypes.JSON(rawBody),
		ReceivedAt:  now,
		ProcessedAt: &now,
	}
	if err := tx.WithContext(ctx).Create(&we).Error; err != nil {
		if transactions.IsDup(err) {
			s.logger.InfoContext(ctx, "webhook delivery deduplicated",
				"provider", s.provider, "event_key", ev.Key())
			return
		}
		s.logger.ErrorContext(ctx, "webhook audit insert failed",
			"provider", s.provider, "event_key", ev.Key(), "err", err)
	}
}

func (s *WebhookService) recordIgnored(ctx context.Context, ev Event, rawBody []byte) {
	s.recordDelivery(ctx, s.db, ev, rawBody)
}
