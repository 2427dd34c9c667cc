package payments

import (
	"time"

	"gorm.io/datatypes"
)

// WebhookEvent is the audit row for every verified webhook delivery. The
// unique (provider, event_key) index dedupes provider retries at the
// storage level; the reconciler's conditional status update remains the
// authoritative idempotency guard.
type WebhookEvent struct {
	ID          string         `gorm:"type:char(36);primaryKey"`
	Provider    string         `gorm:"type:varchar(64);not null;uniqueIndex:ux_webhook_events_provider_key,priority:1"`
	EventKey    string         `gorm:"type:varchar(128);not null;uniqueIndex:ux_webhook_events_provider_key,priority:2"`
	EventType   string         `gorm:"type:varchar(64);not null"`
	PayloadJSON datatypes.JSON `gorm:"type:json;not null"`

	ReceivedAt   time.Time  `gorm:"precision:3;not null"`
	ProcessedAt  *time.Time `gorm:"precision:3"`
	ProcessError *string    `gorm:"type:varchar(255)"`
}

func (WebhookEvent) TableName() string { return "webhook_events" }
