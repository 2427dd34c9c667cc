package transactions

import "time"

const (
	StatusPending = "pending"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

const (
	TypeCard         = "card"
	TypeSubscription = "subscription"
)

// MethodPaystack is the only payment method currently wired.
const MethodPaystack = "paystack"

// Transaction is one payment attempt. Rows are created pending by the
// payment initiator and moved to a terminal status exactly once by the
// webhook reconciler; they are never deleted (financial audit trail).
type Transaction struct {
	ID        string `gorm:"type:char(36);primaryKey"`
	UserID    string `gorm:"type:char(36);not null;index:ix_transactions_user_id"`
	Reference string `gorm:"type:varchar(64);not null;uniqueIndex:ux_transactions_reference"`

	// Amount in the gateway's major currency unit; converted to minor
	// units only at the gateway boundary.
	Amount int    `gorm:"not null"`
	Status string `gorm:"type:varchar(16);not null"`

	PaymentType   string `gorm:"type:varchar(16);not null"`
	Duration      *int   // months, subscription payments only
	NumberOfCards *int   // card payments only
	PaymentMethod string `gorm:"type:varchar(32);not null"`

	CreatedAt time.Time `gorm:"precision:3;not null"`
	UpdatedAt time.Time `gorm:"precision:3;not null"`
}

func (Transaction) TableName() string { return "transactions" }

// Terminal reports whether the transaction has reached a final status.
func (t Transaction) Terminal() bool {
	return t.Status == StatusSuccess || t.Status == StatusFailed
}
