package orders

import "time"

// Order is one fulfilled subscription window. Created only as a side
// effect of a successful subscription payment; immutable afterward.
type Order struct {
	ID               string    `gorm:"type:char(36);primaryKey"`
	UserID           string    `gorm:"type:char(36);not null;index:ix_orders_user_id"`
	StartDate        time.Time `gorm:"precision:3;not null"`
	EndDate          time.Time `gorm:"precision:3;not null"`
	DurationInMonths int       `gorm:"not null"`
	PaymentType      string    `gorm:"type:varchar(16);not null"`

	CreatedAt time.Time `gorm:"precision:3;not null"`
	UpdatedAt time.Time `gorm:"precision:3;not null"`
}

func (Order) TableName() string { return "orders" }
