package notifications

import "time"

const (
	UserTypeUser  = "User"
	UserTypeAdmin = "Admin"
)

type Notification struct {
	ID       string `gorm:"type:char(36);primaryKey"`
	Title    string `gorm:"type:varchar(255);not null"`
	Body     string `gorm:"type:text;not null"`
	IsRead   bool   `gorm:"not null;default:false"`
	UserType string `gorm:"type:varchar(16);not null"`
	UserID   string `gorm:"type:char(36);not null;index:ix_notifications_user_id"`

	CreatedAt time.Time `gorm:"precision:3;not null"`
	UpdatedAt time.Time `gorm:"precision:3;not null"`
}

func (Notification) TableName() string { return "notifications" }
