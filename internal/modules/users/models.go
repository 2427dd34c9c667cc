package users

import "time"

const (
	AccountPersonal = "personal"
	AccountCompany  = "company"
)

type User struct {
	ID           string  `gorm:"type:char(36);primaryKey"`
	Name         string  `gorm:"type:varchar(255);not null"`
	Email        string  `gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email"`
	Phone        string  `gorm:"type:varchar(32);not null"`
	Username     string  `gorm:"type:varchar(64);not null;uniqueIndex:ux_users_username"`
	ProfileImage *string `gorm:"type:varchar(512)"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	IsVerified   bool    `gorm:"not null;default:false"`
	IsSubscribe  bool    `gorm:"not null;default:false"`
	AccountType  string  `gorm:"type:varchar(32);not null"`

	CreatedAt time.Time `gorm:"precision:3;not null"`
	UpdatedAt time.Time `gorm:"precision:3;not null"`
}

func (User) TableName() string { return "users" }
