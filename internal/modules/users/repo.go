package users

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) FindByID(ctx context.Context, id string) (User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return User{}, err
	}
	return u, nil
}

func (r *Repo) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// SetSubscribed flips the subscription entitlement flag. It is a
// package-level function taking the transaction handle so the webhook
// reconciler can run it inside its own database transaction.
func SetSubscribed(ctx context.Context, tx *gorm.DB, userID string, subscribed bool) error {
	return tx.WithContext(ctx).Model(&User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"is_subscribe": subscribed,
			"updated_at":   time.Now(),
		}).Error
}
