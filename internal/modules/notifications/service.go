package notifications

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("notification not found")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) Create(ctx context.Context, title, body, userType, userID string) (Notification, error) {
	now := time.Now()
	n := Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      body,
		IsRead:    false,
		UserType:  userType,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.WithContext(ctx).Create(&n).Error; err != nil {
		return Notification{}, err
	}
	return n, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Notification, error) {
	var out []Notification
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&out, "user_id = ?", userID).Error
	return out, err
}

func (s *Service) MarkRead(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Model(&Notification{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_read": true, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
