package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// NewOrder builds a subscription window starting now. Pure so the date
// arithmetic is testable without a database; the reconciler also uses it
// to insert inside its own transaction.
func NewOrder(userID string, durationMonths int, now time.Time) Order {
	return Order{
		ID:               uuid.NewString(),
		UserID:           userID,
		StartDate:        now,
		EndDate:          addMonths(now, durationMonths),
		DurationInMonths: durationMonths,
		PaymentType:      "subscription",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (s *Service) Create(ctx context.Context, userID string, durationMonths int) (Order, error) {
	o := NewOrder(userID, durationMonths, time.Now())
	if err := s.db.WithContext(ctx).Create(&o).Error; err != nil {
		return Order{}, err
	}
	return o, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	var out []Order
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&out, "user_id = ?", userID).Error
	return out, err
}

// addMonths does calendar-month arithmetic with end-of-month clamping:
// Jan 31 + 1 month is Feb 28 (29 in leap years), never Mar 2/3.
// time.Time.AddDate normalizes overflow instead of clamping, so the day
// is clamped to the target month's last day explicitly.
func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
