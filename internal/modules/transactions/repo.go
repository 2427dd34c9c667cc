package transactions

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Create(ctx context.Context, t *Transaction) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		if IsDup(err) {
			return ErrDuplicateReference
		}
		return err
	}
	return nil
}

func (r *Repo) FindByReference(ctx context.Context, reference string) (Transaction, error) {
	var t Transaction
	err := r.db.WithContext(ctx).First(&t, "reference = ?", reference).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Transaction{}, ErrNotFound
	}
	if err != nil {
		return Transaction{}, err
	}
	return t, nil
}

func (r *Repo) ListByUser(ctx context.Context, userID string) ([]Transaction, error) {
	var out []Transaction
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&out, "user_id = ?", userID).Error
	return out, err
}

// MarkTerminal advances a pending transaction to the given terminal status
// with a single conditional UPDATE. It reports whether this call won the
// transition; false means the row was already terminal (or a concurrent
// delivery got there first) and side effects must not run.
func MarkTerminal(ctx context.Context, tx *gorm.DB, reference, to string) (bool, error) {
	res := tx.WithContext(ctx).Model(&Transaction{}).
		Where("reference = ? AND status = ?", reference, StatusPending).
		Updates(map[string]any{
			"status":     to,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// IsDup detects a unique-key violation from either the mysql driver or
// gorm's translated error (sqlite in tests).
func IsDup(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == 1062 {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
