package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"taskforge/internal/core/domain"
	"taskforge/internal/core/ports"
	"taskforge/pkg/metrics"
)

type SubscriptionRepository struct {
	db *sqlx.DB
}

var _ ports.SubscriptionRegistry = (*SubscriptionRepository)(nil)

func NewSubscriptionRepository(db *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// user_id is the primary key, so the one-record-per-user invariant is
// enforced by the schema and Upsert stays a single statement.
const upsertSubscriptionQuery = `
INSERT INTO subscriptions (user_id, frequency)
VALUES (?, ?)
ON DUPLICATE KEY UPDATE frequency = VALUES(frequency);
`

func (r *SubscriptionRepository) Upsert(ctx context.Context, sub domain.Subscription) error {
	defer metrics.ObserveStoreQuery("upsert", "subscriptions", time.Now())

	_, err := r.db.ExecContext(ctx, upsertSubscriptionQuery, sub.UserID, string(sub.Frequency))
	return err
}

func (r *SubscriptionRepository) Delete(ctx context.Context, userID uint64) error {
	defer metrics.ObserveStoreQuery("delete", "subscriptions", time.Now())

	_, err := r.db.ExecContext(ctx, "DELETE FROM subscriptions WHERE user_id = ?", userID)
	return err
}

func (r *SubscriptionRepository) GetByUserID(ctx context.Context, userID uint64) (domain.Subscription, bool, error) {
	defer metrics.ObserveStoreQuery("get", "subscriptions", time.Now())

	var row struct {
		UserID    uint64 `db:"user_id"`
		Frequency string `db:"frequency"`
	}
	err := r.db.GetContext(ctx, &row, "SELECT user_id, frequency FROM subscriptions WHERE user_id = ?", userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Subscription{}, false, nil
		}
		return domain.Subscription{}, false, err
	}

	return domain.Subscription{
		UserID:    row.UserID,
		Frequency: domain.SubscriptionFrequency(row.Frequency),
	}, true, nil
}
