package ports

import (
	"context"

	"taskforge/internal/core/domain"
)

type SubscriptionRegistry interface {
	// Upsert replaces any existing subscription for the user.
	Upsert(ctx context.Context, sub domain.Subscription) error
	// Delete is idempotent: removing an absent subscription is not an error.
	Delete(ctx context.Context, userID uint64) error
	GetByUserID(ctx context.Context, userID uint64) (domain.Subscription, bool, error)
}

type SubscriptionService interface {
	Subscribe(ctx context.Context, userID uint64, frequency domain.SubscriptionFrequency) error
	Unsubscribe(ctx context.Context, userID uint64) error
}
