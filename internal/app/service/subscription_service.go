package service

import (
	"context"

	"taskforge/internal/core/domain"
	"taskforge/internal/core/ports"
)

type SubscriptionService struct {
	registry ports.SubscriptionRegistry
}

func NewSubscriptionService(registry ports.SubscriptionRegistry) *SubscriptionService {
	return &SubscriptionService{registry: registry}
}

var _ ports.SubscriptionService = (*SubscriptionService)(nil)

// Subscribe upserts: re-subscribing replaces the previous frequency so a user
// never holds more than one subscription record.
func (s *SubscriptionService) Subscribe(ctx context.Context, userID uint64, frequency domain.SubscriptionFrequency) error {
	return s.registry.Upsert(ctx, domain.Subscription{UserID: userID, Frequency: frequency})
}

func (s *SubscriptionService) Unsubscribe(ctx context.Context, userID uint64) error {
	return s.registry.Delete(ctx, userID)
}
