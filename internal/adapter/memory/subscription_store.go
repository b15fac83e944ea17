package memory

import (
	"context"
	"sync"

	"taskforge/internal/core/domain"
	"taskforge/internal/core/ports"
)

type SubscriptionStore struct {
	mu   sync.RWMutex
	subs map[uint64]domain.Subscription
}

var _ ports.SubscriptionRegistry = (*SubscriptionStore)(nil)

func NewSubscriptionStore() *SubscriptionStore {
	return &SubscriptionStore{subs: make(map[uint64]domain.Subscription)}
}

func (s *SubscriptionStore) Upsert(_ context.Context, sub domain.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs[sub.UserID] = sub
	return nil
}

func (s *SubscriptionStore) Delete(_ context.Context, userID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.subs, userID)
	return nil
}

func (s *SubscriptionStore) GetByUserID(_ context.Context, userID uint64) (domain.Subscription, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.subs[userID]
	return sub, ok, nil
}
