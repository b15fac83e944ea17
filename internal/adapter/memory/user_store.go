package memory

import (
	"context"
	"sync"

	"taskforge/internal/core/domain"
	"taskforge/internal/core/ports"
)

type UserStore struct {
	mu     sync.RWMutex
	nextID uint64
	users  map[uint64]domain.User
}

var _ ports.UserDirectory = (*UserStore)(nil)

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[uint64]domain.User)}
}

func (s *UserStore) Create(_ context.Context, input domain.CreateUserInput) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == input.Username || user.Email == input.Email {
			return domain.User{}, domain.ErrDuplicateUser
		}
	}

	s.nextID++
	user := domain.User{
		ID:           s.nextID,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
	}
	s.users[user.ID] = user

	return user, nil
}

func (s *UserStore) GetByID(_ context.Context, userID uint64) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *UserStore) GetByUsernameAndEmail(_ context.Context, username, email string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username && user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}
