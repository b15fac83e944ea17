package ports

import (
	"context"

	"taskforge/internal/core/domain"
)

type UserDirectory interface {
	Create(ctx context.Context, input domain.CreateUserInput) (domain.User, error)
	GetByID(ctx context.Context, userID uint64) (domain.User, error)
	GetByUsernameAndEmail(ctx context.Context, username, email string) (domain.User, error)
}

type UserService interface {
	Signup(ctx context.Context, username, email, password string) (domain.User, error)
	Login(ctx context.Context, username, email, password string) (domain.User, error)
	// Resolve validates a caller-supplied identity against the directory.
	Resolve(ctx context.Context, userID uint64) (domain.User, error)
}
