package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"taskforge/internal/core/domain"
	"taskforge/internal/core/ports"
)

type UserService struct {
	directory  ports.UserDirectory
	bcryptCost int
}

func NewUserService(directory ports.UserDirectory, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{directory: directory, bcryptCost: bcryptCost}
}

var _ ports.UserService = (*UserService)(nil)

func (s *UserService) Signup(ctx context.Context, username, email, password string) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return domain.User{}, err
	}

	return s.directory.Create(ctx, domain.CreateUserInput{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
}

func (s *UserService) Login(ctx context.Context, username, email, password string) (domain.User, error) {
	user, err := s.directory.GetByUsernameAndEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, domain.ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.User{}, domain.ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) Resolve(ctx context.Context, userID uint64) (domain.User, error) {
	return s.directory.GetByID(ctx, userID)
}
