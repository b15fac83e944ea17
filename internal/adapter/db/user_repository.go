package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"taskforge/internal/core/domain"
	"taskforge/internal/core/ports"
	"taskforge/pkg/metrics"
)

const mysqlErrDuplicateEntry = 1062

type UserRepository struct {
	db *sqlx.DB
}

var _ ports.UserDirectory = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userRow struct {
	ID           uint64 `db:"id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
}

func (r *UserRepository) Create(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	defer metrics.ObserveStoreQuery("create", "users", time.Now())

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)",
		input.Username, input.Email, input.PasswordHash,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return domain.User{}, domain.ErrDuplicateUser
		}
		return domain.User{}, err
	}

	userID, err := result.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}

	return domain.User{
		ID:           uint64(userID),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
	}, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID uint64) (domain.User, error) {
	defer metrics.ObserveStoreQuery("get", "users", time.Now())

	var row userRow
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM users WHERE id = ?", userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) GetByUsernameAndEmail(ctx context.Context, username, email string) (domain.User, error) {
	defer metrics.ObserveStoreQuery("get_by_credentials", "users", time.Now())

	var row userRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM users WHERE username = ? AND email = ?", username, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return mapUserRowToDomainUser(row), nil
}

func mapUserRowToDomainUser(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
	}
}
