package repository

import (
	"database/sql"
	"time"

	"github.com/phishdash/phishdash-backend/internal/model"
)

// UserRepositoryInterface defines methods used by the auth service
type UserRepositoryInterface interface {
	GetByEmail(email string) (*model.User, error)
	Create(u *model.User) error
}

// UserRepository is the concrete implementation
type UserRepository struct {
	DB *sql.DB
}

// GetByEmail fetches a user by email address
func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	query := `
        SELECT id, email, password_hash, provider, created_at
        FROM users
        WHERE email = $1
    `
	row := r.DB.QueryRow(query, email)

	var u model.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Provider, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user
func (r *UserRepository) Create(u *model.User) error {
	u.CreatedAt = time.Now()
	if u.Provider == "" {
		u.Provider = "password"
	}
	query := `
        INSERT INTO users (email, password_hash, provider, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	return r.DB.QueryRow(query, u.Email, u.PasswordHash, u.Provider, u.CreatedAt).Scan(&u.ID)
}

var _ UserRepositoryInterface = (*UserRepository)(nil)
