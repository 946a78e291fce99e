package repositories

import (
	"context"

	"github.com/healthpredictor/health_predictor_app/internal/core/domain"
)

// UserRepository defines the persistence operations for the credential store.
type UserRepository interface {
	// SaveUser inserts a new user record. A duplicate username or email
	// surfaces as apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by ID, apperrors.ErrNotFound if absent.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username, apperrors.ErrNotFound if absent.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, apperrors.ErrNotFound if absent.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateUser overwrites the mutable profile fields of an existing user.
	UpdateUser(ctx context.Context, user domain.User) error
}
