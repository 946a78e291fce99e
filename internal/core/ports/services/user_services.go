package services

import (
	"context"

	"github.com/healthpredictor/health_predictor_app/internal/core/domain"
	"github.com/healthpredictor/health_predictor_app/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// CreateUser registers a new local user from a signup request.
	// Returns apperrors.ErrValidation for missing fields and
	// apperrors.ErrDuplicate if the username is taken.
	CreateUser(ctx context.Context, req dto.SignupRequest) (*domain.User, error)

	// UpsertGoogleUser creates a user from a Google profile, or refreshes
	// the stored profile fields in place when the email already exists.
	UpsertGoogleUser(ctx context.Context, name, email, photoURL, providerUserID string) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication.
type UserAuthSvc interface {
	// AuthenticateUser verifies a username/password pair.
	// Returns apperrors.ErrNotFound when no such user exists and
	// apperrors.ErrUnauthorized when the password does not match.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
