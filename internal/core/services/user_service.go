package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/healthpredictor/health_predictor_app/internal/apperrors"
	"github.com/healthpredictor/health_predictor_app/internal/core/domain"
	portsrepo "github.com/healthpredictor/health_predictor_app/internal/core/ports/repositories"
	portssvc "github.com/healthpredictor/health_predictor_app/internal/core/ports/services"
	"github.com/healthpredictor/health_predictor_app/internal/dto"
	"github.com/healthpredictor/health_predictor_app/internal/utils"
	"github.com/google/uuid"
)

type UserService struct {
	userRepo portsrepo.UserRepository
}

func NewUserService(userRepo portsrepo.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// CreateUser registers a new local account. The username pre-check keeps the
// common duplicate path on a friendly error; the unique index backs it up
// against races.
func (s *UserService) CreateUser(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("username and password are required: %w", apperrors.ErrValidation)
	}

	existing, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("username %q is taken: %w", req.Username, apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		AuthProvider: domain.ProviderLocal,
		PasswordHash: &hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// AuthenticateUser verifies a username/password pair against the store.
func (s *UserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user for authentication: %w", err)
	}

	if user.PasswordHash == nil || !utils.CheckPasswordHash(password, *user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

// UpsertGoogleUser refreshes an existing account's provider profile in place,
// or creates one when the email is unknown. Unlike CreateUser this never
// fails on an existing record.
func (s *UserService) UpsertGoogleUser(ctx context.Context, name, email, photoURL, providerUserID string) (*domain.User, error) {
	if name == "" || email == "" || providerUserID == "" {
		return nil, fmt.Errorf("name, email and googleId are required: %w", apperrors.ErrValidation)
	}

	now := time.Now()

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	if existing != nil {
		existing.Name = name
		existing.PhotoURL = photoURL
		existing.ProviderUserID = providerUserID
		existing.AuthProvider = domain.ProviderGoogle
		existing.LastUpdatedAt = now
		if err := s.userRepo.UpdateUser(ctx, *existing); err != nil {
			return nil, fmt.Errorf("failed to refresh provider profile: %w", err)
		}
		return existing, nil
	}

	user := domain.User{
		UserID:         uuid.NewString(),
		Email:          email,
		Name:           name,
		PhotoURL:       photoURL,
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: providerUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create provider user: %w", err)
	}

	return &user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}
