package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/healthpredictor/health_predictor_app/internal/apperrors"
	"github.com/healthpredictor/health_predictor_app/internal/core/domain"
	portsrepo "github.com/healthpredictor/health_predictor_app/internal/core/ports/repositories"
	"github.com/healthpredictor/health_predictor_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) models.User {
	m := models.User{
		UserID:         d.UserID,
		Username:       nullString(d.Username),
		Email:          nullString(d.Email),
		Name:           nullString(d.Name),
		PhotoURL:       nullString(d.PhotoURL),
		AuthProvider:   string(d.AuthProvider),
		ProviderUserID: nullString(d.ProviderUserID),
		CreatedAt:      d.CreatedAt,
		LastUpdatedAt:  d.LastUpdatedAt,
	}
	if d.PasswordHash != nil {
		m.PasswordHash = sql.NullString{String: *d.PasswordHash, Valid: true}
	}
	return m
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:         m.UserID,
		Username:       m.Username.String,
		Email:          m.Email.String,
		Name:           m.Name.String,
		PhotoURL:       m.PhotoURL.String,
		AuthProvider:   domain.AuthProvider(m.AuthProvider),
		ProviderUserID: m.ProviderUserID.String,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
	if m.PasswordHash.Valid {
		hash := m.PasswordHash.String
		d.PasswordHash = &hash
	}
	return d
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := toModelUser(user)
	query := `
        INSERT INTO users (user_id, username, email, name, photo_url, auth_provider, provider_user_id, password_hash, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Username,
		modelUser.Email,
		modelUser.Name,
		modelUser.PhotoURL,
		modelUser.AuthProvider,
		modelUser.ProviderUserID,
		modelUser.PasswordHash,
		modelUser.CreatedAt,
		modelUser.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("user already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUserBy(ctx, "user_id", userID)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findUserBy(ctx, "username", username)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUserBy(ctx, "email", email)
}

func (r *PgxUserRepository) findUserBy(ctx context.Context, column, value string) (*domain.User, error) {
	query := fmt.Sprintf(`
		SELECT user_id, username, email, name, photo_url, auth_provider, provider_user_id, password_hash, created_at, last_updated_at
		FROM users
		WHERE %s = $1;
	`, column)
	var modelUser models.User
	err := r.db.QueryRow(ctx, query, value).Scan(
		&modelUser.UserID,
		&modelUser.Username,
		&modelUser.Email,
		&modelUser.Name,
		&modelUser.PhotoURL,
		&modelUser.AuthProvider,
		&modelUser.ProviderUserID,
		&modelUser.PasswordHash,
		&modelUser.CreatedAt,
		&modelUser.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by %s: %w", column, err)
	}

	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	modelUser := toModelUser(user)
	query := `
        UPDATE users
        SET name = $1, photo_url = $2, provider_user_id = $3, auth_provider = $4, last_updated_at = $5
        WHERE user_id = $6;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		modelUser.Name,
		modelUser.PhotoURL,
		modelUser.ProviderUserID,
		modelUser.AuthProvider,
		modelUser.LastUpdatedAt,
		modelUser.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update user query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
