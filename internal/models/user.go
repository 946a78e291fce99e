package models

import (
	"database/sql"
	"time"
)

// User is the database representation of a credential store record.
// Username is null for provider-created accounts, Email is null for local
// signups, PasswordHash is null for OAuth-only accounts.
type User struct {
	UserID         string         `db:"user_id"`
	Username       sql.NullString `db:"username"`
	Email          sql.NullString `db:"email"`
	Name           sql.NullString `db:"name"`
	PhotoURL       sql.NullString `db:"photo_url"`
	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
	PasswordHash   sql.NullString `db:"password_hash"`
	CreatedAt      time.Time      `db:"created_at"`
	LastUpdatedAt  time.Time      `db:"last_updated_at"`
}
