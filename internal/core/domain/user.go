package domain

// AuthProvider identifies how an account authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents an account in the credential store.
// PasswordHash is nil for OAuth-only accounts. Username is empty for
// accounts created through a provider, Email is empty for local signups.
type User struct {
	UserID         string       `json:"userID"`
	Username       string       `json:"username,omitempty"`
	Email          string       `json:"email,omitempty"`
	Name           string       `json:"name,omitempty"`
	PhotoURL       string       `json:"photoUrl,omitempty"`
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"-"`
	PasswordHash   *string      `json:"-"`
	AuditFields
}
