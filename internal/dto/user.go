package dto

import (
	"github.com/healthpredictor/health_predictor_app/internal/core/domain"
)

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// GoogleSignInRequest is the body of POST /auth/google. The client-side
// Google sign-in posts the provider profile directly; IDToken is optional
// and verified server-side when a Google client ID is configured.
type GoogleSignInRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Photo    string `json:"photo"`
	GoogleID string `json:"googleId"`
	IDToken  string `json:"idToken,omitempty"`
}

// PublicUser is the client-facing view of a user. Credential material is
// never echoed.
type PublicUser struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
	Photo    string `json:"photo,omitempty"`
}

// ToPublicUser converts a domain.User to its public view.
func ToPublicUser(user *domain.User) PublicUser {
	return PublicUser{
		Username: user.Username,
		Email:    user.Email,
		Name:     user.Name,
		Photo:    user.PhotoURL,
	}
}

// SignupResponse is the success body of POST /signup.
type SignupResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
}

// LoginResponse is the success body of POST /login.
type LoginResponse struct {
	Success  bool   `json:"success"`
	Token    string `json:"token"`
	Username string `json:"username"`
}

// GoogleSignInResponse is the success body of POST /auth/google.
type GoogleSignInResponse struct {
	Success bool       `json:"success"`
	User    PublicUser `json:"user"`
}

// SessionUser is the decoded-claims view returned by GET /dashboard.
type SessionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// DashboardResponse is the body of GET /dashboard.
type DashboardResponse struct {
	Message string      `json:"message"`
	User    SessionUser `json:"user"`
}
