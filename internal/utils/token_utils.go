package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTokenClaims are the claims carried by a session token. Username is
// included so protected handlers can greet the user without a store lookup.
type SessionTokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateJWT mints a signed HS256 session token for the given user.
func GenerateJWT(userID, username, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := SessionTokenClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a session token string and validates its
// signature and standard claims. Expired or foreign-signed tokens fail here.
func ParseAndValidateJWT(tokenString string, secretKey string) (*SessionTokenClaims, error) {
	claims := &SessionTokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
