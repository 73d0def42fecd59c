// SPDX-License-Identifier: MIT
package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thatcatcamp/easytheme/internal/config"
)

// ScopeThemeWrite allows setting and clearing themes over the API
const ScopeThemeWrite = "theme:write"

// Claims represents JWT claims for API access
type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// ErrInsecureSecret means no signing secret was set, or it is still the
// placeholder written on first run
var ErrInsecureSecret = errors.New("jwt secret is unset or the default placeholder")

// getJWTSecret returns the JWT secret from env var or config
func getJWTSecret() (string, error) {
	// Environment variable takes precedence
	secret := os.Getenv("EASYTHEME_JWT_SECRET")
	if secret == "" {
		secret = config.GetString("auth.jwt_secret")
	}
	if secret == "" || secret == config.DefaultJWTSecret {
		return "", ErrInsecureSecret
	}
	return secret, nil
}

// CheckSecret reports ErrInsecureSecret when tokens cannot be trusted
func CheckSecret() error {
	_, err := getJWTSecret()
	return err
}

// GenerateToken creates a theme:write token for subject
func GenerateToken(subject string) (string, error) {
	expiryHours := config.GetInt("auth.jwt_expiry_hours")
	if expiryHours == 0 {
		expiryHours = 8 // Default fallback
	}
	return generateToken(subject, time.Duration(expiryHours)*time.Hour)
}

func generateToken(subject string, ttl time.Duration) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		Scope: ScopeThemeWrite,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and validates a JWT token
func ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token is empty")
	}

	secret, err := getJWTSecret()
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.Scope != ScopeThemeWrite {
		return nil, errors.New("token lacks theme:write scope")
	}

	return claims, nil
}
