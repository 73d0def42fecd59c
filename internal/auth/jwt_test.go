// SPDX-License-Identifier: MIT
package auth

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thatcatcamp/easytheme/internal/config"
)

func TestGenerateToken(t *testing.T) {
	t.Setenv("EASYTHEME_JWT_SECRET", "test-secret")

	token, err := GenerateToken("deploy-bot")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if token == "" {
		t.Error("Token should not be empty")
	}
}

func TestValidateTokenValid(t *testing.T) {
	t.Setenv("EASYTHEME_JWT_SECRET", "test-secret")

	token, err := GenerateToken("deploy-bot")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}

	if claims.Subject != "deploy-bot" {
		t.Errorf("Expected subject deploy-bot, got %s", claims.Subject)
	}
	if claims.Scope != ScopeThemeWrite {
		t.Errorf("Expected scope %s, got %s", ScopeThemeWrite, claims.Scope)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	t.Setenv("EASYTHEME_JWT_SECRET", "test-secret")

	token, err := generateToken("deploy-bot", -time.Hour)
	if err != nil {
		t.Fatalf("generateToken failed: %v", err)
	}

	if _, err := ValidateToken(token); err == nil {
		t.Error("ValidateToken should fail for an expired token")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Setenv("EASYTHEME_JWT_SECRET", "first-secret")
	token, err := GenerateToken("deploy-bot")
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("EASYTHEME_JWT_SECRET", "second-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Error("ValidateToken should fail for a token signed with another secret")
	}
}

func TestValidateTokenMalformed(t *testing.T) {
	t.Setenv("EASYTHEME_JWT_SECRET", "test-secret")
	token := "not-a-valid-jwt-token"

	_, err := ValidateToken(token)
	if err == nil {
		t.Error("ValidateToken should fail for malformed token")
	}
}

func TestValidateTokenEmpty(t *testing.T) {
	_, err := ValidateToken("")
	if err == nil {
		t.Error("ValidateToken should fail for empty token")
	}
}

func TestGenerateSecret(t *testing.T) {
	a, err := GenerateSecret()
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateSecret()
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != 64 || a == b {
		t.Errorf("unexpected secrets %q and %q", a, b)
	}
}

func TestDefaultSecretRejected(t *testing.T) {
	t.Setenv("EASYTHEME_JWT_SECRET", "")
	if err := config.InitConfig(filepath.Join(t.TempDir(), "config.yaml")); err != nil {
		t.Fatal(err)
	}

	if err := CheckSecret(); !errors.Is(err, ErrInsecureSecret) {
		t.Errorf("Expected ErrInsecureSecret, got %v", err)
	}
	if _, err := GenerateToken("cli"); !errors.Is(err, ErrInsecureSecret) {
		t.Errorf("GenerateToken should refuse the default secret, got %v", err)
	}

	// A token signed with the well-known placeholder must not validate
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Scope: ScopeThemeWrite,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "attacker",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := forged.SignedString([]byte(config.DefaultJWTSecret))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateToken(signed); !errors.Is(err, ErrInsecureSecret) {
		t.Errorf("Expected ErrInsecureSecret for forged token, got %v", err)
	}

	secret, err := GenerateSecret()
	if err != nil {
		t.Fatal(err)
	}
	if err := config.Set("auth.jwt_secret", secret); err != nil {
		t.Fatal(err)
	}
	if err := CheckSecret(); err != nil {
		t.Errorf("generated secret should be accepted, got %v", err)
	}
}

func TestEmptySecretRejected(t *testing.T) {
	t.Setenv("EASYTHEME_JWT_SECRET", "")
	if err := config.InitConfig(filepath.Join(t.TempDir(), "config.yaml")); err != nil {
		t.Fatal(err)
	}
	if err := config.Set("auth.jwt_secret", ""); err != nil {
		t.Fatal(err)
	}

	if err := CheckSecret(); !errors.Is(err, ErrInsecureSecret) {
		t.Errorf("Expected ErrInsecureSecret, got %v", err)
	}
}
