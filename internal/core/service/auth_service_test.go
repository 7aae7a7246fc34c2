package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/releason/blog-api/internal/core/domain"
)

const testSecret = "test-secret"

func adminSvc(t *testing.T, password string) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return NewAuthService("admin@example.com", string(hash), testSecret, time.Hour)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := adminSvc(t, "s3cret")

	token, err := svc.Login(context.Background(), "admin@example.com", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token must be a valid JWT: %v", err)
	}
	if claims["role"] != domain.RoleAdmin {
		t.Errorf("expected role %q, got %v", domain.RoleAdmin, claims["role"])
	}
	if claims["email"] != "admin@example.com" {
		t.Errorf("unexpected email claim: %v", claims["email"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := adminSvc(t, "s3cret")

	_, err := svc.Login(context.Background(), "admin@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := adminSvc(t, "s3cret")

	_, err := svc.Login(context.Background(), "someone@else.com", "s3cret")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_AdminNotConfigured(t *testing.T) {
	svc := NewAuthService("", "", testSecret, time.Hour)

	_, err := svc.Login(context.Background(), "admin@example.com", "anything")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
