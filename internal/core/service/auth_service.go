package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/releason/blog-api/internal/core/domain"
)

// AuthService authenticates the single configured admin account and issues
// HS256 tokens for the maintenance endpoints. There is no user registration:
// the public CRUD surface is open and the admin credentials come from config.
type AuthService struct {
	adminEmail        string
	adminPasswordHash string
	jwtSecret         string
	tokenTTL          time.Duration
}

func NewAuthService(adminEmail, adminPasswordHash, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		jwtSecret:         jwtSecret,
		tokenTTL:          tokenTTL,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}
	if s.adminEmail == "" || s.adminPasswordHash == "" {
		// admin account not configured: nothing can log in
		return "", domain.ErrInvalidCredentials
	}
	if email != s.adminEmail {
		return "", domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"email": email,
		"role":  domain.RoleAdmin,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
