package ports

import "context"

// AuthService authenticates the configured admin account and issues tokens
// for the maintenance endpoints.
type AuthService interface {
	// Login verifies the credentials and returns a signed JWT.
	// Returns domain.ErrInvalidCredentials when they do not match.
	Login(ctx context.Context, email, password string) (string, error)
}
