package ports

import (
	"context"

	"github.com/releason/blog-api/internal/core/domain"
)

// CreateUserInput carries all data needed to create a new user.
type CreateUserInput struct {
	Email string
	Name  string
	Age   *int
	// IdempotencyKey, when non-empty, makes the create replay-safe: a key
	// already seen returns the originally created user without a new insert.
	IdempotencyKey string
}

// UserPatch is a partial update: nil fields leave the stored value unchanged.
// There is no way to clear a field, matching the merge policy of the API
// (null means "no change", not "erase").
type UserPatch struct {
	Email *string
	Name  *string
	Age   *int
}

// UserService defines use-case operations for users.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
