package ports

import (
	"context"

	"github.com/releason/blog-api/internal/core/domain"
)

// UserRepository defines persistence operations for users.
//
// Insert must enforce email uniqueness at the storage layer (unique index)
// and return domain.ErrEmailConflict on a duplicate; the service-level
// pre-check is advisory and can race.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Insert(ctx context.Context, u *domain.User) error
	// Update replaces the stored document for u.ID. Returns
	// domain.ErrEmailConflict when the new email collides with another user.
	Update(ctx context.Context, u *domain.User) error
	// Delete removes the user. Returns domain.ErrUserNotFound when absent.
	Delete(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
