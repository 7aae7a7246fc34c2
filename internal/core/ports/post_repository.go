package ports

import (
	"context"

	"github.com/releason/blog-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// FindAll returns all posts; when userID is non-empty the result is
	// filtered to posts owned by that user.
	FindAll(ctx context.Context, userID string) ([]*domain.Post, error)
	Insert(ctx context.Context, p *domain.Post) error
	Update(ctx context.Context, p *domain.Post) error
	// Delete removes the post. Returns domain.ErrPostNotFound when absent.
	Delete(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
}
