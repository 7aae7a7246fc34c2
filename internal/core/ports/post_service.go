package ports

import (
	"context"

	"github.com/releason/blog-api/internal/core/domain"
)

// CreatePostInput carries all data needed to create a new post.
type CreatePostInput struct {
	Title          string
	Content        string
	UserID         string
	IdempotencyKey string
}

// PostPatch is a partial update. Only title and content are mutable; the
// owning user and creation timestamp are fixed at creation.
type PostPatch struct {
	Title   *string
	Content *string
}

// PostService defines use-case operations for posts.
type PostService interface {
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	// List returns all posts, optionally filtered by owning user id.
	List(ctx context.Context, userID string) ([]*domain.Post, error)
	Update(ctx context.Context, id string, patch PostPatch) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}
