package ports

import (
	"context"

	"github.com/releason/blog-api/internal/core/domain"
)

// CreateCommentInput carries all data needed to create a new comment.
type CreateCommentInput struct {
	Content        string
	PostID         string
	UserID         string
	IdempotencyKey string
}

// CommentService defines use-case operations for comments. Comments have no
// update operation: they are immutable once created.
type CommentService interface {
	Create(ctx context.Context, input CreateCommentInput) (*domain.Comment, error)
	Get(ctx context.Context, id string) (*domain.Comment, error)
	// List returns all comments, optionally filtered by post id.
	List(ctx context.Context, postID string) ([]*domain.Comment, error)
	Delete(ctx context.Context, id string) error
}
