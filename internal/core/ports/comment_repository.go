package ports

import (
	"context"

	"github.com/releason/blog-api/internal/core/domain"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	// FindAll returns all comments; when postID is non-empty the result is
	// filtered to comments on that post.
	FindAll(ctx context.Context, postID string) ([]*domain.Comment, error)
	Insert(ctx context.Context, c *domain.Comment) error
	// Delete removes the comment. Returns domain.ErrCommentNotFound when absent.
	Delete(ctx context.Context, id string) error
}
