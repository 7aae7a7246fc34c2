package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/releason/blog-api/internal/metrics"
	"github.com/releason/blog-api/internal/core/domain"
	"github.com/releason/blog-api/internal/core/ports"
)

type CommentService struct {
	repo  ports.CommentRepository
	posts ports.PostRepository
	users ports.UserRepository
	idem  IdempotencyStore
	log   zerolog.Logger

	now   func() time.Time
	newID func() string
}

func NewCommentService(repo ports.CommentRepository, posts ports.PostRepository, users ports.UserRepository, idem IdempotencyStore, logger zerolog.Logger) *CommentService {
	return &CommentService{
		repo:  repo,
		posts: posts,
		users: users,
		idem:  idem,
		log:   logger,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Create validates both references and persists the comment. Post existence
// is checked first and short-circuits: when the post is missing the user
// reference is never evaluated, so a request with two dangling references is
// rejected with ErrPostNotFound.
func (s *CommentService) Create(ctx context.Context, input ports.CreateCommentInput) (*domain.Comment, error) {
	if replay := s.replayed(ctx, input.IdempotencyKey); replay != nil {
		return replay, nil
	}

	postExists, err := s.posts.ExistsByID(ctx, input.PostID)
	if err != nil {
		return nil, fmt.Errorf("check post: %w", err)
	}
	if !postExists {
		metrics.ValidationRejectionsTotal.WithLabelValues("post_not_found").Inc()
		return nil, domain.ErrPostNotFound
	}

	userExists, err := s.users.ExistsByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !userExists {
		metrics.ValidationRejectionsTotal.WithLabelValues("user_not_found").Inc()
		return nil, domain.ErrUserNotFound
	}

	comment := &domain.Comment{
		ID:        s.newID(),
		Content:   input.Content,
		PostID:    input.PostID,
		UserID:    input.UserID,
		CreatedAt: s.now(),
	}

	if err := s.repo.Insert(ctx, comment); err != nil {
		s.log.Error().Err(err).Msg("failed to create comment")
		return nil, err
	}

	s.remember(ctx, input.IdempotencyKey, comment.ID)
	metrics.EntitiesCreatedTotal.WithLabelValues("comment").Inc()
	s.log.Info().Str("comment_id", comment.ID).Str("post_id", comment.PostID).Msg("comment created")

	return comment, nil
}

func (s *CommentService) Get(ctx context.Context, id string) (*domain.Comment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CommentService) List(ctx context.Context, postID string) ([]*domain.Comment, error) {
	return s.repo.FindAll(ctx, postID)
}

func (s *CommentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues("comment").Inc()
	s.log.Info().Str("comment_id", id).Msg("comment deleted")
	return nil
}

func (s *CommentService) replayed(ctx context.Context, key string) *domain.Comment {
	if key == "" || s.idem == nil {
		return nil
	}
	id, err := s.idem.Lookup(ctx, scopeComments, key)
	if err != nil {
		s.log.Warn().Err(err).Msg("idempotency lookup failed, proceeding with create")
		return nil
	}
	if id == "" {
		return nil
	}
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil
	}
	metrics.IdempotentReplaysTotal.WithLabelValues("comment").Inc()
	s.log.Info().Str("idempotency_key", key).Str("comment_id", id).Msg("idempotent replay")
	return comment
}

func (s *CommentService) remember(ctx context.Context, key, id string) {
	if key == "" || s.idem == nil {
		return
	}
	if err := s.idem.Remember(ctx, scopeComments, key, id); err != nil {
		s.log.Warn().Err(err).Str("idempotency_key", key).Msg("failed to record idempotency key")
	}
}
