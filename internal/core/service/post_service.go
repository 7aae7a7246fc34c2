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

type PostService struct {
	repo  ports.PostRepository
	users ports.UserRepository
	idem  IdempotencyStore
	log   zerolog.Logger

	now   func() time.Time
	newID func() string
}

func NewPostService(repo ports.PostRepository, users ports.UserRepository, idem IdempotencyStore, logger zerolog.Logger) *PostService {
	return &PostService{
		repo:  repo,
		users: users,
		idem:  idem,
		log:   logger,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Create validates that the owning user exists and persists the post. The
// existence check holds at creation time only; deleting the user afterwards
// does not touch the post.
func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	if replay := s.replayed(ctx, input.IdempotencyKey); replay != nil {
		return replay, nil
	}

	exists, err := s.users.ExistsByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		metrics.ValidationRejectionsTotal.WithLabelValues("user_not_found").Inc()
		return nil, domain.ErrUserNotFound
	}

	post := &domain.Post{
		ID:        s.newID(),
		Title:     input.Title,
		Content:   input.Content,
		UserID:    input.UserID,
		CreatedAt: s.now(),
	}

	if err := s.repo.Insert(ctx, post); err != nil {
		s.log.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	s.remember(ctx, scopePosts, input.IdempotencyKey, post.ID)
	metrics.EntitiesCreatedTotal.WithLabelValues("post").Inc()
	s.log.Info().Str("post_id", post.ID).Str("user_id", post.UserID).Msg("post created")

	return post, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PostService) List(ctx context.Context, userID string) ([]*domain.Post, error) {
	return s.repo.FindAll(ctx, userID)
}

// Update merges the patch into the stored post. Only title and content are
// mutable; the owning user is fixed at creation, so no existence re-check runs.
func (s *PostService) Update(ctx context.Context, id string, patch ports.PostPatch) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}

	if err := s.repo.Update(ctx, post); err != nil {
		s.log.Error().Err(err).Str("post_id", id).Msg("failed to update post")
		return nil, err
	}

	s.log.Info().Str("post_id", id).Msg("post updated")
	return post, nil
}

// Delete removes the post without cascading to its comments.
func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues("post").Inc()
	s.log.Info().Str("post_id", id).Msg("post deleted")
	return nil
}

func (s *PostService) replayed(ctx context.Context, key string) *domain.Post {
	if key == "" || s.idem == nil {
		return nil
	}
	id, err := s.idem.Lookup(ctx, scopePosts, key)
	if err != nil {
		s.log.Warn().Err(err).Msg("idempotency lookup failed, proceeding with create")
		return nil
	}
	if id == "" {
		return nil
	}
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil
	}
	metrics.IdempotentReplaysTotal.WithLabelValues("post").Inc()
	s.log.Info().Str("idempotency_key", key).Str("post_id", id).Msg("idempotent replay")
	return post
}

func (s *PostService) remember(ctx context.Context, scope, key, id string) {
	if key == "" || s.idem == nil {
		return
	}
	if err := s.idem.Remember(ctx, scope, key, id); err != nil {
		s.log.Warn().Err(err).Str("idempotency_key", key).Msg("failed to record idempotency key")
	}
}
