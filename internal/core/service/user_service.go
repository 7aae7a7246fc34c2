package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/releason/blog-api/internal/metrics"
	"github.com/releason/blog-api/internal/core/domain"
	"github.com/releason/blog-api/internal/core/ports"
)

type UserService struct {
	repo ports.UserRepository
	idem IdempotencyStore
	log  zerolog.Logger

	// injected for deterministic tests
	now   func() time.Time
	newID func() string
}

func NewUserService(repo ports.UserRepository, idem IdempotencyStore, logger zerolog.Logger) *UserService {
	return &UserService{
		repo:  repo,
		idem:  idem,
		log:   logger,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Create validates and persists a new user. The email uniqueness pre-check is
// advisory: two concurrent creates with the same email can both pass it, so
// the unique index enforced by the repository is the authoritative guard and
// its duplicate-key error also surfaces as ErrEmailConflict.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if replay := s.replayed(ctx, scopeUsers, input.IdempotencyKey); replay != nil {
		return replay, nil
	}

	exists, err := s.repo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		metrics.ValidationRejectionsTotal.WithLabelValues("email_conflict").Inc()
		return nil, domain.ErrEmailConflict
	}

	if input.Age != nil && *input.Age < 0 {
		metrics.ValidationRejectionsTotal.WithLabelValues("invalid_age").Inc()
		return nil, domain.ErrInvalidAge
	}

	user := &domain.User{
		ID:        s.newID(),
		Email:     input.Email,
		Name:      input.Name,
		Age:       input.Age,
		CreatedAt: s.now(),
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailConflict) {
			metrics.ValidationRejectionsTotal.WithLabelValues("email_conflict").Inc()
			return nil, domain.ErrEmailConflict
		}
		s.log.Error().Err(err).Msg("failed to create user")
		return nil, err
	}

	s.remember(ctx, scopeUsers, input.IdempotencyKey, user.ID)
	metrics.EntitiesCreatedTotal.WithLabelValues("user").Inc()
	s.log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("user created")

	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

// Update applies a partial update: nil patch fields leave the stored value
// unchanged. Age validity is checked before anything is persisted; the email
// uniqueness check runs only when the patch changes the email, so updating a
// user's email to its own current value never conflicts.
func (s *UserService) Update(ctx context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Age != nil && *patch.Age < 0 {
		metrics.ValidationRejectionsTotal.WithLabelValues("invalid_age").Inc()
		return nil, domain.ErrInvalidAge
	}

	if patch.Email != nil && *patch.Email != user.Email {
		exists, err := s.repo.ExistsByEmail(ctx, *patch.Email)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if exists {
			metrics.ValidationRejectionsTotal.WithLabelValues("email_conflict").Inc()
			return nil, domain.ErrEmailConflict
		}
		user.Email = *patch.Email
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Age != nil {
		user.Age = patch.Age
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailConflict) {
			metrics.ValidationRejectionsTotal.WithLabelValues("email_conflict").Inc()
			return nil, domain.ErrEmailConflict
		}
		s.log.Error().Err(err).Str("user_id", id).Msg("failed to update user")
		return nil, err
	}

	s.log.Info().Str("user_id", id).Msg("user updated")
	return user, nil
}

// Delete removes the user. Posts and comments referencing it are left in
// place: references are validated at creation time only, never cascaded.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues("user").Inc()
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// replayed returns the previously created user when the idempotency key has
// been seen before and the user still exists; nil otherwise.
func (s *UserService) replayed(ctx context.Context, scope, key string) *domain.User {
	if key == "" || s.idem == nil {
		return nil
	}
	id, err := s.idem.Lookup(ctx, scope, key)
	if err != nil {
		s.log.Warn().Err(err).Msg("idempotency lookup failed, proceeding with create")
		return nil
	}
	if id == "" {
		return nil
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil
	}
	metrics.IdempotentReplaysTotal.WithLabelValues("user").Inc()
	s.log.Info().Str("idempotency_key", key).Str("user_id", id).Msg("idempotent replay")
	return user
}

func (s *UserService) remember(ctx context.Context, scope, key, id string) {
	if key == "" || s.idem == nil {
		return
	}
	if err := s.idem.Remember(ctx, scope, key, id); err != nil {
		s.log.Warn().Err(err).Str("idempotency_key", key).Msg("failed to record idempotency key")
	}
}
