// Package seed loads the demonstration dataset: five users, eight posts, and
// twelve comments wired together with valid references. It runs at startup
// when the store is empty and on demand through the admin reset endpoint.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/releason/blog-api/internal/metrics"
	"github.com/releason/blog-api/internal/core/domain"
)

// UserStore is the slice of user persistence the seeder needs.
type UserStore interface {
	Insert(ctx context.Context, u *domain.User) error
	FindAll(ctx context.Context) ([]*domain.User, error)
	DeleteAll(ctx context.Context) error
}

// PostStore is the slice of post persistence the seeder needs.
type PostStore interface {
	Insert(ctx context.Context, p *domain.Post) error
	DeleteAll(ctx context.Context) error
}

// CommentStore is the slice of comment persistence the seeder needs.
type CommentStore interface {
	Insert(ctx context.Context, c *domain.Comment) error
	DeleteAll(ctx context.Context) error
}

type Seeder struct {
	users    UserStore
	posts    PostStore
	comments CommentStore
	log      zerolog.Logger

	now   func() time.Time
	newID func() string
}

func New(users UserStore, posts PostStore, comments CommentStore, logger zerolog.Logger) *Seeder {
	return &Seeder{
		users:    users,
		posts:    posts,
		comments: comments,
		log:      logger,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// Run seeds the sample dataset unless users already exist.
func (s *Seeder) Run(ctx context.Context) error {
	existing, err := s.users.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("seed: check existing users: %w", err)
	}
	if len(existing) > 0 {
		s.log.Info().Int("users", len(existing)).Msg("store not empty, skipping seed")
		return nil
	}
	return s.insertAll(ctx)
}

// Reset wipes all three collections and re-seeds. Comments are removed first
// so a partial failure never leaves references without their targets.
func (s *Seeder) Reset(ctx context.Context) error {
	if err := s.comments.DeleteAll(ctx); err != nil {
		return fmt.Errorf("seed reset: wipe comments: %w", err)
	}
	if err := s.posts.DeleteAll(ctx); err != nil {
		return fmt.Errorf("seed reset: wipe posts: %w", err)
	}
	if err := s.users.DeleteAll(ctx); err != nil {
		return fmt.Errorf("seed reset: wipe users: %w", err)
	}
	return s.insertAll(ctx)
}

func (s *Seeder) insertAll(ctx context.Context) error {
	now := s.now()

	type userRow struct {
		email string
		name  string
		age   int
	}
	userRows := []userRow{
		{"john.doe@example.com", "John Doe", 28},
		{"jane.smith@example.com", "Jane Smith", 32},
		{"bob.johnson@example.com", "Bob Johnson", 45},
		{"alice.brown@example.com", "Alice Brown", 24},
		{"charlie.wilson@example.com", "Charlie Wilson", 36},
	}

	users := make([]*domain.User, 0, len(userRows))
	for _, row := range userRows {
		age := row.age
		u := &domain.User{
			ID:        s.newID(),
			Email:     row.email,
			Name:      row.name,
			Age:       &age,
			CreatedAt: now,
		}
		if err := s.users.Insert(ctx, u); err != nil {
			return fmt.Errorf("seed: insert user %s: %w", row.email, err)
		}
		users = append(users, u)
	}

	type postRow struct {
		title   string
		content string
		owner   int // index into users
	}
	postRows := []postRow{
		{"Getting Started with REST APIs", "RESTful APIs are everywhere, and understanding how to design them properly is crucial for any backend developer...", 0},
		{"Introduction to API Test Automation", "Combining API test automation, mocks, and performance testing into a single workflow saves an enormous amount of effort...", 0},
		{"Microservices Architecture Patterns", "Microservices architecture is a method of developing software applications as independently deployable services...", 1},
		{"Docker Best Practices", "Docker has revolutionized how we build, ship, and run applications...", 1},
		{"Designing Relational Data Models", "Getting the entity relationships right up front pays off for the whole life of an application...", 2},
		{"CI/CD Pipeline Setup", "Continuous Integration and Continuous Deployment are essential practices in modern software development...", 3},
		{"Database Optimization Techniques", "Database performance is critical for application speed and user experience...", 3},
		{"Security Best Practices for Web Applications", "Security should be a top priority when developing web applications...", 4},
	}

	posts := make([]*domain.Post, 0, len(postRows))
	for _, row := range postRows {
		p := &domain.Post{
			ID:        s.newID(),
			Title:     row.title,
			Content:   row.content,
			UserID:    users[row.owner].ID,
			CreatedAt: now,
		}
		if err := s.posts.Insert(ctx, p); err != nil {
			return fmt.Errorf("seed: insert post %q: %w", row.title, err)
		}
		posts = append(posts, p)
	}

	type commentRow struct {
		content string
		post    int // index into posts
		author  int // index into users
	}
	commentRows := []commentRow{
		{"Great introduction! Very helpful for beginners.", 0, 1},
		{"Thanks for sharing this. I learned a lot.", 0, 2},
		{"Can you provide more examples?", 1, 3},
		{"This is exactly what I was looking for!", 1, 4},
		{"Excellent explanation of microservices.", 2, 0},
		{"How does this scale in production?", 2, 4},
		{"Docker has indeed changed everything!", 3, 2},
		{"Very comprehensive guide, bookmarked.", 4, 1},
		{"CI/CD is a game changer for our team.", 5, 0},
		{"These optimization tips are gold!", 6, 2},
		{"Security should always come first.", 7, 1},
		{"Looking forward to more content like this!", 7, 3},
	}

	for _, row := range commentRows {
		c := &domain.Comment{
			ID:        s.newID(),
			Content:   row.content,
			PostID:    posts[row.post].ID,
			UserID:    users[row.author].ID,
			CreatedAt: now,
		}
		if err := s.comments.Insert(ctx, c); err != nil {
			return fmt.Errorf("seed: insert comment: %w", err)
		}
	}

	metrics.SeedRunsTotal.Inc()
	s.log.Info().
		Int("users", len(users)).
		Int("posts", len(posts)).
		Int("comments", len(commentRows)).
		Msg("sample data seeded")

	return nil
}
