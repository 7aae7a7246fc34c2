package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/releason/blog-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stores
// ---------------------------------------------------------------------------

type memUsers struct{ items []*domain.User }

func (m *memUsers) Insert(_ context.Context, u *domain.User) error {
	m.items = append(m.items, u)
	return nil
}
func (m *memUsers) FindAll(_ context.Context) ([]*domain.User, error) { return m.items, nil }
func (m *memUsers) DeleteAll(_ context.Context) error {
	m.items = nil
	return nil
}

type memPosts struct{ items []*domain.Post }

func (m *memPosts) Insert(_ context.Context, p *domain.Post) error {
	m.items = append(m.items, p)
	return nil
}
func (m *memPosts) DeleteAll(_ context.Context) error {
	m.items = nil
	return nil
}

type memComments struct{ items []*domain.Comment }

func (m *memComments) Insert(_ context.Context, c *domain.Comment) error {
	m.items = append(m.items, c)
	return nil
}
func (m *memComments) DeleteAll(_ context.Context) error {
	m.items = nil
	return nil
}

func newSeeder() (*Seeder, *memUsers, *memPosts, *memComments) {
	users := &memUsers{}
	posts := &memPosts{}
	comments := &memComments{}
	return New(users, posts, comments, zerolog.Nop()), users, posts, comments
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestSeeder_Run_PopulatesDataset(t *testing.T) {
	s, users, posts, comments := newSeeder()

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users.items) != 5 {
		t.Errorf("expected 5 users, got %d", len(users.items))
	}
	if len(posts.items) != 8 {
		t.Errorf("expected 8 posts, got %d", len(posts.items))
	}
	if len(comments.items) != 12 {
		t.Errorf("expected 12 comments, got %d", len(comments.items))
	}
}

func TestSeeder_Run_ReferencesAreValid(t *testing.T) {
	s, users, posts, comments := newSeeder()
	_ = s.Run(context.Background())

	userIDs := make(map[string]bool)
	for _, u := range users.items {
		if u.ID == "" {
			t.Fatal("seeded user without id")
		}
		userIDs[u.ID] = true
	}
	postIDs := make(map[string]bool)
	for _, p := range posts.items {
		if !userIDs[p.UserID] {
			t.Errorf("post %q references unknown user %q", p.Title, p.UserID)
		}
		postIDs[p.ID] = true
	}
	for _, c := range comments.items {
		if !postIDs[c.PostID] {
			t.Errorf("comment references unknown post %q", c.PostID)
		}
		if !userIDs[c.UserID] {
			t.Errorf("comment references unknown user %q", c.UserID)
		}
	}
}

func TestSeeder_Run_EmailsAreUnique(t *testing.T) {
	s, users, _, _ := newSeeder()
	_ = s.Run(context.Background())

	seen := make(map[string]bool)
	for _, u := range users.items {
		if seen[u.Email] {
			t.Fatalf("duplicate seeded email: %s", u.Email)
		}
		seen[u.Email] = true
	}
}

func TestSeeder_Run_SkipsWhenNotEmpty(t *testing.T) {
	s, users, posts, _ := newSeeder()
	users.items = append(users.items, &domain.User{ID: "existing", Email: "x@x.com"})

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users.items) != 1 {
		t.Errorf("seed must be a no-op on a non-empty store; got %d users", len(users.items))
	}
	if len(posts.items) != 0 {
		t.Errorf("seed must be a no-op on a non-empty store; got %d posts", len(posts.items))
	}
}

func TestSeeder_Reset_WipesAndReseeds(t *testing.T) {
	s, users, posts, comments := newSeeder()
	users.items = append(users.items, &domain.User{ID: "old", Email: "old@x.com"})
	posts.items = append(posts.items, &domain.Post{ID: "old-post"})

	if err := s.Reset(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users.items) != 5 || len(posts.items) != 8 || len(comments.items) != 12 {
		t.Errorf("reset must replace the dataset: %d/%d/%d", len(users.items), len(posts.items), len(comments.items))
	}
	for _, u := range users.items {
		if u.ID == "old" {
			t.Error("reset must remove pre-existing records")
		}
	}
}
