package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/releason/blog-api/internal/core/domain"
	"github.com/releason/blog-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubPostRepo struct {
	byID      map[string]*domain.Post
	insertErr error
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{byID: make(map[string]*domain.Post)}
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) FindAll(_ context.Context, userID string) ([]*domain.Post, error) {
	var out []*domain.Post
	for _, p := range r.byID {
		if userID != "" && p.UserID != userID {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubPostRepo) Insert(_ context.Context, p *domain.Post) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubPostRepo) Update(_ context.Context, p *domain.Post) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrPostNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubPostRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func seedPost(repo *stubPostRepo, id, userID string) *domain.Post {
	p := &domain.Post{ID: id, Title: "T", Content: "C", UserID: userID, CreatedAt: time.Now().UTC()}
	repo.byID[id] = p
	return p
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestPostService_Create_Success(t *testing.T) {
	users := newStubUserRepo()
	seedUser(users, "u1", "a@x.com")
	repo := newStubPostRepo()
	svc := NewPostService(repo, users, nil, discardLogger)

	post, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title: "T", Content: "C", UserID: "u1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.ID == "" {
		t.Error("expected generated id")
	}
	if post.CreatedAt.IsZero() {
		t.Error("CreatedAt must not be zero")
	}
	if post.UserID != "u1" {
		t.Errorf("expected user_id u1, got %q", post.UserID)
	}
}

func TestPostService_Create_UserNotFound(t *testing.T) {
	users := newStubUserRepo()
	repo := newStubPostRepo()
	svc := NewPostService(repo, users, nil, discardLogger)

	_, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title: "T", Content: "C", UserID: "bogus",
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Error("post with dangling user reference must never be persisted")
	}
}

// ---------------------------------------------------------------------------
// Update tests
// ---------------------------------------------------------------------------

func TestPostService_Update_TitleOnlyLeavesContent(t *testing.T) {
	users := newStubUserRepo()
	repo := newStubPostRepo()
	seedPost(repo, "p1", "u1")
	svc := NewPostService(repo, users, nil, discardLogger)

	updated, err := svc.Update(context.Background(), "p1", ports.PostPatch{Title: strPtr("New title")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "New title" {
		t.Errorf("title not updated: %q", updated.Title)
	}
	if updated.Content != "C" {
		t.Errorf("content must be unchanged: %q", updated.Content)
	}
}

func TestPostService_Update_OwnerAndTimestampImmutable(t *testing.T) {
	users := newStubUserRepo()
	repo := newStubPostRepo()
	seeded := seedPost(repo, "p1", "u1")
	svc := NewPostService(repo, users, nil, discardLogger)

	updated, err := svc.Update(context.Background(), "p1", ports.PostPatch{
		Title:   strPtr("New"),
		Content: strPtr("Also new"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.UserID != seeded.UserID {
		t.Error("owning user must be immutable")
	}
	if !updated.CreatedAt.Equal(seeded.CreatedAt) {
		t.Error("creation timestamp must never be recomputed")
	}
}

func TestPostService_Update_NotFound(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), newStubUserRepo(), nil, discardLogger)

	_, err := svc.Update(context.Background(), "missing", ports.PostPatch{Title: strPtr("X")})
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// List / Delete tests
// ---------------------------------------------------------------------------

func TestPostService_List_FilterByUser(t *testing.T) {
	repo := newStubPostRepo()
	seedPost(repo, "p1", "u1")
	seedPost(repo, "p2", "u2")
	seedPost(repo, "p3", "u1")
	svc := NewPostService(repo, newStubUserRepo(), nil, discardLogger)

	posts, err := svc.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts for u1, got %d", len(posts))
	}
	for _, p := range posts {
		if p.UserID != "u1" {
			t.Errorf("filter leaked post of user %q", p.UserID)
		}
	}

	all, _ := svc.List(context.Background(), "")
	if len(all) != 3 {
		t.Errorf("expected 3 posts without filter, got %d", len(all))
	}
}

func TestPostService_Delete_NotFound(t *testing.T) {
	repo := newStubPostRepo()
	seedPost(repo, "p1", "u1")
	svc := NewPostService(repo, newStubUserRepo(), nil, discardLogger)

	err := svc.Delete(context.Background(), "missing")
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Error("store must be unchanged after failed delete")
	}
}

// Deleting a post leaves its comments in place: references are validated at
// creation time only.
func TestPostService_Delete_NoCascade(t *testing.T) {
	posts := newStubPostRepo()
	seedPost(posts, "p1", "u1")
	comments := newStubCommentRepo()
	seedComment(comments, "c1", "p1", "u1")
	svc := NewPostService(posts, newStubUserRepo(), nil, discardLogger)

	if err := svc.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comments.byID) != 1 {
		t.Error("deleting a post must not cascade to its comments")
	}
}
