package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/blog-api/internal/apperror"
)

func newTestPostService(t *testing.T) (*PostService, *mockPostRepo) {
	t.Helper()
	posts := newMockPostRepo()
	return NewPostService(posts, testLogger()), posts
}

func TestPostCreate_TrimsFields(t *testing.T) {
	s, _ := newTestPostService(t)

	post, err := s.Create(context.Background(), "  John Smith ", " Test Title ", " body ")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if post.ID == "" {
		t.Error("Create() did not assign an ID")
	}
	if post.Author != "John Smith" || post.Title != "Test Title" || post.Text != "body" {
		t.Errorf("Create() did not trim fields: %+v", post)
	}
}

func TestPostDelete_InvalidID(t *testing.T) {
	s, repo := newTestPostService(t)

	err := s.Delete(context.Background(), "notvalidId")
	if !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("Delete() with malformed id = %v, want ErrValidation", err)
	}
	if len(repo.posts) != 0 {
		t.Error("repo state changed for a malformed id")
	}
}

func TestPostDelete_Flow(t *testing.T) {
	s, _ := newTestPostService(t)

	post, err := s.Create(context.Background(), "a", "t", "x")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := s.Delete(context.Background(), post.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// Second delete: the post is gone.
	if err := s.Delete(context.Background(), post.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("second Delete() = %v, want ErrNotFound", err)
	}
}
