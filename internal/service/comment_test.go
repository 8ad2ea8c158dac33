package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/xid"
	"github.com/sakif/blog-api/internal/apperror"
	"github.com/sakif/blog-api/internal/model"
)

// mockPostRepo is an in-memory PostRepository.
type mockPostRepo struct {
	posts map[string]*model.Post
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[string]*model.Post)}
}

func (m *mockPostRepo) Create(_ context.Context, post *model.Post) error {
	post.ID = xid.New().String()
	stored := *post
	m.posts[post.ID] = &stored
	return nil
}

func (m *mockPostRepo) GetByID(_ context.Context, id string) (*model.Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, apperror.NotFound("post")
	}
	result := *p
	return &result, nil
}

func (m *mockPostRepo) List(_ context.Context) ([]model.Post, error) {
	result := make([]model.Post, 0, len(m.posts))
	for _, p := range m.posts {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.posts[id]; !ok {
		return apperror.NotFound("post")
	}
	delete(m.posts, id)
	return nil
}

// mockCommentRepo records calls so tests can assert nothing was persisted.
type mockCommentRepo struct {
	comments map[string]*model.Comment
	creates  int
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[string]*model.Comment)}
}

func (m *mockCommentRepo) CreateComment(_ context.Context, comment *model.Comment) error {
	m.creates++
	comment.ID = xid.New().String()
	stored := *comment
	m.comments[comment.ID] = &stored
	return nil
}

func (m *mockCommentRepo) ListByPost(_ context.Context, postID string) ([]model.Comment, error) {
	result := []model.Comment{}
	for _, c := range m.comments {
		if c.PostID == postID {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *mockCommentRepo) DeleteComment(_ context.Context, id string) error {
	if _, ok := m.comments[id]; !ok {
		return apperror.NotFound("comment")
	}
	delete(m.comments, id)
	return nil
}

func (m *mockCommentRepo) IncrementLike(_ context.Context, id string) (int64, error) {
	c, ok := m.comments[id]
	if !ok {
		return 0, apperror.NotFound("comment")
	}
	c.Like++
	return c.Like, nil
}

func (m *mockCommentRepo) IncrementDislike(_ context.Context, id string) (int64, error) {
	c, ok := m.comments[id]
	if !ok {
		return 0, apperror.NotFound("comment")
	}
	c.Dislike++
	return c.Dislike, nil
}

func newTestCommentService(t *testing.T) (*CommentService, *mockPostRepo, *mockCommentRepo) {
	t.Helper()
	posts := newMockPostRepo()
	comments := newMockCommentRepo()
	return NewCommentService(comments, posts, testLogger()), posts, comments
}

func TestCommentCreate_InvalidPostID(t *testing.T) {
	s, _, comments := newTestCommentService(t)

	_, err := s.Create(context.Background(), "notvalidId", "Arthur", "text")
	if !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("Create() with malformed postId = %v, want ErrValidation", err)
	}
	if comments.creates != 0 {
		t.Error("comment was persisted despite malformed postId")
	}
}

// TestCommentCreate_MissingPost: a well-formed id for a post that doesn't
// exist is a 404, and the comment must not be persisted.
func TestCommentCreate_MissingPost(t *testing.T) {
	s, _, comments := newTestCommentService(t)

	_, err := s.Create(context.Background(), xid.New().String(), "Arthur", "text")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("Create() under missing post = %v, want ErrNotFound", err)
	}
	if comments.creates != 0 {
		t.Error("orphan comment was persisted")
	}
}

func TestCommentCreate_Success(t *testing.T) {
	s, posts, _ := newTestCommentService(t)

	post := &model.Post{Author: "a", Title: "t", Text: "x"}
	posts.Create(context.Background(), post)

	comment, err := s.Create(context.Background(), post.ID, "  Arthur Smith  ", "Nice")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if comment.PostID != post.ID {
		t.Errorf("comment.PostID = %q, want %q", comment.PostID, post.ID)
	}
	if comment.Name != "Arthur Smith" {
		t.Errorf("comment.Name = %q, want trimmed value", comment.Name)
	}
}

func TestCommentListByPost_MissingPost(t *testing.T) {
	s, _, _ := newTestCommentService(t)

	_, err := s.ListByPost(context.Background(), xid.New().String())
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("ListByPost() on missing post = %v, want ErrNotFound", err)
	}
}

func TestCommentListByPost_EmptyPost(t *testing.T) {
	s, posts, _ := newTestCommentService(t)

	post := &model.Post{Author: "a", Title: "t", Text: "x"}
	posts.Create(context.Background(), post)

	comments, err := s.ListByPost(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("ListByPost() error = %v", err)
	}
	if len(comments) != 0 {
		t.Fatalf("ListByPost() = %d comments, want 0", len(comments))
	}
}

func TestCommentLike_InvalidID(t *testing.T) {
	s, _, _ := newTestCommentService(t)

	_, err := s.Like(context.Background(), "notvalidId")
	if !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("Like() with malformed id = %v, want ErrValidation", err)
	}
}

func TestCommentLikeDislike_Counters(t *testing.T) {
	s, posts, _ := newTestCommentService(t)

	post := &model.Post{Author: "a", Title: "t", Text: "x"}
	posts.Create(context.Background(), post)

	comment, err := s.Create(context.Background(), post.ID, "Arthur", "text")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	for want := int64(1); want <= 3; want++ {
		got, err := s.Like(context.Background(), comment.ID)
		if err != nil {
			t.Fatalf("Like() error = %v", err)
		}
		if got != want {
			t.Errorf("Like() = %d, want %d", got, want)
		}
	}

	got, err := s.Dislike(context.Background(), comment.ID)
	if err != nil {
		t.Fatalf("Dislike() error = %v", err)
	}
	if got != 1 {
		t.Errorf("Dislike() = %d, want 1", got)
	}
}

func TestCommentDelete_InvalidIDs(t *testing.T) {
	s, _, _ := newTestCommentService(t)

	cases := []struct {
		name      string
		postID    string
		commentID string
	}{
		{"bad postId", "nope", xid.New().String()},
		{"bad commentId", xid.New().String(), "nope"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.Delete(context.Background(), tc.postID, tc.commentID)
			if !errors.Is(err, apperror.ErrValidation) {
				t.Fatalf("Delete(%s) = %v, want ErrValidation", tc.name, err)
			}
		})
	}
}
