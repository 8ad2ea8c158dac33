package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rs/xid"
	"github.com/sakif/blog-api/internal/apperror"
	"github.com/sakif/blog-api/internal/model"
	"github.com/sakif/blog-api/internal/repository"
)

// checkID rejects path identifiers that are not well-formed xids before any
// store query runs. A malformed id can never match a row, so answering 400
// straight away is both cheaper and more truthful than a 404.
func checkID(field, value string) error {
	if _, err := xid.FromString(value); err != nil {
		return apperror.ValidationFailed(field, fmt.Sprintf("Invalid request. Invalid %s", field))
	}
	return nil
}

// PostService handles business logic for blog posts.
type PostService struct {
	posts  repository.PostRepository
	logger *slog.Logger
}

func NewPostService(posts repository.PostRepository, logger *slog.Logger) *PostService {
	return &PostService{posts: posts, logger: logger}
}

// List returns all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]model.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		s.logger.Error("failed to list posts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return posts, nil
}

// Create saves a new post. Field presence has been validated at the
// handler boundary; the service normalizes whitespace and persists.
func (s *PostService) Create(ctx context.Context, author, title, text string) (*model.Post, error) {
	post := &model.Post{
		Author: strings.TrimSpace(author),
		Title:  strings.TrimSpace(title),
		Text:   strings.TrimSpace(text),
	}

	if err := s.posts.Create(ctx, post); err != nil {
		s.logger.Error("failed to create post",
			slog.String("title", post.Title),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating post: %w", err)
	}

	s.logger.Info("post created",
		slog.String("id", post.ID),
		slog.String("title", post.Title),
	)

	return post, nil
}

// Delete removes a post and all of its comments. The three-step gate:
// id format (400), existence (404, reported by the repository), effect.
func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := checkID("postId", id); err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("post deleted", slog.String("id", id))
	return nil
}
