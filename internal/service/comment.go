package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/blog-api/internal/model"
	"github.com/sakif/blog-api/internal/repository"
)

// CommentService handles business logic for comments on posts.
//
// Every identifier-addressed operation runs the same gate: format check
// first (the store is never queried for a malformed id), then existence,
// then the effect.
type CommentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	logger   *slog.Logger
}

func NewCommentService(
	comments repository.CommentRepository,
	posts repository.PostRepository,
	logger *slog.Logger,
) *CommentService {
	return &CommentService{comments: comments, posts: posts, logger: logger}
}

// ListByPost returns the comments of an existing post.
//
// A missing post is a 404 even though the comment query itself would just
// return nothing — "post with zero comments" (200 + empty array) and "post
// doesn't exist" are distinct answers.
func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]model.Comment, error) {
	if err := checkID("postId", postID); err != nil {
		return nil, err
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		s.logger.Error("failed to list comments",
			slog.String("postID", postID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	return comments, nil
}

// Create saves a new comment under an existing post. The post existence
// check runs before anything is written, so a comment can never be
// persisted against a dead postId.
func (s *CommentService) Create(ctx context.Context, postID, name, text string) (*model.Comment, error) {
	if err := checkID("postId", postID); err != nil {
		return nil, err
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		PostID: postID,
		Name:   strings.TrimSpace(name),
		Text:   strings.TrimSpace(text),
	}

	if err := s.comments.CreateComment(ctx, comment); err != nil {
		s.logger.Error("failed to create comment",
			slog.String("postID", postID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	s.logger.Info("comment created",
		slog.String("id", comment.ID),
		slog.String("postID", postID),
	)

	return comment, nil
}

// Delete removes a single comment.
func (s *CommentService) Delete(ctx context.Context, postID, commentID string) error {
	if err := checkID("postId", postID); err != nil {
		return err
	}
	if err := checkID("commentId", commentID); err != nil {
		return err
	}

	if err := s.comments.DeleteComment(ctx, commentID); err != nil {
		return err
	}

	s.logger.Info("comment deleted", slog.String("id", commentID))
	return nil
}

// Like increments the like counter and returns the new value.
func (s *CommentService) Like(ctx context.Context, commentID string) (int64, error) {
	if err := checkID("commentId", commentID); err != nil {
		return 0, err
	}
	return s.comments.IncrementLike(ctx, commentID)
}

// Dislike increments the dislike counter and returns the new value.
func (s *CommentService) Dislike(ctx context.Context, commentID string) (int64, error) {
	if err := checkID("commentId", commentID); err != nil {
		return 0, err
	}
	return s.comments.IncrementDislike(ctx, commentID)
}
