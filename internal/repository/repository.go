// Package repository defines the storage interfaces the service layer
// depends on. The sqlite subpackage provides the real implementation;
// tests substitute in-memory mocks.
package repository

import (
	"context"

	"github.com/sakif/blog-api/internal/model"
)

// PrincipalRepository manages credential records. There is typically a
// single registered principal, created by cmd/seed.
type PrincipalRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.Principal, error)
	// Upsert inserts the principal or, if the username already exists,
	// replaces its password hash. The ID and timestamps are filled in.
	Upsert(ctx context.Context, p *model.Principal) error
}

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id string) (*model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	// Delete removes the post and every comment referencing it as one
	// logical operation. Returns apperror.ErrNotFound if the post does
	// not exist.
	Delete(ctx context.Context, id string) error
}

// CommentRepository method names carry the Comment suffix where they would
// otherwise collide with PostRepository on the shared sqlite implementation.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	ListByPost(ctx context.Context, postID string) ([]model.Comment, error)
	DeleteComment(ctx context.Context, id string) error
	// IncrementLike / IncrementDislike bump the counter as a single
	// atomic statement (never read-modify-write) and return the new value.
	IncrementLike(ctx context.Context, id string) (int64, error)
	IncrementDislike(ctx context.Context, id string) (int64, error)
}
