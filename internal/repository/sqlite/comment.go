package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"
	"github.com/sakif/blog-api/internal/apperror"
	"github.com/sakif/blog-api/internal/model"
	"github.com/sakif/blog-api/internal/repository"
)

var _ repository.CommentRepository = (*DB)(nil)

// CreateComment inserts a new comment under an existing post. The service
// layer verifies the post exists first; the foreign key backs that up at
// the storage level.
func (db *DB) CreateComment(ctx context.Context, comment *model.Comment) error {
	comment.ID = xid.New().String()
	comment.CreatedAt = time.Now()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO comments (id, post_id, name, text, like_count, dislike_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		comment.ID, comment.PostID, comment.Name, comment.Text,
		comment.Like, comment.Dislike, comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating comment: %w", err)
	}

	return nil
}

// ListByPost returns every comment on the given post, oldest first.
// A post with no comments yields an empty slice, not nil — the handler
// serializes it as [] rather than null.
func (db *DB) ListByPost(ctx context.Context, postID string) ([]model.Comment, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, post_id, name, text, like_count, dislike_count, created_at
		 FROM comments
		 WHERE post_id = ?
		 ORDER BY created_at ASC, id ASC`,
		postID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing comments of post %s: %w", postID, err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(
			&c.ID, &c.PostID, &c.Name, &c.Text,
			&c.Like, &c.Dislike, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating comments: %w", err)
	}

	return comments, nil
}

// DeleteComment removes a single comment by id.
func (db *DB) DeleteComment(ctx context.Context, id string) error {
	result, err := db.conn.ExecContext(ctx,
		`DELETE FROM comments WHERE id = ?`, id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting comment %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("comment")
	}

	return nil
}

// IncrementLike bumps the like counter by one and returns the new value.
//
// The increment is a single UPDATE with RETURNING: concurrent requests each
// apply their own +1 inside SQLite, so N simultaneous likes always land as
// exactly +N. Never read-modify-write a counter from the application side.
func (db *DB) IncrementLike(ctx context.Context, id string) (int64, error) {
	return db.incrementCounter(ctx, id, "like_count")
}

// IncrementDislike bumps the dislike counter by one and returns the new value.
func (db *DB) IncrementDislike(ctx context.Context, id string) (int64, error) {
	return db.incrementCounter(ctx, id, "dislike_count")
}

// incrementCounter runs the atomic increment for one of the two counter
// columns. The column name is a compile-time constant chosen by the two
// exported wrappers, never caller input.
func (db *DB) incrementCounter(ctx context.Context, id, column string) (int64, error) {
	var count int64

	query := fmt.Sprintf(
		`UPDATE comments SET %s = %s + 1 WHERE id = ? RETURNING %s`,
		column, column, column,
	)
	err := db.conn.QueryRowContext(ctx, query, id).Scan(&count)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, apperror.NotFound("comment")
		}
		return 0, fmt.Errorf("sqlite: incrementing %s of comment %s: %w", column, id, err)
	}

	return count, nil
}
