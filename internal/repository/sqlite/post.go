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

var _ repository.PostRepository = (*DB)(nil)

// Create inserts a new post. The generated xid and creation timestamp are
// written back onto the caller's struct.
func (db *DB) Create(ctx context.Context, post *model.Post) error {
	post.ID = xid.New().String()
	post.CreatedAt = time.Now()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO posts (id, author, title, text, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		post.ID, post.Author, post.Title, post.Text, post.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating post: %w", err)
	}

	return nil
}

// GetByID retrieves a single post. Returns apperror.ErrNotFound when the id
// matches no row.
func (db *DB) GetByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, author, title, text, created_at
		 FROM posts
		 WHERE id = ?`,
		id,
	).Scan(&post.ID, &post.Author, &post.Title, &post.Text, &post.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("post")
		}
		return nil, fmt.Errorf("sqlite: getting post %s: %w", id, err)
	}

	return &post, nil
}

// List returns all posts, newest first.
func (db *DB) List(ctx context.Context) ([]model.Post, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, author, title, text, created_at
		 FROM posts
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing posts: %w", err)
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.Author, &p.Title, &p.Text, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning post row: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating posts: %w", err)
	}

	return posts, nil
}

// Delete removes a post and cascades to its comments inside a single
// transaction, so no caller can observe the post gone but its comments
// still present (or the reverse). Comments go first to keep the foreign
// key satisfied throughout.
func (db *DB) Delete(ctx context.Context, id string) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: beginning delete transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM comments WHERE post_id = ?`, id,
	); err != nil {
		return fmt.Errorf("sqlite: deleting comments of post %s: %w", id, err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting post %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		// Rollback via the deferred call — nothing was deleted.
		return apperror.NotFound("post")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: committing delete of post %s: %w", id, err)
	}

	return nil
}
