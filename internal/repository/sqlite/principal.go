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

// Compile-time check that *DB satisfies the interface.
var _ repository.PrincipalRepository = (*DB)(nil)

// GetByUsername returns the credential record for a username.
// Returns apperror.ErrNotFound if no such principal is registered.
func (db *DB) GetByUsername(ctx context.Context, username string) (*model.Principal, error) {
	var p model.Principal

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at, updated_at
		 FROM principals
		 WHERE username = ?`,
		username,
	).Scan(&p.ID, &p.Username, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("user")
		}
		return nil, fmt.Errorf("sqlite: getting principal %q: %w", username, err)
	}

	return &p, nil
}

// Upsert inserts the principal, or rotates the stored password hash if the
// username already exists. The caller supplies Username and PasswordHash;
// ID and timestamps are filled in here.
//
// ON CONFLICT targets the UNIQUE(username) constraint, so usernames stay
// immutable — a conflicting insert updates the existing row in place.
func (db *DB) Upsert(ctx context.Context, p *model.Principal) error {
	now := time.Now()
	p.ID = xid.New().String()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO principals (id, username, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(username) DO UPDATE SET
			password_hash = excluded.password_hash,
			updated_at    = excluded.updated_at`,
		p.ID, p.Username, p.PasswordHash, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: upserting principal %q: %w", p.Username, err)
	}

	// On the update path the generated ID above was discarded; read back
	// the canonical row so the caller sees the stored identity.
	stored, err := db.GetByUsername(ctx, p.Username)
	if err != nil {
		return err
	}
	*p = *stored

	return nil
}
