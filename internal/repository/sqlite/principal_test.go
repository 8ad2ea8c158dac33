package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/blog-api/internal/apperror"
	"github.com/sakif/blog-api/internal/model"
)

func TestUpsertPrincipal_CreatesAndFetches(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	p := &model.Principal{Username: "testuser", PasswordHash: "$2a$10$fakehash"}
	if err := db.Upsert(ctx, p); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if p.ID == "" {
		t.Error("Upsert() did not set principal.ID")
	}

	found, err := db.GetByUsername(ctx, "testuser")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if found.ID != p.ID || found.PasswordHash != p.PasswordHash {
		t.Errorf("round-trip mismatch: got %+v, want %+v", found, p)
	}
}

// TestUpsertPrincipal_RotatesPassword verifies the second upsert for the
// same username keeps the original identity and replaces only the hash.
func TestUpsertPrincipal_RotatesPassword(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	first := &model.Principal{Username: "testuser", PasswordHash: "hash-one"}
	if err := db.Upsert(ctx, first); err != nil {
		t.Fatalf("first Upsert() error = %v", err)
	}

	second := &model.Principal{Username: "testuser", PasswordHash: "hash-two"}
	if err := db.Upsert(ctx, second); err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("upsert changed the principal ID: %s → %s", first.ID, second.ID)
	}
	if second.PasswordHash != "hash-two" {
		t.Errorf("PasswordHash = %q, want %q", second.PasswordHash, "hash-two")
	}

	found, err := db.GetByUsername(ctx, "testuser")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if found.PasswordHash != "hash-two" {
		t.Errorf("stored hash = %q, want rotated value", found.PasswordHash)
	}
}

func TestGetByUsername_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetByUsername(context.Background(), "nobody")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("GetByUsername() on missing user = %v, want ErrNotFound", err)
	}
}
