// Command seed registers (or re-keys) the API's credential principal.
//
// The server has no self-service registration endpoint — a single account
// gates all write operations. This tool creates it:
//
//	go run ./cmd/seed -username admin -password 'correct horse battery staple'
//
// Hashing happens here, explicitly, before anything touches the store:
// the plaintext is never written anywhere. Running the tool again for an
// existing username rotates the password.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/sakif/blog-api/internal/auth"
	"github.com/sakif/blog-api/internal/model"
	sqliteRepo "github.com/sakif/blog-api/internal/repository/sqlite"
)

func main() {
	username := flag.String("username", "", "username for the principal (required)")
	password := flag.String("password", "", "plaintext password to hash and store (required)")
	dbPath := flag.String("db", "", "database path (defaults to BLOG_DB or data/blog.db)")
	flag.Parse()

	if *username == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	path := *dbPath
	if path == "" {
		path = os.Getenv("BLOG_DB")
	}
	if path == "" {
		path = "data/blog.db"
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("creating database directory: %v", err)
		}
	}

	db, err := sqliteRepo.New(path)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	hash, err := auth.NewPasswordService().Hash(*password)
	if err != nil {
		log.Fatalf("hashing password: %v", err)
	}

	principal := &model.Principal{
		Username:     *username,
		PasswordHash: hash,
	}
	if err := db.Upsert(context.Background(), principal); err != nil {
		log.Fatalf("storing principal: %v", err)
	}

	log.Printf("principal %q ready (id %s, database %s)", principal.Username, principal.ID, path)
}
