// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — plain values with json struct
// tags controlling how they serialize over the API.
package model

import "time"

// Principal is a registered account that can authenticate.
//
// The password is never stored or returned in plaintext: PasswordHash holds
// the bcrypt output (which embeds its own salt and cost), and the `json:"-"`
// tag guarantees it never leaks into an API response.
type Principal struct {
	ID           string    `json:"id"        db:"id"`
	Username     string    `json:"username"  db:"username"`
	PasswordHash string    `json:"-"         db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Post is a blog post. Comments reference it by PostID; they are not
// embedded here.
type Post struct {
	ID        string    `json:"id"        db:"id"`
	Author    string    `json:"author"    db:"author"`
	Title     string    `json:"title"     db:"title"`
	Text      string    `json:"text"      db:"text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Comment is a reader comment attached to a post.
//
// Like and Dislike are plain counters, incremented atomically in the store.
// The JSON field names ("like", "dislike") are part of the API contract.
type Comment struct {
	ID        string    `json:"id"        db:"id"`
	PostID    string    `json:"postId"    db:"post_id"`
	Name      string    `json:"name"      db:"name"`
	Text      string    `json:"text"      db:"text"`
	Like      int64     `json:"like"      db:"like_count"`
	Dislike   int64     `json:"dislike"   db:"dislike_count"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
