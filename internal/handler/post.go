package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/sakif/blog-api/internal/service"
	"github.com/sakif/blog-api/internal/validate"
)

// PostHandler serves the CRUD surface for blog posts.
type PostHandler struct {
	posts  *service.PostService
	logger *slog.Logger
}

func NewPostHandler(posts *service.PostService, logger *slog.Logger) *PostHandler {
	return &PostHandler{posts: posts, logger: logger}
}

type createPostRequest struct {
	Author string `json:"author"`
	Title  string `json:"title"`
	Text   string `json:"text"`
}

// HandleList returns all posts.
//
// HTTP: GET /posts
func (h *PostHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

// HandleCreate saves a new post.
//
// HTTP: POST /posts (bearer-token protected)
// BODY: {"author": "...", "title": "...", "text": "..."}
//
// All three fields are required; violations come back together as a 400
// with one entry per field, in this declaration order.
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("invalid post JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid JSON body",
		})
		return
	}

	if errs := validate.Collect(
		validate.Required("author", req.Author, "Author is required"),
		validate.Required("title", req.Title, "Title is required"),
		validate.Required("text", req.Text, "Text is required"),
	); len(errs) > 0 {
		writeFieldErrors(w, http.StatusBadRequest, errs)
		return
	}

	post, err := h.posts.Create(r.Context(), req.Author, req.Title, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

// HandleDelete removes a post and all of its comments.
//
// HTTP: DELETE /posts/{postId} (bearer-token protected)
func (h *PostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("postId")

	if err := h.posts.Delete(r.Context(), postID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"msg": "Post and associated comments deleted successfully",
	})
}
