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

// CommentHandler serves the nested comment routes under /posts/{postId}.
type CommentHandler struct {
	comments *service.CommentService
	logger   *slog.Logger
}

func NewCommentHandler(comments *service.CommentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{comments: comments, logger: logger}
}

type createCommentRequest struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// HandleList returns every comment on a post.
//
// HTTP: GET /posts/{postId}/comments
//
// A post with zero comments answers 200 with an empty array; a post that
// doesn't exist answers 404. The two are deliberately distinguishable.
func (h *CommentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	comments, err := h.comments.ListByPost(r.Context(), r.PathValue("postId"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

// HandleCreate saves a new comment under a post.
//
// HTTP: POST /posts/{postId}/comments
// BODY: {"name": "...", "text": "..."}
func (h *CommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("invalid comment JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid JSON body",
		})
		return
	}

	if errs := validate.Collect(
		validate.Required("name", req.Name, "Name is required"),
		validate.Required("text", req.Text, "Text is required"),
	); len(errs) > 0 {
		writeFieldErrors(w, http.StatusBadRequest, errs)
		return
	}

	comment, err := h.comments.Create(r.Context(), r.PathValue("postId"), req.Name, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

// HandleDelete removes a single comment.
//
// HTTP: DELETE /posts/{postId}/comments/{commentId} (bearer-token protected)
func (h *CommentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.comments.Delete(r.Context(), r.PathValue("postId"), r.PathValue("commentId"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"msg": "Comment deleted successfully",
	})
}

// HandleLike atomically increments a comment's like counter.
//
// HTTP: POST /posts/{postId}/comments/{commentId}/like
func (h *CommentHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	count, err := h.comments.Like(r.Context(), r.PathValue("commentId"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"like": count,
		"msg":  "Comment liked with success",
	})
}

// HandleDislike atomically increments a comment's dislike counter.
//
// HTTP: POST /posts/{postId}/comments/{commentId}/dislike
func (h *CommentHandler) HandleDislike(w http.ResponseWriter, r *http.Request) {
	count, err := h.comments.Dislike(r.Context(), r.PathValue("commentId"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"dislike": count,
		"msg":     "Comment disliked with success",
	})
}
