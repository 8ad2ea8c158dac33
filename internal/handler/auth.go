// Package handler implements the HTTP layer: request decoding, declarative
// field validation, and response/error mapping. Handlers never touch the
// store directly — they call into the service layer and translate its
// domain errors to status codes.
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

// AuthHandler serves the login endpoint.
type AuthHandler struct {
	auth   *service.AuthService
	logger *slog.Logger
}

func NewAuthHandler(auth *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

// HandleLogin authenticates the principal and returns an access token.
//
// HTTP: POST /login
//
// Missing fields are reported as 401 (not 400) with the usual ordered
// field-error list — a quirk inherited from the original API, where the
// login validator's outcome is "unauthenticated" rather than "bad request".
// Unknown username and wrong password both surface as 404.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	// An empty body decodes as io.EOF and falls through to the field
	// validation below, which reports both missing fields.
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("invalid login JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid JSON body",
		})
		return
	}

	// Declared in order; every violation is reported at once.
	if errs := validate.Collect(
		validate.Required("username", req.Username, "Username is required"),
		validate.Required("password", req.Password, "Password is required"),
	); len(errs) > 0 {
		writeFieldErrors(w, http.StatusUnauthorized, errs)
		return
	}

	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{AccessToken: token})
}
