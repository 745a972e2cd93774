// Package handlers is the HTTP surface of the meeting service.
//
// Handlers stay thin: decode and validate the request, call one service,
// write the response. Authorization and orchestration live in services.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akinalp/huddle/pkg"
)

// contextKey keeps request context values private to this module.
type contextKey string

// UserIDContextKey carries the authenticated user id. Set by
// middleware.AuthMiddleware.
const UserIDContextKey contextKey = "user_id"

// WithUserID returns ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDContextKey, userID)
}

// UserIDFrom returns the authenticated user id of the request.
func UserIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDContextKey).(string)
	return id, ok && id != ""
}

// requireUser writes 401 and returns false when the request is anonymous.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := UserIDFrom(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return "", false
	}
	return userID, true
}

// validatable is implemented by every request DTO in models.
type validatable interface {
	Validate() error
}

// decode reads a JSON body into req and validates it. It writes 400 and
// returns false on failure.
func decode(w http.ResponseWriter, r *http.Request, req validatable) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := req.Validate(); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func pathParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}
