// Package v1handler implements the /v1 HTTP API on top of the accounts,
// favorites, tags and metadata services.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"favsetter/internal/accounts"
	"favsetter/internal/favorites"
	"favsetter/internal/tags"
	"favsetter/pkg/logger"
	"favsetter/pkg/metadata"
	"favsetter/pkg/serrors"
	"favsetter/pkg/session"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes caps the size of JSON request bodies.
const maxBodyBytes = 1 << 20

// Deps holds the services the handlers delegate to.
type Deps struct {
	Accounts  accounts.Accounts
	Favorites favorites.Favorites
	Tags      tags.Tags
	Resolver  metadata.Resolver
	Sessions  *session.Manager
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResult pairs an ErrorResponse with the status it is sent with.
type ErrorResult struct {
	StatusCode int
	Response   ErrorResponse
}

// SuccessResponse is returned by operations without a resource to show.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// NewError maps err to its HTTP representation. Server side failures are
// logged with the request-scoped logger and never leak their cause.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResult {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) *ErrorResult {
	kind := serrors.KindOf(err)
	status := serrors.HTTPStatus(kind)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err), zap.Int("status_code", status))
	}

	return &ErrorResult{
		StatusCode: status,
		Response: ErrorResponse{
			Code:    kind.Error(),
			Message: serrors.PublicMessage(err),
		},
	}
}

// Routes returns the /v1 router. Everything except registration, login and
// logout requires a session.
func (h *Handler) Routes(sec *SecHandler) http.Handler {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, serrors.With(serrors.ErrNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusMethodNotAllowed, ErrorResponse{
			Code:    "METHOD_NOT_ALLOWED",
			Message: "method not allowed",
		})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)

		r.Group(func(r chi.Router) {
			r.Use(sec.RequireAuth)
			r.Get("/me", h.Me)
			r.Post("/change-password", h.ChangePassword)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(sec.RequireAuth)

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", h.ListFavorites)
			r.Get("/grouped", h.ListGroupedFavorites)
			r.Post("/", h.CreateFavorite)
			r.Patch("/{id}", h.UpdateFavorite)
			r.Delete("/{id}", h.DeleteFavorite)
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", h.ListTags)
			r.Post("/", h.CreateTag)
			r.Patch("/{id}", h.UpdateTag)
			r.Delete("/{id}", h.DeleteTag)
		})

		r.Post("/metadata/preview", h.PreviewMetadata)
	})

	return r
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(r.Context(), "could not write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := newError(r.Context(), err)
	writeJSON(w, r, res.StatusCode, res.Response)
}

// decodeJSON reads a single JSON document from the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return serrors.With(serrors.ErrBadRequest, "request body is required")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON body")
	}

	return nil
}
