package v1handler

import (
	"context"
	"errors"
	"net/http"

	"favsetter/pkg/domain"
	"favsetter/pkg/logger"
	"favsetter/pkg/serrors"
	"favsetter/pkg/session"

	"go.uber.org/zap"
)

// CtxKey is a string-based type used for storing values in request contexts.
type CtxKey string

const (
	// UserIDKey is the context key under which the authenticated user ID is stored.
	UserIDKey CtxKey = "UserID"
)

var errNoSessions = errors.New("session manager is required")

type SecHandler struct {
	sessions *session.Manager
}

func NewSecHandler(sessions *session.Manager) (*SecHandler, error) {
	if sessions == nil {
		return nil, errNoSessions
	}

	return &SecHandler{sessions: sessions}, nil
}

// HandleAuth verifies token and returns ctx carrying the user it belongs to.
func (s SecHandler) HandleAuth(ctx context.Context, token string) (context.Context, error) {
	if token == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "unauthorized")
	}

	userID, err := s.sessions.Verify(token)
	if err != nil {
		return ctx, err //nolint: wrapcheck
	}

	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = logger.WithFields(ctx, zap.String("user_id", userID.String()))

	return ctx, nil
}

// RequireAuth rejects requests without a valid session cookie or bearer token.
func (s SecHandler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := s.HandleAuth(r.Context(), s.sessions.TokenFromRequest(r))
		if err != nil {
			writeError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext returns the authenticated user stored by RequireAuth.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	userID, _ := ctx.Value(UserIDKey).(domain.UserID)

	return userID
}
