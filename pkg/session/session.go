// Package session issues and verifies the signed, time-limited credentials
// that identify a logged-in user, and carries them over HTTP cookies or the
// Authorization header.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"favsetter/pkg/domain"
	"favsetter/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// DefaultTTL is how long an issued session stays valid.
	DefaultTTL = 7 * 24 * time.Hour
	// DefaultCookieName is the cookie carrying the session token.
	DefaultCookieName = "auth-token"

	bearerPrefix = "Bearer "
)

// ErrEmptySecret is returned by New when no signing secret is configured.
var ErrEmptySecret = errors.New("session secret is empty")

// Options configures a Manager.
type Options struct {
	// Secret is the HMAC key tokens are signed with.
	Secret string
	// TTL defaults to DefaultTTL.
	TTL time.Duration
	// CookieName defaults to DefaultCookieName.
	CookieName string
	// SecureCookie marks the cookie as HTTPS only. Enable it in production.
	SecureCookie bool
}

// Manager signs HS256 JWTs whose subject is the user ID.
type Manager struct {
	secret       []byte
	ttl          time.Duration
	cookieName   string
	secureCookie bool
}

// New validates options and fills defaults.
func New(options Options) (*Manager, error) {
	if options.Secret == "" {
		return nil, ErrEmptySecret
	}
	if options.TTL <= 0 {
		options.TTL = DefaultTTL
	}
	if options.CookieName == "" {
		options.CookieName = DefaultCookieName
	}

	return &Manager{
		secret:       []byte(options.Secret),
		ttl:          options.TTL,
		cookieName:   options.CookieName,
		secureCookie: options.SecureCookie,
	}, nil
}

// TTL returns the lifetime of issued tokens.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue signs a token for userID valid for the configured TTL.
func (m *Manager) Issue(userID domain.UserID) (string, time.Time, error) {
	return m.IssueWithTTL(userID, m.ttl)
}

// IssueWithTTL signs a token for userID valid for ttl.
func (m *Manager) IssueWithTTL(userID domain.UserID, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("could not sign session token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify checks the signature, algorithm and validity window of token and
// returns the user it was issued for. Every failure is serrors.ErrUnauthorized.
func (m *Manager) Verify(token string) (domain.UserID, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid session token")
	}
	if !parsed.Valid {
		return domain.UserID{}, serrors.With(serrors.ErrUnauthorized, "invalid session token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid session subject")
	}

	return domain.UserID(userID), nil
}

// Cookie builds the HTTP-only cookie carrying token.
func (m *Manager) Cookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   m.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearCookie builds a cookie that makes the browser drop the session.
func (m *Manager) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

// TokenFromRequest returns the session token of r. The cookie wins over an
// "Authorization: Bearer" header. It returns "" when neither is present.
func (m *Manager) TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(m.cookieName); err == nil && c.Value != "" {
		return c.Value
	}

	header := r.Header.Get("Authorization")
	if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}

	return ""
}
