package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"favsetter/internal/config"
	"favsetter/pkg/domain"
	"favsetter/pkg/logger"
	"favsetter/pkg/serrors"
	"favsetter/pkg/storage"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultBcryptCost is used when Options.BcryptCost is not set.
	DefaultBcryptCost = 10
	// DefaultMinPasswordLength is used when Options.MinPasswordLength is not set.
	DefaultMinPasswordLength = 8
)

// Options configure password hashing and policy.
type Options struct {
	// BcryptCost is the cost factor of new password hashes.
	BcryptCost int
	// MinPasswordLength is the minimum length of a trimmed password.
	MinPasswordLength int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BcryptCost:        cfg.Accounts.BcryptCost,
		MinPasswordLength: cfg.Accounts.MinPasswordLength,
	}
}

// accounts is the concrete implementation of the Accounts interface.
type accounts struct {
	options  Options
	storage  storage.Storage
	validate *validator.Validate
}

// Register creates a user. The email is trimmed and lower-cased before it is
// validated and stored.
func (a accounts) Register(ctx context.Context, email, name, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if err := a.validate.Var(email, "required,email"); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "a valid email is required")
	}
	password = strings.TrimSpace(password)
	if err := a.checkPassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.options.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user, err := a.storage.StoreUser(ctx, domain.User{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hash),
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "an account with this email already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("could not store user: %w", err)
	}

	logger.Info(ctx, "user registered", zap.Stringer("userID", user.ID))

	return user, nil
}

// Authenticate returns the user owning email when password matches. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (a accounts) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := a.storage.UserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("could not get user by email: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid credentials")
	}

	return user, nil
}

// User returns the user with the given ID or a not-found error.
func (a accounts) User(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	user, err := a.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

// ChangePassword replaces the password of a user after checking the current one.
func (a accounts) ChangePassword(ctx context.Context,
	userID domain.UserID,
	currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return serrors.With(serrors.ErrBadRequest, "current and new password are required")
	}
	newPassword = strings.TrimSpace(newPassword)
	if err := a.checkPassword(newPassword); err != nil {
		return err
	}

	user, err := a.User(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), a.options.BcryptCost)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}

	updated, err := a.storage.UpdateUserPassword(ctx, userID, string(hash))
	if err != nil {
		return fmt.Errorf("could not update password: %w", err)
	}
	if updated == nil {
		return serrors.With(serrors.ErrNotFound, "user not found")
	}

	logger.Info(ctx, "password changed", zap.Stringer("userID", userID))

	return nil
}

func (a accounts) checkPassword(password string) error {
	if utf8.RuneCountInString(password) < a.options.MinPasswordLength {
		return serrors.With(serrors.ErrBadRequest,
			"password must be at least %d characters long", a.options.MinPasswordLength)
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// New creates a new Accounts instance backed by the provided storage.
func New(storage storage.Storage, options Options) Accounts {
	if options.BcryptCost == 0 {
		options.BcryptCost = DefaultBcryptCost
	}
	if options.MinPasswordLength == 0 {
		options.MinPasswordLength = DefaultMinPasswordLength
	}

	return &accounts{
		options:  options,
		storage:  storage,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}
