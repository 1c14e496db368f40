// Package storage defines the core storage interfaces that the application relies on.
// It abstracts persistence operations and transaction management so that different
// backends (e.g. PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"

	"favsetter/pkg/domain"
)

// UserStorage persists accounts.
type UserStorage interface {
	// StoreUser inserts a user and returns the stored row. ErrDuplicate is
	// returned when the email is already registered.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByEmail returns nil when no user has the given email.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UserByID returns nil when the user does not exist.
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
	// UpdateUserPassword replaces the password hash and returns the updated
	// user, or nil when the user does not exist.
	UpdateUserPassword(ctx context.Context, ID domain.UserID, passwordHash string) (*domain.User, error)
}

// FavoriteUpdates describes the mutable fields of a favorite. updated_at is
// always refreshed, even when no field is set.
type FavoriteUpdates struct {
	// Rating, when non-nil, sets the rating.
	Rating *int
	// ClearRating removes the rating. It takes precedence over Rating.
	ClearRating bool
}

// FavoriteStorage defines operations on favorites and their tag links. Every
// lookup is scoped to the owning user; the Tags field of returned favorites is
// never populated, use FavoritesTags for that.
type FavoriteStorage interface {
	// StoreFavorite inserts a favorite. ErrDuplicate is returned when the user
	// already saved the same URL.
	StoreFavorite(ctx context.Context, favorite domain.Favorite) (*domain.Favorite, error)
	// FavoriteByURLKey returns nil when the user has no favorite with that URL key.
	FavoriteByURLKey(ctx context.Context, userID domain.UserID, key string) (*domain.Favorite, error)
	// FavoriteByID returns nil when not found.
	FavoriteByID(ctx context.Context, userID domain.UserID, ID domain.FavoriteID) (*domain.Favorite, error)
	// UserFavorites returns all favorites of a user ordered by created_at DESC, id DESC.
	UserFavorites(ctx context.Context, userID domain.UserID) ([]domain.Favorite, error)
	// UpdateFavorite applies updates and returns the updated row, or nil when not found.
	UpdateFavorite(ctx context.Context,
		userID domain.UserID,
		ID domain.FavoriteID,
		updates FavoriteUpdates) (*domain.Favorite, error)
	// DeleteFavorite removes a favorite with its tag links and returns the
	// deleted row, or nil when not found.
	DeleteFavorite(ctx context.Context, userID domain.UserID, ID domain.FavoriteID) (*domain.Favorite, error)
	// SetFavoriteTags replaces the tag set of a favorite.
	SetFavoriteTags(ctx context.Context, ID domain.FavoriteID, tagIDs []domain.TagID) error
	// FavoritesTags returns the tags attached to each of the given favorites,
	// ordered by name. Favorites without tags are absent from the map.
	FavoritesTags(ctx context.Context, IDs []domain.FavoriteID) (map[domain.FavoriteID][]domain.Tag, error)
}

// TagUpdates describes the mutable fields of a tag.
type TagUpdates struct {
	// Name, when non-nil, renames the tag.
	Name *string
	// Color, when non-nil, sets the color.
	Color *string
	// ClearColor removes the color. It takes precedence over Color.
	ClearColor bool
}

// TagStorage defines operations on user tags.
type TagStorage interface {
	// UpsertTags makes sure a tag exists for every name and returns them.
	// Existing tags are returned untouched. Names must be unique.
	UpsertTags(ctx context.Context, userID domain.UserID, names []string) ([]domain.Tag, error)
	// StoreTag inserts a tag. ErrDuplicate is returned when the name is taken.
	StoreTag(ctx context.Context, tag domain.Tag) (*domain.Tag, error)
	// TagByName returns nil when not found.
	TagByName(ctx context.Context, userID domain.UserID, name string) (*domain.Tag, error)
	// UserTags returns the tags of a user ordered by name, with FavoriteCount
	// populated. A non-empty query keeps only names containing it, case-insensitively.
	UserTags(ctx context.Context, userID domain.UserID, query string) ([]domain.Tag, error)
	// UpdateTag returns the updated tag, or nil when not found. ErrDuplicate is
	// returned when renaming into an existing name.
	UpdateTag(ctx context.Context, userID domain.UserID, ID domain.TagID, updates TagUpdates) (*domain.Tag, error)
	// DeleteTag removes a tag, detaching it from every favorite, and returns
	// the deleted row or nil when not found.
	DeleteTag(ctx context.Context, userID domain.UserID, ID domain.TagID) (*domain.Tag, error)
}

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application.
type AllStorage interface {
	UserStorage
	FavoriteStorage
	TagStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same domain-specific capabilities as AllStorage,
// and additionally allows committing or rolling back the ongoing transaction.
// Implementations should become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions. It exposes domain-specific capabilities and lifecycle
// management such as Close.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx is a helper that begins a transaction, invokes the provided callback
	// with a TxStorage, and then commits on success or rolls back if the callback
	// returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
