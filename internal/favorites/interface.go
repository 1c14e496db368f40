package favorites

import (
	"context"

	"favsetter/pkg/domain"
)

// CreateInput describes a favorite to save.
type CreateInput struct {
	URL    string
	Rating *int
	Tags   []string
}

// UpdateInput describes changes to a favorite. A field is only applied when
// its Set flag is true; SetRating with a nil Rating clears the rating.
type UpdateInput struct {
	SetRating bool
	Rating    *int

	SetTags bool
	Tags    []string
}

// Filter narrows down a favorites listing.
type Filter struct {
	// Query matches case-insensitively against title, domain, URL and tag names.
	Query string
	// Tags keeps favorites carrying every one of these tag names.
	Tags []string
}

// Group is a set of favorites sharing a domain.
type Group struct {
	Domain    string            `json:"domain"`
	Favorites []domain.Favorite `json:"favorites"`
}

//go:generate mockgen -package mockfavorites -source=interface.go -destination=mock/mockfavorites.go *
type Favorites interface {
	Create(ctx context.Context, userID domain.UserID, input CreateInput) (*domain.Favorite, error)
	List(ctx context.Context, userID domain.UserID, filter Filter) ([]domain.Favorite, error)
	Update(ctx context.Context,
		userID domain.UserID,
		favoriteID domain.FavoriteID,
		input UpdateInput) (*domain.Favorite, error)
	Delete(ctx context.Context, userID domain.UserID, favoriteID domain.FavoriteID) error
}
