package domain

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteID uniquely identifies a saved bookmark.
type FavoriteID uuid.UUID

// String returns the canonical textual form of the ID.
func (id FavoriteID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical textual form.
func (id FavoriteID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes an ID from its textual form.
func (id *FavoriteID) UnmarshalText(data []byte) error { return (*uuid.UUID)(id).UnmarshalText(data) }

const (
	// MinRating is the lowest rating a user can give to a favorite.
	MinRating = 1
	// MaxRating is the highest rating a user can give to a favorite.
	MaxRating = 5
)

// ValidRating reports whether r lies in [MinRating, MaxRating].
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// Favorite is a saved URL together with the metadata resolved when it was
// created, an optional rating and the tags attached to it.
type Favorite struct {
	// ID is the unique identifier of the favorite.
	ID FavoriteID `json:"id"`
	// UserID is the owner of the favorite.
	UserID UserID `json:"userId"`

	// URL is the address as the user saved it.
	URL string `json:"url"`
	// URLKey identifies URL for duplicate detection, see favorites.URLKey.
	URLKey string `json:"-"`
	// Domain is the host of URL, or "unknown".
	Domain string `json:"domain"`
	// Title is the page title found at creation time, if any.
	Title *string `json:"title"`
	// Description is the page description found at creation time, if any.
	Description *string `json:"description"`
	// Rating is nil when the favorite is unrated.
	Rating *int `json:"rating"`

	Tags []Tag `json:"tags"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasTag reports whether a tag with exactly the given name is attached.
func (f *Favorite) HasTag(name string) bool {
	for i := range f.Tags {
		if f.Tags[i].Name == name {
			return true
		}
	}

	return false
}
