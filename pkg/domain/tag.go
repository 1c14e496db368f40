package domain

import (
	"time"

	"github.com/google/uuid"
)

// TagID uniquely identifies a tag.
type TagID uuid.UUID

// String returns the canonical textual form of the ID.
func (id TagID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical textual form.
func (id TagID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes an ID from its textual form.
func (id *TagID) UnmarshalText(data []byte) error { return (*uuid.UUID)(id).UnmarshalText(data) }

// Tag is a user-scoped label. Names are unique per user.
type Tag struct {
	ID     TagID  `json:"id"`
	UserID UserID `json:"-"`

	Name string `json:"name"`
	// Color is an optional "#RRGGBB" value used by clients to render the tag.
	Color *string `json:"color"`

	// FavoriteCount is only populated by tag listings and is 0 elsewhere.
	FavoriteCount int `json:"favoriteCount"`

	CreatedAt time.Time `json:"createdAt"`
}
