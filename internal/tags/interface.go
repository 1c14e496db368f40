package tags

import (
	"context"

	"favsetter/pkg/domain"
)

// UpdateInput describes changes to a tag. A nil field is left unchanged;
// an empty Color removes the color.
type UpdateInput struct {
	Name  *string
	Color *string
}

//go:generate mockgen -package mocktags -source=interface.go -destination=mock/mocktags.go *
type Tags interface {
	List(ctx context.Context, userID domain.UserID, query string) ([]domain.Tag, error)
	Create(ctx context.Context, userID domain.UserID, name string, color *string) (*domain.Tag, error)
	Update(ctx context.Context, userID domain.UserID, tagID domain.TagID, input UpdateInput) (*domain.Tag, error)
	Delete(ctx context.Context, userID domain.UserID, tagID domain.TagID) error
}
