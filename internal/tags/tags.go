package tags

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"favsetter/pkg/domain"
	"favsetter/pkg/serrors"
	"favsetter/pkg/storage"

	"github.com/go-playground/validator/v10"
)

// colorRule accepts "#RRGGBB" values only.
const colorRule = "len=7,hexcolor"

// tags is the concrete implementation of the Tags interface.
type tags struct {
	storage  storage.Storage
	validate *validator.Validate
}

// List returns the user's tags by name with their favorite counts.
func (t tags) List(ctx context.Context, userID domain.UserID, query string) ([]domain.Tag, error) {
	list, err := t.storage.UserTags(ctx, userID, strings.TrimSpace(query))
	if err != nil {
		return nil, fmt.Errorf("could not get user tags: %w", err)
	}
	if list == nil {
		list = []domain.Tag{}
	}

	return list, nil
}

// Create returns the existing tag with the same name untouched, or stores a
// new one.
func (t tags) Create(ctx context.Context, userID domain.UserID, name string, color *string) (*domain.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "tag name is required")
	}
	color, err := t.cleanColor(color)
	if err != nil {
		return nil, err
	}

	existing, err := t.storage.TagByName(ctx, userID, name)
	if err != nil {
		return nil, fmt.Errorf("could not get tag by name: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	tag, err := t.storage.StoreTag(ctx, domain.Tag{UserID: userID, Name: name, Color: color})
	if errors.Is(err, storage.ErrDuplicate) {
		// created concurrently
		existing, err = t.storage.TagByName(ctx, userID, name)
		if err != nil {
			return nil, fmt.Errorf("could not get tag by name: %w", err)
		}
		if existing != nil {
			return existing, nil
		}

		return nil, serrors.With(serrors.ErrConflict, "tag already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("could not store tag: %w", err)
	}

	return tag, nil
}

// Update renames and/or recolors a tag.
func (t tags) Update(ctx context.Context,
	userID domain.UserID,
	tagID domain.TagID,
	input UpdateInput) (*domain.Tag, error) {
	updates := storage.TagUpdates{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "tag name is required")
		}
		updates.Name = &name
	}
	if input.Color != nil {
		color, err := t.cleanColor(input.Color)
		if err != nil {
			return nil, err
		}
		updates.Color = color
		updates.ClearColor = color == nil
	}

	tag, err := t.storage.UpdateTag(ctx, userID, tagID, updates)
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "a tag with this name already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("could not update tag: %w", err)
	}
	if tag == nil {
		return nil, serrors.With(serrors.ErrNotFound, "tag not found")
	}

	return tag, nil
}

// Delete removes a tag and detaches it from every favorite.
func (t tags) Delete(ctx context.Context, userID domain.UserID, tagID domain.TagID) error {
	deleted, err := t.storage.DeleteTag(ctx, userID, tagID)
	if err != nil {
		return fmt.Errorf("could not delete tag: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "tag not found")
	}

	return nil
}

// cleanColor trims color and validates it. Empty colors become nil.
func (t tags) cleanColor(color *string) (*string, error) {
	if color == nil {
		return nil, nil
	}
	c := strings.TrimSpace(*color)
	if c == "" {
		return nil, nil
	}
	if err := t.validate.Var(c, colorRule); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "color must look like #RRGGBB")
	}

	return &c, nil
}

// New creates a new Tags instance backed by the provided storage.
func New(storage storage.Storage) Tags {
	return &tags{
		storage:  storage,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}
