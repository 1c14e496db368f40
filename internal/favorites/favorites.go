package favorites

import (
	"context"
	"errors"
	"fmt"
	"time"

	"favsetter/pkg/domain"
	"favsetter/pkg/logger"
	"favsetter/pkg/metadata"
	"favsetter/pkg/serrors"
	"favsetter/pkg/storage"

	"go.uber.org/zap"
)

// StoreTimeout bounds the write that follows a resolution in Create.
const StoreTimeout = 10 * time.Second

// favorites is the concrete implementation of the Favorites interface.
// It coordinates metadata resolution with the storage layer.
type favorites struct {
	storage  storage.Storage
	resolver metadata.Resolver
}

// Create validates the URL, resolves its metadata once and stores the
// favorite together with its tags in a single transaction. The URL is stored
// and fetched as given; duplicates are detected through URLKey. The resolver
// runs before the transaction starts.
//
// Once resolution has started the favorite is saved even if ctx is cancelled:
// the write runs detached from ctx, bounded by StoreTimeout.
func (f favorites) Create(ctx context.Context, userID domain.UserID, input CreateInput) (*domain.Favorite, error) {
	URL, err := ValidateURL(input.URL)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid URL")
	}
	key, err := URLKey(URL)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid URL")
	}
	if input.Rating != nil && !domain.ValidRating(*input.Rating) {
		return nil, ratingError()
	}

	existing, err := f.storage.FavoriteByURLKey(ctx, userID, key)
	if err != nil {
		return nil, fmt.Errorf("could not check existing favorite: %w", err)
	}
	if existing != nil {
		return nil, duplicateError(nil)
	}

	md := f.resolver.Resolve(ctx, URL)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), StoreTimeout)
	defer cancel()

	var favorite *domain.Favorite
	if err := f.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreFavorite(ctx, domain.Favorite{
			UserID:      userID,
			URL:         URL,
			URLKey:      key,
			Domain:      md.Domain,
			Title:       md.Title,
			Description: md.Description,
			Rating:      input.Rating,
		})
		if errors.Is(err, storage.ErrDuplicate) {
			return duplicateError(err)
		}
		if err != nil {
			return fmt.Errorf("could not store favorite: %w", err)
		}

		stored.Tags = []domain.Tag{}
		if names := CleanTagNames(input.Tags); len(names) > 0 {
			if stored.Tags, err = setTags(ctx, tx, userID, stored.ID, names); err != nil {
				return err
			}
		}
		favorite = stored

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create favorite: %w", err)
	}

	logger.Info(ctx, "favorite created",
		zap.Stringer("favoriteID", favorite.ID),
		zap.String("domain", favorite.Domain),
		zap.Bool("titleFound", favorite.Title != nil))

	return favorite, nil
}

// List returns the user's favorites, newest first, with their tags, keeping
// those matching filter.
func (f favorites) List(ctx context.Context, userID domain.UserID, filter Filter) ([]domain.Favorite, error) {
	all, err := f.storage.UserFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user favorites: %w", err)
	}
	if err := f.attachTags(ctx, all); err != nil {
		return nil, err
	}

	return Apply(all, filter), nil
}

// Update changes the rating and/or replaces the tag set of a favorite.
func (f favorites) Update(ctx context.Context,
	userID domain.UserID,
	favoriteID domain.FavoriteID,
	input UpdateInput) (*domain.Favorite, error) {
	updates := storage.FavoriteUpdates{}
	if input.SetRating {
		if input.Rating == nil {
			updates.ClearRating = true
		} else {
			if !domain.ValidRating(*input.Rating) {
				return nil, ratingError()
			}
			updates.Rating = input.Rating
		}
	}

	var favorite *domain.Favorite
	if err := f.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updated, err := tx.UpdateFavorite(ctx, userID, favoriteID, updates)
		if err != nil {
			return fmt.Errorf("could not update favorite: %w", err)
		}
		if updated == nil {
			return notFoundError()
		}

		if input.SetTags {
			if _, err := setTags(ctx, tx, userID, favoriteID, input.Tags); err != nil {
				return err
			}
		}

		linked, err := tx.FavoritesTags(ctx, []domain.FavoriteID{favoriteID})
		if err != nil {
			return fmt.Errorf("could not get favorite tags: %w", err)
		}
		updated.Tags = nonNil(linked[favoriteID])
		favorite = updated

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not apply favorite update: %w", err)
	}

	return favorite, nil
}

// Delete removes a favorite of the user.
func (f favorites) Delete(ctx context.Context, userID domain.UserID, favoriteID domain.FavoriteID) error {
	deleted, err := f.storage.DeleteFavorite(ctx, userID, favoriteID)
	if err != nil {
		return fmt.Errorf("could not delete favorite: %w", err)
	}
	if deleted == nil {
		return notFoundError()
	}

	return nil
}

func (f favorites) attachTags(ctx context.Context, list []domain.Favorite) error {
	if len(list) == 0 {
		return nil
	}

	ids := make([]domain.FavoriteID, 0, len(list))
	for i := range list {
		ids = append(ids, list[i].ID)
	}
	linked, err := f.storage.FavoritesTags(ctx, ids)
	if err != nil {
		return fmt.Errorf("could not get favorites tags: %w", err)
	}
	for i := range list {
		list[i].Tags = nonNil(linked[list[i].ID])
	}

	return nil
}

// setTags makes sure every named tag exists and links exactly those tags to
// the favorite. It returns the linked tags in the order names were given.
func setTags(ctx context.Context,
	tx storage.AllStorage,
	userID domain.UserID,
	favoriteID domain.FavoriteID,
	names []string) ([]domain.Tag, error) {
	names = CleanTagNames(names)

	var tags []domain.Tag
	if len(names) > 0 {
		var err error
		if tags, err = tx.UpsertTags(ctx, userID, names); err != nil {
			return nil, fmt.Errorf("could not upsert tags: %w", err)
		}
	}

	byName := make(map[string]domain.Tag, len(tags))
	for _, tag := range tags {
		byName[tag.Name] = tag
	}
	ordered := make([]domain.Tag, 0, len(names))
	ids := make([]domain.TagID, 0, len(names))
	for _, name := range names {
		tag, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("tag %q missing after upsert", name)
		}
		ordered = append(ordered, tag)
		ids = append(ids, tag.ID)
	}

	if err := tx.SetFavoriteTags(ctx, favoriteID, ids); err != nil {
		return nil, fmt.Errorf("could not set favorite tags: %w", err)
	}

	return ordered, nil
}

func nonNil(tags []domain.Tag) []domain.Tag {
	if tags == nil {
		return []domain.Tag{}
	}

	return tags
}

func ratingError() error {
	return serrors.With(serrors.ErrBadRequest,
		"rating must be between %d and %d", domain.MinRating, domain.MaxRating)
}

func duplicateError(err error) error {
	return serrors.Wrap(serrors.ErrConflict, err, "this URL is already in your favorites")
}

func notFoundError() error {
	return serrors.With(serrors.ErrNotFound, "favorite not found")
}

// New creates a new Favorites instance backed by the provided storage and
// metadata resolver.
func New(storage storage.Storage, resolver metadata.Resolver) Favorites {
	return &favorites{
		storage:  storage,
		resolver: resolver,
	}
}
