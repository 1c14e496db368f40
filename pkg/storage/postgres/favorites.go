package postgres

import (
	"context"
	"fmt"

	"favsetter/pkg/domain"
	"favsetter/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	favoritesTable    = "favorites"
	favoriteTagsTable = "favorite_tags"
)

// StoreFavorite inserts a favorite. Saving the same URL key twice for a user
// is reported as storage.ErrDuplicate. A favorite without a key is keyed by its
// exact URL.
func (p *PgSQL) StoreFavorite(ctx context.Context, favorite domain.Favorite) (*domain.Favorite, error) {
	var row PgFavorite
	row.FromDomain(favorite)

	var result PgFavorite
	if _, err := p.Builder.Insert(favoritesTable).
		Rows(row).
		Returning(&PgFavorite{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store favorite into pg: %w", translateError(err))
	}

	return result.ToDomain(), nil
}

// FavoriteByURLKey returns the favorite saved by the user under key, or nil.
func (p *PgSQL) FavoriteByURLKey(ctx context.Context, userID domain.UserID, key string) (*domain.Favorite, error) {
	return p.findFavorite(ctx,
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("url_key").Eq(key),
	)
}

// FavoriteByID returns the favorite with the given ID owned by the user, or nil.
func (p *PgSQL) FavoriteByID(ctx context.Context,
	userID domain.UserID,
	ID domain.FavoriteID) (*domain.Favorite, error) {
	return p.findFavorite(ctx,
		goqu.I("id").Eq(uuid.UUID(ID)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	)
}

// UserFavorites returns every favorite of the user, newest first.
func (p *PgSQL) UserFavorites(ctx context.Context, userID domain.UserID) ([]domain.Favorite, error) {
	var rows []PgFavorite
	if err := p.Builder.From(favoritesTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user favorites from pg: %w", err)
	}

	return pgFavoritesToDomain(rows), nil
}

// UpdateFavorite applies updates to a favorite owned by the user. updated_at
// is always refreshed.
func (p *PgSQL) UpdateFavorite(ctx context.Context,
	userID domain.UserID,
	ID domain.FavoriteID,
	updates storage.FavoriteUpdates) (*domain.Favorite, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	switch {
	case updates.ClearRating:
		rec["rating"] = nil
	case updates.Rating != nil:
		rec["rating"] = *updates.Rating
	}

	var row PgFavorite
	found, err := p.Builder.Update(favoritesTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(ID)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Returning(&PgFavorite{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update favorite in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteFavorite removes a favorite owned by the user. Tag links are removed
// by the foreign key cascade.
func (p *PgSQL) DeleteFavorite(ctx context.Context,
	userID domain.UserID,
	ID domain.FavoriteID) (*domain.Favorite, error) {
	var row PgFavorite
	found, err := p.Builder.Delete(favoritesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(ID)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Returning(&PgFavorite{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete favorite in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// SetFavoriteTags replaces the tags linked to a favorite. It should run inside
// a transaction so readers never observe a partially replaced set.
func (p *PgSQL) SetFavoriteTags(ctx context.Context, ID domain.FavoriteID, tagIDs []domain.TagID) error {
	if _, err := p.Builder.Delete(favoriteTagsTable).
		Where(goqu.I("favorite_id").Eq(uuid.UUID(ID))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not clear favorite tags in pg: %w", err)
	}
	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]goqu.Record, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, goqu.Record{
			"favorite_id": uuid.UUID(ID),
			"tag_id":      uuid.UUID(tagID),
		})
	}
	if _, err := p.Builder.Insert(favoriteTagsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not link favorite tags in pg: %w", err)
	}

	return nil
}

// FavoritesTags loads the tags of the given favorites in a single query.
func (p *PgSQL) FavoritesTags(ctx context.Context,
	IDs []domain.FavoriteID) (map[domain.FavoriteID][]domain.Tag, error) {
	out := make(map[domain.FavoriteID][]domain.Tag)
	if len(IDs) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, 0, len(IDs))
	for _, id := range IDs {
		ids = append(ids, uuid.UUID(id))
	}

	var rows []PgFavoriteTag
	if err := p.Builder.From(goqu.T(favoriteTagsTable).As("ft")).
		Join(goqu.T(tagsTable).As("t"), goqu.On(goqu.I("t.id").Eq(goqu.I("ft.tag_id")))).
		Select(
			goqu.I("ft.favorite_id"),
			goqu.I("t.id"),
			goqu.I("t.user_id"),
			goqu.I("t.name"),
			goqu.I("t.color"),
			goqu.I("t.created_at"),
		).
		Where(goqu.I("ft.favorite_id").In(ids)).
		Order(goqu.I("t.name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch favorite tags from pg: %w", err)
	}

	for i := range rows {
		favoriteID := domain.FavoriteID(rows[i].FavoriteID)
		out[favoriteID] = append(out[favoriteID], *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) findFavorite(ctx context.Context, where ...goqu.Expression) (*domain.Favorite, error) {
	var row PgFavorite
	found, err := p.Builder.From(favoritesTable).
		Where(where...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch favorite from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
