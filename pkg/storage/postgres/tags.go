package postgres

import (
	"context"
	"fmt"
	"strings"

	"favsetter/pkg/domain"
	"favsetter/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	tagsTable = "tags"
)

//nolint: gochecknoglobals
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// UpsertTags creates the missing tags among names and returns all of them.
// Existing rows keep their color.
func (p *PgSQL) UpsertTags(ctx context.Context, userID domain.UserID, names []string) ([]domain.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}

	rows := make([]PgTag, 0, len(names))
	for _, name := range names {
		rows = append(rows, PgTag{UserID: uuid.UUID(userID), Name: name})
	}

	var result []PgTag
	if err := p.Builder.Insert(tagsTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("user_id, name", goqu.Record{"name": goqu.L("EXCLUDED.name")})).
		Returning(&PgTag{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not upsert tags into pg: %w", err)
	}

	return pgTagsToDomain(result), nil
}

// StoreTag inserts a tag. A taken name is reported as storage.ErrDuplicate.
func (p *PgSQL) StoreTag(ctx context.Context, tag domain.Tag) (*domain.Tag, error) {
	var row PgTag
	row.FromDomain(tag)

	var result PgTag
	if _, err := p.Builder.Insert(tagsTable).
		Rows(row).
		Returning(&PgTag{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store tag into pg: %w", translateError(err))
	}

	return result.ToDomain(), nil
}

// TagByName returns the user's tag with exactly the given name, or nil.
func (p *PgSQL) TagByName(ctx context.Context, userID domain.UserID, name string) (*domain.Tag, error) {
	return p.findTag(ctx,
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("name").Eq(name),
	)
}

// UserTags lists the user's tags by name together with their favorite count.
func (p *PgSQL) UserTags(ctx context.Context, userID domain.UserID, query string) ([]domain.Tag, error) {
	ds := p.Builder.From(goqu.T(tagsTable).As("t")).
		LeftJoin(goqu.T(favoriteTagsTable).As("ft"), goqu.On(goqu.I("ft.tag_id").Eq(goqu.I("t.id")))).
		Select(
			goqu.I("t.id"),
			goqu.I("t.user_id"),
			goqu.I("t.name"),
			goqu.I("t.color"),
			goqu.I("t.created_at"),
			goqu.COUNT(goqu.I("ft.favorite_id")).As("favorite_count"),
		).
		Where(goqu.I("t.user_id").Eq(uuid.UUID(userID))).
		GroupBy(goqu.I("t.id")).
		Order(goqu.I("t.name").Asc())
	if query != "" {
		ds = ds.Where(goqu.I("t.name").ILike("%" + likeEscaper.Replace(query) + "%"))
	}

	var rows []PgTagCount
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user tags from pg: %w", err)
	}

	out := make([]domain.Tag, 0, len(rows))
	for i := range rows {
		tag := rows[i].ToDomain()
		tag.FavoriteCount = int(rows[i].FavoriteCount)
		out = append(out, *tag)
	}

	return out, nil
}

// UpdateTag renames or recolors a tag owned by the user.
func (p *PgSQL) UpdateTag(ctx context.Context,
	userID domain.UserID,
	ID domain.TagID,
	updates storage.TagUpdates) (*domain.Tag, error) {
	where := []goqu.Expression{
		goqu.I("id").Eq(uuid.UUID(ID)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	}

	rec := goqu.Record{}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	switch {
	case updates.ClearColor:
		rec["color"] = nil
	case updates.Color != nil:
		rec["color"] = *updates.Color
	}
	if len(rec) == 0 {
		return p.findTag(ctx, where...)
	}

	var row PgTag
	found, err := p.Builder.Update(tagsTable).
		Set(rec).
		Where(where...).
		Returning(&PgTag{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update tag in pg: %w", translateError(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteTag removes a tag owned by the user. Links to favorites are removed by
// the foreign key cascade.
func (p *PgSQL) DeleteTag(ctx context.Context, userID domain.UserID, ID domain.TagID) (*domain.Tag, error) {
	var row PgTag
	found, err := p.Builder.Delete(tagsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(ID)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Returning(&PgTag{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete tag in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) findTag(ctx context.Context, where ...goqu.Expression) (*domain.Tag, error) {
	var row PgTag
	found, err := p.Builder.From(tagsTable).
		Where(where...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch tag from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
