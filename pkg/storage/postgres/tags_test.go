package postgres_test

import (
	"context"
	"testing"

	"favsetter/pkg/domain"
	"favsetter/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_UpsertTags(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := createUser(t, pgSQL)
	colored, err := pgSQL.StoreTag(ctx, domain.Tag{UserID: userID, Name: "music", Color: ptr("#F59E0B")})
	require.NoError(t, err)

	tags, err := pgSQL.UpsertTags(ctx, userID, []string{"music", "video"})
	require.NoError(t, err)
	require.Len(t, tags, 2)

	byName := map[string]domain.Tag{}
	for _, tag := range tags {
		byName[tag.Name] = tag
	}
	require.Equal(t, colored.ID, byName["music"].ID)
	require.Equal(t, "#F59E0B", *byName["music"].Color)
	require.Nil(t, byName["video"].Color)

	again, err := pgSQL.UpsertTags(ctx, userID, []string{"video"})
	require.NoError(t, err)
	require.Len(t, again, 1)
	require.Equal(t, byName["video"].ID, again[0].ID)

	none, err := pgSQL.UpsertTags(ctx, userID, nil)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestPgSQL_StoreTag(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userA := createUser(t, pgSQL)
	userB := createUser(t, pgSQL)

	tag, err := pgSQL.StoreTag(ctx, domain.Tag{UserID: userA, Name: "css", Color: ptr("#06B6D4")})
	require.NoError(t, err)
	require.Equal(t, "css", tag.Name)

	_, err = pgSQL.StoreTag(ctx, domain.Tag{UserID: userA, Name: "css"})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	// names are unique per user only
	_, err = pgSQL.StoreTag(ctx, domain.Tag{UserID: userB, Name: "css"})
	require.NoError(t, err)

	found, err := pgSQL.TagByName(ctx, userA, "css")
	require.NoError(t, err)
	require.Equal(t, tag.ID, found.ID)

	missing, err := pgSQL.TagByName(ctx, userA, "CSS")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_UserTags(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := createUser(t, pgSQL)
	tags, err := pgSQL.UpsertTags(ctx, userID, []string{"framework", "Frontend", "100%_done", "database"})
	require.NoError(t, err)
	ids := map[string]domain.TagID{}
	for _, tag := range tags {
		ids[tag.Name] = tag.ID
	}

	for _, u := range []string{"https://a.dev/", "https://b.dev/"} {
		fav, err := pgSQL.StoreFavorite(ctx, domain.Favorite{UserID: userID, URL: u, Domain: "dev"})
		require.NoError(t, err)
		require.NoError(t, pgSQL.SetFavoriteTags(ctx, fav.ID, []domain.TagID{ids["framework"]}))
	}

	all, err := pgSQL.UserTags(ctx, userID, "")
	require.NoError(t, err)
	require.Len(t, all, 4)
	counts := map[string]int{}
	for _, tag := range all {
		counts[tag.Name] = tag.FavoriteCount
	}
	require.Equal(t, 2, counts["framework"])
	require.Equal(t, 0, counts["database"])

	filtered, err := pgSQL.UserTags(ctx, userID, "FR")
	require.NoError(t, err)
	require.Len(t, filtered, 2)

	literal, err := pgSQL.UserTags(ctx, userID, "%_")
	require.NoError(t, err)
	require.Len(t, literal, 1)
	require.Equal(t, "100%_done", literal[0].Name)

	foreign, err := pgSQL.UserTags(ctx, domain.UserID(uuid.New()), "")
	require.NoError(t, err)
	require.Empty(t, foreign)
}

func TestPgSQL_UpdateAndDeleteTag(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := createUser(t, pgSQL)
	ui, err := pgSQL.StoreTag(ctx, domain.Tag{UserID: userID, Name: "ui", Color: ptr("#EC4899")})
	require.NoError(t, err)
	_, err = pgSQL.StoreTag(ctx, domain.Tag{UserID: userID, Name: "css"})
	require.NoError(t, err)

	renamed, err := pgSQL.UpdateTag(ctx, userID, ui.ID, storage.TagUpdates{Name: ptr("design")})
	require.NoError(t, err)
	require.Equal(t, "design", renamed.Name)
	require.Equal(t, "#EC4899", *renamed.Color)

	uncolored, err := pgSQL.UpdateTag(ctx, userID, ui.ID, storage.TagUpdates{ClearColor: true})
	require.NoError(t, err)
	require.Nil(t, uncolored.Color)

	unchanged, err := pgSQL.UpdateTag(ctx, userID, ui.ID, storage.TagUpdates{})
	require.NoError(t, err)
	require.Equal(t, "design", unchanged.Name)

	_, err = pgSQL.UpdateTag(ctx, userID, ui.ID, storage.TagUpdates{Name: ptr("css")})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	missing, err := pgSQL.UpdateTag(ctx, createUser(t, pgSQL), ui.ID, storage.TagUpdates{Name: ptr("x")})
	require.NoError(t, err)
	require.Nil(t, missing)

	fav, err := pgSQL.StoreFavorite(ctx, domain.Favorite{UserID: userID, URL: "https://ui.shadcn.com/", Domain: "ui.shadcn.com"})
	require.NoError(t, err)
	require.NoError(t, pgSQL.SetFavoriteTags(ctx, fav.ID, []domain.TagID{ui.ID}))

	deleted, err := pgSQL.DeleteTag(ctx, userID, ui.ID)
	require.NoError(t, err)
	require.Equal(t, ui.ID, deleted.ID)

	linked, err := pgSQL.FavoritesTags(ctx, []domain.FavoriteID{fav.ID})
	require.NoError(t, err)
	require.Empty(t, linked)

	again, err := pgSQL.DeleteTag(ctx, userID, ui.ID)
	require.NoError(t, err)
	require.Nil(t, again)
}
