package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"favsetter/pkg/domain"
	"favsetter/pkg/storage"
	"favsetter/pkg/storage/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newMockPgSQL(t *testing.T) (*postgres.PgSQL, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return &postgres.PgSQL{
		DB:      db,
		Builder: goqu.New("postgres", db),
	}, mock
}

func TestPgSQL_UniqueViolationIsDuplicate(t *testing.T) {
	t.Parallel()

	pgSQL, mock := newMockPgSQL(t)
	mock.ExpectQuery(`INSERT INTO "favorites"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "favorites_user_id_url_key"})

	_, err := pgSQL.StoreFavorite(context.Background(), domain.Favorite{
		UserID: domain.UserID(uuid.New()),
		URL:    "https://example.com/",
		Domain: "example.com",
	})
	require.ErrorIs(t, err, storage.ErrDuplicate)
	require.ErrorContains(t, err, "favorites_user_id_url_key")
}

func TestPgSQL_OtherDriverErrorsAreNotDuplicates(t *testing.T) {
	t.Parallel()

	pgSQL, mock := newMockPgSQL(t)
	mock.ExpectQuery(`INSERT INTO "tags"`).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := pgSQL.StoreTag(context.Background(), domain.Tag{UserID: domain.UserID(uuid.New()), Name: "go"})
	require.Error(t, err)
	require.NotErrorIs(t, err, storage.ErrDuplicate)
}

func TestPgSQL_FavoriteByIDNotFound(t *testing.T) {
	t.Parallel()

	pgSQL, mock := newMockPgSQL(t)
	mock.ExpectQuery(`SELECT .* FROM "favorites" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	fav, err := pgSQL.FavoriteByID(context.Background(), domain.UserID(uuid.New()), domain.FavoriteID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, fav)
}

func TestPgSQL_UserTagsScansCounts(t *testing.T) {
	t.Parallel()

	pgSQL, mock := newMockPgSQL(t)
	userID := uuid.New()
	tagID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`LEFT JOIN "favorite_tags" AS "ft".*ILIKE '%dev%'.*GROUP BY "t"."id" ORDER BY "t"."name" ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "color", "created_at", "favorite_count"}).
			AddRow(tagID.String(), userID.String(), "development", "#3B82F6", now, int64(3)))

	tags, err := pgSQL.UserTags(context.Background(), domain.UserID(userID), "dev")
	require.NoError(t, err)
	require.Len(t, tags, 1)
	require.Equal(t, domain.TagID(tagID), tags[0].ID)
	require.Equal(t, "#3B82F6", *tags[0].Color)
	require.Equal(t, 3, tags[0].FavoriteCount)
}

func TestPgSQL_SetFavoriteTagsWithoutTags(t *testing.T) {
	t.Parallel()

	pgSQL, mock := newMockPgSQL(t)
	mock.ExpectExec(`DELETE FROM "favorite_tags" WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, pgSQL.SetFavoriteTags(context.Background(), domain.FavoriteID(uuid.New()), nil))
}

func TestPgSQL_FavoritesTagsWithoutIDs(t *testing.T) {
	t.Parallel()

	pgSQL, _ := newMockPgSQL(t)

	tags, err := pgSQL.FavoritesTags(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, tags)
}

func TestPgSQL_WithTxMock(t *testing.T) {
	t.Parallel()

	t.Run("commit", func(t *testing.T) {
		pgSQL, mock := newMockPgSQL(t)
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "favorite_tags"`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := pgSQL.WithTx(context.Background(), func(s storage.AllStorage) error {
			return s.SetFavoriteTags(context.Background(), domain.FavoriteID(uuid.New()), nil)
		})
		require.NoError(t, err)
	})

	t.Run("rollback", func(t *testing.T) {
		pgSQL, mock := newMockPgSQL(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := pgSQL.WithTx(context.Background(), func(storage.AllStorage) error {
			return boom
		})
		require.ErrorIs(t, err, boom)
	})

	t.Run("begin fails", func(t *testing.T) {
		pgSQL, mock := newMockPgSQL(t)
		mock.ExpectBegin().WillReturnError(errors.New("no connection"))

		called := false
		err := pgSQL.WithTx(context.Background(), func(storage.AllStorage) error {
			called = true

			return nil
		})
		require.Error(t, err)
		require.False(t, called)
	})
}
