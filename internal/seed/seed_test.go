package seed_test

import (
	"context"
	"errors"
	"testing"

	mockaccounts "favsetter/internal/accounts/mock"
	"favsetter/internal/seed"
	mocktags "favsetter/internal/tags/mock"
	"favsetter/pkg/domain"
	"favsetter/pkg/storage"
	mockstorage "favsetter/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testSeeder struct {
	ctrl     *gomock.Controller
	storage  *mockstorage.MockStorage
	accounts *mockaccounts.MockAccounts
	tags     *mocktags.MockTags
	seeder   *seed.Seeder
}

func newTestSeeder(t *testing.T) testSeeder {
	t.Helper()

	ctrl := gomock.NewController(t)
	ts := testSeeder{
		ctrl:     ctrl,
		storage:  mockstorage.NewMockStorage(ctrl),
		accounts: mockaccounts.NewMockAccounts(ctrl),
		tags:     mocktags.NewMockTags(ctrl),
	}
	ts.seeder = seed.New(ts.storage, ts.accounts, ts.tags)

	return ts
}

func (ts testSeeder) expectTags(userID domain.UserID, names ...string) map[string]domain.TagID {
	ids := make(map[string]domain.TagID, len(names))
	for _, name := range names {
		id := domain.TagID(uuid.New())
		ids[name] = id
		ts.tags.EXPECT().Create(gomock.Any(), userID, name, gomock.Any()).
			Return(&domain.Tag{ID: id, UserID: userID, Name: name}, nil)
	}

	return ids
}

func TestDemo(t *testing.T) {
	data := seed.Demo()
	require.Len(t, data.Users, 2)
	require.Equal(t, "demo@example.com", data.Users[0].Email)
	require.Len(t, data.Tags, 8)
	require.Len(t, data.Favorites, 5)

	names := make(map[string]bool)
	for _, tag := range data.Tags {
		require.Regexp(t, `^#[0-9A-F]{6}$`, tag.Color)
		names[tag.Name] = true
	}
	for _, favorite := range data.Favorites {
		require.True(t, domain.ValidRating(favorite.Rating))
		for _, name := range favorite.Tags {
			require.True(t, names[name], "favorite %s uses unknown tag %s", favorite.URL, name)
		}
	}
}

func TestRun_FreshDatabase(t *testing.T) {
	ts := newTestSeeder(t)
	owner := &domain.User{ID: domain.UserID(uuid.New()), Email: "demo@example.com"}

	ts.storage.EXPECT().UserByEmail(gomock.Any(), "demo@example.com").Return(nil, nil)
	ts.accounts.EXPECT().Register(gomock.Any(), "demo@example.com", "Demo", seed.DemoPassword).Return(owner, nil)
	tagIDs := ts.expectTags(owner.ID, "music", "ui")

	ts.storage.EXPECT().FavoriteByURLKey(gomock.Any(), owner.ID, "https://ui.shadcn.com/").Return(nil, nil)
	ts.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ts.ctrl)
			favoriteID := domain.FavoriteID(uuid.New())
			tx.EXPECT().StoreFavorite(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, favorite domain.Favorite) (*domain.Favorite, error) {
					require.Equal(t, owner.ID, favorite.UserID)
					require.Equal(t, "ui.shadcn.com", favorite.Domain)
					require.Equal(t, "https://ui.shadcn.com/", favorite.URLKey)
					require.Equal(t, "shadcn/ui", *favorite.Title)
					require.NotNil(t, favorite.Description)
					require.Equal(t, 5, *favorite.Rating)
					favorite.ID = favoriteID

					return &favorite, nil
				})
			tx.EXPECT().SetFavoriteTags(gomock.Any(), favoriteID, []domain.TagID{tagIDs["ui"]}).Return(nil)

			return cb(tx)
		})

	err := ts.seeder.Run(context.Background(), seed.Data{
		Users: []seed.User{{Email: "demo@example.com", Name: "Demo"}},
		Tags:  []seed.Tag{{Name: "music", Color: "#F59E0B"}, {Name: "ui", Color: "#EC4899"}},
		Favorites: []seed.Favorite{{
			URL:         "https://ui.shadcn.com/",
			Title:       "shadcn/ui",
			Description: "Beautifully designed components.",
			Rating:      5,
			Tags:        []string{"ui", "missing"},
		}},
	})
	require.NoError(t, err)
}

func TestRun_AlreadySeeded(t *testing.T) {
	ts := newTestSeeder(t)
	owner := &domain.User{ID: domain.UserID(uuid.New()), Email: "demo@example.com"}

	ts.storage.EXPECT().UserByEmail(gomock.Any(), "demo@example.com").Return(owner, nil)
	ts.expectTags(owner.ID, "music")
	ts.storage.EXPECT().FavoriteByURLKey(gomock.Any(), owner.ID, "https://www.youtube.com/watch?v=dQw4w9WgXcQ").
		Return(&domain.Favorite{URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}, nil)

	err := ts.seeder.Run(context.Background(), seed.Data{
		Users: []seed.User{{Email: "demo@example.com"}},
		Tags:  []seed.Tag{{Name: "music", Color: "#F59E0B"}},
		Favorites: []seed.Favorite{{
			URL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			Tags: []string{"music"},
		}},
	})
	require.NoError(t, err)
}

func TestRun_RegisterFails(t *testing.T) {
	ts := newTestSeeder(t)
	boom := errors.New("boom")

	ts.storage.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
	ts.accounts.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

	err := ts.seeder.Run(context.Background(), seed.Data{Users: []seed.User{{Email: "demo@example.com"}}})
	require.ErrorIs(t, err, boom)
}

func TestRun_NoUsers(t *testing.T) {
	ts := newTestSeeder(t)

	require.NoError(t, ts.seeder.Run(context.Background(), seed.Data{}))
}
