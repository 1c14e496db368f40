package tags_test

import (
	"context"
	"testing"

	"favsetter/internal/tags"
	"favsetter/pkg/domain"
	"favsetter/pkg/serrors"
	"favsetter/pkg/storage"
	mockstorage "favsetter/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func newTestTags(t *testing.T) (*mockstorage.MockStorage, tags.Tags) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return st, tags.New(st)
}

func TestTags_List(t *testing.T) {
	st, s := newTestTags(t)
	userID := domain.UserID(uuid.New())

	st.EXPECT().UserTags(gomock.Any(), userID, "dev").
		Return([]domain.Tag{{Name: "development", FavoriteCount: 2}}, nil)
	st.EXPECT().UserTags(gomock.Any(), userID, "").Return(nil, nil)

	list, err := s.List(context.Background(), userID, "  dev ")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, 2, list[0].FavoriteCount)

	empty, err := s.List(context.Background(), userID, "")
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)
}

func TestTags_Create(t *testing.T) {
	userID := domain.UserID(uuid.New())

	t.Run("new tag", func(t *testing.T) {
		st, s := newTestTags(t)
		st.EXPECT().TagByName(gomock.Any(), userID, "ui").Return(nil, nil)
		st.EXPECT().StoreTag(gomock.Any(), domain.Tag{UserID: userID, Name: "ui", Color: ptr("#EC4899")}).
			Return(&domain.Tag{Name: "ui", Color: ptr("#EC4899")}, nil)

		tag, err := s.Create(context.Background(), userID, " ui ", ptr(" #EC4899 "))
		require.NoError(t, err)
		require.Equal(t, "#EC4899", *tag.Color)
	})

	t.Run("existing tag is returned unchanged", func(t *testing.T) {
		st, s := newTestTags(t)
		existing := &domain.Tag{ID: domain.TagID(uuid.New()), Name: "ui"}
		st.EXPECT().TagByName(gomock.Any(), userID, "ui").Return(existing, nil)

		tag, err := s.Create(context.Background(), userID, "ui", ptr("#000000"))
		require.NoError(t, err)
		require.Same(t, existing, tag)
	})

	t.Run("created concurrently", func(t *testing.T) {
		st, s := newTestTags(t)
		existing := &domain.Tag{ID: domain.TagID(uuid.New()), Name: "ui"}
		gomock.InOrder(
			st.EXPECT().TagByName(gomock.Any(), userID, "ui").Return(nil, nil),
			st.EXPECT().StoreTag(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate),
			st.EXPECT().TagByName(gomock.Any(), userID, "ui").Return(existing, nil),
		)

		tag, err := s.Create(context.Background(), userID, "ui", nil)
		require.NoError(t, err)
		require.Same(t, existing, tag)
	})

	t.Run("empty color means no color", func(t *testing.T) {
		st, s := newTestTags(t)
		st.EXPECT().TagByName(gomock.Any(), userID, "go").Return(nil, nil)
		st.EXPECT().StoreTag(gomock.Any(), domain.Tag{UserID: userID, Name: "go"}).
			Return(&domain.Tag{Name: "go"}, nil)

		tag, err := s.Create(context.Background(), userID, "go", ptr(" "))
		require.NoError(t, err)
		require.Nil(t, tag.Color)
	})

	t.Run("validation", func(t *testing.T) {
		_, s := newTestTags(t)

		_, err := s.Create(context.Background(), userID, "   ", nil)
		require.ErrorIs(t, err, serrors.ErrBadRequest)

		for _, color := range []string{"red", "#FFF", "#GGGGGG", "3B82F6", "#3B82F6AA"} {
			_, err := s.Create(context.Background(), userID, "tag", ptr(color))
			require.ErrorIs(t, err, serrors.ErrBadRequest, color)
		}
	})
}

func TestTags_Update(t *testing.T) {
	userID := domain.UserID(uuid.New())
	tagID := domain.TagID(uuid.New())

	t.Run("rename and clear color", func(t *testing.T) {
		st, s := newTestTags(t)
		st.EXPECT().UpdateTag(gomock.Any(), userID, tagID, storage.TagUpdates{Name: ptr("design"), ClearColor: true}).
			Return(&domain.Tag{ID: tagID, Name: "design"}, nil)

		tag, err := s.Update(context.Background(), userID, tagID, tags.UpdateInput{Name: ptr(" design "), Color: ptr("")})
		require.NoError(t, err)
		require.Equal(t, "design", tag.Name)
	})

	t.Run("recolor", func(t *testing.T) {
		st, s := newTestTags(t)
		st.EXPECT().UpdateTag(gomock.Any(), userID, tagID, storage.TagUpdates{Color: ptr("#10B981")}).
			Return(&domain.Tag{ID: tagID, Color: ptr("#10B981")}, nil)

		_, err := s.Update(context.Background(), userID, tagID, tags.UpdateInput{Color: ptr("#10B981")})
		require.NoError(t, err)
	})

	t.Run("name conflict", func(t *testing.T) {
		st, s := newTestTags(t)
		st.EXPECT().UpdateTag(gomock.Any(), userID, tagID, gomock.Any()).Return(nil, storage.ErrDuplicate)

		_, err := s.Update(context.Background(), userID, tagID, tags.UpdateInput{Name: ptr("css")})
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("not found", func(t *testing.T) {
		st, s := newTestTags(t)
		st.EXPECT().UpdateTag(gomock.Any(), userID, tagID, gomock.Any()).Return(nil, nil)

		_, err := s.Update(context.Background(), userID, tagID, tags.UpdateInput{Name: ptr("css")})
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, s := newTestTags(t)

		_, err := s.Update(context.Background(), userID, tagID, tags.UpdateInput{Name: ptr(" ")})
		require.ErrorIs(t, err, serrors.ErrBadRequest)

		_, err = s.Update(context.Background(), userID, tagID, tags.UpdateInput{Color: ptr("blue")})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}

func TestTags_Delete(t *testing.T) {
	userID := domain.UserID(uuid.New())
	tagID := domain.TagID(uuid.New())

	st, s := newTestTags(t)
	gomock.InOrder(
		st.EXPECT().DeleteTag(gomock.Any(), userID, tagID).Return(&domain.Tag{ID: tagID}, nil),
		st.EXPECT().DeleteTag(gomock.Any(), userID, tagID).Return(nil, nil),
	)

	require.NoError(t, s.Delete(context.Background(), userID, tagID))
	require.ErrorIs(t, s.Delete(context.Background(), userID, tagID), serrors.ErrNotFound)
}
