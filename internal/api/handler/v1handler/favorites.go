package v1handler

import (
	"encoding/json"
	"net/http"

	"favsetter/internal/favorites"
	"favsetter/pkg/domain"
	"favsetter/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CreateFavoriteRequest struct {
	URL    string   `json:"url"`
	Rating *int     `json:"rating"`
	Tags   []string `json:"tags"`
}

// NullableInt tells an absent JSON field apart from an explicit null.
type NullableInt struct {
	Set   bool
	Value *int
}

func (n *NullableInt) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil

		return nil
	}

	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err //nolint: wrapcheck
	}
	n.Value = &v

	return nil
}

type UpdateFavoriteRequest struct {
	Rating NullableInt `json:"rating"`
	Tags   *[]string   `json:"tags"`
}

type FavoriteResponse struct {
	Favorite *domain.Favorite `json:"favorite"`
}

type FavoriteListResponse struct {
	Favorites []domain.Favorite `json:"favorites"`
}

type FavoriteGroupsResponse struct {
	Groups []favorites.Group `json:"groups"`
}

// FilterFromRequest reads the q and tag query parameters.
func FilterFromRequest(r *http.Request) favorites.Filter {
	query := r.URL.Query()

	return favorites.Filter{
		Query: query.Get("q"),
		Tags:  query["tag"],
	}
}

func favoriteIDParam(r *http.Request) (domain.FavoriteID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return domain.FavoriteID{}, serrors.With(serrors.ErrNotFound, "favorite not found")
	}

	return domain.FavoriteID(id), nil
}

// ListFavorites returns the user's favorites, newest first.
func (h Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	list, err := h.deps.Favorites.List(r.Context(), GetUserIDFromContext(r.Context()), FilterFromRequest(r))
	if err != nil {
		writeError(w, r, err)

		return
	}
	if list == nil {
		list = []domain.Favorite{}
	}

	writeJSON(w, r, http.StatusOK, FavoriteListResponse{Favorites: list})
}

// ListGroupedFavorites returns the user's favorites grouped by domain.
func (h Handler) ListGroupedFavorites(w http.ResponseWriter, r *http.Request) {
	list, err := h.deps.Favorites.List(r.Context(), GetUserIDFromContext(r.Context()), FilterFromRequest(r))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, FavoriteGroupsResponse{Groups: favorites.GroupByDomain(list)})
}

// CreateFavorite saves a URL together with its resolved metadata.
func (h Handler) CreateFavorite(w http.ResponseWriter, r *http.Request) {
	var req CreateFavoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	favorite, err := h.deps.Favorites.Create(r.Context(), GetUserIDFromContext(r.Context()), favorites.CreateInput{
		URL:    req.URL,
		Rating: req.Rating,
		Tags:   req.Tags,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, FavoriteResponse{Favorite: favorite})
}

// UpdateFavorite changes the rating and/or replaces the tags of a favorite.
func (h Handler) UpdateFavorite(w http.ResponseWriter, r *http.Request) {
	favoriteID, err := favoriteIDParam(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req UpdateFavoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	input := favorites.UpdateInput{
		SetRating: req.Rating.Set,
		Rating:    req.Rating.Value,
	}
	if req.Tags != nil {
		input.SetTags = true
		input.Tags = *req.Tags
	}

	favorite, err := h.deps.Favorites.Update(r.Context(), GetUserIDFromContext(r.Context()), favoriteID, input)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, FavoriteResponse{Favorite: favorite})
}

// DeleteFavorite removes a favorite.
func (h Handler) DeleteFavorite(w http.ResponseWriter, r *http.Request) {
	favoriteID, err := favoriteIDParam(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Favorites.Delete(r.Context(), GetUserIDFromContext(r.Context()), favoriteID); err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}
