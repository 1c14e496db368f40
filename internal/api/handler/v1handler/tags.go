package v1handler

import (
	"encoding/json"
	"net/http"

	"favsetter/internal/tags"
	"favsetter/pkg/domain"
	"favsetter/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CreateTagRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

// NullableString tells an absent JSON field apart from an explicit null.
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil

		return nil
	}

	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err //nolint: wrapcheck
	}
	n.Value = &v

	return nil
}

type UpdateTagRequest struct {
	Name  *string        `json:"name"`
	Color NullableString `json:"color"`
}

type TagResponse struct {
	Tag *domain.Tag `json:"tag"`
}

type TagListResponse struct {
	Tags []domain.Tag `json:"tags"`
}

func tagIDParam(r *http.Request) (domain.TagID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return domain.TagID{}, serrors.With(serrors.ErrNotFound, "tag not found")
	}

	return domain.TagID(id), nil
}

// ListTags returns the user's tags by name with their favorite counts.
func (h Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	list, err := h.deps.Tags.List(r.Context(), GetUserIDFromContext(r.Context()), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)

		return
	}
	if list == nil {
		list = []domain.Tag{}
	}

	writeJSON(w, r, http.StatusOK, TagListResponse{Tags: list})
}

// CreateTag creates a tag, or returns the existing one with the same name.
func (h Handler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req CreateTagRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	tag, err := h.deps.Tags.Create(r.Context(), GetUserIDFromContext(r.Context()), req.Name, req.Color)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, TagResponse{Tag: tag})
}

// UpdateTag renames and/or recolors a tag. A null color removes it.
func (h Handler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	tagID, err := tagIDParam(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req UpdateTagRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	input := tags.UpdateInput{Name: req.Name}
	if req.Color.Set {
		color := ""
		if req.Color.Value != nil {
			color = *req.Color.Value
		}
		input.Color = &color
	}

	tag, err := h.deps.Tags.Update(r.Context(), GetUserIDFromContext(r.Context()), tagID, input)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, TagResponse{Tag: tag})
}

// DeleteTag removes a tag and detaches it from every favorite.
func (h Handler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	tagID, err := tagIDParam(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Tags.Delete(r.Context(), GetUserIDFromContext(r.Context()), tagID); err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}
