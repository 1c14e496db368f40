package v1handler

import (
	"net/http"

	"favsetter/internal/favorites"
	"favsetter/pkg/domain"
	"favsetter/pkg/serrors"
)

type PreviewMetadataRequest struct {
	URL string `json:"url"`
}

type MetadataResponse struct {
	Metadata domain.URLMetadata `json:"metadata"`
}

// PreviewMetadata resolves a URL without saving it, so clients can show what
// a favorite would look like. The URL is fetched exactly as Create would.
func (h Handler) PreviewMetadata(w http.ResponseWriter, r *http.Request) {
	var req PreviewMetadataRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}
	if req.URL == "" {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "URL is required"))

		return
	}

	URL, err := favorites.ValidateURL(req.URL)
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid URL"))

		return
	}

	writeJSON(w, r, http.StatusOK, MetadataResponse{Metadata: h.deps.Resolver.Resolve(r.Context(), URL)})
}
