package v1handler_test

import (
	"net/http"
	"testing"

	"favsetter/internal/api/handler/v1handler"
	"favsetter/pkg/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPreviewMetadata(t *testing.T) {
	env := newTestEnv(t)
	env.resolver.EXPECT().Resolve(gomock.Any(), "HTTPS://Example.com/#intro").
		Return(domain.URLMetadata{Domain: "example.com", Title: ptr("Example Domain")})

	rec := env.do(t, http.MethodPost, "/v1/metadata/preview", `{"url":" HTTPS://Example.com/#intro "}`, newUserID())
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"metadata":{"domain":"example.com","title":"Example Domain"}}`, rec.Body.String())
}

func TestPreviewMetadata_Invalid(t *testing.T) {
	for _, body := range []string{`{}`, `{"url":"ftp://example.com"}`, `{"url":"not a url"}`} {
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/v1/metadata/preview", body, newUserID())
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		require.Equal(t, "BAD_REQUEST", decodeBody[v1handler.ErrorResponse](t, rec).Code)
	}
}
