package favorites_test

import (
	"testing"

	"favsetter/internal/favorites"

	"github.com/stretchr/testify/require"
)

func TestURLKey(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
		ok   bool
	}{
		{
			name: "lowercase scheme and host; add root path",
			in:   "HTTP://Example.COM",
			out:  "http://example.com/",
			ok:   true,
		},
		{
			name: "remove default http port",
			in:   "http://example.com:80/path",
			out:  "http://example.com/path",
			ok:   true,
		},
		{
			name: "remove default https port",
			in:   "https://example.com:443/",
			out:  "https://example.com/",
			ok:   true,
		},
		{
			name: "keep non-default port",
			in:   "http://example.com:8080/",
			out:  "http://example.com:8080/",
			ok:   true,
		},
		{
			name: "path kept with trailing slash",
			in:   "https://example.com/docs/",
			out:  "https://example.com/docs/",
			ok:   true,
		},
		{
			name: "query order kept",
			in:   "http://EXAMPLE.com/path?b=2&a=2&a=1",
			out:  "http://example.com/path?b=2&a=2&a=1",
			ok:   true,
		},
		{
			name: "fragment kept",
			in:   "https://app.example.com/#/inbox",
			out:  "https://app.example.com/#/inbox",
			ok:   true,
		},
		{
			name: "query without path",
			in:   "https://example.com?x=1",
			out:  "https://example.com/?x=1",
			ok:   true,
		},
		{
			name: "ipv6 host with port (non-default kept)",
			in:   "http://[2001:db8::1]:8080/a",
			out:  "http://[2001:db8::1]:8080/a",
			ok:   true,
		},
		{
			name: "surrounding whitespace",
			in:   "  https://GitHub.com/vercel/next.js  ",
			out:  "https://github.com/vercel/next.js",
			ok:   true,
		},
		{
			name: "relative url is rejected",
			in:   "/docs/getting-started",
		},
		{
			name: "scheme-less url is rejected",
			in:   "example.com/path",
		},
		{
			name: "non-http scheme is rejected",
			in:   "ftp://example.com/file",
		},
		{
			name: "mailto is rejected",
			in:   "mailto:someone@example.com",
		},
		{
			name: "empty string is rejected",
			in:   "",
		},
		{
			name: "invalid url returns error",
			in:   "http://exa mple.com",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := favorites.URLKey(tc.in)
			if !tc.ok {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.out, got)
		})
	}
}

func TestURLKey_DistinctPagesGetDistinctKeys(t *testing.T) {
	pairs := [][2]string{
		{"https://app.example.com/#/inbox", "https://app.example.com/#/settings"},
		{"https://example.com/docs/", "https://example.com/docs"},
		{"https://example.com/?page=1", "https://example.com/?page=2"},
	}
	for _, pair := range pairs {
		a, err := favorites.URLKey(pair[0])
		require.NoError(t, err)
		b, err := favorites.URLKey(pair[1])
		require.NoError(t, err)
		require.NotEqual(t, a, b, "%s vs %s", pair[0], pair[1])
	}
}

func TestValidateURL(t *testing.T) {
	got, err := favorites.ValidateURL("  HTTPS://Example.com/Docs/#intro \n")
	require.NoError(t, err)
	require.Equal(t, "HTTPS://Example.com/Docs/#intro", got, "the saved URL is the trimmed input")

	_, err = favorites.ValidateURL("example.com")
	require.ErrorIs(t, err, favorites.ErrUnsupportedURL)

	_, err = favorites.ValidateURL("http://exa mple.com")
	require.Error(t, err)
}
