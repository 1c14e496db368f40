package metadata_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"favsetter/pkg/domain"
	"favsetter/pkg/logger"
	"favsetter/pkg/metadata"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newResolver(t *testing.T, opts metadata.Options) *metadata.HTTPResolver {
	t.Helper()
	r, err := metadata.New(nil, opts)
	require.NoError(t, err)

	return r
}

func serveHTML(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func hostOf(t *testing.T, raw string) string {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)

	return u.Hostname()
}

func TestResolve_OpenGraphTakesPriority(t *testing.T) {
	srv := serveHTML(t, http.StatusOK, `<html><head>
		<title>Document title</title>
		<meta name="twitter:title" content="Twitter title">
		<meta property="og:title" content="OG title">
		<meta name="description" content="Plain description">
		<meta name="twitter:description" content="Twitter description">
		<meta property="og:description" content="OG description">
	</head><body></body></html>`)

	md := newResolver(t, metadata.Options{}).Resolve(context.Background(), srv.URL+"/page")

	require.Equal(t, hostOf(t, srv.URL), md.Domain)
	require.NotNil(t, md.Title)
	require.Equal(t, "OG title", *md.Title)
	require.NotNil(t, md.Description)
	require.Equal(t, "OG description", *md.Description)
}

func TestResolve_FallbackOrder(t *testing.T) {
	tests := []struct {
		name        string
		head        string
		title       *string
		description *string
	}{
		{
			name:        "twitter card when no open graph",
			head:        `<title>Doc</title><meta name="twitter:title" content="TW"><meta name="twitter:description" content="TWD"><meta name="description" content="D">`,
			title:       ptr("TW"),
			description: ptr("TWD"),
		},
		{
			name:        "document title and meta description",
			head:        `<title>  Doc title </title><meta name="description" content="D">`,
			title:       ptr("Doc title"),
			description: ptr("D"),
		},
		{
			name:        "empty og title falls through",
			head:        `<meta property="og:title" content="  "><title>Doc</title>`,
			title:       ptr("Doc"),
			description: nil,
		},
		{
			name: "nothing available",
			head: `<meta charset="utf-8">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serveHTML(t, http.StatusOK, "<html><head>"+tt.head+"</head><body><p>hi</p></body></html>")
			md := newResolver(t, metadata.Options{}).Resolve(context.Background(), srv.URL)

			require.Equal(t, hostOf(t, srv.URL), md.Domain)
			require.Equal(t, tt.title, md.Title)
			require.Equal(t, tt.description, md.Description)
		})
	}
}

func TestResolve_NonSuccessStatus(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusForbidden} {
		t.Run(fmt.Sprint(status), func(t *testing.T) {
			srv := serveHTML(t, status, `<html><head><title>Error page</title></head></html>`)
			md := newResolver(t, metadata.Options{}).Resolve(context.Background(), srv.URL)

			require.Equal(t, hostOf(t, srv.URL), md.Domain)
			require.Nil(t, md.Title)
			require.Nil(t, md.Description)
		})
	}
}

func TestResolve_InvalidInputs(t *testing.T) {
	r := newResolver(t, metadata.Options{})

	for _, raw := range []string{"", "not a url", "http://[::1", "/relative/path", "mailto:someone@example.com"} {
		t.Run(raw, func(t *testing.T) {
			var md domain.URLMetadata
			require.NotPanics(t, func() {
				md = r.Resolve(context.Background(), raw)
			})
			require.Equal(t, domain.URLMetadata{Domain: domain.UnknownDomain}, md)
		})
	}
}

func TestResolve_UnsupportedScheme(t *testing.T) {
	md := newResolver(t, metadata.Options{}).Resolve(context.Background(), "ftp://files.example.com/readme.txt")

	require.Equal(t, domain.URLMetadata{Domain: "files.example.com"}, md)
}

func TestResolve_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	target := srv.URL
	srv.Close()

	start := time.Now()
	md := newResolver(t, metadata.Options{Timeout: 2 * time.Second}).Resolve(context.Background(), target)

	require.Equal(t, domain.URLMetadata{Domain: hostOf(t, target)}, md)
	require.Less(t, time.Since(start), 3*time.Second)
}

func TestResolve_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	start := time.Now()
	md := newResolver(t, metadata.Options{Timeout: 100 * time.Millisecond}).Resolve(context.Background(), srv.URL)

	require.Equal(t, domain.URLMetadata{Domain: hostOf(t, srv.URL)}, md)
	require.Less(t, time.Since(start), 2*time.Second)
}

func TestResolve_IgnoresCallerCancellation(t *testing.T) {
	srv := serveHTML(t, http.StatusOK, `<html><head><title>Still fetched</title></head></html>`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	md := newResolver(t, metadata.Options{}).Resolve(ctx, srv.URL)
	require.NotNil(t, md.Title)
	require.Equal(t, "Still fetched", *md.Title)
}

func TestResolve_SendsUserAgent(t *testing.T) {
	var gotUA, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.UserAgent()
		gotMethod = r.Method
		_, _ = w.Write([]byte(`<title>t</title>`))
	}))
	t.Cleanup(srv.Close)

	newResolver(t, metadata.Options{}).Resolve(context.Background(), srv.URL)
	require.Equal(t, metadata.DefaultUserAgent, gotUA)
	require.Equal(t, http.MethodGet, gotMethod)

	newResolver(t, metadata.Options{UserAgent: "custom/2.0"}).Resolve(context.Background(), srv.URL)
	require.Equal(t, "custom/2.0", gotUA)
}

func TestResolve_TruncatesAndNormalizes(t *testing.T) {
	longTitle := strings.Repeat("a", 250)
	mediumTitle := strings.Repeat("b", 150)
	longDescription := strings.Repeat("d", 600)

	t.Run("long title", func(t *testing.T) {
		srv := serveHTML(t, http.StatusOK, `<title>`+longTitle+`</title><meta name="description" content="`+longDescription+`">`)
		md := newResolver(t, metadata.Options{}).Resolve(context.Background(), srv.URL)

		require.NotNil(t, md.Title)
		require.Len(t, *md.Title, 200)
		require.True(t, strings.HasSuffix(*md.Title, "..."))
		require.Equal(t, strings.Repeat("a", 197), strings.TrimSuffix(*md.Title, "..."))

		require.NotNil(t, md.Description)
		require.Len(t, *md.Description, 500)
		require.True(t, strings.HasSuffix(*md.Description, "..."))
	})

	t.Run("medium title", func(t *testing.T) {
		srv := serveHTML(t, http.StatusOK, `<title>`+mediumTitle+`</title>`)
		md := newResolver(t, metadata.Options{}).Resolve(context.Background(), srv.URL)

		require.NotNil(t, md.Title)
		require.Equal(t, mediumTitle, *md.Title)
	})

	t.Run("whitespace", func(t *testing.T) {
		srv := serveHTML(t, http.StatusOK, "<title>\n\t  Hello \t\t world\n\n  again  </title>")
		md := newResolver(t, metadata.Options{}).Resolve(context.Background(), srv.URL)

		require.NotNil(t, md.Title)
		require.Equal(t, "Hello world again", *md.Title)
	})
}

func TestResolve_NonHTMLBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"not html"}`))
	}))
	t.Cleanup(srv.Close)

	md := newResolver(t, metadata.Options{}).Resolve(context.Background(), srv.URL)
	require.Equal(t, domain.URLMetadata{Domain: hostOf(t, srv.URL)}, md)
}

func TestResolve_BodyLimit(t *testing.T) {
	padding := strings.Repeat("x", 4096)
	srv := serveHTML(t, http.StatusOK, `<html><head><!--`+padding+`--><title>late</title></head></html>`)

	md := newResolver(t, metadata.Options{MaxBodyBytes: 1024}).Resolve(context.Background(), srv.URL)
	require.Nil(t, md.Title)
	require.Equal(t, hostOf(t, srv.URL), md.Domain)
}

func TestResolve_RecordsOutcome(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	r := newResolver(t, metadata.Options{MeterProvider: mp})

	srv := serveHTML(t, http.StatusNotFound, "")
	r.Resolve(context.Background(), srv.URL)
	r.Resolve(context.Background(), "")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	outcomes := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "metadata.resolutions" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				v, _ := dp.Attributes.Value("outcome")
				outcomes[v.AsString()] += dp.Value
			}
		}
	}

	require.Equal(t, map[string]int64{
		metadata.OutcomeStatus:     1,
		metadata.OutcomeInvalidURL: 1,
	}, outcomes)
}

func TestDomain(t *testing.T) {
	tests := []struct {
		in   string
		host string
		ok   bool
	}{
		{"https://Example.COM/path?q=1", "example.com", true},
		{"http://localhost:8080/", "localhost", true},
		{"  https://example.org  ", "example.org", true},
		{"http://[::1]:80/", "::1", true},
		{"", "", false},
		{"example.com", "", false},
		{"://bad", "", false},
	}

	for _, tt := range tests {
		host, ok := metadata.Domain(tt.in)
		require.Equal(t, tt.ok, ok, tt.in)
		require.Equal(t, tt.host, host, tt.in)
	}
}

func ptr(s string) *string { return &s }
