package metadata

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"favsetter/pkg/domain"
	"favsetter/pkg/logger"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// DefaultTimeout bounds a whole resolution: connect, response and body read.
	DefaultTimeout = 10 * time.Second
	// DefaultUserAgent identifies the service to the sites it fetches.
	DefaultUserAgent = "Mozilla/5.0 (compatible; FavSetter/1.0)"
	// DefaultMaxBodyBytes caps how much of a response body is parsed.
	DefaultMaxBodyBytes = 2 << 20

	instrumentationName = "favsetter/pkg/metadata"
)

// Outcomes recorded for every resolution. Anything but OutcomeOK and
// OutcomeEmpty is a failure that degraded to domain-only metadata.
const (
	OutcomeOK         = "ok"
	OutcomeEmpty      = "empty"
	OutcomeInvalidURL = "invalid_url"
	OutcomeRequest    = "request"
	OutcomeStatus     = "status"
	OutcomeRead       = "read"
	OutcomeParse      = "parse"
)

// Options configure an HTTPResolver. Zero values fall back to the package defaults.
type Options struct {
	// Timeout is the hard limit for one resolution.
	Timeout time.Duration
	// UserAgent is sent with every request.
	UserAgent string
	// MaxBodyBytes limits the number of body bytes read and parsed.
	MaxBodyBytes int64
	// MeterProvider is used to create instruments. Defaults to the global provider.
	MeterProvider metric.MeterProvider
	// TracerProvider is used to create spans. Defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// HTTPResolver implements Resolver by fetching pages over HTTP and reading
// Open Graph, Twitter card and standard HTML metadata from them. It is safe
// for concurrent use and holds no per-call state.
type HTTPResolver struct {
	httpClient *http.Client
	options    Options

	tracer      trace.Tracer
	resolutions metric.Int64Counter
	duration    metric.Float64Histogram
}

// Ensure HTTPResolver conforms to the Resolver interface at compile time.
var _ Resolver = (*HTTPResolver)(nil)

// New constructs an HTTPResolver. A nil httpClient is replaced by a client
// whose Timeout matches options.Timeout.
func New(httpClient *http.Client, options Options) (*HTTPResolver, error) {
	if options.Timeout <= 0 {
		options.Timeout = DefaultTimeout
	}
	if options.UserAgent == "" {
		options.UserAgent = DefaultUserAgent
	}
	if options.MaxBodyBytes <= 0 {
		options.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if options.MeterProvider == nil {
		options.MeterProvider = otel.GetMeterProvider()
	}
	if options.TracerProvider == nil {
		options.TracerProvider = otel.GetTracerProvider()
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.Timeout}
	}

	resolutions, duration, err := newInstruments(options.MeterProvider.Meter(instrumentationName))
	if err != nil {
		return nil, err
	}

	return &HTTPResolver{
		httpClient:  httpClient,
		options:     options,
		tracer:      options.TracerProvider.Tracer(instrumentationName),
		resolutions: resolutions,
		duration:    duration,
	}, nil
}

// Domain extracts the lower-cased host name of rawURL. The second value is
// false when rawURL does not parse as an absolute URL with a host.
func Domain(rawURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", false
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", false
	}

	return host, true
}

// Resolve implements Resolver. The caller's context only contributes values
// (such as the request-scoped logger); the fetch is bounded by Options.Timeout
// alone and is not cancelled together with ctx.
func (r *HTTPResolver) Resolve(ctx context.Context, rawURL string) domain.URLMetadata {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.options.Timeout)
	defer cancel()

	ctx, span := r.tracer.Start(ctx, "metadata.Resolve", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	start := time.Now()
	md, outcome, err := r.resolve(ctx, rawURL)
	elapsed := time.Since(start)

	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	r.resolutions.Add(ctx, 1, attrs)
	r.duration.Record(ctx, elapsed.Seconds(), attrs)

	span.SetAttributes(attribute.String("url.domain", md.Domain), attribute.String("outcome", outcome))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		logger.Warn(ctx, "could not resolve URL metadata, falling back to domain only",
			zap.String("url", rawURL),
			zap.String("reason", outcome),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
	} else {
		logger.Debug(ctx, "resolved URL metadata",
			zap.String("url", rawURL),
			zap.String("outcome", outcome),
			zap.Duration("elapsed", elapsed))
	}

	return md
}

// resolve does the actual work. The returned metadata is always usable; err
// explains why it is degraded and outcome classifies the result.
func (r *HTTPResolver) resolve(ctx context.Context, rawURL string) (domain.URLMetadata, string, error) {
	host, ok := Domain(rawURL)
	if !ok {
		return domain.URLMetadata{Domain: domain.UnknownDomain}, OutcomeInvalidURL, fmt.Errorf("no host in %q", rawURL)
	}
	md := domain.URLMetadata{Domain: host}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimSpace(rawURL), http.NoBody)
	if err != nil {
		return md, OutcomeRequest, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("User-Agent", r.options.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return md, OutcomeRequest, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return md, OutcomeStatus, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, r.options.MaxBodyBytes))
	if err != nil {
		return md, OutcomeRead, fmt.Errorf("could not read response body: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return md, OutcomeParse, fmt.Errorf("could not parse HTML: %w", err)
	}

	md.Title, md.Description = Extract(doc)
	if md.Title == nil && md.Description == nil {
		return md, OutcomeEmpty, nil
	}

	return md, OutcomeOK, nil
}
