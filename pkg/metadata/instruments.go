package metadata

import (
	"fmt"

	"favsetter/pkg/metrics"

	"go.opentelemetry.io/otel/metric"
)

func newInstruments(meter metric.Meter) (metric.Int64Counter, metric.Float64Histogram, error) {
	resolutions, err := meter.Int64Counter("metadata.resolutions",
		metric.WithDescription("Number of URL metadata resolutions by outcome"))
	if err != nil {
		return nil, nil, fmt.Errorf("could not create resolutions counter: %w", err)
	}

	duration, err := meter.Float64Histogram("metadata.resolution.duration",
		metric.WithDescription("Time spent resolving URL metadata"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, nil, fmt.Errorf("could not create resolution duration histogram: %w", err)
	}

	return resolutions, duration, nil
}
