package httpserver

import (
	"net/http"
	"regexp"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const _meterName = "consignment-server"

var (
	// identifiers in paths would explode label cardinality
	uuidRegex = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

	instruments     *httpInstruments
	instrumentsOnce sync.Once
)

type httpInstruments struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	active   metric.Int64UpDownCounter
}

func newHTTPInstruments(meter metric.Meter) (*httpInstruments, error) {
	duration, err := meter.Float64Histogram(
		"consignment_server.http.request.duration.seconds",
		metric.WithDescription("Duration of HTTP requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5),
	)
	if err != nil {
		return nil, err
	}

	total, err := meter.Int64Counter(
		"consignment_server.http.requests.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	active, err := meter.Int64UpDownCounter(
		"consignment_server.http.requests.active",
		metric.WithDescription("Number of HTTP requests currently being processed"),
	)
	if err != nil {
		return nil, err
	}

	return &httpInstruments{duration: duration, total: total, active: active}, nil
}

func loadInstruments() *httpInstruments {
	instrumentsOnce.Do(func() {
		var err error
		instruments, err = newHTTPInstruments(otel.GetMeterProvider().Meter(_meterName))
		if err != nil {
			panic(err)
		}
	})
	return instruments
}

// MetricsMiddleware records duration, totals and in-flight requests per endpoint.
func MetricsMiddleware() func(http.Handler) http.Handler {
	return metricsMiddlewareWith(loadInstruments())
}

func metricsMiddlewareWith(m *httpInstruments) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			inFlight := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.endpoint", normalizeEndpoint(r.URL.Path)),
			)
			m.active.Add(r.Context(), 1, inFlight)
			defer m.active.Add(r.Context(), -1, inFlight)

			wrappedWriter := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrappedWriter, r)

			completed := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.endpoint", normalizeEndpoint(r.URL.Path)),
				attribute.Int("http.status_code", wrappedWriter.statusCode),
			)
			m.duration.Record(r.Context(), time.Since(start).Seconds(), completed)
			m.total.Add(r.Context(), 1, completed)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func normalizeEndpoint(path string) string {
	if path == "" || path == "/" {
		return "root"
	}

	return uuidRegex.ReplaceAllString(path, "_id")
}
