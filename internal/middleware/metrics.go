package middleware

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/benx421/moneybox/internal/metrics"
)

var uuidSegment = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// Metrics records request count and latency per method, route and status
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			start := time.Now()
			next.ServeHTTP(recorder, r)
			duration := time.Since(start)

			endpoint := endpointLabel(r)

			metrics.HTTPRequestsTotal.WithLabelValues(
				r.Method,
				endpoint,
				strconv.Itoa(recorder.status),
			).Inc()

			metrics.HTTPRequestDuration.WithLabelValues(
				r.Method,
				endpoint,
			).Observe(duration.Seconds())
		})
	}
}

// endpointLabel prefers the ServeMux pattern that matched the request so
// account IDs do not explode label cardinality.
func endpointLabel(r *http.Request) string {
	if r.Pattern != "" {
		pattern := r.Pattern
		if _, path, ok := strings.Cut(pattern, " "); ok {
			pattern = path
		}
		return pattern
	}
	return normalizePath(r.URL.Path)
}

func normalizePath(path string) string {
	return uuidSegment.ReplaceAllString(path, "{id}")
}
