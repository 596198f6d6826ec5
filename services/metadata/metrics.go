package metadata

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK        = "ok"
	outcomeTransport = "transport_error"
	outcomeStatus    = "status_error"
	outcomeDecode    = "decode_error"
)

var (
	tmdbRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cinescope",
		Name:      "tmdb_requests_total",
		Help:      "Upstream TMDB requests by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	tmdbRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cinescope",
		Name:      "tmdb_request_duration_seconds",
		Help:      "Latency of upstream TMDB requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	fixtureHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cinescope",
		Name:      "fixture_responses_total",
		Help:      "Responses served from fixtures instead of TMDB.",
	}, []string{"operation"})
)

// requestError tags an upstream failure with its metrics outcome.
type requestError struct {
	kind string
	err  error
}

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

func observeTMDBRequest(label string, start time.Time, err error) {
	tmdbRequestDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
	outcome := outcomeOK
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		outcome = reqErr.kind
	} else if err != nil {
		outcome = outcomeTransport
	}
	tmdbRequests.WithLabelValues(label, outcome).Inc()
}
