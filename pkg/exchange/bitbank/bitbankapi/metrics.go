package bitbankapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var latencyMetrics = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "bitbank_api_latency_ms",
		Help:    "The histogram of latency returned by bitbank API",
		Buckets: prometheus.ExponentialBuckets(20, 2, 9), // 20ms to 5120ms
	},
	[]string{"path", "status_code"},
)

func recordLatencyMetrics(req *http.Request, latencyMs float64, err error) {
	path := req.URL.Path
	statusCode := http.StatusOK
	if err != nil {
		var errResponse *ErrorResponse
		if errors.As(err, &errResponse) {
			statusCode = errResponse.StatusCode
		} else {
			// transport errors have no status code
			statusCode = 0
		}
	}

	latencyMetrics.With(
		prometheus.Labels{
			"path":        path,
			"status_code": strconv.Itoa(statusCode),
		},
	).Observe(latencyMs)
}
