package bitbankapi

import (
	"errors"
	"net/http"
	"testing"

	"github.com/c9s/requestgen"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCount(t *testing.T, path, statusCode string) uint64 {
	observer, err := latencyMetrics.GetMetricWithLabelValues(path, statusCode)
	require.NoError(t, err)

	var m dto.Metric
	require.NoError(t, observer.(prometheus.Metric).Write(&m))
	return m.GetHistogram().GetSampleCount()
}

func TestRecordLatencyMetrics(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "https://api.bitbank.cc/v1/metrics_test", nil)
	require.NoError(t, err)

	recordLatencyMetrics(req, 25, nil)
	assert.Equal(t, uint64(1), sampleCount(t, "/v1/metrics_test", "200"))

	errResponse := &ErrorResponse{
		Response: &requestgen.Response{Response: &http.Response{StatusCode: http.StatusUnauthorized}},
		Code:     20001,
	}
	recordLatencyMetrics(req, 40, errResponse)
	assert.Equal(t, uint64(1), sampleCount(t, "/v1/metrics_test", "401"))

	recordLatencyMetrics(req, 5000, errors.New("connection refused"))
	assert.Equal(t, uint64(1), sampleCount(t, "/v1/metrics_test", "0"))
}
