package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueMetrics_Observations(t *testing.T) {
	m, err := NewQueueMetrics(NewRegistry())
	require.NoError(t, err)

	m.EntryFinished("sent")
	m.EntryFinished("sent")
	m.TokenOutcomes(2, 1, 1)
	m.StaleRecovered(3, 1)
	m.GatewayCall(20*time.Millisecond, errors.New("down"))
	m.QueueDepth(map[string]int64{"pending": 7})

	assert.InDelta(t, 2, testutil.ToFloat64(m.EntriesFinished.WithLabelValues("sent")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.TokenResults.WithLabelValues("deactivated")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.StaleRecoveries.WithLabelValues("requeued")), 0)
	assert.InDelta(t, 7, testutil.ToFloat64(m.QueueEntriesGauge.WithLabelValues("pending")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.GatewayDuration))
}

func TestNewQueueMetrics_DuplicateRegistration(t *testing.T) {
	registry := NewRegistry()
	_, err := NewQueueMetrics(registry)
	require.NoError(t, err)

	_, err = NewQueueMetrics(registry)
	assert.Error(t, err)
}

func TestHandler_ExposesQueueMetrics(t *testing.T) {
	registry := NewRegistry()
	m, err := NewQueueMetrics(registry)
	require.NoError(t, err)
	m.EntryFinished("failed")

	rec := httptest.NewRecorder()
	Handler(registry).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `beacon_queue_entries_finished_total{status="failed"} 1`)
}
