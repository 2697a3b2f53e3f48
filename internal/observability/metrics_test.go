package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/api/v1/employees", "GET", 200, 2*time.Millisecond)
	m.RecordRequest("/api/v1/employees", "GET", 200, 4*time.Millisecond)
	m.RecordRequest("/api/v1/shifts/:id", "DELETE", 404, time.Millisecond)
	m.RecordError("/api/v1/shifts/:id", "DELETE", "NOT_FOUND")

	requests, errs := m.Snapshot()
	require.Len(t, requests, 2)
	assert.Equal(t, "/api/v1/employees|GET|200", requests[0].Key)
	assert.Equal(t, int64(2), requests[0].Count)
	assert.InDelta(t, 3.0, requests[0].AvgMillis, 0.001)

	require.Len(t, errs, 1)
	assert.Equal(t, "/api/v1/shifts/:id|DELETE|NOT_FOUND", errs[0].Key)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	requests, errs := m.Snapshot()
	assert.Nil(t, requests)
	assert.Nil(t, errs)
}
