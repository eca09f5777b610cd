package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveAndSummary(t *testing.T) {
	m := New("clinic_test")
	start := time.Now()

	m.Observe("execute_update", start, nil)
	m.Observe("execute_update", start, nil)
	m.Observe("query_print", start, errors.New("syntax error"))
	m.AddRows(4)
	m.AddRows(0)

	summary, err := m.Summary()
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{
		"execute_update/success": 2,
		"query_print/error":      1,
	}, summary)
	assert.Equal(t, float64(4), testutil.ToFloat64(m.RowsReturned))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.Observe("execute_update", time.Now(), nil)
		m.AddRows(3)
	})
	summary, err := m.Summary()
	require.NoError(t, err)
	assert.Empty(t, summary)
}
