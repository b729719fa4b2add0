package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationMetricsCustomRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewReservationMetrics(reg)
	m.ObservePlacement("ok", "create")
	m.ObservePlacement("SlotTaken", "create")
	m.ObserveCancellation(true)

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Contains(t, string(body), `petcare_reservations_placements_total{mode="create",outcome="SlotTaken"} 1`)
	assert.Contains(t, string(body), `petcare_reservations_cancellations_total{found="true"} 1`)
}

func TestReservationMetricsNilSafe(t *testing.T) {
	var m *ReservationMetrics
	m.ObservePlacement("ok", "reschedule")
	m.ObserveCancellation(false)
}
