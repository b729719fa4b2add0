package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReservationMetrics cuenta resultados de reservas por sesión.
type ReservationMetrics struct {
	placements    *prometheus.CounterVec
	cancellations *prometheus.CounterVec
}

func NewReservationMetrics(reg prometheus.Registerer) *ReservationMetrics {
	m := &ReservationMetrics{
		placements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petcare",
			Subsystem: "reservations",
			Name:      "placements_total",
			Help:      "Reservation placement attempts by outcome",
		}, []string{"outcome", "mode"}),
		cancellations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petcare",
			Subsystem: "reservations",
			Name:      "cancellations_total",
			Help:      "Reservation cancellations",
		}, []string{"found"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.placements, m.cancellations)
	return m
}

// ObservePlacement registra un intento. outcome es "ok" o el código del error
// (MissingField, SlotTaken, ...); mode es "create" o "reschedule".
func (m *ReservationMetrics) ObservePlacement(outcome, mode string) {
	if m == nil {
		return
	}
	m.placements.WithLabelValues(outcome, mode).Inc()
}

func (m *ReservationMetrics) ObserveCancellation(found bool) {
	if m == nil {
		return
	}
	label := "false"
	if found {
		label = "true"
	}
	m.cancellations.WithLabelValues(label).Inc()
}

// Handler expone el registry en formato Prometheus. Con g == nil usa el default.
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
