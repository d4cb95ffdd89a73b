// Package metrics agrupa los colectores Prometheus del portal.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "vendor_portal"

// NewRegistry crea un registro propio (no el global) con los colectores del proceso.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Gateway métricas del cliente REST hacia el backend del marketplace.
// Un *Gateway nil es válido y no registra nada.
type Gateway struct {
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	forcedLogouts prometheus.Counter
}

// NewGateway crea y registra los colectores del gateway.
func NewGateway(reg prometheus.Registerer) *Gateway {
	g := &Gateway{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "gateway",
				Name:      "requests_total",
				Help:      "Total de peticiones al backend por método, ruta y status.",
			},
			[]string{"method", "route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "gateway",
				Name:      "request_duration_seconds",
				Help:      "Duración de las peticiones al backend.",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms a ~5s
			},
			[]string{"method", "route"},
		),
		forcedLogouts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "session",
				Name:      "forced_logouts_total",
				Help:      "Sesiones revocadas por una respuesta 401.",
			},
		),
	}
	reg.MustRegister(g.requests, g.duration, g.forcedLogouts)
	return g
}

// Observe registra una petición terminada. status 0 = error de transporte.
func (g *Gateway) Observe(method, route string, status int, d time.Duration) {
	if g == nil {
		return
	}
	label := strconv.Itoa(status)
	if status == 0 {
		label = "transport_error"
	}
	g.requests.WithLabelValues(method, route, label).Inc()
	g.duration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ForcedLogout cuenta una revocación de sesión por 401.
func (g *Gateway) ForcedLogout() {
	if g == nil {
		return
	}
	g.forcedLogouts.Inc()
}
