// Package metrics expone los contadores de negocio en formato Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/graha-hub/internal/application/ports"
)

const namespace = "graha_hub"

var _ ports.MetricsRecorder = (*Prometheus)(nil)

// Prometheus registro propio (no el global) con los colectores de la aplicación.
type Prometheus struct {
	registry   *prometheus.Registry
	logins     *prometheus.CounterVec
	attendance *prometheus.CounterVec
	sessions   prometheus.Gauge
	requests   *prometheus.CounterVec
}

// NewPrometheus registra los colectores de runtime y de negocio.
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	p := &Prometheus{
		registry: reg,
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Intentos de login terminados por resultado.",
		}, []string{"outcome"}),
		attendance: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attendance_events_total",
			Help:      "Check-in y check-out registrados por estado.",
		}, []string{"kind", "status"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_open",
			Help:      "Sesiones de dashboard abiertas.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP por método, ruta y código.",
		}, []string{"method", "route", "code"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.logins, p.attendance, p.sessions, p.requests,
	)
	return p
}

func (p *Prometheus) LoginCompleted(outcome string) {
	p.logins.WithLabelValues(outcome).Inc()
}

func (p *Prometheus) AttendanceRecorded(kind, status string) {
	p.attendance.WithLabelValues(kind, status).Inc()
}

func (p *Prometheus) SessionsOpen(n int) {
	p.sessions.Set(float64(n))
}

// RequestServed cuenta una petición HTTP atendida.
func (p *Prometheus) RequestServed(method, route, code string) {
	p.requests.WithLabelValues(method, route, code).Inc()
}

// Handler handler HTTP para /metrics.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Registry expuesto para tests.
func (p *Prometheus) Registry() *prometheus.Registry { return p.registry }
