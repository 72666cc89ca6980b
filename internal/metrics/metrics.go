package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	// Request duration histogram with method, path, and status labels
	RequestDuration *prometheus.HistogramVec
	// Login attempts counter
	LoginAttempts *prometheus.CounterVec
	// Page render counter with page label
	PageRenders *prometheus.CounterVec
	// Session validation outcomes
	SessionChecks *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "baladeya_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds.",
		},
			[]string{"method", "path", "status"},
		),
		LoginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "baladeya_login_attempts_total",
			Help: "Total number of login attempts.",
		},
			[]string{"status"},
		),
		PageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "baladeya_page_renders_total",
			Help: "Number of page renders.",
		},
			[]string{"page"},
		),
		SessionChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "baladeya_session_checks_total",
			Help: "Session validation outcomes.",
		},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(m.RequestDuration, m.LoginAttempts, m.PageRenders, m.SessionChecks)
	return m
}
