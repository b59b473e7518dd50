package backend

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics instruments API requests. A nil *Metrics disables recording.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the client instruments on the given registerer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "superbutton",
			Subsystem: "backend",
			Name:      "requests_total",
			Help:      "API requests by method and HTTP status code.",
		}, []string{"method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "superbutton",
			Subsystem: "backend",
			Name:      "request_duration_seconds",
			Help:      "API request duration by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	for _, collector := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// record counts one request. Status code 0 means the request never got a
// response (transport failure).
func (m *Metrics) record(method string, statusCode int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}
