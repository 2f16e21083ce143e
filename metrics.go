package cookiemiddleware

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/auth0/go-cookie-middleware/core"
)

// MetricWhitelistSize is the gauge holding the number of distinct
// whitelisted names. It follows runtime Processor().Whitelist calls.
const MetricWhitelistSize = core.MetricWhitelistSize

// Metrics receives the processor counters and timings plus the gauges set
// by the middleware. It is a superset of core.Metrics.
type Metrics interface {
	IncCounter(name string, tags map[string]string)
	ObserveHistogram(name string, value float64, tags map[string]string)
	SetGauge(name string, value float64, tags map[string]string)
}

// NoopMetrics is a default metrics implementation that does nothing.
type NoopMetrics struct{}

func (m *NoopMetrics) IncCounter(name string, tags map[string]string)                      {}
func (m *NoopMetrics) ObserveHistogram(name string, value float64, tags map[string]string) {}
func (m *NoopMetrics) SetGauge(name string, value float64, tags map[string]string)         {}

type metricDesc struct {
	help    string
	buckets []float64
}

// A request carries a handful of cookies and each one costs a few
// microseconds to seal or open.
var processBuckets = prometheus.ExponentialBuckets(0.00001, 4, 8)

var metricDescs = map[string]metricDesc{
	core.MetricEncrypted: {
		help: "Outgoing cookie values encrypted, partitioned by result.",
	},
	core.MetricDecrypted: {
		help: "Incoming cookie values decrypted, partitioned by result. Failed values are dropped.",
	},
	core.MetricProcessDuration: {
		help:    "Time spent encrypting or decrypting the cookies of one request, partitioned by direction.",
		buckets: processBuckets,
	},
	MetricWhitelistSize: {
		help: "Number of cookie names exempt from encryption.",
	},
}

func describe(name string) metricDesc {
	if d, ok := metricDescs[name]; ok {
		return d
	}
	return metricDesc{help: name}
}

// PrometheusMetrics implements Metrics with Prometheus vectors. A vector is
// registered the first time its name is used, labelled with the tag keys of
// that first call; a name must always be used with the same tag keys.
type PrometheusMetrics struct {
	registerer prometheus.Registerer

	mu         sync.Mutex
	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec
	gauges     map[string]*prometheus.GaugeVec
}

// NewPrometheusMetrics returns a Metrics implementation backed by Prometheus.
// A nil registerer uses prometheus.DefaultRegisterer.
//
// Example:
//
//	middleware, err := cookiemiddleware.New(
//	    cookiemiddleware.WithMetrics(cookiemiddleware.NewPrometheusMetrics(prometheus.DefaultRegisterer)),
//	)
//	http.Handle("/metrics", promhttp.Handler())
func NewPrometheusMetrics(registerer prometheus.Registerer) Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	return &PrometheusMetrics{
		registerer: registerer,
		counters:   make(map[string]*prometheus.CounterVec),
		histograms: make(map[string]*prometheus.HistogramVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
	}
}

// IncCounter increments the counter name for the label values in tags.
func (m *PrometheusMetrics) IncCounter(name string, tags map[string]string) {
	m.mu.Lock()
	vec, ok := m.counters[name]
	if !ok {
		vec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: describe(name).help,
		}, labelNames(tags))
		m.registerer.MustRegister(vec)
		m.counters[name] = vec
	}
	m.mu.Unlock()
	vec.With(tags).Inc()
}

// ObserveHistogram records value in the histogram name.
func (m *PrometheusMetrics) ObserveHistogram(name string, value float64, tags map[string]string) {
	m.mu.Lock()
	vec, ok := m.histograms[name]
	if !ok {
		d := describe(name)
		vec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    name,
			Help:    d.help,
			Buckets: d.buckets,
		}, labelNames(tags))
		m.registerer.MustRegister(vec)
		m.histograms[name] = vec
	}
	m.mu.Unlock()
	vec.With(tags).Observe(value)
}

// SetGauge sets the gauge name to value.
func (m *PrometheusMetrics) SetGauge(name string, value float64, tags map[string]string) {
	m.mu.Lock()
	vec, ok := m.gauges[name]
	if !ok {
		vec = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: name,
			Help: describe(name).help,
		}, labelNames(tags))
		m.registerer.MustRegister(vec)
		m.gauges[name] = vec
	}
	m.mu.Unlock()
	vec.With(tags).Set(value)
}

func labelNames(tags map[string]string) []string {
	names := make([]string, 0, len(tags))
	for k := range tags {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
