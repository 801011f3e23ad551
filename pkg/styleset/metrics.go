package styleset

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics describes reloads and the currently published styles
type Metrics struct {
	reloads   *prometheus.CounterVec
	duration  prometheus.Histogram
	lastOK    prometheus.Gauge
	styles    prometheus.Gauge
	emoticons *prometheus.GaugeVec
	skipped   *prometheus.GaugeVec
	warnings  *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		reloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatstyle_reloads_total",
				Help: "Style reloads by result.",
			},
			[]string{"result"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "chatstyle_reload_duration_seconds",
				Help:    "Time spent loading configuration and building styles.",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
			},
		),
		lastOK: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "chatstyle_last_reload_success_timestamp_seconds",
				Help: "Unix time of the last successful reload.",
			},
		),
		styles: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "chatstyle_styles",
				Help: "Number of styles in the published set, default included.",
			},
		),
		emoticons: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "chatstyle_emoticons",
				Help: "Registered emoticon triggers per style.",
			},
			[]string{"style"},
		),
		skipped: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "chatstyle_skipped_entries",
				Help: "Configuration entries skipped while building a style.",
			},
			[]string{"style"},
		),
		warnings: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "chatstyle_template_warnings",
				Help: "Templates using placeholders their event never supplies.",
			},
			[]string{"style"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.reloads, m.duration, m.lastOK, m.styles, m.emoticons, m.skipped, m.warnings)
	}
	return m
}

// observe records one reload attempt. set is nil when it failed.
func (m *Metrics) observe(set *Set, err error, took time.Duration) {
	if m == nil {
		return
	}
	m.duration.Observe(took.Seconds())
	if err != nil {
		m.reloads.WithLabelValues("failure").Inc()
		return
	}
	m.reloads.WithLabelValues("success").Inc()
	m.lastOK.SetToCurrentTime()

	styles := set.Styles()
	m.styles.Set(float64(len(styles)))
	m.emoticons.Reset()
	m.skipped.Reset()
	m.warnings.Reset()
	for _, st := range styles {
		rep := st.Report()
		skipped := len(rep.Custom)
		for _, e := range rep.Emoticons {
			skipped += len(e.Skips)
			if e.Err != nil {
				skipped++
			}
		}
		m.emoticons.WithLabelValues(st.Name()).Set(float64(st.EmoticonCount()))
		m.skipped.WithLabelValues(st.Name()).Set(float64(skipped))
		m.warnings.WithLabelValues(st.Name()).Set(float64(len(rep.Warnings)))
	}
}
