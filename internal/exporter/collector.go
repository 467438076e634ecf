package exporter

import (
	"github.com/prometheus/client_golang/prometheus"

	"synaudit/internal/core"
)

// Collector implements prometheus.Collector over a Live analyzer. Metrics
// are computed from a table snapshot at scrape time rather than updated
// inline, so the capture path stays free of metric bookkeeping.
type Collector struct {
	live *Live

	connections   *prometheus.Desc
	flagEvents    *prometheus.Desc
	framesTotal   *prometheus.Desc
	framesSkipped *prometheus.Desc
}

func NewCollector(live *Live) *Collector {
	return &Collector{
		live: live,
		connections: prometheus.NewDesc(
			"synaudit_connections",
			"Number of tracked TCP connections by handshake verdict.",
			[]string{"verdict"}, nil,
		),
		flagEvents: prometheus.NewDesc(
			"synaudit_flag_events_total",
			"Total handshake control-flag events folded into the connection table.",
			[]string{"kind"}, nil,
		),
		framesTotal: prometheus.NewDesc(
			"synaudit_frames_total",
			"Total frames delivered by the capture source.",
			nil, nil,
		),
		framesSkipped: prometheus.NewDesc(
			"synaudit_frames_skipped_total",
			"Frames skipped for lacking IP/TCP layers or handshake-relevant flags.",
			nil, nil,
		),
	}
}

// MustRegister registers the collector on the given registry.
func (c *Collector) MustRegister(reg *prometheus.Registry) {
	reg.MustRegister(c)
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.connections
	ch <- c.flagEvents
	ch <- c.framesTotal
	ch <- c.framesSkipped
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	rep, stats := c.live.Snapshot()

	var syn, synack, ack uint64
	for _, conn := range rep.Connections {
		syn += conn.SYN
		synack += conn.SYNACK
		ack += conn.ACK
	}

	ch <- prometheus.MustNewConstMetric(c.connections, prometheus.GaugeValue,
		float64(rep.Summary.Completed), core.VerdictCompleted.String())
	ch <- prometheus.MustNewConstMetric(c.connections, prometheus.GaugeValue,
		float64(rep.Summary.Incomplete), core.VerdictIncomplete.String())

	ch <- prometheus.MustNewConstMetric(c.flagEvents, prometheus.CounterValue,
		float64(syn), core.KindSYN.String())
	ch <- prometheus.MustNewConstMetric(c.flagEvents, prometheus.CounterValue,
		float64(synack), core.KindSYNACK.String())
	ch <- prometheus.MustNewConstMetric(c.flagEvents, prometheus.CounterValue,
		float64(ack), core.KindACK.String())

	ch <- prometheus.MustNewConstMetric(c.framesTotal, prometheus.CounterValue,
		float64(stats.Frames))
	ch <- prometheus.MustNewConstMetric(c.framesSkipped, prometheus.CounterValue,
		float64(stats.Skipped))
}
