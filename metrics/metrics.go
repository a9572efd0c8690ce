// Package metrics exports modlog dispatch counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/modlog"
)

const namespace = "modlog"

// StatsSource is anything reporting modlog dispatch counters, usually a *modlog.Logger
type StatsSource interface {
	Stats() modlog.Stats
}

// counter pairs a metric description with the Stats field it reads
type counter struct {
	desc  *prometheus.Desc
	value func(modlog.Stats) uint64
}

// Collector is a prometheus.Collector reading a snapshot of the source on every scrape
type Collector struct {
	source   StatsSource
	counters []counter
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector for source. constLabels are attached to every
// metric, which lets several loggers register against the same registry.
func NewCollector(source StatsSource, constLabels prometheus.Labels) *Collector {
	newDesc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, nil, constLabels)
	}

	return &Collector{
		source: source,
		counters: []counter{
			{
				desc:  newDesc("console_lines_total", "Total number of lines written to the console"),
				value: func(s modlog.Stats) uint64 { return s.ConsoleLines },
			},
			{
				desc:  newDesc("file_lines_total", "Total number of lines appended to log files"),
				value: func(s modlog.Stats) uint64 { return s.FileLines },
			},
			{
				desc:  newDesc("dropped_records_total", "Total number of records dispatched while uninitialized"),
				value: func(s modlog.Stats) uint64 { return s.Dropped },
			},
			{
				desc:  newDesc("console_write_failures_total", "Total number of failed console writes"),
				value: func(s modlog.Stats) uint64 { return s.ConsoleWriteFailures },
			},
			{
				desc:  newDesc("file_write_failures_total", "Total number of failed log file writes"),
				value: func(s modlog.Stats) uint64 { return s.FileWriteFailures },
			},
			{
				desc:  newDesc("recovered_panics_total", "Total number of dispatches aborted by a recovered panic"),
				value: func(s modlog.Stats) uint64 { return s.RecoveredPanics },
			},
			{
				desc:  newDesc("files_opened_total", "Total number of log files created"),
				value: func(s modlog.Stats) uint64 { return s.FilesOpened },
			},
		},
	}
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, m := range c.counters {
		ch <- m.desc
	}
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.Stats()
	for _, m := range c.counters {
		ch <- prometheus.MustNewConstMetric(m.desc, prometheus.CounterValue, float64(m.value(stats)))
	}
}

// Register creates a collector for source and registers it with reg
func Register(reg prometheus.Registerer, source StatsSource, constLabels prometheus.Labels) (*Collector, error) {
	c := NewCollector(source, constLabels)
	if err := reg.Register(c); err != nil {
		return nil, err
	}
	return c, nil
}
