package discord

import (
	"expvar"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var expvarSeq uint64

// RegistryExpvarSnapshot is the read-only view published via expvar.
type RegistryExpvarSnapshot struct {
	Stats      RegistryStats  `json:"stats"`
	Counts     RegistryCounts `json:"counts"`
	RecordedAt time.Time      `json:"recorded_at"`
}

// PublishRegistryExpvar exposes the registry's counters under the supplied
// expvar name, for deployments that prefer process-local metrics without
// external dependencies. When name is empty, a unique identifier is
// generated. Returns the name used.
func PublishRegistryExpvar(name string, registry *Registry) string {
	if name == "" {
		id := atomic.AddUint64(&expvarSeq, 1)
		name = fmt.Sprintf("cordcore_registry_%d", id)
	}
	expvar.Publish(name, expvar.Func(func() any {
		return RegistryExpvarSnapshot{
			Stats:      registry.Stats(),
			Counts:     registry.Counts(),
			RecordedAt: time.Now().UTC(),
		}
	}))
	return name
}

// RegistryCollector adapts a Registry to prometheus.Collector. Counters are
// read on scrape; the registry itself carries no metric state.
type RegistryCollector struct {
	registry   *Registry
	hits       *prometheus.Desc
	misses     *prometheus.Desc
	partials   *prometheus.Desc
	precreates *prometheus.Desc
	deletes    *prometheus.Desc
	interned   *prometheus.Desc
}

// NewRegistryCollector builds a collector over the registry's counters.
func NewRegistryCollector(registry *Registry) *RegistryCollector {
	return &RegistryCollector{
		registry: registry,
		hits: prometheus.NewDesc("cordcore_registry_hits_total",
			"Lookups that resolved to an interned entity.", nil, nil),
		misses: prometheus.NewDesc("cordcore_registry_misses_total",
			"Lookups that interned a new entity.", nil, nil),
		partials: prometheus.NewDesc("cordcore_registry_partials_total",
			"Entities created from a bare identifier reference.", nil, nil),
		precreates: prometheus.NewDesc("cordcore_registry_precreates_total",
			"Precreate calls.", nil, nil),
		deletes: prometheus.NewDesc("cordcore_registry_deletes_total",
			"Delete calls that found their entity.", nil, nil),
		interned: prometheus.NewDesc("cordcore_registry_interned_entities",
			"Interned entities currently cached.", []string{"kind"}, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *RegistryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.partials
	ch <- c.precreates
	ch <- c.deletes
	ch <- c.interned
}

// Collect implements prometheus.Collector.
func (c *RegistryCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.registry.Stats()
	counts := c.registry.Counts()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(stats.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(stats.Misses))
	ch <- prometheus.MustNewConstMetric(c.partials, prometheus.CounterValue, float64(stats.Partials))
	ch <- prometheus.MustNewConstMetric(c.precreates, prometheus.CounterValue, float64(stats.Precreates))
	ch <- prometheus.MustNewConstMetric(c.deletes, prometheus.CounterValue, float64(stats.Deletes))
	ch <- prometheus.MustNewConstMetric(c.interned, prometheus.GaugeValue, float64(counts.Users), "user")
	ch <- prometheus.MustNewConstMetric(c.interned, prometheus.GaugeValue, float64(counts.Roles), "role")
	ch <- prometheus.MustNewConstMetric(c.interned, prometheus.GaugeValue, float64(counts.Emojis), "emoji")
	ch <- prometheus.MustNewConstMetric(c.interned, prometheus.GaugeValue, float64(counts.Guilds), "guild")
}
