package discord

import (
	"expvar"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"cordcore/pkg/codec"
)

func TestPublishRegistryExpvar(t *testing.T) {
	registry := NewRegistry()
	registry.EnsureUser(1)

	name := PublishRegistryExpvar("", registry)
	if name == "" {
		t.Fatal("expected a generated export name")
	}
	exported := expvar.Get(name)
	if exported == nil {
		t.Fatal("expected expvar export to be registered")
	}
	if got := exported.String(); !strings.Contains(got, "\"Partials\":1") {
		t.Fatalf("unexpected export: %s", got)
	}
}

func TestRegistryCollectorScrapes(t *testing.T) {
	registry := NewRegistry()
	registry.EnsureUser(1)
	registry.EnsureUser(1)
	registry.GuildFromData(codec.Payload{"id": "2", "name": "metrics"})

	gatherer := prometheus.NewPedanticRegistry()
	if err := gatherer.Register(NewRegistryCollector(registry)); err != nil {
		t.Fatalf("register collector: %v", err)
	}
	families, err := gatherer.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	counters := map[string]float64{}
	gauges := map[string]float64{}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				counters[family.GetName()] = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				key := family.GetName()
				for _, label := range metric.GetLabel() {
					key += "/" + label.GetValue()
				}
				gauges[key] = metric.GetGauge().GetValue()
			}
		}
	}

	if got := counters["cordcore_registry_hits_total"]; got != 1 {
		t.Fatalf("hits = %v", got)
	}
	if got := counters["cordcore_registry_misses_total"]; got != 2 {
		t.Fatalf("misses = %v", got)
	}
	if got := gauges["cordcore_registry_interned_entities/user"]; got != 1 {
		t.Fatalf("interned users = %v", got)
	}
	if got := gauges["cordcore_registry_interned_entities/guild"]; got != 1 {
		t.Fatalf("interned guilds = %v", got)
	}
}
