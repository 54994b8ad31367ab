// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zudd

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StatsSource is anything that can produce a statistics snapshot; both ZDD
// and Concurrent satisfy it.
type StatsSource interface {
	Stats() Statistics
}

// statsCollector exposes the engine statistics as prometheus metrics. The
// collector reads the engine when scraped, so when the engine is shared
// between goroutines the source must be a Concurrent wrapper.
type statsCollector struct {
	source StatsSource

	capacity   *prometheus.Desc
	free       *prometheus.Desc
	dead       *prometheus.Desc
	occupied   *prometheus.Desc
	lookups    *prometheus.Desc
	lookupHits *prometheus.Desc
	gcCount    *prometheus.Desc
	gcFreed    *prometheus.Desc
	growths    *prometheus.Desc
	vars       *prometheus.Desc
	memory     *prometheus.Desc
}

// NewStatsCollector returns a prometheus collector reporting the node table
// and gc statistics of source under the given namespace (empty for none).
func NewStatsCollector(source StatsSource, namespace string) prometheus.Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "zudd", name), help, nil, nil)
	}
	return &statsCollector{
		source:     source,
		capacity:   desc("nodes_capacity", "Number of slots in the node table."),
		free:       desc("nodes_free", "Number of free slots in the node table."),
		dead:       desc("nodes_dead", "Number of occupied slots with a zero reference count."),
		occupied:   desc("nodes_occupied", "Number of slots holding a live or fresh node."),
		lookups:    desc("unique_lookups_total", "Accesses to the unique node table."),
		lookupHits: desc("unique_lookup_hits_total", "Unique table accesses answered by an existing node."),
		gcCount:    desc("gc_runs_total", "Number of garbage collections."),
		gcFreed:    desc("gc_freed_nodes_total", "Total number of slots reclaimed by garbage collection."),
		growths:    desc("capacity_increases_total", "Number of node table growths."),
		vars:       desc("registered_vars", "Number of registered variables."),
		memory:     desc("memory_bytes", "Size of the node table in bytes."),
	}
}

func (c *statsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.capacity
	ch <- c.free
	ch <- c.dead
	ch <- c.occupied
	ch <- c.lookups
	ch <- c.lookupHits
	ch <- c.gcCount
	ch <- c.gcFreed
	ch <- c.growths
	ch <- c.vars
	ch <- c.memory
}

func (c *statsCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.source.Stats()
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(s.Capacity))
	ch <- prometheus.MustNewConstMetric(c.free, prometheus.GaugeValue, float64(s.Free))
	ch <- prometheus.MustNewConstMetric(c.dead, prometheus.GaugeValue, float64(s.Dead))
	ch <- prometheus.MustNewConstMetric(c.occupied, prometheus.GaugeValue, float64(s.Occupied()))
	ch <- prometheus.MustNewConstMetric(c.lookups, prometheus.CounterValue, float64(s.Lookups))
	ch <- prometheus.MustNewConstMetric(c.lookupHits, prometheus.CounterValue, float64(s.LookupHits))
	ch <- prometheus.MustNewConstMetric(c.gcCount, prometheus.CounterValue, float64(s.GCCount))
	ch <- prometheus.MustNewConstMetric(c.gcFreed, prometheus.CounterValue, float64(s.GCFreed))
	ch <- prometheus.MustNewConstMetric(c.growths, prometheus.CounterValue, float64(s.Growths))
	ch <- prometheus.MustNewConstMetric(c.vars, prometheus.GaugeValue, float64(s.Vars))
	ch <- prometheus.MustNewConstMetric(c.memory, prometheus.GaugeValue, float64(s.Memory()))
}
