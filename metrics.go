// Copyright (c) 2026 Victor Alcazar
//
// MIT License

package cudd

import "github.com/prometheus/client_golang/prometheus"

// collector exports the internal counters of a manager as Prometheus metrics.
// All values are sampled at scrape time, so registering a collector adds no
// cost to the operations themselves. The manager id is attached as a constant
// label so that several managers can share a registry.
type collector struct {
	m     *Manager
	descs map[string]*prometheus.Desc
}

var metricHelp = map[string]string{
	"cudd_table_nodes":               "Number of allocated slots in the node table.",
	"cudd_table_free_nodes":          "Number of free slots in the node table.",
	"cudd_nodes_produced_total":      "Total number of nodes ever produced.",
	"cudd_unique_accesses_total":     "Total number of accesses to the unique tables.",
	"cudd_unique_hits_total":         "Total number of hits in the unique tables.",
	"cudd_unique_misses_total":       "Total number of misses in the unique tables.",
	"cudd_cache_hits_total":          "Total number of hits in the operation cache.",
	"cudd_cache_misses_total":        "Total number of misses in the operation cache.",
	"cudd_gc_runs_total":             "Total number of garbage collections.",
	"cudd_table_rebuilds_total":      "Total number of table rebuilds.",
	"cudd_external_references_total": "Total number of external references handed out.",
}

func newCollector(m *Manager) *collector {
	labels := prometheus.Labels{"manager": m.id.String()}
	descs := make(map[string]*prometheus.Desc, len(metricHelp))
	for name, help := range metricHelp {
		descs[name] = prometheus.NewDesc(name, help, nil, labels)
	}
	return &collector{m: m, descs: descs}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range c.descs {
		ch <- d
	}
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	m := c.m
	gauge := func(name string, v float64) {
		ch <- prometheus.MustNewConstMetric(c.descs[name], prometheus.GaugeValue, v)
	}
	counter := func(name string, v float64) {
		ch <- prometheus.MustNewConstMetric(c.descs[name], prometheus.CounterValue, v)
	}
	gauge("cudd_table_nodes", float64(len(m.nodes)))
	gauge("cudd_table_free_nodes", float64(m.freenum))
	counter("cudd_nodes_produced_total", float64(m.produced))
	counter("cudd_unique_accesses_total", float64(m.uniqueAccess))
	counter("cudd_unique_hits_total", float64(m.uniqueHit))
	counter("cudd_unique_misses_total", float64(m.uniqueMiss))
	counter("cudd_cache_hits_total", float64(m.opHit))
	counter("cudd_cache_misses_total", float64(m.opMiss))
	counter("cudd_gc_runs_total", float64(len(m.history)))
	counter("cudd_table_rebuilds_total", float64(m.rebuilds))
	counter("cudd_external_references_total", float64(m.setfinalizers))
}
