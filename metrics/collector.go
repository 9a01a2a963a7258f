// Package metrics exposes btree statistics to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"btreekit/btree"
)

// Collector reads a btree.Stats snapshot on every scrape. The snapshot func
// must be safe to call from the scraping goroutine; for a tree that is mutated
// elsewhere that means taking the same lock the writer holds.
type Collector struct {
	snapshot func() btree.Stats

	keys        *prometheus.Desc
	height      *prometheus.Desc
	nodes       *prometheus.Desc
	splits      *prometheus.Desc
	merges      *prometheus.Desc
	borrows     *prometheus.Desc
	rootGrowths *prometheus.Desc
	rootShrinks *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a Collector whose metrics are prefixed with namespace.
func NewCollector(namespace string, snapshot func() btree.Stats) *Collector {
	desc := func(name, help string, labels ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, labels, nil)
	}
	return &Collector{
		snapshot:    snapshot,
		keys:        desc("keys", "Number of keys stored in the tree."),
		height:      desc("height", "Number of levels from the root to the leaves."),
		nodes:       desc("nodes", "Number of live nodes."),
		splits:      desc("splits_total", "Nodes split while inserting."),
		merges:      desc("merges_total", "Sibling nodes merged while deleting."),
		borrows:     desc("borrows_total", "Keys rotated in from a sibling while deleting.", "direction"),
		rootGrowths: desc("root_growths_total", "Times the tree grew a level."),
		rootShrinks: desc("root_shrinks_total", "Times the tree lost a level."),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.keys
	ch <- c.height
	ch <- c.nodes
	ch <- c.splits
	ch <- c.merges
	ch <- c.borrows
	ch <- c.rootGrowths
	ch <- c.rootShrinks
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.snapshot()

	ch <- prometheus.MustNewConstMetric(c.keys, prometheus.GaugeValue, float64(s.Keys))
	ch <- prometheus.MustNewConstMetric(c.height, prometheus.GaugeValue, float64(s.Height))
	ch <- prometheus.MustNewConstMetric(c.nodes, prometheus.GaugeValue, float64(s.Nodes))
	ch <- prometheus.MustNewConstMetric(c.splits, prometheus.CounterValue, float64(s.Splits))
	ch <- prometheus.MustNewConstMetric(c.merges, prometheus.CounterValue, float64(s.Merges))
	ch <- prometheus.MustNewConstMetric(c.borrows, prometheus.CounterValue, float64(s.BorrowsFromPrev), "prev")
	ch <- prometheus.MustNewConstMetric(c.borrows, prometheus.CounterValue, float64(s.BorrowsFromNext), "next")
	ch <- prometheus.MustNewConstMetric(c.rootGrowths, prometheus.CounterValue, float64(s.RootGrowths))
	ch <- prometheus.MustNewConstMetric(c.rootShrinks, prometheus.CounterValue, float64(s.RootShrinks))
}
