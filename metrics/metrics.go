// Package metrics collects and exposes Prometheus metrics for scrape runs.
package metrics

import (
	"time"

	"github.com/awalczak/govnotice"
	"github.com/prometheus/client_golang/prometheus"
)

// Ensure Collector implements govnotice.ScrapeMetrics.
var _ govnotice.ScrapeMetrics = (*Collector)(nil)

// Collector records scrape pipeline counters in a Prometheus registry.
type Collector struct {
	scrapeDuration   prometheus.Histogram
	candidates       prometheus.Counter
	created          prometheus.Counter
	skipped          *prometheus.CounterVec
	summaryFallbacks prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		scrapeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "govnotice_scrape_duration_seconds",
			Help:    "Duration of full scrape runs in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		candidates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "govnotice_candidates_total",
			Help: "Total candidate items extracted from rendered pages.",
		}),
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "govnotice_created_total",
			Help: "Total notifications persisted.",
		}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "govnotice_skipped_total",
			Help: "Total candidate items skipped, by reason.",
		}, []string{"reason"}),
		summaryFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "govnotice_summary_fallbacks_total",
			Help: "Total summaries produced by the deterministic fallback.",
		}),
	}

	reg.MustRegister(
		c.scrapeDuration,
		c.candidates,
		c.created,
		c.skipped,
		c.summaryFallbacks,
	)

	return c
}

// RecordScrape records the duration of a completed scrape run.
func (c *Collector) RecordScrape(d time.Duration) {
	c.scrapeDuration.Observe(d.Seconds())
}

// RecordCandidates adds to the extracted candidate count.
func (c *Collector) RecordCandidates(n int) {
	c.candidates.Add(float64(n))
}

// RecordCreated adds to the persisted notification count.
func (c *Collector) RecordCreated(n int) {
	c.created.Add(float64(n))
}

// RecordItemSkipped counts a skipped candidate under its reason label.
func (c *Collector) RecordItemSkipped(reason string) {
	c.skipped.WithLabelValues(reason).Inc()
}

// RecordSummaryFallback counts a summary served by the fallback path.
func (c *Collector) RecordSummaryFallback() {
	c.summaryFallbacks.Inc()
}
