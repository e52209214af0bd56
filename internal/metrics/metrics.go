// Package metrics exposes catalog access events as Prometheus counters.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "monkeyexplorer"

	labelMonkey = "monkey"
)

// Recorder counts catalog access events. It satisfies catalog.Observer.
type Recorder struct {
	Views    *prometheus.CounterVec
	Listings prometheus.Counter
	Resets   prometheus.Counter

	gatherer prometheus.Gatherer
}

// NewRecorder registers the catalog counters on reg.
func NewRecorder(reg *prometheus.Registry) *Recorder {
	r := &Recorder{
		Views: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "monkey_views_total",
				Help:      "Monkey detail views by name lookup or random pick",
			},
			[]string{labelMonkey},
		),
		Listings: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_listings_total",
				Help:      "Full catalog listings",
			},
		),
		Resets: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "access_resets_total",
				Help:      "Access counter resets",
			},
		),
		gatherer: reg,
	}

	reg.MustRegister(r.Views, r.Listings, r.Resets)
	return r
}

// MonkeyViewed implements catalog.Observer.
func (r *Recorder) MonkeyViewed(name string) {
	r.Views.WithLabelValues(name).Inc()
}

// CatalogListed implements catalog.Observer.
func (r *Recorder) CatalogListed() {
	r.Listings.Inc()
}

// CountsReset implements catalog.Observer. Prometheus counters are
// monotonic, so a reset is recorded as its own event.
func (r *Recorder) CountsReset() {
	r.Resets.Inc()
}

// WriteTextfile writes the registry in the node_exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.gatherer); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
