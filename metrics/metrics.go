package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/davidroman0O/provenance"
)

// Sized is the part of a provenance map the size collector reads. All map
// kinds in the provenance package satisfy it.
type Sized interface {
	Len() int
}

// NewRegistryCollector returns a collector exporting
// provenance_registry_claimed_tags, the number of provenance tags claimed
// in this process so far. The value never decreases.
func NewRegistryCollector() prometheus.Collector {
	return prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: "provenance",
			Subsystem: "registry",
			Name:      "claimed_tags",
			Help:      "Number of provenance tags ever claimed in this process.",
		},
		func() float64 {
			return float64(provenance.ClaimedTagCount())
		},
	)
}

// NewSizeCollector returns a collector exporting provenance_map_size for a
// single map, labeled with the given name. The value never decreases: maps
// are append-only.
//
// Len is read at scrape time. If the map is mutated from other goroutines,
// the caller's external synchronization must cover scrapes too.
func NewSizeCollector(name string, m Sized) prometheus.Collector {
	return prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace:   "provenance",
			Name:        "map_size",
			Help:        "Number of values inserted into the map.",
			ConstLabels: prometheus.Labels{"map": name},
		},
		func() float64 {
			return float64(m.Len())
		},
	)
}
