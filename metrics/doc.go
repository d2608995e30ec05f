// Package metrics provides optional Prometheus collectors for the
// provenance package.
//
// Two collectors are available:
//   - NewRegistryCollector exposes the number of provenance tags claimed in
//     the process so far (a monotonic gauge, since tags are never released)
//   - NewSizeCollector exposes the current length of a single map, labeled
//     with a caller-chosen name
//
// Nothing in the core provenance package depends on this package; embed it
// only if the surrounding application already scrapes Prometheus metrics.
package metrics
