// Package metrics exposes lattice tree shape as Prometheus metrics.
//
// The only entry point is [NewCollector], which wraps a *lattice.RootNode in
// a prometheus.Collector reporting per-layer node counts, enabled output
// containers, and the total number of structure nodes. The tree is walked
// read-only at collection time; nothing is cached.
//
// Usage:
//
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(metrics.NewCollector(root))
//
// The scenegraph is single-threaded and unlocked, so the collector must not
// race with tree mutation: either collect from the compositor's control
// thread (e.g. a frame-tick gather into a push gateway or cached registry),
// or make sure mutation is quiescent while a scrape runs.
package metrics
