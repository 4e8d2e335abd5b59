// Package hdbscan implements the core of Hierarchical Density-Based Spatial
// Clustering of Applications with Noise (HDBSCAN).
//
// HDBSCAN extends DBSCAN into a hierarchical algorithm, then extracts a flat
// clustering by walking the hierarchy for the frontier that maximizes
// cluster stability. It finds clusters of varying densities and robustly
// identifies noise points, labeled -1.
//
// Basic usage:
//
//	cfg := hdbscan.DefaultConfig()
//	cfg.MinClusterSize = 3
//	h, err := hdbscan.New(cfg)
//	if err != nil { ... }
//	if err := h.Fit(data); err != nil { ... }
//	// h.Labels()[i] is the cluster ID for point i (-1 = noise)
//	// h.Probabilities()[i] is how strongly point i belongs to its cluster
//
// The engine is a batch, in-memory, single-threaded procedure: a Fit call
// owns all intermediates from start to finish, and Config has no file- or
// network-backed options to load. Distance is always Euclidean; there is no
// approximate nearest-neighbor acceleration, alternative metric, predict-
// on-new-point support, or parallelism.
package hdbscan
