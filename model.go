package hdbscan

// Edge is an undirected mutual-reachability edge produced by MSTBuilder.
// U and V are point indices in [0, n); W is the mutual-reachability weight.
type Edge struct {
	U, V int
	W    float64
}

// Cluster is a node of the hierarchy built by HierarchyBuilder. Clusters are
// stored in a flat arena (see Hierarchy) and reference their children by
// index rather than by pointer, so the tree has no cycles and serializes
// trivially.
type Cluster struct {
	// ID is the cluster's position in the arena; the root is always 0.
	ID int

	// Members holds the cluster's point indices in the order they were
	// assigned. Membership is also tracked in memberSet for O(1) lookups.
	Members   []int
	memberSet []bool

	// BirthDistance (epsilon_max) is the MST edge weight whose removal from
	// the parent produced this cluster.
	BirthDistance float64

	// LeaveEdgeWeight (epsilon_min) is the largest per-point minimum
	// in-cluster reachability: the density at which the cluster starts
	// shedding points.
	LeaveEdgeWeight float64

	// MinReach maps each member point to its smallest incident in-cluster
	// MST edge weight. Singletons map to 0.
	MinReach map[int]float64

	// Left and Right are arena indices of this cluster's children, or -1
	// if absent. A single-child node (Right == -1, Left set) can occur
	// when a split sheds an under-sized side (see HierarchyBuilder rule 2).
	Left, Right int

	// ForceZeroStability is set on a cluster whose own split shed an
	// under-sized side (a "persisting" split), and on both children of a
	// split where both sides fell below the minimum cluster size -- see
	// HierarchyBuilder's split rule and the pinned Open Question in
	// SPEC_FULL.md. The Extractor treats such clusters as stability 0
	// regardless of the epsilon formula.
	ForceZeroStability bool

	// Stability is computed lazily by the Extractor.
	Stability float64
}

// Contains reports whether p is a member of the cluster.
func (c *Cluster) Contains(p int) bool {
	return p >= 0 && p < len(c.memberSet) && c.memberSet[p]
}

// isProperSubset reports whether every member of a is a member of b, and a
// has fewer members than b (so a != b).
func isProperSubset(a, b *Cluster) bool {
	if len(a.Members) >= len(b.Members) {
		return false
	}
	for _, p := range a.Members {
		if !b.Contains(p) {
			return false
		}
	}
	return true
}

// Hierarchy is the arena of clusters produced by HierarchyBuilder, in
// creation order. Clusters[0] is always the root.
type Hierarchy struct {
	Clusters []*Cluster
}

// Root returns the root cluster, or nil if the hierarchy is empty.
func (h *Hierarchy) Root() *Cluster {
	if len(h.Clusters) == 0 {
		return nil
	}
	return h.Clusters[0]
}

// ByID returns the cluster with the given arena index, or nil if idx is -1
// or out of range.
func (h *Hierarchy) ByID(idx int) *Cluster {
	if idx < 0 || idx >= len(h.Clusters) {
		return nil
	}
	return h.Clusters[idx]
}
