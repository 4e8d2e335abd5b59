package hdbscan

// Condense filters the hierarchy's flat cluster list to the subset whose
// member count is >= minClusterSize (C4). Order is preserved, so the root
// (id 0) remains first when it qualifies -- which it always does unless
// n < minClusterSize.
func Condense(h *Hierarchy, minClusterSize int) []*Cluster {
	condensed := make([]*Cluster, 0, len(h.Clusters))
	for _, c := range h.Clusters {
		if len(c.Members) >= minClusterSize {
			condensed = append(condensed, c)
		}
	}
	return condensed
}
