package hdbscan

import "log/slog"

// extractor walks the condensed hierarchy top-down (C5), selecting the
// stability-optimal frontier.
type extractor struct {
	condensed      []*Cluster
	rootID         int
	minClusterSize int
	skipRoot       bool
	selected       map[int]bool
	discarded      map[int]bool
	order          []int
	logger         *slog.Logger
}

// computeStability implements spec §4.5's S(C) formula. A degenerate
// leave-edge-weight of 0 (or a zero birth distance) yields stability 0, and
// ForceZeroStability (set by HierarchyBuilder's "persisting cluster" and
// "both sides died" split outcomes) overrides the formula entirely.
func computeStability(c *Cluster) float64 {
	if c.ForceZeroStability {
		return 0
	}
	if c.LeaveEdgeWeight == 0 || c.BirthDistance == 0 {
		return 0
	}
	return float64(len(c.Members)) * (1/c.LeaveEdgeWeight - 1/c.BirthDistance)
}

// childrenOf finds the condensed clusters strictly contained in current
// whose birth distance does not exceed current's, then keeps only the
// maximal ones (those not themselves a subset of another candidate). This
// is robust to a too-small ancestor being absent from the condensed list
// (see the pinned Open Question in SPEC_FULL.md): a direct Left/Right
// pointer walk would stop at that missing ancestor, but the subset search
// reaches straight through it to its surviving descendants.
func (e *extractor) childrenOf(current *Cluster) []*Cluster {
	var candidates []*Cluster
	for _, d := range e.condensed {
		if d.ID == current.ID {
			continue
		}
		if d.BirthDistance <= current.BirthDistance && isProperSubset(d, current) {
			candidates = append(candidates, d)
		}
	}

	var children []*Cluster
	for _, d := range candidates {
		maximal := true
		for _, other := range candidates {
			if other.ID != d.ID && isProperSubset(d, other) {
				maximal = false
				break
			}
		}
		if maximal {
			children = append(children, d)
		}
	}
	return children
}

// recurse implements spec §4.5's selection walk.
func (e *extractor) recurse(current *Cluster) {
	if e.discarded[current.ID] {
		return
	}

	children := e.childrenOf(current)

	var childSum float64
	for _, c := range children {
		c.Stability = computeStability(c)
		childSum += c.Stability
	}

	current.Stability = computeStability(current)
	if e.skipRoot && current.ID == e.rootID {
		current.Stability = 0
	}

	noViableChild := len(children) == 0
	betterAlone := current.Stability > childSum && len(current.Members) >= e.minClusterSize

	if betterAlone || noViableChild {
		e.selected[current.ID] = true
		e.order = append(e.order, current.ID)
		for _, d := range e.condensed {
			if d.ID != current.ID && isProperSubset(d, current) {
				e.discarded[d.ID] = true
			}
		}
		logDebug(e.logger, "cluster selected", "id", current.ID, "stability", current.Stability, "childStability", childSum)
		return
	}

	e.discarded[current.ID] = true
	logDebug(e.logger, "cluster discarded", "id", current.ID, "stability", current.Stability, "childStability", childSum)
	for _, c := range children {
		e.recurse(c)
	}
}

// Extract runs the selection walk over the condensed hierarchy and assigns
// per-point labels and probabilities (C5). n is the total point count.
func Extract(h *Hierarchy, condensed []*Cluster, minClusterSize int, skipRootCluster bool, n int, logger *slog.Logger) ([]int, []float64, map[int]float64) {
	labels := make([]int, n)
	probabilities := make([]float64, n)
	for i := range labels {
		labels[i] = -1
	}

	if len(condensed) == 0 {
		return labels, probabilities, map[int]float64{}
	}

	root := h.Root()
	e := &extractor{
		condensed:      condensed,
		rootID:         root.ID,
		minClusterSize: minClusterSize,
		skipRoot:       skipRootCluster,
		selected:       map[int]bool{},
		discarded:      map[int]bool{},
		logger:         logger,
	}
	e.recurse(root)

	condensedByID := make(map[int]*Cluster, len(condensed))
	for _, c := range condensed {
		condensedByID[c.ID] = c
	}

	stabilities := make(map[int]float64, len(e.order))
	nextLabel := 0
	for _, id := range e.order {
		c := condensedByID[id]
		stabilities[nextLabel] = c.Stability
		epsMax := c.BirthDistance

		for _, p := range c.Members {
			labels[p] = nextLabel

			var prob float64
			if epsMax == 0 {
				prob = 1
			} else {
				prob = 1 - c.MinReach[p]/epsMax
			}
			probabilities[p] = clamp01(prob)
		}
		nextLabel++
	}

	return labels, probabilities, stabilities
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
