package hdbscan

import "sort"

// computeCoreDistances returns the core distance of each point: the
// distance to its k-th nearest neighbor, k = min(minSamples-1, n-2),
// excluding the point itself. minSamples >= n is clamped to the last
// available neighbor, per spec §4.1's edge cases.
//
// distMatrix is the flat n*n pairwise distance matrix from
// computePairwiseDistances. n must be >= 2 (n == 1 is handled by
// MutualReachability before this is called).
func computeCoreDistances(distMatrix []float64, n, minSamples int) []float64 {
	k := minSamples - 1
	if k > n-2 {
		k = n - 2
	}
	if k < 0 {
		k = 0
	}

	core := make([]float64, n)
	neighbors := make([]float64, 0, n-1)

	for i := 0; i < n; i++ {
		neighbors = neighbors[:0]
		for j := 0; j < n; j++ {
			if j != i {
				neighbors = append(neighbors, distMatrix[i*n+j])
			}
		}
		sort.Float64s(neighbors)
		core[i] = neighbors[k]
	}

	return core
}
