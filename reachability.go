package hdbscan

// mutualReachability computes the n x n mutual-reachability distance
// matrix (C1). M[i][j] = max(dist(i,j), core(i), core(j)); M[i][i] = core(i).
// Returns a flat []float64 of length n*n in row-major order.
//
// n == 1 returns the 1x1 zero matrix per spec §4.1's edge cases.
func mutualReachability(data [][]float64, minSamples int) []float64 {
	n := len(data)
	if n == 1 {
		return []float64{0}
	}

	distMatrix := computePairwiseDistances(data)
	core := computeCoreDistances(distMatrix, n, minSamples)

	result := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				result[i*n+j] = core[i]
				continue
			}
			result[i*n+j] = max(distMatrix[i*n+j], core[i], core[j])
		}
	}

	return result
}
