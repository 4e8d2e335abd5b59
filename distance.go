package hdbscan

import "gonum.org/v1/gonum/floats"

// euclideanDistance returns the true (non-squared) Euclidean distance
// between two equal-length coordinate slices, via gonum's L-norm helper.
// The source this package was ported from carries two "euclideanDistance"
// definitions, one of which returns squared distance -- only the true
// distance is correct here, since core distances and mutual reachability
// must live on the same scale.
func euclideanDistance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// computePairwiseDistances computes the full n*n distance matrix.
// data holds n points of equal dimensionality. Returns flat []float64 of
// length n*n in row-major order.
func computePairwiseDistances(data [][]float64) []float64 {
	n := len(data)
	result := make([]float64, n*n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := euclideanDistance(data[i], data[j])
			result[i*n+j] = d
			result[j*n+i] = d
		}
	}

	return result
}
