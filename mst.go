package hdbscan

import "math"

// buildMST computes a minimum spanning tree of the n x n mutual-reachability
// matrix using Prim's algorithm with an explicit O(n^2) dense scan (C2). It
// matches the O(n^2) storage of mutualReachability, so a priority queue
// would gain nothing.
//
// Starts from vertex 0. Maintains bestWeight[v] (the smallest known weight
// from v to any visited vertex) and bestFrom[v] (the visited vertex
// realizing it). Ties in bestWeight are broken by picking the smallest
// unvisited index, so output is deterministic. Returns the n-1 edges in the
// order Prim discovered them; downstream stages resort.
func buildMST(mrMatrix []float64, n int) []Edge {
	if n <= 1 {
		return nil
	}

	visited := make([]bool, n)
	bestWeight := make([]float64, n)
	bestFrom := make([]int, n)

	visited[0] = true
	for v := 1; v < n; v++ {
		bestWeight[v] = mrMatrix[v]
		bestFrom[v] = 0
	}

	edges := make([]Edge, 0, n-1)

	for i := 0; i < n-1; i++ {
		best := -1
		bestW := math.Inf(1)
		for v := 0; v < n; v++ {
			if !visited[v] && bestWeight[v] < bestW {
				bestW = bestWeight[v]
				best = v
			}
		}

		edges = append(edges, Edge{U: bestFrom[best], V: best, W: bestW})
		visited[best] = true

		row := best * n
		for v := 0; v < n; v++ {
			if !visited[v] {
				w := mrMatrix[row+v]
				if w < bestWeight[v] {
					bestWeight[v] = w
					bestFrom[v] = best
				}
			}
		}
	}

	return edges
}
