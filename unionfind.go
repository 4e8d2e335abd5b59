package hdbscan

// UnionFind implements a disjoint-set data structure with path compression
// and union by size. HierarchyBuilder uses one per split to recompute the
// connected components of a parent cluster's members after a heavier edge
// is removed (see Design Notes hazard (b): the parent array must be sized
// to cover every point index that may appear as an endpoint, not merely the
// subset being split, so components are keyed by point id directly rather
// than by a renumbered index).
type UnionFind struct {
	parent []int
	size   []int
}

// NewUnionFind creates a UnionFind over n elements, each initially its own
// singleton component.
func NewUnionFind(n int) *UnionFind {
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = -1 // -1 means "is a root"
		size[i] = 1
	}
	return &UnionFind{parent: parent, size: size}
}

// Find returns the root of the set containing x. Path compression is done
// iteratively in two passes (find the root, then re-point every node on the
// path to it) rather than recursively, so it cannot blow the call stack on
// pathological inputs.
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// Union merges the sets containing x and y by attaching the smaller tree
// under the larger. Returns the new root.
func (uf *UnionFind) Union(x, y int) int {
	rootX := uf.Find(x)
	rootY := uf.Find(y)
	if rootX == rootY {
		return rootX
	}

	if uf.size[rootX] < uf.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	uf.parent[rootY] = rootX
	uf.size[rootX] += uf.size[rootY]
	return rootX
}
