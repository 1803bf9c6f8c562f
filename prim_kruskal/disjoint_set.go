package prim_kruskal

// DisjointSet is a union-find forest over the dense elements [0, n).
// It applies full path compression in Find and union by rank in Union.
//
// Invariants:
//   - parent[i] == i iff i is the representative of its set.
//   - Every element belongs to exactly one set.
//   - rank[r] only grows, and only when two roots of equal rank are merged;
//     it bounds the height of r's tree, so height stays O(log n).
//
// A DisjointSet is not safe for concurrent use; each MST computation owns one.
type DisjointSet struct {
	parent []int // parent[i] is i's parent; roots point to themselves
	rank   []int // upper bound on tree height, meaningful for roots only
	sets   int   // current number of disjoint sets
}

// NewDisjointSet returns n singleton sets {0}, {1}, …, {n-1}.
// It returns ErrNegativeNodeCount if n < 0.
// Complexity: O(n).
func NewDisjointSet(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, ErrNegativeNodeCount
	}

	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d, nil
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Sets returns the current number of disjoint sets.
func (d *DisjointSet) Sets() int { return d.sets }

// Rank returns the rank recorded for x. Only a root's rank is meaningful.
func (d *DisjointSet) Rank(x int) int { return d.rank[x] }

// Find returns the representative of x's set and repoints every node on the
// walked path directly at it. x must lie in [0, Len()).
//
// Two passes, no recursion: the first locates the root, the second rewrites
// each visited node's parent to that root.
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Find(x int) int {
	// Pass 1: walk up to the root.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// Pass 2: compress the path behind us.
	for d.parent[x] != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets containing a and b and reports whether a merge happened.
// The root with strictly smaller rank is reparented under the other; on a tie,
// b's root goes under a's root and a's root rank grows by one.
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Union(a, b int) bool {
	rootA := d.Find(a)
	rootB := d.Find(b)
	if rootA == rootB {
		// Already in the same set; no action needed.
		return false
	}

	switch {
	case d.rank[rootA] < d.rank[rootB]:
		d.parent[rootA] = rootB
	case d.rank[rootA] > d.rank[rootB]:
		d.parent[rootB] = rootA
	default:
		d.parent[rootB] = rootA
		d.rank[rootA]++
	}
	d.sets--

	return true
}

// Connected reports whether a and b are in the same set.
func (d *DisjointSet) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}
