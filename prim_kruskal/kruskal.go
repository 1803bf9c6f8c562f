// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It works on a plain edge list over dense node identifiers and produces a
// minimum spanning forest (one tree per connected component).
package prim_kruskal

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/netmst/connection"
)

// Kruskal computes a minimum spanning forest of the undirected graph formed by
// edges over the nodes [0, numNodes). It uses a DisjointSet with full path
// compression and union by rank.
//
// Error Conditions:
//   - ErrNegativeNodeCount : if numNodes < 0.
//   - *NodeRangeError      : if any endpoint lies outside [0, numNodes) (and numNodes > 0).
//
// Steps:
//  1. Validate numNodes; numNodes == 0 or no edges → empty result, no error.
//  2. Validate every endpoint against [0, numNodes) before doing any work.
//  3. Sort a private copy of edges by ascending Cost. The sort is stable, so
//     equal-cost edges keep their input order: that is the tie-break deciding
//     which MST is returned when several exist (the total cost never changes).
//  4. Initialize a DisjointSet of numNodes singletons.
//  5. For each sorted edge (u,v): if Find(u) != Find(v), Union(u,v) and accept
//     the edge; otherwise it would close a cycle (self-loops included) and is dropped.
//  6. Stop once numNodes-1 edges were accepted: the forest is a spanning tree.
//
// The caller's slice is never reordered. The result lists accepted edges in
// acceptance order (ascending cost). For a disconnected graph it holds fewer
// than numNodes-1 edges; that is a forest, not an error.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(edges []connection.Connection, numNodes int) ([]connection.Connection, error) {
	// 1. Reject negative sizes; short-circuit the trivially empty cases.
	if numNodes < 0 {
		return nil, validate(nil, numNodes)
	}
	if numNodes == 0 || len(edges) == 0 {
		return []connection.Connection{}, nil
	}

	// 2. Fail fast on endpoints that cannot index the forest.
	if err := validate(edges, numNodes); err != nil {
		return nil, err
	}

	// 3. Stable sort of a private copy by ascending cost.
	sorted := slices.Clone(edges)
	slices.SortStableFunc(sorted, func(a, b connection.Connection) int {
		return cmp.Compare(a.Cost, b.Cost)
	})

	// 4. One singleton set per node.
	dsu, err := NewDisjointSet(numNodes)
	if err != nil {
		return nil, err
	}

	// 5. Greedily accept edges joining two different components.
	mst := make([]connection.Connection, 0, min(len(sorted), numNodes-1))
	for _, e := range sorted {
		if dsu.Find(e.NodeA) == dsu.Find(e.NodeB) {
			// Same component: this edge would close a cycle.
			continue
		}
		dsu.Union(e.NodeA, e.NodeB)
		mst = append(mst, e)

		// 6. A spanning tree over numNodes nodes has exactly numNodes-1 edges.
		if len(mst) == numNodes-1 {
			break
		}
	}

	return mst, nil
}
