// Package prim_kruskal computes minimum-cost connection plans for networks given as
// plain edge lists: Kruskal’s algorithm (the default) and Prim’s algorithm, both
// producing a minimum spanning forest over dense integer node identifiers.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of costs of edges in T is minimized. T has no cycles,
//     so |T| = |V|−1.
//
//   - What is a spanning forest?
//     The generalization to disconnected graphs: one MST per connected component. Here
//     |T| = |V| − components. Both algorithms in this package return a forest, never an error,
//     for a disconnected input.
//
//   - Why it matters here:
//     Choosing the cheapest subset of candidate links that still keeps every node reachable from
//     every other node, with no redundant (cycle-forming) links.
//
// Algorithms Provided
//
//   - Kruskal(edges []connection.Connection, numNodes int) ([]connection.Connection, error)
//
//   - Strategy: Sort a private copy of all edges by cost, then iterate from cheapest to dearest.
//     A DisjointSet (union-find) merges nodes component-by-component, skipping edges whose
//     endpoints already share a representative. Stops once numNodes−1 edges were accepted.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Determinism: the sort is stable, so equal-cost edges are considered in input order. This
//     tie-break picks which MST is returned when several exist; the total cost is invariant.
//
//   - Prim(edges []connection.Connection, numNodes int) ([]connection.Connection, error)
//
//   - Strategy: Grow a tree from the lowest unvisited node with a min-heap of frontier edges,
//     then restart from the next unvisited node until every component is covered.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Determinism: heap ties break on input position.
//
// The DisjointSet
//
//	parent[] and rank[] are slices indexed directly by node identifier, so identifiers must be
//	dense integers in [0, numNodes). Find is iterative (walk to the root, then a second pass
//	repoints every visited node at it). Union attaches the lower-rank root under the higher-rank
//	one; on a tie the surviving root's rank grows by one, which bounds tree height by O(log n).
//
// Error Conditions
//
//	Both algorithms validate their preconditions before doing any work:
//
//	- ErrNegativeNodeCount
//	    - numNodes < 0.
//
//	- *NodeRangeError (errors.Is ErrNodeOutOfRange)
//	    - numNodes > 0 and some edge endpoint lies outside [0, numNodes).
//	      Callers with sparse identifiers relabel them first via connection.Compact.
//
//	- ErrUnknownMethod (Compute only)
//	    - MSTOptions.Method is neither MethodKruskal nor MethodPrim.
//
//	numNodes == 0, or an empty edge list, yields an empty result and no error.
//	Components agrees: numNodes == 0 counts zero components whatever the edges.
//
// Concurrency
//
//	Every call allocates its own DisjointSet (or heap) and never writes to the input slice, so
//	concurrent calls need no coordination as long as nobody mutates the shared input meanwhile.
//
// GoDoc Summary
//
//   - Kruskal / Prim: compute the forest; the result is a subset (by value) of the input.
//   - Compute(edges, numNodes, opts...): dispatch by WithMethod (Kruskal by default).
//   - TotalCost(edges): derived total of a result.
//   - Components(edges, numNodes): number of connected components.
//   - NewDisjointSet(n): the union-find structure itself.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
