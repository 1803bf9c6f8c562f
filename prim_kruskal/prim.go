// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows one tree per connected component from the component's lowest node using a min‐heap.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/netmst/connection"
)

// Prim computes a minimum spanning forest of the undirected graph formed by
// edges over the nodes [0, numNodes), growing each tree with a min-heap.
//
// Error Conditions:
//   - ErrNegativeNodeCount : if numNodes < 0.
//   - *NodeRangeError      : if any endpoint lies outside [0, numNodes) (and numNodes > 0).
//
// Steps:
//  1. Validate exactly like Kruskal; numNodes == 0 or no edges → empty result.
//  2. Build adjacency lists of edge indices (self-loops skipped).
//  3. For each root in ascending id that is not yet visited:
//     a. mark it visited and push its incident edges;
//     b. pop the cheapest candidate; skip it if its far end is visited;
//     c. otherwise accept it, mark the far end and push its incident edges.
//  4. Stop once numNodes-1 edges were accepted.
//
// Heap ties break on input position, so the result is deterministic.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(edges []connection.Connection, numNodes int) ([]connection.Connection, error) {
	// 1. Validate inputs.
	if numNodes < 0 {
		return nil, validate(nil, numNodes)
	}
	if numNodes == 0 || len(edges) == 0 {
		return []connection.Connection{}, nil
	}
	if err := validate(edges, numNodes); err != nil {
		return nil, err
	}

	// 2. Adjacency: node → indices of incident edges.
	adj := make([][]int, numNodes)
	for i, e := range edges {
		if e.IsLoop() {
			continue
		}
		adj[e.NodeA] = append(adj[e.NodeA], i)
		adj[e.NodeB] = append(adj[e.NodeB], i)
	}

	var (
		visited = make([]bool, numNodes)
		mst     = make([]connection.Connection, 0, min(len(edges), numNodes-1))
		pq      = &candidatePQ{}
	)

	// push enqueues every edge from u towards a not-yet-visited node.
	push := func(u int) {
		for _, idx := range adj[u] {
			e := edges[idx]
			v := e.NodeB
			if v == u {
				v = e.NodeA
			}
			if !visited[v] {
				heap.Push(pq, candidate{index: idx, to: v, cost: e.Cost})
			}
		}
	}

	// 3. One tree per component, rooted at its lowest node.
	for root := 0; root < numNodes && len(mst) < numNodes-1; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		push(root)

		for pq.Len() > 0 && len(mst) < numNodes-1 {
			c := heap.Pop(pq).(candidate)
			if visited[c.to] {
				// Both ends already in the tree: would form a cycle.
				continue
			}
			visited[c.to] = true
			mst = append(mst, edges[c.index])
			push(c.to)
		}
		// 4. Leftover candidates all point into this finished tree.
		*pq = (*pq)[:0]
	}

	return mst, nil
}

// candidate is an edge on the frontier of the tree being grown.
type candidate struct {
	index int // position in the input slice
	to    int // endpoint outside the tree when pushed
	cost  int
}

// candidatePQ implements heap.Interface as a min-heap ordered by (cost, index).
type candidatePQ []candidate

func (pq candidatePQ) Len() int { return len(pq) }

func (pq candidatePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].index < pq[j].index
}

func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *candidatePQ) Push(x any) { *pq = append(*pq, x.(candidate)) }

// Pop removes the last element; called by heap.Pop after it moved the minimum there.
func (pq *candidatePQ) Pop() any {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
