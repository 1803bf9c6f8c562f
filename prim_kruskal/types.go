// Package prim_kruskal defines configuration options, sentinel errors and shared
// validation for spanning-forest computation over connection edge lists.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netmst/connection"
)

// ErrNegativeNodeCount indicates numNodes < 0 was passed to an MST routine.
var ErrNegativeNodeCount = errors.New("prim_kruskal: node count must be non-negative")

// ErrNodeOutOfRange indicates an edge endpoint outside [0, numNodes).
// Returned wrapped in a *NodeRangeError that names the offending edge.
var ErrNodeOutOfRange = errors.New("prim_kruskal: node identifier out of range")

// ErrUnknownMethod indicates MSTOptions.Method is neither MethodKruskal nor MethodPrim.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// NodeRangeError reports the first edge whose endpoints are not dense indices
// in [0, NumNodes). Node identifiers double as array indices, so such an edge
// is a precondition violation rather than something to clamp or grow around.
type NodeRangeError struct {
	Index    int                   // position of the edge in the input slice
	Edge     connection.Connection // the offending edge
	NumNodes int                   // the node count the edge was checked against
}

func (e *NodeRangeError) Error() string {
	return fmt.Sprintf("prim_kruskal: edge #%d %s has an endpoint outside [0, %d)", e.Index, e.Edge, e.NumNodes)
}

// Is makes errors.Is(err, ErrNodeOutOfRange) succeed.
func (e *NodeRangeError) Is(target error) bool { return target == ErrNodeOutOfRange }

// MethodPrim selects Prim's algorithm (grow each tree from its lowest node using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (stable sort of all edges + union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which spanning-forest algorithm to run.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string is one of MethodPrim or MethodKruskal.
//
// See: prim_kruskal.Prim, prim_kruskal.Kruskal
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute applies opts on top of DefaultOptions and runs the selected algorithm.
//
//	– MethodKruskal: calls Kruskal(edges, numNodes).
//	– MethodPrim:    calls Prim(edges, numNodes).
//	– Otherwise:     returns ErrUnknownMethod.
//
// Both methods return a spanning forest of identical total cost; they may
// differ in which edges are chosen among equal-cost alternatives and in order.
func Compute(edges []connection.Connection, numNodes int, opts ...Option) ([]connection.Connection, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Dispatch by method name
	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(edges, numNodes)
	case MethodPrim:
		return Prim(edges, numNodes)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}

// TotalCost sums the costs of edges. It is the derived total of an MST result.
// Complexity: O(len(edges)).
func TotalCost(edges []connection.Connection) int64 {
	var total int64
	for _, e := range edges {
		total += int64(e.Cost)
	}

	return total
}

// Components returns how many connected components the graph (edges over
// numNodes nodes) has. Isolated nodes count as their own component, so for a
// spanning forest F of the same graph: len(F) == numNodes - Components.
// Like Kruskal and Prim, numNodes == 0 yields 0 without inspecting edges.
//
// Complexity: O(V + E·α(V)).
func Components(edges []connection.Connection, numNodes int) (int, error) {
	if numNodes == 0 {
		return 0, nil
	}
	if err := validate(edges, numNodes); err != nil {
		return 0, err
	}

	dsu, err := NewDisjointSet(numNodes)
	if err != nil {
		return 0, err
	}
	for _, e := range edges {
		dsu.Union(e.NodeA, e.NodeB)
	}

	return dsu.Sets(), nil
}

// validate enforces numNodes >= 0 and dense endpoints in [0, numNodes).
func validate(edges []connection.Connection, numNodes int) error {
	if numNodes < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeNodeCount, numNodes)
	}
	for i, e := range edges {
		if e.NodeA < 0 || e.NodeA >= numNodes || e.NodeB < 0 || e.NodeB >= numNodes {
			return &NodeRangeError{Index: i, Edge: e, NumNodes: numNodes}
		}
	}

	return nil
}
