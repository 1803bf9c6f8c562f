// Package connection defines the Connection value type, its canonical key,
// and the sentinel/typed errors produced by the parser.
package connection

import (
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors. Every typed parser error matches exactly one of them via errors.Is.
var (
	// ErrHeaderFormat indicates the first non-empty line is not a base-10 integer.
	ErrHeaderFormat = errors.New("connection: invalid header format")
	// ErrLineFormat indicates a data line is not exactly three base-10 integers.
	ErrLineFormat = errors.New("connection: invalid line format")
	// ErrCountMismatch indicates the parsed connection count differs from the declared one.
	ErrCountMismatch = errors.New("connection: connection count mismatch")
	// ErrNegativeNode indicates a node identifier below zero where a dense index is required.
	ErrNegativeNode = errors.New("connection: negative node identifier")
)

// errTokenCount is the cause attached to a LineFormatError when the token count is not 3.
var errTokenCount = errors.New("expected exactly 3 whitespace-separated tokens")

// Connection is an undirected, weighted link between NodeA and NodeB.
// It is an immutable value: construct it once and pass it by value.
type Connection struct {
	NodeA int // first endpoint
	NodeB int // second endpoint
	Cost  int // cost of keeping this link
}

// Key is the canonical, endpoint-ordered identity of a Connection.
// Low <= High always holds, so Key is symmetric and collision-free.
type Key struct {
	Low, High int
	Cost      int
}

// New returns a Connection between a and b with the given cost.
func New(a, b, cost int) Connection {
	return Connection{NodeA: a, NodeB: b, Cost: cost}
}

// Key returns the canonical key of c.
// Complexity: O(1).
func (c Connection) Key() Key {
	// Order endpoints so that (a,b) and (b,a) collapse to one key.
	if c.NodeA <= c.NodeB {
		return Key{Low: c.NodeA, High: c.NodeB, Cost: c.Cost}
	}

	return Key{Low: c.NodeB, High: c.NodeA, Cost: c.Cost}
}

// Equal reports whether c and other describe the same undirected link.
func (c Connection) Equal(other Connection) bool {
	return c.Key() == other.Key()
}

// IsLoop reports whether both endpoints are the same node.
func (c Connection) IsLoop() bool {
	return c.NodeA == c.NodeB
}

// String renders c as "A-B(cost)".
func (c Connection) String() string {
	return fmt.Sprintf("%d-%d(%d)", c.NodeA, c.NodeB, c.Cost)
}

// Contains reports whether conns holds a Connection equal to c
// under symmetric equality.
// Complexity: O(len(conns)).
func Contains(conns []Connection, c Connection) bool {
	key := c.Key()
	for _, x := range conns {
		if x.Key() == key {
			return true
		}
	}

	return false
}

// NodeCount derives the number of nodes implied by conns, that is
// max(endpoint)+1, treating identifiers as dense indices starting at 0.
// It returns 0 for an empty slice and ErrNegativeNode if any endpoint is
// below zero.
// Complexity: O(len(conns)).
func NodeCount(conns []Connection) (int, error) {
	highest := -1
	for _, c := range conns {
		if c.NodeA < 0 || c.NodeB < 0 {
			return 0, fmt.Errorf("%w: %s", ErrNegativeNode, c)
		}
		highest = max(highest, c.NodeA, c.NodeB)
	}

	return highest + 1, nil
}

// Compact relabels the endpoints of conns onto the dense range [0, k), where k
// is the number of distinct endpoints, and returns ids mapping each dense label
// back to its original identifier. Labels follow the ascending order of the
// original identifiers, so ordering-based tie-breaks are unchanged. Endpoint
// order and connection order are preserved. It returns ErrNegativeNode if any
// endpoint is below zero.
//
// Unlike NodeCount, the size of the result never depends on how large the
// identifiers are, only on how many distinct ones appear.
// Complexity: O(E log E). Memory: O(E).
func Compact(conns []Connection) ([]Connection, []int, error) {
	ids := make([]int, 0, 2*len(conns))
	for _, c := range conns {
		if c.NodeA < 0 || c.NodeB < 0 {
			return nil, nil, fmt.Errorf("%w: %s", ErrNegativeNode, c)
		}
		ids = append(ids, c.NodeA, c.NodeB)
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)

	dense := make([]Connection, len(conns))
	for i, c := range conns {
		a, _ := slices.BinarySearch(ids, c.NodeA)
		b, _ := slices.BinarySearch(ids, c.NodeB)
		dense[i] = New(a, b, c.Cost)
	}

	return dense, ids, nil
}

// Expand maps dense connections produced from Compact's output back onto the
// original identifiers in ids.
func Expand(dense []Connection, ids []int) []Connection {
	out := make([]Connection, len(dense))
	for i, c := range dense {
		out[i] = New(ids[c.NodeA], ids[c.NodeB], c.Cost)
	}

	return out
}

// HeaderFormatError reports a missing or non-integer header line.
type HeaderFormatError struct {
	Line int    // 1-based line number of the header, 0 if the input held no non-empty line
	Text string // trimmed header text
	Err  error  // underlying conversion error, if any
}

func (e *HeaderFormatError) Error() string {
	if e.Line == 0 {
		return "connection: invalid header format: input has no header line"
	}

	return fmt.Sprintf("connection: invalid header format at line %d: %q is not an integer", e.Line, e.Text)
}

// Is makes errors.Is(err, ErrHeaderFormat) succeed.
func (e *HeaderFormatError) Is(target error) bool { return target == ErrHeaderFormat }

// Unwrap exposes the underlying conversion error.
func (e *HeaderFormatError) Unwrap() error { return e.Err }

// LineFormatError reports a data line that is not exactly three integers.
type LineFormatError struct {
	Line int    // 1-based line number
	Text string // the offending line, verbatim
	Err  error  // token-count or conversion cause
}

func (e *LineFormatError) Error() string {
	return fmt.Sprintf("connection: invalid line format at line %d: %q: %v", e.Line, e.Text, e.Err)
}

// Is makes errors.Is(err, ErrLineFormat) succeed.
func (e *LineFormatError) Is(target error) bool { return target == ErrLineFormat }

// Unwrap exposes the token-count or conversion cause.
func (e *LineFormatError) Unwrap() error { return e.Err }

// CountMismatchError reports that the declared and the parsed connection counts differ.
type CountMismatchError struct {
	Expected int // declared in the header
	Actual   int // successfully parsed lines
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("connection: connection count mismatch: expected %d, found %d", e.Expected, e.Actual)
}

// Is makes errors.Is(err, ErrCountMismatch) succeed.
func (e *CountMismatchError) Is(target error) bool { return target == ErrCountMismatch }
