// Package connection defines the network Connection (an undirected, weighted
// link between two integer node identifiers) and the line-oriented parser that
// turns raw edge-list text into a validated sequence of Connections.
//
// Input Format
//
//	<declaredCount>
//	<nodeA> <nodeB> <cost>
//	<nodeA> <nodeB> <cost>
//	...
//
//   - The first non-empty line, trimmed, is the declared connection count.
//   - Every following line is trimmed and split on runs of whitespace (spaces
//     or tabs). Exactly three base-10 integers form one Connection.
//   - Whitespace-only lines at the very end of the text (a trailing newline)
//     are not lines. A blank line anywhere else is malformed.
//
// Error Conditions
//
//   - *HeaderFormatError (errors.Is ErrHeaderFormat): the header is missing or
//     is not an integer. Reported immediately.
//   - *LineFormatError (errors.Is ErrLineFormat): a data line does not hold
//     exactly three integer tokens. Carries the offending line verbatim and
//     its 1-based line number. The first malformed line wins.
//   - *CountMismatchError (errors.Is ErrCountMismatch): the number of parsed
//     connections differs from the declared count. Checked only after every
//     line was scanned, so a malformed line is always reported first.
//
// Symmetry
//
//	Connection(a, b, c) and Connection(b, a, c) are the same link: Equal and
//	Key are symmetric in the endpoints. Key orders the endpoints canonically,
//	so it is collision-free and usable as a map key.
//
// Parse is a pure function of its input; it is safe to call concurrently.
package connection
