package connection

import (
	"io"
	"strconv"
	"strings"
)

// Parse converts raw edge-list text into an ordered slice of Connections
// (line order) together with the declared connection count.
//
// Error Conditions:
//   - *HeaderFormatError  : no non-empty line, or the header is not an integer.
//   - *LineFormatError    : a data line is not exactly three integer tokens.
//   - *CountMismatchError : len(result) != declared count (checked last).
//
// Steps:
//  1. Split on '\n' and drop whitespace-only lines at the end of the text.
//  2. Skip blank lines before the header; parse the header as the declared count.
//  3. Parse every remaining line into a Connection, failing on the first bad one.
//  4. Compare the number of parsed Connections against the declared count.
//
// Complexity: O(L) where L = len(text). Memory: O(N) for N connections.
func Parse(text string) ([]Connection, int, error) {
	// 1. Split into raw lines and strip the trailing terminator lines.
	lines := strings.Split(text, "\n")
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	lines = lines[:end]

	// 2. Locate the header: the first non-empty line.
	head := 0
	for head < len(lines) && strings.TrimSpace(lines[head]) == "" {
		head++
	}
	if head == len(lines) {
		// Nothing but whitespace: there is no header at all.
		return nil, 0, &HeaderFormatError{}
	}
	headerText := strings.TrimSpace(lines[head])
	declared, err := strconv.Atoi(headerText)
	if err != nil {
		return nil, 0, &HeaderFormatError{Line: head + 1, Text: headerText, Err: err}
	}

	// Size the result by the declared count when it is plausible.
	body := lines[head+1:]
	capacity := len(body)
	if declared >= 0 && declared < capacity {
		capacity = declared
	}
	conns := make([]Connection, 0, capacity)

	// 3. Every line past the header either becomes a Connection or fails the parse.
	for i, line := range body {
		raw := strings.TrimSuffix(line, "\r")
		c, lineErr := parseLine(raw)
		if lineErr != nil {
			return nil, 0, &LineFormatError{Line: head + 2 + i, Text: raw, Err: lineErr}
		}
		conns = append(conns, c)
	}

	// 4. The count check happens only after every line was scanned.
	if len(conns) != declared {
		return nil, 0, &CountMismatchError{Expected: declared, Actual: len(conns)}
	}

	return conns, declared, nil
}

// ParseReader reads r to EOF and parses the result with Parse.
// Read failures are returned unchanged.
func ParseReader(r io.Reader) ([]Connection, int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, err
	}

	return Parse(string(data))
}

// parseLine turns "a b cost" (any whitespace) into a Connection.
func parseLine(line string) (Connection, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Connection{}, errTokenCount
	}

	var values [3]int
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return Connection{}, err
		}
		values[i] = v
	}

	return New(values[0], values[1], values[2]), nil
}
