package connection_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/netmst/connection"
)

// BenchmarkParse measures parsing of a 10 000-line edge list.
func BenchmarkParse(b *testing.B) {
	const n = 10000
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(n) + "\n")
	for i := 0; i < n; i++ {
		sb.WriteString(strconv.Itoa(i) + " " + strconv.Itoa((i+1)%n) + " " + strconv.Itoa(i%100) + "\n")
	}
	text := sb.String()

	b.ResetTimer() // exclude input construction
	for i := 0; i < b.N; i++ {
		_, _, _ = connection.Parse(text)
	}
}
