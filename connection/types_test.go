package connection_test

import (
	"testing"

	"github.com/katalvlaran/netmst/connection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConnection_SymmetricEquality verifies (a,b,c) and (b,a,c) are one link.
func TestConnection_SymmetricEquality(t *testing.T) {
	ab := connection.New(0, 3, 2)
	ba := connection.New(3, 0, 2)

	assert.True(t, ab.Equal(ba))
	assert.True(t, ba.Equal(ab))
	assert.Equal(t, ab.Key(), ba.Key())

	// Different cost or different endpoints are different links.
	assert.False(t, ab.Equal(connection.New(0, 3, 3)))
	assert.False(t, ab.Equal(connection.New(0, 2, 2)))
}

// TestConnection_KeyNoCollisions verifies pairs sharing sum and product stay distinct.
func TestConnection_KeyNoCollisions(t *testing.T) {
	// Distinct unordered pairs with small ids must never share a key.
	seen := make(map[connection.Key]connection.Connection)
	for a := 0; a < 12; a++ {
		for b := a; b < 12; b++ {
			c := connection.New(b, a, 1)
			prev, dup := seen[c.Key()]
			require.False(t, dup, "key collision between %s and %s", prev, c)
			seen[c.Key()] = c
		}
	}
	assert.Len(t, seen, 12*13/2)
}

// TestConnection_MapDeduplication verifies Key collapses mirrored links in a set.
func TestConnection_MapDeduplication(t *testing.T) {
	set := map[connection.Key]struct{}{}
	for _, c := range []connection.Connection{
		connection.New(1, 2, 5),
		connection.New(2, 1, 5),
		connection.New(1, 2, 6),
	} {
		set[c.Key()] = struct{}{}
	}
	assert.Len(t, set, 2)
}

// TestContains verifies membership respects symmetric equality.
func TestContains(t *testing.T) {
	conns := []connection.Connection{connection.New(1, 2, 1), connection.New(0, 3, 2)}
	assert.True(t, connection.Contains(conns, connection.New(3, 0, 2)))
	assert.True(t, connection.Contains(conns, connection.New(2, 1, 1)))
	assert.False(t, connection.Contains(conns, connection.New(0, 1, 3)))
	assert.False(t, connection.Contains(nil, connection.New(0, 1, 3)))
}

// TestNodeCount verifies max(endpoint)+1 derivation and negative rejection.
func TestNodeCount(t *testing.T) {
	n, err := connection.NodeCount(nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = connection.NodeCount([]connection.Connection{connection.New(0, 1, 3), connection.New(4, 2, 1)})
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = connection.NodeCount([]connection.Connection{connection.New(0, -1, 3)})
	assert.ErrorIs(t, err, connection.ErrNegativeNode)
}

// TestCompact verifies dense relabelling keeps order and maps back exactly.
func TestCompact(t *testing.T) {
	const huge = 1 << 60
	conns := []connection.Connection{
		connection.New(huge, 7, 4),
		connection.New(7, 7, 1),
		connection.New(3, huge, 2),
	}

	dense, ids, err := connection.Compact(conns)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7, huge}, ids)
	assert.Equal(t, []connection.Connection{
		connection.New(2, 1, 4),
		connection.New(1, 1, 1),
		connection.New(0, 2, 2),
	}, dense)
	assert.Equal(t, conns, connection.Expand(dense, ids))

	dense, ids, err = connection.Compact(nil)
	require.NoError(t, err)
	assert.Empty(t, dense)
	assert.Empty(t, ids)

	_, _, err = connection.Compact([]connection.Connection{connection.New(-3, 1, 1)})
	assert.ErrorIs(t, err, connection.ErrNegativeNode)
}

// TestConnection_StringAndLoop covers the small helpers.
func TestConnection_StringAndLoop(t *testing.T) {
	assert.Equal(t, "1-2(30)", connection.New(1, 2, 30).String())
	assert.True(t, connection.New(4, 4, 1).IsLoop())
	assert.False(t, connection.New(4, 5, 1).IsLoop())
}
