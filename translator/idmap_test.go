package translator

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortIDIdempotence(t *testing.T) {
	m := NewIdentifierMapper()
	id := uuid.New()

	first := m.NodeShortID(id)
	second := m.NodeShortID(id)
	assert.Equal(t, first, second)
	assert.Equal(t, "Node_1", first)
}

func TestShortIDInjectivity(t *testing.T) {
	m := NewIdentifierMapper()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		short := m.PinShortID(uuid.New())
		assert.False(t, seen[short], short)
		seen[short] = true
	}
}

func TestNamespacesAreIndependent(t *testing.T) {
	m := NewIdentifierMapper()

	// The same GUID can appear in both namespaces without collision,
	// and counters advance independently.
	id := uuid.New()
	assert.Equal(t, "Node_1", m.NodeShortID(id))
	assert.Equal(t, "Pin_1", m.PinShortID(id))
	assert.Equal(t, "Node_2", m.NodeShortID(uuid.New()))
	assert.Equal(t, "Pin_2", m.PinShortID(uuid.New()))
}

func TestCountersAreMonotonic(t *testing.T) {
	m := NewIdentifierMapper()

	for i := 1; i <= 5; i++ {
		assert.Equal(t, fmt.Sprintf("Node_%d", i), m.NodeShortID(uuid.New()))
	}
}

func TestPreserveReturnsSnapshot(t *testing.T) {
	m := NewIdentifierMapper()
	nodeID := uuid.New()
	pinID := uuid.New()
	m.NodeShortID(nodeID)
	m.PinShortID(pinID)

	nodes, pins := m.Preserve()
	require.Len(t, nodes, 1)
	require.Len(t, pins, 1)
	assert.Equal(t, "Node_1", nodes[nodeID])
	assert.Equal(t, "Pin_1", pins[pinID])

	// The snapshot is a copy; later assignments do not leak into it
	m.NodeShortID(uuid.New())
	assert.Len(t, nodes, 1)
}
