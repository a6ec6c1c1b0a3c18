package translator

import (
	"fmt"

	"github.com/google/uuid"
)

// IdentifierMapper assigns short, stable identifiers to full node/pin GUIDs
// for one translation session. Node and pin namespaces are independent, so a
// node short ID and a pin short ID may coincide as strings without collision.
//
// Counters are monotonic and never reused: a mapper must be created fresh
// per translation and its maps discarded (not merged) when a new translation
// begins. Sharing one mapper across concurrent translations would corrupt
// the counters and produce colliding IDs.
type IdentifierMapper struct {
	nodeIDs  map[uuid.UUID]string
	pinIDs   map[uuid.UUID]string
	nextNode int
	nextPin  int
}

// NewIdentifierMapper creates an empty mapper with both counters seeded at 1.
func NewIdentifierMapper() *IdentifierMapper {
	return &IdentifierMapper{
		nodeIDs:  make(map[uuid.UUID]string),
		pinIDs:   make(map[uuid.UUID]string),
		nextNode: 1,
		nextPin:  1,
	}
}

// NodeShortID returns the short ID for a node GUID, assigning one on first
// use. Idempotent within a session.
func (m *IdentifierMapper) NodeShortID(id uuid.UUID) string {
	if short, ok := m.nodeIDs[id]; ok {
		return short
	}
	short := fmt.Sprintf("Node_%d", m.nextNode)
	m.nextNode++
	m.nodeIDs[id] = short
	return short
}

// PinShortID returns the short ID for a pin GUID, assigning one on first
// use. Idempotent within a session.
func (m *IdentifierMapper) PinShortID(id uuid.UUID) string {
	if short, ok := m.pinIDs[id]; ok {
		return short
	}
	short := fmt.Sprintf("Pin_%d", m.nextPin)
	m.nextPin++
	m.pinIDs[id] = short
	return short
}

// Preserve returns immutable snapshots of both forward maps. Callers that
// need short-to-GUID resolution later build the inverse themselves; reverse
// lookup is the enhancement pass's responsibility.
func (m *IdentifierMapper) Preserve() (map[uuid.UUID]string, map[uuid.UUID]string) {
	nodes := make(map[uuid.UUID]string, len(m.nodeIDs))
	for k, v := range m.nodeIDs {
		nodes[k] = v
	}
	pins := make(map[uuid.UUID]string, len(m.pinIDs))
	for k, v := range m.pinIDs {
		pins[k] = v
	}
	return nodes, pins
}
