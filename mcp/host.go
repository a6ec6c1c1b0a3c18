package mcp

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/flashpoint493/NodeToCode-sub000/errors"
	"github.com/flashpoint493/NodeToCode-sub000/ir"
	"github.com/flashpoint493/NodeToCode-sub000/translator"
)

// Host is the editor-side collaborator the MCP tools talk to. It supplies
// the graph being edited and applies mutations; the tools themselves never
// touch editor state directly.
type Host interface {
	// FocusedBlueprint returns the nodes of the blueprint the user is
	// currently editing, plus its metadata.
	FocusedBlueprint(ctx context.Context) ([]translator.HostNode, ir.Metadata, error)

	// ConnectPins asks the editor to wire two pins, identified by their
	// full GUIDs.
	ConnectPins(ctx context.Context, fromPin, toPin uuid.UUID) error
}

// SnapshotHost serves a blueprint from a snapshot document instead of a
// live editor. Used by the CLI and tests; pin connections are recorded
// rather than applied.
type SnapshotHost struct {
	mu          sync.Mutex
	nodes       []translator.HostNode
	meta        ir.Metadata
	connections [][2]uuid.UUID
}

// NewSnapshotHost creates a host over an already-decoded snapshot
func NewSnapshotHost(nodes []translator.HostNode, meta ir.Metadata) *SnapshotHost {
	return &SnapshotHost{nodes: nodes, meta: meta}
}

// LoadSnapshotHost creates a host from snapshot JSON
func LoadSnapshotHost(data []byte) (*SnapshotHost, error) {
	nodes, meta, err := translator.LoadSnapshot(data)
	if err != nil {
		return nil, err
	}
	return NewSnapshotHost(nodes, meta), nil
}

func (h *SnapshotHost) FocusedBlueprint(ctx context.Context) ([]translator.HostNode, ir.Metadata, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.nodes) == 0 {
		return nil, ir.Metadata{}, errors.Wrap(errors.ErrNotFound, "no blueprint loaded")
	}
	return h.nodes, h.meta, nil
}

func (h *SnapshotHost) ConnectPins(ctx context.Context, fromPin, toPin uuid.UUID) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections = append(h.connections, [2]uuid.UUID{fromPin, toPin})
	return nil
}

// Connections returns the pin connections recorded so far
func (h *SnapshotHost) Connections() [][2]uuid.UUID {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([][2]uuid.UUID, len(h.connections))
	copy(out, h.connections)
	return out
}
