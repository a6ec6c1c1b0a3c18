package translator

import (
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/flashpoint493/NodeToCode-sub000/errors"
	"github.com/flashpoint493/NodeToCode-sub000/ir"
)

// Snapshot is the serialized form of the host-collaborator contract: an
// ordered node list plus blueprint metadata. It lets the CLI and tests
// construct translator inputs without a live editor attached.
type Snapshot struct {
	Blueprint SnapshotMetadata `json:"blueprint"`
	Nodes     []SnapshotNode   `json:"nodes"`
}

// SnapshotMetadata mirrors ir.Metadata on the wire.
type SnapshotMetadata struct {
	Name        string `json:"name"`
	ParentClass string `json:"parent_class,omitempty"`
}

// SnapshotNode is one host node record. It implements HostNode.
type SnapshotNode struct {
	NodeID    uuid.UUID         `json:"id"`
	Class     string            `json:"class_name"`
	Graph     string            `json:"graph_name"`
	Kind      string            `json:"graph_kind"`
	Owner     string            `json:"owner_class,omitempty"`
	NodePins  []HostPin         `json:"pins"`
	NodeProps map[string]string `json:"properties,omitempty"`
}

func (n SnapshotNode) ID() uuid.UUID                 { return n.NodeID }
func (n SnapshotNode) ClassName() string             { return n.Class }
func (n SnapshotNode) GraphName() string             { return n.Graph }
func (n SnapshotNode) GraphKind() string             { return n.Kind }
func (n SnapshotNode) OwnerClass() string            { return n.Owner }
func (n SnapshotNode) Pins() []HostPin               { return n.NodePins }
func (n SnapshotNode) Properties() map[string]string { return n.NodeProps }

// LoadSnapshot parses a snapshot document and returns the node list and
// blueprint metadata ready for Translate.
func LoadSnapshot(data []byte) ([]HostNode, ir.Metadata, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, ir.Metadata{}, errors.Wrap(err, "failed to parse host snapshot")
	}

	nodes := make([]HostNode, 0, len(snap.Nodes))
	for _, n := range snap.Nodes {
		nodes = append(nodes, n)
	}
	meta := ir.Metadata{
		Name:        snap.Blueprint.Name,
		ParentClass: snap.Blueprint.ParentClass,
	}
	return nodes, meta, nil
}
