// Package ir defines the canonical intermediate representation produced by
// translating a host blueprint graph, plus its JSON serialization.
//
// The IR is GUID-native: nodes and pins carry the host's full 128-bit
// identifiers, and pin connections reference full pin GUIDs. Short IDs are
// assigned during translation and substituted only at serialization time,
// so the IR stays reusable independent of any particular JSON rendering.
// A Blueprint is write-once: assembled by the translator, then only read.
package ir

import (
	"github.com/google/uuid"
)

// PinDirection distinguishes input from output pins.
type PinDirection string

const (
	DirectionInput  PinDirection = "input"
	DirectionOutput PinDirection = "output"
)

// Pin is a typed input or output slot on a node.
//
// Connection invariants (enforced by the translator, not here): a data input
// pin has at most one inbound connection; a data output pin may fan out. An
// execution output pin has at most one outbound connection; an execution
// input pin may receive from many sources.
type Pin struct {
	ID           uuid.UUID
	ShortID      string
	Name         string
	Direction    PinDirection
	IsExecution  bool
	Type         TypeDescriptor
	DefaultValue string
	ConnectedTo  []uuid.UUID
}

// Node is one blueprint node. Owned exclusively by its containing Graph.
type Node struct {
	ID         uuid.UUID
	ShortID    string
	ClassName  string
	InputPins  []Pin
	OutputPins []Pin
	Properties map[string]string
}

// Flow is a materialized execution edge between two execution pins. It is
// redundant with pin connections but kept first-class because control-flow
// order matters independently of pin enumeration order.
type Flow struct {
	FromPin uuid.UUID
	ToPin   uuid.UUID
}

// Graph is one function/event/macro/delegate graph. Owned by the Blueprint.
type Graph struct {
	Name       string
	Kind       GraphKind
	OwnerClass string
	Nodes      []Node
	Flows      []Flow
}

// Metadata describes the blueprint the graphs belong to.
type Metadata struct {
	Name        string
	ParentClass string
}

// Blueprint is the root IR artifact, created fresh per translation call.
type Blueprint struct {
	Metadata Metadata
	Graphs   []Graph
}

// NodeCount returns the total node count across all graphs.
func (b *Blueprint) NodeCount() int {
	n := 0
	for _, g := range b.Graphs {
		n += len(g.Nodes)
	}
	return n
}

// pinIndex builds a PinID -> ShortID index over every pin in the blueprint.
// The serializer uses it to render connections as short IDs.
func (b *Blueprint) pinIndex() map[uuid.UUID]string {
	idx := make(map[uuid.UUID]string)
	for _, g := range b.Graphs {
		for _, n := range g.Nodes {
			for _, p := range n.InputPins {
				idx[p.ID] = p.ShortID
			}
			for _, p := range n.OutputPins {
				idx[p.ID] = p.ShortID
			}
		}
	}
	return idx
}
