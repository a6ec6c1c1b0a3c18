package translator

import (
	"github.com/google/uuid"
)

// HostPinType is the structured type metadata the host editor carries for a
// pin. It maps 1:1 onto an ir.TypeDescriptor; the string-grammar resolver is
// for tool callers building types from text, not for translation.
type HostPinType struct {
	Category    string       `json:"category"`
	SubType     string       `json:"sub_type,omitempty"`
	Path        string       `json:"path,omitempty"`
	Container   string       `json:"container,omitempty"`
	KeyType     *HostPinType `json:"key_type,omitempty"`
	IsReference bool         `json:"is_reference,omitempty"`
	IsConst     bool         `json:"is_const,omitempty"`
}

// HostPin is one pin as reported by the host, with its stable GUID and the
// GUIDs of every pin it links to.
type HostPin struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Direction    string      `json:"direction"` // "input" or "output"
	IsExecution  bool        `json:"is_execution,omitempty"`
	Type         HostPinType `json:"type"`
	DefaultValue string      `json:"default_value,omitempty"`
	LinkedTo     []uuid.UUID `json:"linked_to,omitempty"`
}

// HostNode is the flat capability view of one host graph node. Concrete node
// kinds are never distinguished by the translator; the host collaborator
// that produces this view owns that knowledge. The translator treats the
// host data as a read-only snapshot and never mutates host state.
type HostNode interface {
	ID() uuid.UUID
	ClassName() string
	GraphName() string
	GraphKind() string
	OwnerClass() string
	Pins() []HostPin
	Properties() map[string]string
}
