package ir

import (
	"strings"

	"github.com/flashpoint493/NodeToCode-sub000/errors"
)

// PinCategory is the resolved kind of a pin's data type.
type PinCategory string

const (
	CategoryExec    PinCategory = "exec" // sentinel for execution pins, never a data type
	CategoryBoolean PinCategory = "bool"
	CategoryByte    PinCategory = "byte"
	CategoryInt32   PinCategory = "int32"
	CategoryInt64   PinCategory = "int64"
	CategoryFloat   PinCategory = "float"
	CategoryDouble  PinCategory = "double"
	CategoryString  PinCategory = "string"
	CategoryText    PinCategory = "text"
	CategoryName    PinCategory = "name"

	CategoryStruct    PinCategory = "struct"
	CategoryObject    PinCategory = "object"
	CategoryClass     PinCategory = "class"
	CategoryEnum      PinCategory = "enum"
	CategoryInterface PinCategory = "interface"

	CategoryWildcard          PinCategory = "wildcard"
	CategoryDelegate          PinCategory = "delegate"
	CategoryMulticastDelegate PinCategory = "multicast_delegate"
	CategorySoftObject        PinCategory = "soft_object"
	CategorySoftClass         PinCategory = "soft_class"
)

// ContainerKind is the orthogonal container wrapping of a pin type.
type ContainerKind string

const (
	ContainerNone  ContainerKind = "none"
	ContainerArray ContainerKind = "array"
	ContainerSet   ContainerKind = "set"
	ContainerMap   ContainerKind = "map"
)

// ParseContainerKind maps a container keyword to its kind. The empty string
// and "none" both mean no container.
func ParseContainerKind(s string) (ContainerKind, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return ContainerNone, nil
	case "array":
		return ContainerArray, nil
	case "set":
		return ContainerSet, nil
	case "map":
		return ContainerMap, nil
	default:
		return ContainerNone, errors.Wrapf(errors.ErrUnknownContainer, "container %q", s)
	}
}

// TypeDescriptor is the canonical, resolved representation of a pin's data
// type. SubType carries the named entity (struct/class/enum/interface name)
// and Path its fully-qualified asset path, both empty for primitives.
// KeyType is set exactly when Container is ContainerMap.
type TypeDescriptor struct {
	Category    PinCategory
	SubType     string
	Path        string
	Container   ContainerKind
	KeyType     *TypeDescriptor
	IsReference bool
	IsConst     bool
}

// Validate checks the structural invariants of the descriptor.
func (t TypeDescriptor) Validate() error {
	if t.Container == ContainerMap && t.KeyType == nil {
		return errors.Wrap(errors.ErrMissingKeyType, "map container without key type")
	}
	if t.Container != ContainerMap && t.KeyType != nil {
		return errors.Newf("key type set on non-map container %q", t.Container)
	}
	if t.KeyType != nil && t.KeyType.Container != ContainerNone {
		return errors.New("map key types cannot be containers")
	}
	return nil
}

// IsExec reports whether this descriptor is the execution sentinel.
func (t TypeDescriptor) IsExec() bool {
	return t.Category == CategoryExec
}

// ExecType returns the sentinel descriptor carried by execution pins.
func ExecType() TypeDescriptor {
	return TypeDescriptor{Category: CategoryExec, Container: ContainerNone}
}

// GraphKind classifies a blueprint graph.
type GraphKind string

const (
	GraphFunction GraphKind = "function"
	GraphEvent    GraphKind = "event"
	GraphMacro    GraphKind = "macro"
	GraphDelegate GraphKind = "delegate"
)

// ParseGraphKind maps a host-reported graph kind onto the IR classification.
// An unrecognized kind is a host/IR mismatch and aborts translation.
func ParseGraphKind(s string) (GraphKind, error) {
	switch strings.ToLower(s) {
	case "function":
		return GraphFunction, nil
	case "event", "eventgraph", "ubergraph":
		return GraphEvent, nil
	case "macro":
		return GraphMacro, nil
	case "delegate":
		return GraphDelegate, nil
	default:
		return "", errors.Wrapf(errors.ErrUnsupportedGraphKind, "graph kind %q", s)
	}
}
