// Package translator converts a collected set of host blueprint nodes into
// the canonical ir.Blueprint, assigning session-scoped short identifiers
// along the way.
//
// Translation is synchronous and performs no I/O; it runs to completion on
// the caller's goroutine. Reading the live host graph is typically only safe
// on the editor's main thread, but that is the caller's concern: the
// translator itself has no thread affinity and is reentrant as long as each
// call gets a fresh IdentifierMapper.
package translator

import (
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/flashpoint493/NodeToCode-sub000/errors"
	"github.com/flashpoint493/NodeToCode-sub000/ir"
	"github.com/flashpoint493/NodeToCode-sub000/logger"
)

// Warning records a non-fatal issue found during translation. Partial or
// disconnected graphs are a normal editing state, so these never abort.
type Warning struct {
	Code    string
	Message string
}

// Warning codes.
const (
	WarnDanglingReference  = "DanglingReference"
	WarnExcessConnection   = "ExcessConnection"
	WarnUnknownPinCategory = "UnknownPinCategory"
)

// Result is the output of one translation call. On a fatal error the partial
// result is still returned: short IDs assigned before the failure are sunk
// cost and harmless to expose.
type Result struct {
	Blueprint *ir.Blueprint
	// NodeIDs and PinIDs are the preserved identifier maps for this session,
	// used by follow-up tool calls to resolve short IDs back to GUIDs.
	NodeIDs  map[uuid.UUID]string
	PinIDs   map[uuid.UUID]string
	Warnings []Warning
}

// Translator walks host nodes and produces the Blueprint IR.
type Translator struct {
	log *zap.SugaredLogger
}

// New creates a Translator.
func New() *Translator {
	return &Translator{log: logger.ComponentLogger("translator")}
}

// Translate converts the host node list into a Blueprint. A fresh
// IdentifierMapper is created per call; nodes and pins receive their short
// IDs at first visitation, in host-enumeration order.
//
// The only fatal failure is an unclassifiable graph kind. Dangling pin
// references are dropped and recorded as warnings. A blueprint with zero
// graphs or nodes is returned as-is; validity is the consumer's contract.
func (t *Translator) Translate(nodes []HostNode, meta ir.Metadata) (*Result, error) {
	mapper := NewIdentifierMapper()
	result := &Result{
		Blueprint: &ir.Blueprint{Metadata: meta},
	}

	// Group nodes by owning graph, preserving first-seen graph order.
	graphOrder := make([]string, 0, 4)
	grouped := make(map[string][]HostNode)
	for _, node := range nodes {
		name := node.GraphName()
		if _, seen := grouped[name]; !seen {
			graphOrder = append(graphOrder, name)
		}
		grouped[name] = append(grouped[name], node)
	}

	// First pass: build IR nodes, assign short IDs, register every pin.
	pinRegistry := make(map[uuid.UUID]*pinInfo)
	for _, graphName := range graphOrder {
		members := grouped[graphName]
		kind, err := ir.ParseGraphKind(members[0].GraphKind())
		if err != nil {
			t.preserve(mapper, result)
			return result, errors.Wrapf(err, "graph %q", graphName)
		}

		graph := ir.Graph{
			Name:       graphName,
			Kind:       kind,
			OwnerClass: members[0].OwnerClass(),
		}
		for _, hostNode := range members {
			graph.Nodes = append(graph.Nodes, t.translateNode(hostNode, mapper, pinRegistry, result))
		}
		result.Blueprint.Graphs = append(result.Blueprint.Graphs, graph)
	}

	// Second pass: prune connections against the registered pin set and
	// derive execution flows.
	for gi := range result.Blueprint.Graphs {
		graph := &result.Blueprint.Graphs[gi]
		for ni := range graph.Nodes {
			node := &graph.Nodes[ni]
			prunePins(node.InputPins, pinRegistry, result)
			prunePins(node.OutputPins, pinRegistry, result)
			for pi := range node.OutputPins {
				pin := &node.OutputPins[pi]
				if pin.IsExecution && len(pin.ConnectedTo) == 1 {
					graph.Flows = append(graph.Flows, ir.Flow{
						FromPin: pin.ID,
						ToPin:   pin.ConnectedTo[0],
					})
				}
			}
		}
	}

	t.preserve(mapper, result)
	t.log.Infow("translation complete",
		logger.FieldBlueprint, meta.Name,
		logger.FieldNodeCount, result.Blueprint.NodeCount(),
		logger.FieldWarnings, len(result.Warnings),
	)
	return result, nil
}

// pinInfo is the registry entry used for connection validation.
type pinInfo struct {
	direction   ir.PinDirection
	isExecution bool
	inbound     int
}

func (t *Translator) translateNode(hostNode HostNode, mapper *IdentifierMapper, registry map[uuid.UUID]*pinInfo, result *Result) ir.Node {
	node := ir.Node{
		ID:         hostNode.ID(),
		ShortID:    mapper.NodeShortID(hostNode.ID()),
		ClassName:  hostNode.ClassName(),
		Properties: hostNode.Properties(),
	}

	for _, hostPin := range hostNode.Pins() {
		pin := ir.Pin{
			ID:           hostPin.ID,
			ShortID:      mapper.PinShortID(hostPin.ID),
			Name:         hostPin.Name,
			IsExecution:  hostPin.IsExecution,
			DefaultValue: hostPin.DefaultValue,
			ConnectedTo:  append([]uuid.UUID(nil), hostPin.LinkedTo...),
		}
		if hostPin.IsExecution {
			pin.Type = ir.ExecType()
		} else {
			pin.Type = t.mapPinType(hostPin, result)
		}

		switch hostPin.Direction {
		case "output":
			pin.Direction = ir.DirectionOutput
			node.OutputPins = append(node.OutputPins, pin)
		default:
			pin.Direction = ir.DirectionInput
			node.InputPins = append(node.InputPins, pin)
		}

		registry[pin.ID] = &pinInfo{
			direction:   pin.Direction,
			isExecution: pin.IsExecution,
		}
	}
	return node
}

// mapPinType maps the host's structured pin type 1:1 into a TypeDescriptor.
func (t *Translator) mapPinType(hostPin HostPin, result *Result) ir.TypeDescriptor {
	return t.mapHostType(hostPin.Type, hostPin.Name, result)
}

func (t *Translator) mapHostType(ht HostPinType, pinName string, result *Result) ir.TypeDescriptor {
	category, ok := hostCategories[ht.Category]
	if !ok {
		result.Warnings = append(result.Warnings, Warning{
			Code:    WarnUnknownPinCategory,
			Message: "pin " + pinName + ": unknown category " + ht.Category,
		})
		category = ir.CategoryWildcard
	}

	container, err := ir.ParseContainerKind(ht.Container)
	if err != nil {
		result.Warnings = append(result.Warnings, Warning{
			Code:    WarnUnknownPinCategory,
			Message: "pin " + pinName + ": " + err.Error(),
		})
		container = ir.ContainerNone
	}

	desc := ir.TypeDescriptor{
		Category:    category,
		SubType:     ht.SubType,
		Path:        ht.Path,
		Container:   container,
		IsReference: ht.IsReference,
		IsConst:     ht.IsConst,
	}
	if container == ir.ContainerMap && ht.KeyType != nil {
		key := t.mapHostType(*ht.KeyType, pinName, result)
		desc.KeyType = &key
	}
	return desc
}

// hostCategories maps host-reported category strings onto IR categories.
var hostCategories = map[string]ir.PinCategory{
	"exec":               ir.CategoryExec,
	"bool":               ir.CategoryBoolean,
	"boolean":            ir.CategoryBoolean,
	"byte":               ir.CategoryByte,
	"int":                ir.CategoryInt32,
	"int32":              ir.CategoryInt32,
	"int64":              ir.CategoryInt64,
	"float":              ir.CategoryFloat,
	"double":             ir.CategoryDouble,
	"string":             ir.CategoryString,
	"text":               ir.CategoryText,
	"name":               ir.CategoryName,
	"struct":             ir.CategoryStruct,
	"object":             ir.CategoryObject,
	"class":              ir.CategoryClass,
	"enum":               ir.CategoryEnum,
	"interface":          ir.CategoryInterface,
	"wildcard":           ir.CategoryWildcard,
	"delegate":           ir.CategoryDelegate,
	"multicast_delegate": ir.CategoryMulticastDelegate,
	"soft_object":        ir.CategorySoftObject,
	"soft_class":         ir.CategorySoftClass,
}

// prunePins drops connections to pins outside the translated node set and
// enforces the connection cardinality invariants: data inputs and execution
// outputs keep at most one connection.
func prunePins(pins []ir.Pin, registry map[uuid.UUID]*pinInfo, result *Result) {
	for i := range pins {
		pin := &pins[i]
		kept := pin.ConnectedTo[:0]
		for _, target := range pin.ConnectedTo {
			if _, exists := registry[target]; !exists {
				result.Warnings = append(result.Warnings, Warning{
					Code:    WarnDanglingReference,
					Message: "pin " + pin.ShortID + " references unknown pin " + target.String() + "; connection dropped",
				})
				continue
			}
			kept = append(kept, target)
		}
		pin.ConnectedTo = kept

		limited := (pin.Direction == ir.DirectionInput && !pin.IsExecution) ||
			(pin.Direction == ir.DirectionOutput && pin.IsExecution)
		if limited && len(pin.ConnectedTo) > 1 {
			result.Warnings = append(result.Warnings, Warning{
				Code:    WarnExcessConnection,
				Message: "pin " + pin.ShortID + " has " + strconv.Itoa(len(pin.ConnectedTo)) + " connections; keeping the first",
			})
			pin.ConnectedTo = pin.ConnectedTo[:1]
		}
	}
}

func (t *Translator) preserve(mapper *IdentifierMapper, result *Result) {
	result.NodeIDs, result.PinIDs = mapper.Preserve()
}
