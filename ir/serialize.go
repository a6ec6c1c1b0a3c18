package ir

import (
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/flashpoint493/NodeToCode-sub000/errors"
)

// Wire DTOs. Field order here is the wire field order; both pretty and
// compact modes emit identical structure, only whitespace differs.
type documentDTO struct {
	Blueprint metadataDTO `json:"blueprint"`
	Graphs    []graphDTO  `json:"graphs"`
}

type metadataDTO struct {
	Name        string `json:"name"`
	ParentClass string `json:"parent_class"`
}

type graphDTO struct {
	GraphName  string    `json:"graph_name"`
	GraphType  string    `json:"graph_type"`
	GraphClass string    `json:"graph_class"`
	Nodes      []nodeDTO `json:"nodes"`
	Flows      []flowDTO `json:"flows"`
}

type nodeDTO struct {
	ID         string            `json:"id"`
	ClassName  string            `json:"class_name"`
	InputPins  []pinDTO          `json:"input_pins"`
	OutputPins []pinDTO          `json:"output_pins"`
	Properties map[string]string `json:"properties,omitempty"`
}

type pinDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         typeDTO  `json:"type"`
	DefaultValue string   `json:"default_value,omitempty"`
	ConnectedTo  []string `json:"connected_to,omitempty"`
}

type typeDTO struct {
	Primary     string   `json:"primary"`
	SubType     string   `json:"sub_type,omitempty"`
	Path        string   `json:"path,omitempty"`
	Container   string   `json:"container,omitempty"`
	KeyType     *typeDTO `json:"key_type,omitempty"`
	IsReference bool     `json:"is_reference,omitempty"`
	IsConst     bool     `json:"is_const,omitempty"`
}

type flowDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ToJSON renders the blueprint as JSON text. The output is a deterministic
// function of the blueprint and the pretty flag: field order follows the DTO
// declarations and connections are rendered as short pin IDs using the
// blueprint's own pin set.
func ToJSON(bp *Blueprint, pretty bool) (string, error) {
	if bp == nil {
		return "", errors.New("nil blueprint")
	}

	pins := bp.pinIndex()
	doc := documentDTO{
		Blueprint: metadataDTO{
			Name:        bp.Metadata.Name,
			ParentClass: bp.Metadata.ParentClass,
		},
		Graphs: make([]graphDTO, 0, len(bp.Graphs)),
	}

	for _, g := range bp.Graphs {
		gd := graphDTO{
			GraphName:  g.Name,
			GraphType:  string(g.Kind),
			GraphClass: g.OwnerClass,
			Nodes:      make([]nodeDTO, 0, len(g.Nodes)),
			Flows:      make([]flowDTO, 0, len(g.Flows)),
		}
		for _, n := range g.Nodes {
			gd.Nodes = append(gd.Nodes, nodeDTO{
				ID:         n.ShortID,
				ClassName:  n.ClassName,
				InputPins:  pinDTOs(n.InputPins, pins),
				OutputPins: pinDTOs(n.OutputPins, pins),
				Properties: n.Properties,
			})
		}
		for _, f := range g.Flows {
			gd.Flows = append(gd.Flows, flowDTO{
				From: shortPinID(f.FromPin, pins),
				To:   shortPinID(f.ToPin, pins),
			})
		}
		doc.Graphs = append(doc.Graphs, gd)
	}

	var (
		out []byte
		err error
	)
	if pretty {
		out, err = json.MarshalIndent(doc, "", "  ")
	} else {
		out, err = json.Marshal(doc)
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize blueprint")
	}
	return string(out), nil
}

func pinDTOs(pins []Pin, index map[uuid.UUID]string) []pinDTO {
	out := make([]pinDTO, 0, len(pins))
	for _, p := range pins {
		dto := pinDTO{
			ID:           p.ShortID,
			Name:         p.Name,
			Type:         typeDTOFrom(p.Type),
			DefaultValue: p.DefaultValue,
		}
		for _, target := range p.ConnectedTo {
			dto.ConnectedTo = append(dto.ConnectedTo, shortPinID(target, index))
		}
		out = append(out, dto)
	}
	return out
}

func typeDTOFrom(t TypeDescriptor) typeDTO {
	dto := typeDTO{
		Primary:     string(t.Category),
		SubType:     t.SubType,
		Path:        t.Path,
		IsReference: t.IsReference,
		IsConst:     t.IsConst,
	}
	if t.Container != ContainerNone && t.Container != "" {
		dto.Container = string(t.Container)
	}
	if t.KeyType != nil {
		key := typeDTOFrom(*t.KeyType)
		dto.KeyType = &key
	}
	return dto
}

// shortPinID resolves a connection target to its short ID. Every connection
// surviving translation points at a pin inside the blueprint; the raw GUID
// is only rendered if that assumption is ever violated upstream.
func shortPinID(id uuid.UUID, index map[uuid.UUID]string) string {
	if short, ok := index[id]; ok {
		return short
	}
	return id.String()
}
