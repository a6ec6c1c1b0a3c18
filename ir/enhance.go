package ir

import (
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/flashpoint493/NodeToCode-sub000/logger"
)

// EnhanceWithIdentifiers re-attaches full GUIDs to an already-serialized
// blueprint document. Each node's flat "id" field becomes a nested
// "ids": {"short", "guid"} object and each pin's becomes
// "ids": {"short", "guid", "name"} — the pin name is kept as a tertiary
// fallback since GUIDs and short IDs can both go stale across edits.
//
// The flows section is left untouched: flows exist for control-order
// readability, re-targeting goes through node/pin ids.
//
// This is a best-effort enrichment layered on an already-valid payload;
// if the input fails to parse it is returned unmodified.
func EnhanceWithIdentifiers(jsonStr string, nodeMap map[uuid.UUID]string, pinMap map[uuid.UUID]string) string {
	var root map[string]interface{}
	if err := json.Unmarshal([]byte(jsonStr), &root); err != nil {
		logger.Warnw("failed to parse JSON for identifier enhancement",
			logger.FieldError, err.Error())
		return jsonStr
	}

	// Build reverse maps once: short ID -> GUID
	reverseNodes := make(map[string]uuid.UUID, len(nodeMap))
	for guid, short := range nodeMap {
		reverseNodes[short] = guid
	}
	reversePins := make(map[string]uuid.UUID, len(pinMap))
	for guid, short := range pinMap {
		reversePins[short] = guid
	}

	graphs, ok := root["graphs"].([]interface{})
	if !ok {
		return jsonStr
	}

	for _, graphVal := range graphs {
		graph, ok := graphVal.(map[string]interface{})
		if !ok {
			continue
		}
		nodes, ok := graph["nodes"].([]interface{})
		if !ok {
			continue
		}
		for _, nodeVal := range nodes {
			node, ok := nodeVal.(map[string]interface{})
			if !ok {
				continue
			}
			if short, ok := node["id"].(string); ok {
				ids := map[string]interface{}{"short": short}
				if guid, found := reverseNodes[short]; found {
					ids["guid"] = guid.String()
				}
				delete(node, "id")
				node["ids"] = ids
			}
			for _, arrayName := range []string{"input_pins", "output_pins"} {
				pinsArr, ok := node[arrayName].([]interface{})
				if !ok {
					continue
				}
				for _, pinVal := range pinsArr {
					pin, ok := pinVal.(map[string]interface{})
					if !ok {
						continue
					}
					short, ok := pin["id"].(string)
					if !ok {
						continue
					}
					ids := map[string]interface{}{"short": short}
					if guid, found := reversePins[short]; found {
						ids["guid"] = guid.String()
					}
					if name, ok := pin["name"].(string); ok {
						ids["name"] = name
					}
					delete(pin, "id")
					pin["ids"] = ids
				}
			}
		}
	}

	out, err := json.Marshal(root)
	if err != nil {
		logger.Warnw("failed to re-serialize enhanced JSON",
			logger.FieldError, err.Error())
		return jsonStr
	}
	return string(out)
}
