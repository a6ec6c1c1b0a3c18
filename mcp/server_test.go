package mcp

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashpoint493/NodeToCode-sub000/ai/openrouter"
	"github.com/flashpoint493/NodeToCode-sub000/config"
)

const testSnapshot = `{
  "blueprint": {"name": "BP_Door", "parent_class": "Actor"},
  "nodes": [
    {
      "id": "11111111-0000-4000-8000-000000000001",
      "class_name": "K2Node_Event",
      "graph_name": "EventGraph",
      "graph_kind": "event",
      "owner_class": "BP_Door",
      "pins": [
        {
          "id": "22222222-0000-4000-8000-000000000001",
          "name": "then",
          "direction": "output",
          "is_execution": true,
          "type": {"category": "exec"},
          "linked_to": ["22222222-0000-4000-8000-000000000002"]
        }
      ]
    },
    {
      "id": "11111111-0000-4000-8000-000000000002",
      "class_name": "K2Node_CallFunction",
      "graph_name": "EventGraph",
      "graph_kind": "event",
      "owner_class": "BP_Door",
      "pins": [
        {
          "id": "22222222-0000-4000-8000-000000000002",
          "name": "execute",
          "direction": "input",
          "is_execution": true,
          "type": {"category": "exec"},
          "linked_to": ["22222222-0000-4000-8000-000000000001"]
        },
        {
          "id": "22222222-0000-4000-8000-000000000003",
          "name": "InString",
          "direction": "input",
          "type": {"category": "string"},
          "default_value": "Hello"
        }
      ],
      "properties": {"function": "PrintString"}
    }
  ]
}`

func testConfig() *config.Config {
	return &config.Config{
		Output: config.OutputConfig{Pretty: false},
		MCP:    config.MCPConfig{Name: "nodetocode", Version: "1.0.0"},
	}
}

func newTestServer(t *testing.T) (*Server, *SnapshotHost) {
	t.Helper()
	host, err := LoadSnapshotHost([]byte(testSnapshot))
	require.NoError(t, err)
	return NewServer(host, nil, testConfig()), host
}

func toolRequest(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestGetFocusedBlueprint(t *testing.T) {
	s, _ := newTestServer(t)

	result, err := s.handleGetFocusedBlueprint(context.Background(), toolRequest(nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &doc))

	bp := doc["blueprint"].(map[string]interface{})
	assert.Equal(t, "BP_Door", bp["name"])

	// Enhancement ran: nodes carry ids objects with short and guid
	graphs := doc["graphs"].([]interface{})
	nodes := graphs[0].(map[string]interface{})["nodes"].([]interface{})
	require.Len(t, nodes, 2)
	ids := nodes[0].(map[string]interface{})["ids"].(map[string]interface{})
	assert.Equal(t, "Node_1", ids["short"])
	assert.Equal(t, "11111111-0000-4000-8000-000000000001", ids["guid"])

	// Session was preserved for follow-up tools
	sess := s.currentSession()
	require.NotNil(t, sess)
	assert.Contains(t, sess.pinByShort, "Pin_1")
}

func TestResolveVariableType(t *testing.T) {
	s, _ := newTestServer(t)

	result, err := s.handleResolveVariableType(context.Background(), toolRequest(map[string]interface{}{
		"type":      "vector",
		"container": "array",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var desc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &desc))
	assert.Equal(t, "struct", desc["primary"])
	assert.Equal(t, "Vector", desc["sub_type"])
	assert.Equal(t, "array", desc["container"])
}

func TestResolveVariableTypeInvalidMapKey(t *testing.T) {
	s, _ := newTestServer(t)

	// Boolean map keys are rejected; the tool must answer with a structured
	// error result, not a protocol error
	result, err := s.handleResolveVariableType(context.Background(), toolRequest(map[string]interface{}{
		"type":      "string",
		"container": "map",
		"key_type":  "bool",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestResolveVariableTypeMissingParam(t *testing.T) {
	s, _ := newTestServer(t)

	result, err := s.handleResolveVariableType(context.Background(), toolRequest(nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestConnectPinsByShortID(t *testing.T) {
	s, host := newTestServer(t)

	// Establish a session first
	_, err := s.handleGetFocusedBlueprint(context.Background(), toolRequest(nil))
	require.NoError(t, err)

	result, err := s.handleConnectPins(context.Background(), toolRequest(map[string]interface{}{
		"from_pin": "Pin_1",
		"to_pin":   "Pin_2",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	conns := host.Connections()
	require.Len(t, conns, 1)
	assert.Equal(t, uuid.MustParse("22222222-0000-4000-8000-000000000001"), conns[0][0])
	assert.Equal(t, uuid.MustParse("22222222-0000-4000-8000-000000000002"), conns[0][1])
}

func TestConnectPinsByGUIDWithoutSession(t *testing.T) {
	s, host := newTestServer(t)

	// Full GUIDs work even before a translation has run
	result, err := s.handleConnectPins(context.Background(), toolRequest(map[string]interface{}{
		"from_pin": "22222222-0000-4000-8000-000000000001",
		"to_pin":   "22222222-0000-4000-8000-000000000002",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Len(t, host.Connections(), 1)
}

func TestConnectPinsUnknownShortID(t *testing.T) {
	s, host := newTestServer(t)

	result, err := s.handleConnectPins(context.Background(), toolRequest(map[string]interface{}{
		"from_pin": "Pin_99",
		"to_pin":   "Pin_1",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Empty(t, host.Connections())
}

// fakeAIClient returns a canned completion
type fakeAIClient struct {
	lastRequest openrouter.ChatRequest
	response    string
}

func (f *fakeAIClient) Chat(ctx context.Context, req openrouter.ChatRequest) (*openrouter.ChatResponse, error) {
	f.lastRequest = req
	return &openrouter.ChatResponse{Content: f.response}, nil
}

func TestTranslateBlueprint(t *testing.T) {
	host, err := LoadSnapshotHost([]byte(testSnapshot))
	require.NoError(t, err)

	ai := &fakeAIClient{response: "Here you go:\n```cpp\nvoid ADoor::BeginPlay() {}\n```"}
	s := NewServer(host, ai, testConfig())

	result, err := s.handleTranslateBlueprint(context.Background(), toolRequest(map[string]interface{}{
		"language": "cpp",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	// Code block was extracted from the fenced response
	assert.Equal(t, "void ADoor::BeginPlay() {}", resultText(t, result))

	// The LLM saw the serialized graph, not the raw snapshot
	assert.Contains(t, ai.lastRequest.UserPrompt, `"graph_name":"EventGraph"`)
	assert.Contains(t, ai.lastRequest.SystemPrompt, "cpp")
}

func TestTranslateBlueprintNoProvider(t *testing.T) {
	s, _ := newTestServer(t)

	result, err := s.handleTranslateBlueprint(context.Background(), toolRequest(nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
