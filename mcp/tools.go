package mcp

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/flashpoint493/NodeToCode-sub000/ai/openrouter"
	"github.com/flashpoint493/NodeToCode-sub000/ai/provider"
	"github.com/flashpoint493/NodeToCode-sub000/ir"
	"github.com/flashpoint493/NodeToCode-sub000/logger"
)

// registerTools registers all MCP tools for blueprint operations
func (s *Server) registerTools() {
	getFocusedTool := mcp.NewTool("get-focused-blueprint",
		mcp.WithDescription("Translate the blueprint currently focused in the editor into its JSON graph representation, with node and pin identifiers usable by follow-up tools"),
	)
	s.server.AddTool(getFocusedTool, s.handleGetFocusedBlueprint)

	resolveTypeTool := mcp.NewTool("resolve-variable-type",
		mcp.WithDescription("Resolve a variable type identifier into its canonical type descriptor (category, sub-type, path, container)"),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("Type identifier: a primitive (bool, int, float, string...), a named type (Vector, Actor...), a full asset path (/Script/..., /Game/...), or a generic category (object, struct, enum, class, interface)"),
		),
		mcp.WithString("sub_type",
			mcp.Description("Named entity for generic categories (e.g. type=object, sub_type=Actor)"),
		),
		mcp.WithString("container",
			mcp.Description("Container kind: none, array, set, or map (default: none)"),
		),
		mcp.WithString("key_type",
			mcp.Description("Key type identifier, required when container is map"),
		),
		mcp.WithBoolean("is_reference",
			mcp.Description("Pass-by-reference flag"),
		),
		mcp.WithBoolean("is_const",
			mcp.Description("Const flag"),
		),
	)
	s.server.AddTool(resolveTypeTool, s.handleResolveVariableType)

	connectPinsTool := mcp.NewTool("connect-pins",
		mcp.WithDescription("Connect two pins in the focused blueprint. Accepts the short pin IDs from the last translation (e.g. Pin_3) or full pin GUIDs"),
		mcp.WithString("from_pin",
			mcp.Required(),
			mcp.Description("Source pin: short ID or GUID"),
		),
		mcp.WithString("to_pin",
			mcp.Required(),
			mcp.Description("Destination pin: short ID or GUID"),
		),
	)
	s.server.AddTool(connectPinsTool, s.handleConnectPins)

	translateTool := mcp.NewTool("translate-blueprint",
		mcp.WithDescription("Translate the focused blueprint to source code in the target language using the configured LLM provider"),
		mcp.WithString("language",
			mcp.Description("Target language (default: cpp)"),
		),
	)
	s.server.AddTool(translateTool, s.handleTranslateBlueprint)
}

// translateFocused runs the host → IR pipeline and preserves the session
// identifier maps, including from a failed translation.
func (s *Server) translateFocused(ctx context.Context) (*ir.Blueprint, *sessionState, error) {
	nodes, meta, err := s.host.FocusedBlueprint(ctx)
	if err != nil {
		return nil, nil, err
	}

	res, err := s.trans.Translate(nodes, meta)
	if res != nil {
		s.saveSession(res.NodeIDs, res.PinIDs)
	}
	if err != nil {
		return nil, nil, err
	}

	for _, w := range res.Warnings {
		logger.Warnw("translation warning",
			logger.FieldComponent, "mcp",
			logger.FieldBlueprint, meta.Name,
			"code", w.Code,
			"message", w.Message,
		)
	}

	return res.Blueprint, s.currentSession(), nil
}

// handleGetFocusedBlueprint handles get-focused-blueprint tool calls
func (s *Server) handleGetFocusedBlueprint(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bp, sess, err := s.translateFocused(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to read focused blueprint: %v", err)), nil
	}

	jsonStr, err := ir.ToJSON(bp, s.cfg.Output.Pretty)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize blueprint: %v", err)), nil
	}

	enhanced := ir.EnhanceWithIdentifiers(jsonStr, sess.nodeIDs, sess.pinIDs)
	return mcp.NewToolResultText(enhanced), nil
}

// typeJSON mirrors the serializer's wire shape for a type descriptor
type typeJSON struct {
	Primary     string    `json:"primary"`
	SubType     string    `json:"sub_type,omitempty"`
	Path        string    `json:"path,omitempty"`
	Container   string    `json:"container,omitempty"`
	KeyType     *typeJSON `json:"key_type,omitempty"`
	IsReference bool      `json:"is_reference,omitempty"`
	IsConst     bool      `json:"is_const,omitempty"`
}

func descriptorJSON(d ir.TypeDescriptor) *typeJSON {
	out := &typeJSON{
		Primary:     string(d.Category),
		SubType:     d.SubType,
		Path:        d.Path,
		IsReference: d.IsReference,
		IsConst:     d.IsConst,
	}
	if d.Container != ir.ContainerNone {
		out.Container = string(d.Container)
	}
	if d.KeyType != nil {
		out.KeyType = descriptorJSON(*d.KeyType)
	}
	return out
}

// handleResolveVariableType handles resolve-variable-type tool calls.
// Resolution failures (unknown type, bad map key) are structured error
// results, not protocol errors: the LLM is expected to read and correct.
func (s *Server) handleResolveVariableType(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	typeID, err := request.RequireString("type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	subType := request.GetString("sub_type", "")
	container := request.GetString("container", "")
	keyType := request.GetString("key_type", "")
	isRef := request.GetBool("is_reference", false)
	isConst := request.GetBool("is_const", false)

	desc, err := s.resolver.Resolve(typeID, subType, container, keyType, isRef, isConst)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve type %q: %v", typeID, err)), nil
	}

	out, err := json.Marshal(descriptorJSON(desc))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize type descriptor: %v", err)), nil
	}

	return mcp.NewToolResultText(string(out)), nil
}

// resolvePinID maps a short pin ID from the current session back to its
// GUID; inputs that already are GUIDs pass through.
func (s *Server) resolvePinID(sess *sessionState, id string) (uuid.UUID, error) {
	if sess != nil {
		if guid, ok := sess.pinByShort[id]; ok {
			return guid, nil
		}
	}
	guid, err := uuid.Parse(id)
	if err != nil {
		if sess == nil {
			return uuid.Nil, fmt.Errorf("unknown pin %q: no blueprint has been translated yet, call get-focused-blueprint first", id)
		}
		return uuid.Nil, fmt.Errorf("unknown pin %q: not a short ID from the last translation and not a GUID", id)
	}
	return guid, nil
}

// handleConnectPins handles connect-pins tool calls
func (s *Server) handleConnectPins(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fromStr, err := request.RequireString("from_pin")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	toStr, err := request.RequireString("to_pin")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sess := s.currentSession()

	from, err := s.resolvePinID(sess, fromStr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	to, err := s.resolvePinID(sess, toStr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.host.ConnectPins(ctx, from, to); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to connect pins: %v", err)), nil
	}

	logger.Infow("connected pins",
		logger.FieldComponent, "mcp",
		"from", fromStr,
		"to", toStr,
	)
	return mcp.NewToolResultText(fmt.Sprintf("Connected %s -> %s", fromStr, toStr)), nil
}

// handleTranslateBlueprint handles translate-blueprint tool calls
func (s *Server) handleTranslateBlueprint(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.ai == nil {
		return mcp.NewToolResultError("No LLM provider configured: set anthropic.api_key or openrouter.api_key"), nil
	}

	language := request.GetString("language", "cpp")

	bp, _, err := s.translateFocused(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to read focused blueprint: %v", err)), nil
	}

	jsonStr, err := ir.ToJSON(bp, false)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize blueprint: %v", err)), nil
	}

	resp, err := s.ai.Chat(ctx, openrouter.ChatRequest{
		SystemPrompt: codeSynthesisPrompt(language),
		UserPrompt:   jsonStr,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Code synthesis failed: %v", err)), nil
	}

	code := provider.ExtractCodeBlock(resp.Content)

	logger.Infow("blueprint translated to code",
		logger.FieldComponent, "mcp",
		logger.FieldBlueprint, bp.Metadata.Name,
		"language", language,
		logger.FieldSize, len(code),
		"total_tokens", resp.Usage.TotalTokens,
	)
	return mcp.NewToolResultText(code), nil
}
