package mcp

import "fmt"

// codeSynthesisPrompt builds the system prompt for translating a blueprint
// graph document into source code.
func codeSynthesisPrompt(language string) string {
	return fmt.Sprintf(`You are an expert Unreal Engine programmer. The user message is a JSON document describing a Blueprint: its metadata, graphs, nodes, pins, and execution flows.

Translate the Blueprint into equivalent %s source code.

Rules:
- Follow the execution flows for statement order; data pin connections are expressions.
- Preserve node properties (function names, default values) exactly.
- Emit a single fenced code block containing only the code, no commentary.
- When a node cannot be translated, emit a comment naming its class instead of guessing.`, language)
}
