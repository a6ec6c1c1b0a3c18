package provider

import "strings"

// ExtractCodeBlock pulls the first fenced code block out of an LLM response.
// The language tag on the opening fence is ignored. Responses without a
// fence are returned trimmed as-is, since some models answer with bare code.
func ExtractCodeBlock(content string) string {
	start := strings.Index(content, "```")
	if start == -1 {
		return strings.TrimSpace(content)
	}

	rest := content[start+3:]
	// Skip the language tag line, if any
	if nl := strings.IndexByte(rest, '\n'); nl != -1 {
		rest = rest[nl+1:]
	} else {
		return strings.TrimSpace(content)
	}

	end := strings.Index(rest, "```")
	if end == -1 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimRight(rest[:end], "\n")
}
