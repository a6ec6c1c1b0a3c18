package logger

import "go.uber.org/zap"

// Standard field names for consistent structured logging across NodeToCode.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"
	FieldTool      = "tool"
	FieldProvider  = "provider"

	// Operations
	FieldOperation = "operation"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount = "count"
	FieldSize  = "size"

	// Translation
	FieldBlueprint = "blueprint"
	FieldGraph     = "graph"
	FieldNode      = "node"
	FieldPin       = "pin"
	FieldNodeCount = "node_count"
	FieldFlowCount = "flow_count"
	FieldWarnings  = "warnings"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type Server struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewServer() *Server {
//	    return &Server{
//	        logger: logger.ComponentLogger("mcp.server"),
//	    }
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
// Use for sub-operations that need extra context fields.
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
