package mcp

import (
	"sync"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/server"

	"github.com/flashpoint493/NodeToCode-sub000/ai/provider"
	"github.com/flashpoint493/NodeToCode-sub000/config"
	"github.com/flashpoint493/NodeToCode-sub000/logger"
	"github.com/flashpoint493/NodeToCode-sub000/translator"
	"github.com/flashpoint493/NodeToCode-sub000/typeresolver"
)

// Server exposes blueprint translation over the Model Context Protocol.
// Tool payloads ride stdout as JSON-RPC, which is why all logging in this
// process goes to stderr.
type Server struct {
	host     Host
	resolver *typeresolver.Resolver
	trans    *translator.Translator
	ai       provider.AIClient // nil when no provider is configured
	cfg      *config.Config
	server   *server.MCPServer

	mu      sync.Mutex
	session *sessionState
}

// sessionState holds the identifier maps preserved from the most recent
// translation. Short IDs echoed back by the LLM are only meaningful
// against these maps.
type sessionState struct {
	nodeIDs    map[uuid.UUID]string
	pinIDs     map[uuid.UUID]string
	pinByShort map[string]uuid.UUID
}

func newSessionState(nodeIDs, pinIDs map[uuid.UUID]string) *sessionState {
	byShort := make(map[string]uuid.UUID, len(pinIDs))
	for guid, short := range pinIDs {
		byShort[short] = guid
	}
	return &sessionState{nodeIDs: nodeIDs, pinIDs: pinIDs, pinByShort: byShort}
}

// NewServer creates a new MCP server bound to a host editor. The AI client
// may be nil; the translate-blueprint tool then reports that no provider
// is configured instead of failing at startup.
func NewServer(host Host, ai provider.AIClient, cfg *config.Config) *Server {
	s := &Server{
		host:     host,
		resolver: typeresolver.New(typeresolver.NewStaticCatalog()),
		trans:    translator.New(),
		ai:       ai,
		cfg:      cfg,
	}

	s.server = server.NewMCPServer(
		cfg.MCP.Name,
		cfg.MCP.Version,
		server.WithToolCapabilities(true),
	)
	s.registerTools()

	return s
}

// Serve starts the MCP server using stdio transport
func (s *Server) Serve() error {
	logger.Infow("starting MCP server",
		logger.FieldComponent, "mcp",
		"name", s.cfg.MCP.Name,
		"version", s.cfg.MCP.Version,
	)
	return server.ServeStdio(s.server)
}

// saveSession stores the identifier maps from a completed translation,
// replacing any previous session.
func (s *Server) saveSession(nodeIDs, pinIDs map[uuid.UUID]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = newSessionState(nodeIDs, pinIDs)
}

// currentSession returns the latest session state, or nil before the
// first translation.
func (s *Server) currentSession() *sessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}
