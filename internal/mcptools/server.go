package mcptools

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/katalvlaran/graphtutor/internal/session"
)

// Server wraps an MCP server bound to one session.
type Server struct {
	sess      *session.Session
	logger    *slog.Logger
	mcpServer *mcp.Server
}

// New builds the MCP server and registers every tool.
func New(sess *session.Session, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		sess:   sess,
		logger: logger,
		mcpServer: mcp.NewServer(&mcp.Implementation{
			Name:    "graphtutor",
			Version: version,
		}, nil),
	}
	s.registerTools()

	return s
}

// MCP returns the underlying server, e.g. to connect custom transports.
func (s *Server) MCP() *mcp.Server { return s.mcpServer }

// Run serves over stdio until ctx is done or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp server starting", "transport", "stdio", "session", s.sess.ID())

	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

func textResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
		IsError: true,
	}
}

// jsonResult renders v as indented JSON text.
func jsonResult(v any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("failed to encode result: " + err.Error())
	}

	return textResult(string(b))
}
