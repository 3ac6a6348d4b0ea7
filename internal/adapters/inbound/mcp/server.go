// Package mcp exposes the validation run over the Model Context
// Protocol so AI assistants configured in the same dotfiles repository
// can check it for consistency.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewDotcheckMCPServer creates an MCP server with the dotcheck tools
// registered. dotfilesDir is the repository root to validate.
func NewDotcheckMCPServer(dotfilesDir string) *server.MCPServer {
	s := server.NewMCPServer(
		"dotcheck",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, dotfilesDir)

	return s
}
