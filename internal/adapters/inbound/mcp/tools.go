package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dotcheck/dotcheck/internal/adapters/outbound/dotter"
	"github.com/dotcheck/dotcheck/internal/adapters/outbound/gitrepo"
	"github.com/dotcheck/dotcheck/internal/application"
	"github.com/dotcheck/dotcheck/internal/domain"
)

// report is the JSON shape returned by the validate tool.
type report struct {
	Results  []*domain.RuleResult `json:"results"`
	Errors   int                  `json:"errors"`
	Warnings int                  `json:"warnings"`
	ExitCode int                  `json:"exit_code"`
}

// registerTools registers all dotcheck MCP tools on the given server.
func registerTools(s *server.MCPServer, dotfilesDir string) {
	s.AddTool(
		mcplib.NewTool("dotcheck_validate",
			mcplib.WithDescription("Run all dotfiles validation rules and return the results, issue counts, and exit code as JSON"),
		),
		handleValidate(dotfilesDir),
	)

	s.AddTool(
		mcplib.NewTool("dotcheck_declared_files",
			mcplib.WithDescription("Return the file mappings declared in the dotter configs as JSON"),
		),
		handleDeclaredFiles(dotfilesDir),
	)
}

func handleValidate(dotfilesDir string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		if _, err := os.Stat(dotfilesDir); err != nil {
			return errorResult(fmt.Sprintf("dotfiles directory unavailable: %v", err)), nil
		}

		cfg := domain.RunConfig{DotfilesDir: dotfilesDir}
		validator := application.NewValidator(cfg, gitrepo.Open(dotfilesDir), dotter.New())
		results := validator.Run(nil)

		_, errors, warnings := domain.CountSeverities(results)
		return jsonResult(report{
			Results:  results,
			Errors:   errors,
			Warnings: warnings,
			ExitCode: domain.ExitCode(results),
		})
	}
}

func handleDeclaredFiles(dotfilesDir string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		loader := dotter.New()

		var entries []domain.FileEntry
		configs := []string{
			dotter.GlobalPath(dotfilesDir),
			dotter.OverlayPath(dotfilesDir),
		}
		for _, path := range configs {
			doc, err := loader.Load(path)
			if err != nil {
				return errorResult(fmt.Sprintf("loading dotter config: %v", err)), nil
			}
			entries = append(entries, loader.ExtractFileEntries(doc)...)
		}

		return jsonResult(entries)
	}
}

// jsonResult marshals v as indented JSON tool output.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a result with IsError set.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
