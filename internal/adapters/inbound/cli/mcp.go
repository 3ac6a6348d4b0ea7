package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/dotcheck/dotcheck/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the dotcheck MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start dotcheck MCP server (stdio)",
		Long:  "Start the dotcheck MCP server using stdio transport. This lets AI coding assistants validate the dotfiles repository and read the results as JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDotfilesDir()
			if err != nil {
				return err
			}
			s := mcpadapter.NewDotcheckMCPServer(dir)
			return server.ServeStdio(s)
		},
	}
}
