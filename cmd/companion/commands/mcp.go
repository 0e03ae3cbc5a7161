// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to drive the companion pipeline via stdio
package commands

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/companion/internal/config"
	"github.com/harper/companion/internal/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs the companion as an MCP (Model Context Protocol) server, exposing
chat, get_history, and reset_session tools over stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  companion mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "companion": {
  #       "command": "companion",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && !quiet {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}

	pipeline, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	server := mcpserver.NewMCPServer(
		"Companion Chat",
		versionInfo.Version,
	)
	mcp.RegisterTools(server, pipeline)

	if !quiet {
		log.Println("companion MCP server starting on stdio...")
	}
	return mcpserver.ServeStdio(server)
}
