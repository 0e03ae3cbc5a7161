// ABOUTME: MCP tool definitions and registration for the companion server
// ABOUTME: Exposes the chat pipeline to LLM agents over stdio
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/companion/internal/chat"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, pipeline *chat.Pipeline) *Handlers {
	handlers := &Handlers{pipeline: pipeline}

	// 1. chat - run one conversation turn
	server.AddTool(mcp.Tool{
		Name:        "chat",
		Description: "Send a message to the companion persona and get its reply. History is kept per session in a sliding window.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"message": map[string]interface{}{
					"type":        "string",
					"description": "User message for this turn",
				},
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Conversation session identifier (default: \"default\")",
				},
			},
			Required: []string{"message"},
		},
	}, handlers.Chat)

	// 2. get_history - inspect the retained window of a session
	server.AddTool(mcp.Tool{
		Name:        "get_history",
		Description: "Return the currently retained conversation history for a session.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Conversation session identifier (default: \"default\")",
				},
			},
		},
	}, handlers.GetHistory)

	// 3. reset_session - discard a session's window
	server.AddTool(mcp.Tool{
		Name:        "reset_session",
		Description: "Discard the conversation history of a session. The next turn starts fresh.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Conversation session identifier (default: \"default\")",
				},
			},
		},
	}, handlers.ResetSession)

	return handlers
}
