// ABOUTME: MCP tool handler implementations for the companion server
// ABOUTME: Thin adapters from tool calls onto the chat pipeline
package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/companion/internal/chat"
)

// defaultSession is used when an agent doesn't track sessions itself.
const defaultSession = "default"

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	pipeline *chat.Pipeline
}

// Chat handles the chat tool
func (h *Handlers) Chat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("message argument is required and must be a string"), nil
	}
	sessionID := request.GetString("session_id", defaultSession)

	reply, err := h.pipeline.Respond(ctx, sessionID, message)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("turn failed: %v", err)), nil
	}

	return mcp.NewToolResultText(reply.Text), nil
}

// GetHistory handles the get_history tool
func (h *Handlers) GetHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID := request.GetString("session_id", defaultSession)

	history := h.pipeline.Sessions().History(sessionID)
	if history == "" {
		return mcp.NewToolResultText("(no history)"), nil
	}
	return mcp.NewToolResultText(history), nil
}

// ResetSession handles the reset_session tool
func (h *Handlers) ResetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID := request.GetString("session_id", defaultSession)

	h.pipeline.Sessions().Reset(sessionID)
	return mcp.NewToolResultText(fmt.Sprintf("session %s reset", sessionID)), nil
}
