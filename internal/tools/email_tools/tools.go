package email_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/cpanel-mcp/internal/server"
	"github.com/teemow/cpanel-mcp/internal/tools/common"
)

// readOnlyMessage is returned by mutating tools when the server runs without --yolo.
const readOnlyMessage = "Cannot modify email accounts in read-only mode. Use --yolo flag to enable write operations."

// RegisterEmailTools registers all email-related tools with the MCP server
func RegisterEmailTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// Register account tools (write operations require !readOnly)
	if err := registerAccountTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register account tools: %w", err)
	}

	// Register forwarder tools (write operations require !readOnly)
	if err := registerForwarderTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register forwarder tools: %w", err)
	}

	// Webmail client settings tool (read-only, always available)
	settingsTool := mcp.NewTool("get_email_settings",
		mcp.WithDescription("Get webmail client settings for the configured cPanel account"),
	)

	s.AddTool(settingsTool, common.InstrumentedToolHandlerWithFunction(
		"get_email_settings", "uapi", "get_client_settings", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetEmailSettings(ctx, sc)
		}))

	return nil
}

func handleGetEmailSettings(ctx context.Context, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client := sc.Client()
	if client == nil {
		return mcp.NewToolResultError("cPanel client is not configured"), nil
	}

	settings, err := client.GetEmailSettings(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch email settings: %v", err)), nil
	}

	return mcp.NewToolResultText(string(settings)), nil
}
