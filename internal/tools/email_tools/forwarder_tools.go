package email_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/cpanel-mcp/internal/server"
	"github.com/teemow/cpanel-mcp/internal/tools/common"
)

// registerForwarderTools registers email forwarder tools with the MCP server
func registerForwarderTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// Create forwarder tool
	createForwarderTool := mcp.NewTool("create_email_forwarder",
		mcp.WithDescription("Create an email forwarder that redirects mail from one address to another"),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Address to forward from (e.g., 'sales@example.com')"),
		),
		mcp.WithString("destination",
			mcp.Required(),
			mcp.Description("Address to forward to (e.g., 'team@example.org')"),
		),
	)

	s.AddTool(createForwarderTool, common.InstrumentedToolHandlerWithFunction(
		"create_email_forwarder", "uapi", "add_forwarder", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if readOnly {
				return mcp.NewToolResultError(readOnlyMessage), nil
			}
			return handleCreateForwarder(ctx, request, sc)
		}))

	// Delete forwarder tool
	deleteForwarderTool := mcp.NewTool("delete_email_forwarder",
		mcp.WithDescription("Delete an email forwarder"),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Address the forwarder forwards from (e.g., 'sales@example.com')"),
		),
		mcp.WithString("destination",
			mcp.Required(),
			mcp.Description("Address the forwarder forwards to (e.g., 'team@example.org')"),
		),
	)

	s.AddTool(deleteForwarderTool, common.InstrumentedToolHandlerWithFunction(
		"delete_email_forwarder", "uapi", "delete_forwarder", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if readOnly {
				return mcp.NewToolResultError(readOnlyMessage), nil
			}
			return handleDeleteForwarder(ctx, request, sc)
		}))

	// List forwarders tool (read-only, always available)
	listForwardersTool := mcp.NewTool("list_email_forwarders",
		mcp.WithDescription("List email forwarders configured for a domain"),
		mcp.WithString("domain",
			mcp.Required(),
			mcp.Description("Domain to list forwarders for (e.g., 'example.com')"),
		),
	)

	s.AddTool(listForwardersTool, common.InstrumentedToolHandlerWithFunction(
		"list_email_forwarders", "uapi", "list_forwarders", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListForwarders(ctx, request, sc)
		}))

	return nil
}

func handleCreateForwarder(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	email := common.GetStringArg(args, "email")
	if email == "" {
		return mcp.NewToolResultError("'email' field is required"), nil
	}

	destination := common.GetStringArg(args, "destination")
	if destination == "" {
		return mcp.NewToolResultError("'destination' field is required"), nil
	}

	client := sc.Client()
	if client == nil {
		return mcp.NewToolResultError("cPanel client is not configured"), nil
	}

	if _, err := client.CreateForwarder(ctx, email, destination); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create forwarder: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Forwarder from %s to %s created successfully", email, destination)), nil
}

func handleDeleteForwarder(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	email := common.GetStringArg(args, "email")
	if email == "" {
		return mcp.NewToolResultError("'email' field is required"), nil
	}

	destination := common.GetStringArg(args, "destination")
	if destination == "" {
		return mcp.NewToolResultError("'destination' field is required"), nil
	}

	client := sc.Client()
	if client == nil {
		return mcp.NewToolResultError("cPanel client is not configured"), nil
	}

	if _, err := client.DeleteForwarder(ctx, email, destination); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete forwarder: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Forwarder from %s to %s deleted successfully", email, destination)), nil
}

func handleListForwarders(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	domain := common.GetStringArg(args, "domain")
	if domain == "" {
		return mcp.NewToolResultError("'domain' field is required"), nil
	}

	client := sc.Client()
	if client == nil {
		return mcp.NewToolResultError("cPanel client is not configured"), nil
	}

	forwarders, err := client.ListForwarders(ctx, domain)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list forwarders: %v", err)), nil
	}

	if len(forwarders) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No forwarders found for domain %s", domain)), nil
	}

	output, err := json.MarshalIndent(forwarders, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format forwarder list: %v", err)), nil
	}

	return mcp.NewToolResultText(string(output)), nil
}
