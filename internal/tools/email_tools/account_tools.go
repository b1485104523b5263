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

// registerAccountTools registers mailbox management tools with the MCP server
func registerAccountTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// Add email account tool
	addAccountTool := mcp.NewTool("add_email_account",
		mcp.WithDescription("Create a new email account under a domain managed by the cPanel account"),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Full email address to create (e.g., 'info@example.com')"),
		),
		mcp.WithString("password",
			mcp.Required(),
			mcp.Description("Password for the new email account"),
		),
		mcp.WithNumber("quota",
			mcp.Description("Mailbox quota in MB (default: 0, meaning unlimited)"),
		),
	)

	s.AddTool(addAccountTool, common.InstrumentedToolHandlerWithFunction(
		"add_email_account", "uapi", "add_pop", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if readOnly {
				return mcp.NewToolResultError(readOnlyMessage), nil
			}
			return handleAddEmailAccount(ctx, request, sc)
		}))

	// Delete email account tool
	deleteAccountTool := mcp.NewTool("delete_email_account",
		mcp.WithDescription("Delete an email account"),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Full email address to delete (e.g., 'info@example.com')"),
		),
	)

	s.AddTool(deleteAccountTool, common.InstrumentedToolHandlerWithFunction(
		"delete_email_account", "uapi", "del_pop", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if readOnly {
				return mcp.NewToolResultError(readOnlyMessage), nil
			}
			return handleDeleteEmailAccount(ctx, request, sc)
		}))

	// List email accounts tool (read-only, always available)
	listAccountsTool := mcp.NewTool("list_email_accounts",
		mcp.WithDescription("List email accounts for a domain, including disk quota and usage"),
		mcp.WithString("domain",
			mcp.Required(),
			mcp.Description("Domain to list email accounts for (e.g., 'example.com')"),
		),
	)

	s.AddTool(listAccountsTool, common.InstrumentedToolHandlerWithFunction(
		"list_email_accounts", "uapi", "list_pops", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListEmailAccounts(ctx, request, sc)
		}))

	// Change password tool
	changePasswordTool := mcp.NewTool("change_password",
		mcp.WithDescription("Change the password of an existing email account"),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Email address of the account (e.g., 'info@example.com')"),
		),
		mcp.WithString("new_password",
			mcp.Required(),
			mcp.Description("New password for the account"),
		),
	)

	s.AddTool(changePasswordTool, common.InstrumentedToolHandlerWithFunction(
		"change_password", "uapi", "passwd_pop", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if readOnly {
				return mcp.NewToolResultError(readOnlyMessage), nil
			}
			return handleChangePassword(ctx, request, sc)
		}))

	// Update quota tool
	updateQuotaTool := mcp.NewTool("update_quota",
		mcp.WithDescription("Update the disk quota of an email account"),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Email address of the account (e.g., 'info@example.com')"),
		),
		mcp.WithNumber("quota",
			mcp.Required(),
			mcp.Description("New quota in MB (0 means unlimited)"),
		),
	)

	s.AddTool(updateQuotaTool, common.InstrumentedToolHandlerWithFunction(
		"update_quota", "uapi", "edit_pop_quota", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if readOnly {
				return mcp.NewToolResultError(readOnlyMessage), nil
			}
			return handleUpdateQuota(ctx, request, sc)
		}))

	return nil
}

func handleAddEmailAccount(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	email := common.GetStringArg(args, "email")
	if email == "" {
		return mcp.NewToolResultError("'email' field is required"), nil
	}

	password := common.GetStringArg(args, "password")
	if password == "" {
		return mcp.NewToolResultError("'password' field is required"), nil
	}

	quota := common.GetIntArg(args, "quota", 0)

	client := sc.Client()
	if client == nil {
		return mcp.NewToolResultError("cPanel client is not configured"), nil
	}

	if _, err := client.AddEmailAccount(ctx, email, password, quota); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create email account: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Email account %s created successfully", email)), nil
}

func handleDeleteEmailAccount(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	email := common.GetStringArg(args, "email")
	if email == "" {
		return mcp.NewToolResultError("'email' field is required"), nil
	}

	client := sc.Client()
	if client == nil {
		return mcp.NewToolResultError("cPanel client is not configured"), nil
	}

	if _, err := client.DeleteEmailAccount(ctx, email); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete email account: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Email account %s deleted successfully", email)), nil
}

func handleListEmailAccounts(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	domain := common.GetStringArg(args, "domain")
	if domain == "" {
		return mcp.NewToolResultError("'domain' field is required"), nil
	}

	client := sc.Client()
	if client == nil {
		return mcp.NewToolResultError("cPanel client is not configured"), nil
	}

	accounts, err := client.ListEmailAccounts(ctx, domain)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list email accounts: %v", err)), nil
	}

	if len(accounts) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No email accounts found for domain %s", domain)), nil
	}

	output, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format account list: %v", err)), nil
	}

	return mcp.NewToolResultText(string(output)), nil
}

func handleChangePassword(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	email := common.GetStringArg(args, "email")
	if email == "" {
		return mcp.NewToolResultError("'email' field is required"), nil
	}

	password := common.GetStringArg(args, "new_password")
	if password == "" {
		return mcp.NewToolResultError("'new_password' field is required"), nil
	}

	client := sc.Client()
	if client == nil {
		return mcp.NewToolResultError("cPanel client is not configured"), nil
	}

	if _, err := client.ChangePassword(ctx, email, password); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to change password: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Password for %s changed successfully", email)), nil
}

func handleUpdateQuota(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	email := common.GetStringArg(args, "email")
	if email == "" {
		return mcp.NewToolResultError("'email' field is required"), nil
	}

	if !common.HasArg(args, "quota") {
		return mcp.NewToolResultError("'quota' field is required"), nil
	}
	quota := common.GetIntArg(args, "quota", 0)

	client := sc.Client()
	if client == nil {
		return mcp.NewToolResultError("cPanel client is not configured"), nil
	}

	if _, err := client.UpdateQuota(ctx, email, quota); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update quota: %v", err)), nil
	}

	if quota == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("Quota for %s set to unlimited", email)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Quota for %s set to %d MB", email, quota)), nil
}
