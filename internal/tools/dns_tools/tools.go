package dns_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/cpanel-mcp/internal/cpanel"
	"github.com/teemow/cpanel-mcp/internal/server"
	"github.com/teemow/cpanel-mcp/internal/tools/common"
)

// readOnlyMessage is returned by mutating tools when the server runs without --yolo.
const readOnlyMessage = "Cannot modify DNS records in read-only mode. Use --yolo flag to enable write operations."

// RegisterDNSTools registers all DNS zone tools with the MCP server
func RegisterDNSTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	recordTypeList := strings.Join(cpanel.RecordTypes(), ", ")

	// Get DNS records tool (read-only, always available)
	getRecordsTool := mcp.NewTool("get_dns_records",
		mcp.WithDescription("List DNS zone records for a domain. Each record carries its current zone-file line number, which is only valid until the zone is next mutated."),
		mcp.WithString("domain",
			mcp.Required(),
			mcp.Description("Domain whose zone to read (e.g., 'example.com')"),
		),
	)

	s.AddTool(getRecordsTool, common.InstrumentedToolHandlerWithFunction(
		"get_dns_records", "whm", "dumpzone", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetDNSRecords(ctx, request, sc)
		}))

	// Add DNS record tool
	addRecordTool := mcp.NewTool("add_dns_record",
		mcp.WithDescription("Add a record to a domain's DNS zone"),
		mcp.WithString("domain",
			mcp.Required(),
			mcp.Description("Domain whose zone to modify (e.g., 'example.com')"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Record name (e.g., 'www' or 'www.example.com.')"),
		),
		mcp.WithString("record_type",
			mcp.Required(),
			mcp.Description(fmt.Sprintf("Record type, one of: %s", recordTypeList)),
		),
		mcp.WithString("address",
			mcp.Required(),
			mcp.Description("Record value (IP address, hostname, or text data depending on type)"),
		),
		mcp.WithNumber("ttl",
			mcp.Description(fmt.Sprintf("Time to live in seconds (default: %d)", cpanel.DefaultTTL)),
		),
		mcp.WithString("record_class",
			mcp.Description(fmt.Sprintf("DNS class (default: %q)", cpanel.DefaultRecordClass)),
		),
	)

	s.AddTool(addRecordTool, common.InstrumentedToolHandlerWithFunction(
		"add_dns_record", "whm", "addzonerecord", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if readOnly {
				return mcp.NewToolResultError(readOnlyMessage), nil
			}
			return handleAddDNSRecord(ctx, request, sc)
		}))

	// Edit DNS record tool
	editRecordTool := mcp.NewTool("edit_dns_record",
		mcp.WithDescription("Edit an existing DNS zone record identified by its line number. Fetch current line numbers with get_dns_records first; they change after every zone mutation."),
		mcp.WithString("domain",
			mcp.Required(),
			mcp.Description("Domain whose zone to modify (e.g., 'example.com')"),
		),
		mcp.WithNumber("line",
			mcp.Required(),
			mcp.Description("Zone-file line number of the record to edit"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Record name (e.g., 'www' or 'www.example.com.')"),
		),
		mcp.WithString("record_type",
			mcp.Required(),
			mcp.Description(fmt.Sprintf("Record type, one of: %s", recordTypeList)),
		),
		mcp.WithString("address",
			mcp.Required(),
			mcp.Description("Record value (IP address, hostname, or text data depending on type)"),
		),
		mcp.WithNumber("ttl",
			mcp.Description(fmt.Sprintf("Time to live in seconds (default: %d)", cpanel.DefaultTTL)),
		),
		mcp.WithString("record_class",
			mcp.Description(fmt.Sprintf("DNS class (default: %q)", cpanel.DefaultRecordClass)),
		),
	)

	s.AddTool(editRecordTool, common.InstrumentedToolHandlerWithFunction(
		"edit_dns_record", "whm", "editzonerecord", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if readOnly {
				return mcp.NewToolResultError(readOnlyMessage), nil
			}
			return handleEditDNSRecord(ctx, request, sc)
		}))

	// Delete DNS record tool
	deleteRecordTool := mcp.NewTool("delete_dns_record",
		mcp.WithDescription("Delete a DNS zone record identified by its line number. Fetch current line numbers with get_dns_records first; they change after every zone mutation."),
		mcp.WithString("domain",
			mcp.Required(),
			mcp.Description("Domain whose zone to modify (e.g., 'example.com')"),
		),
		mcp.WithNumber("line",
			mcp.Required(),
			mcp.Description("Zone-file line number of the record to delete"),
		),
	)

	s.AddTool(deleteRecordTool, common.InstrumentedToolHandlerWithFunction(
		"delete_dns_record", "whm", "removezonerecord", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if readOnly {
				return mcp.NewToolResultError(readOnlyMessage), nil
			}
			return handleDeleteDNSRecord(ctx, request, sc)
		}))

	return nil
}

func handleGetDNSRecords(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	domain := common.GetStringArg(args, "domain")
	if domain == "" {
		return mcp.NewToolResultError("'domain' field is required"), nil
	}

	client := sc.Client()
	if client == nil {
		return mcp.NewToolResultError("cPanel client is not configured"), nil
	}

	records, err := client.GetZoneRecords(ctx, domain)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch zone records: %v", err)), nil
	}

	if len(records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No records found in zone %s", domain)), nil
	}

	output, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format zone records: %v", err)), nil
	}

	return mcp.NewToolResultText(string(output)), nil
}

// zoneRecordInputFromArgs builds a ZoneRecordInput from tool arguments,
// applying the TTL and class defaults.
func zoneRecordInputFromArgs(args map[string]interface{}) cpanel.ZoneRecordInput {
	return cpanel.ZoneRecordInput{
		Domain:  common.GetStringArg(args, "domain"),
		Name:    common.GetStringArg(args, "name"),
		Type:    common.GetStringArg(args, "record_type"),
		Address: common.GetStringArg(args, "address"),
		TTL:     common.GetIntArg(args, "ttl", cpanel.DefaultTTL),
		Class:   common.GetStringArg(args, "record_class"),
	}
}

func handleAddDNSRecord(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	input := zoneRecordInputFromArgs(request.GetArguments())

	client := sc.Client()
	if client == nil {
		return mcp.NewToolResultError("cPanel client is not configured"), nil
	}

	if _, err := client.AddZoneRecord(ctx, input); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to add zone record: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Record %s %s added to zone %s. Line numbers have shifted; call get_dns_records before further edits.",
		input.Type, input.Name, input.Domain)), nil
}

func handleEditDNSRecord(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	line := common.GetIntArg(args, "line", 0)
	if line <= 0 {
		return mcp.NewToolResultError("'line' field is required and must be a positive integer"), nil
	}

	input := zoneRecordInputFromArgs(args)

	client := sc.Client()
	if client == nil {
		return mcp.NewToolResultError("cPanel client is not configured"), nil
	}

	if _, err := client.EditZoneRecord(ctx, line, input); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to edit zone record: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Record at line %d in zone %s updated successfully", line, input.Domain)), nil
}

func handleDeleteDNSRecord(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	domain := common.GetStringArg(args, "domain")
	if domain == "" {
		return mcp.NewToolResultError("'domain' field is required"), nil
	}

	line := common.GetIntArg(args, "line", 0)
	if line <= 0 {
		return mcp.NewToolResultError("'line' field is required and must be a positive integer"), nil
	}

	client := sc.Client()
	if client == nil {
		return mcp.NewToolResultError("cPanel client is not configured"), nil
	}

	if _, err := client.DeleteZoneRecord(ctx, domain, line); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete zone record: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Record at line %d deleted from zone %s. Line numbers have shifted; call get_dns_records before further edits.",
		line, domain)), nil
}
