package dns_tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/cpanel-mcp/internal/cpanel"
	"github.com/teemow/cpanel-mcp/internal/server"
)

func newTestContext(t *testing.T, srv *httptest.Server) *server.ServerContext {
	t.Helper()

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parse test server URL: %v", err)
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		t.Fatalf("parse test server port: %v", err)
	}

	client, err := cpanel.NewClient(&cpanel.Config{
		Username: "hostuser",
		Hostname: u.Hostname(),
		APIToken: "TOKEN123",
		Port:     port,
		WHMPort:  port,
		SSL:      false,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	sc, err := server.NewServerContext(context.Background(), client)
	if err != nil {
		t.Fatalf("NewServerContext: %v", err)
	}
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func newCallToolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		return ""
	}
	if tc, ok := mcp.AsTextContent(result.Content[0]); ok {
		return tc.Text
	}
	t.Fatalf("unexpected content type %T", result.Content[0])
	return ""
}

func TestRegisterDNSTools(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"metadata":{"result":1,"reason":"OK"},"data":{}}`))
	}))
	defer srv.Close()

	sc := newTestContext(t, srv)

	tests := []struct {
		name     string
		readOnly bool
	}{
		{"register in read-write mode", false},
		{"register in read-only mode", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mcpSrv := mcpserver.NewMCPServer("test-server", "1.0.0",
				mcpserver.WithToolCapabilities(true),
			)
			if err := RegisterDNSTools(mcpSrv, sc, tt.readOnly); err != nil {
				t.Errorf("RegisterDNSTools() error = %v", err)
			}
		})
	}
}

// callRegisteredTool dispatches a tools/call request through the MCP server,
// exercising the handler the way a connected client would.
func callRegisteredTool(t *testing.T, mcpSrv *mcpserver.MCPServer, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()

	body, err := json.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "tools/call",
		"params": map[string]interface{}{
			"name":      name,
			"arguments": args,
		},
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	raw, err := json.Marshal(mcpSrv.HandleMessage(context.Background(), body))
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	var resp struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Result) == 0 {
		t.Fatalf("no tool result in response: %s", raw)
	}
	result, err := mcp.ParseCallToolResult(&resp.Result)
	if err != nil {
		t.Fatalf("parse tool result: %v", err)
	}
	return result
}

func TestRegisterDNSTools_ReadOnlyBlocksWrites(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"metadata":{"result":1,"reason":"OK"},"data":{"zone":[{"record":[
			{"Line":4,"name":"example.com.","type":"A","class":"IN","ttl":3600,"address":"192.0.2.1"}
		]}]}}`))
	}))
	defer srv.Close()

	sc := newTestContext(t, srv)

	mcpSrv := mcpserver.NewMCPServer("test-server", "1.0.0",
		mcpserver.WithToolCapabilities(true),
	)
	if err := RegisterDNSTools(mcpSrv, sc, true); err != nil {
		t.Fatalf("RegisterDNSTools() error = %v", err)
	}

	writes := []struct {
		tool string
		args map[string]interface{}
	}{
		{"add_dns_record", map[string]interface{}{
			"domain": "example.com", "name": "www", "record_type": "A", "address": "192.0.2.1",
		}},
		{"edit_dns_record", map[string]interface{}{
			"domain": "example.com", "line": float64(9), "name": "www", "record_type": "A", "address": "198.51.100.7",
		}},
		{"delete_dns_record", map[string]interface{}{
			"domain": "example.com", "line": float64(9),
		}},
	}

	for _, tt := range writes {
		t.Run(tt.tool, func(t *testing.T) {
			result := callRegisteredTool(t, mcpSrv, tt.tool, tt.args)
			if !result.IsError {
				t.Fatal("expected refusal in read-only mode")
			}
			if got := resultText(t, result); got != readOnlyMessage {
				t.Errorf("result = %q, want %q", got, readOnlyMessage)
			}
		})
	}
	if calls != 0 {
		t.Errorf("expected no network calls for blocked writes, got %d", calls)
	}

	// The zone dump stays available in read-only mode
	result := callRegisteredTool(t, mcpSrv, "get_dns_records", map[string]interface{}{"domain": "example.com"})
	if result.IsError {
		t.Fatalf("read tool refused in read-only mode: %s", resultText(t, result))
	}
	if calls != 1 {
		t.Errorf("expected exactly one network call for the read tool, got %d", calls)
	}
}

func TestHandleAddDNSRecord_RejectsUnknownType(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"metadata":{"result":1,"reason":"OK"},"data":{}}`))
	}))
	defer srv.Close()

	sc := newTestContext(t, srv)

	args := map[string]interface{}{
		"domain":      "example.com",
		"name":        "www",
		"record_type": "SPF",
		"address":     "192.0.2.1",
	}
	result, err := handleAddDNSRecord(context.Background(), newCallToolRequest("add_dns_record", args), sc)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result for unknown record type")
	}
	if got := resultText(t, result); !strings.Contains(got, "SPF") {
		t.Errorf("result = %q, want it to name the offending type", got)
	}
	if calls != 0 {
		t.Errorf("expected no network calls for invalid type, got %d", calls)
	}
}

func TestHandleAddDNSRecord_DefaultsApplied(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"metadata":{"result":1,"reason":"OK"},"data":{}}`))
	}))
	defer srv.Close()

	sc := newTestContext(t, srv)

	args := map[string]interface{}{
		"domain":      "example.com",
		"name":        "www",
		"record_type": "A",
		"address":     "192.0.2.1",
	}
	result, err := handleAddDNSRecord(context.Background(), newCallToolRequest("add_dns_record", args), sc)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	if gotQuery.Get("ttl") != "3600" {
		t.Errorf("ttl param = %q, want default 3600", gotQuery.Get("ttl"))
	}
	if gotQuery.Get("class") != "IN" {
		t.Errorf("class param = %q, want default IN", gotQuery.Get("class"))
	}
}

func TestHandleGetDNSRecords_LineNumbersPreserved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/json-api/dumpzone" {
			t.Errorf("path = %q, want /json-api/dumpzone", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"metadata":{"result":1,"reason":"OK"},"data":{"zone":[{"record":[
			{"Line":1,"type":":RAW","raw":"; cPanel first:entry"},
			{"Line":4,"name":"example.com.","type":"A","class":"IN","ttl":3600,"address":"192.0.2.1"},
			{"Line":9,"name":"www.example.com.","type":"CNAME","class":"IN","ttl":3600,"cname":"example.com."}
		]}]}}`))
	}))
	defer srv.Close()

	sc := newTestContext(t, srv)

	result, err := handleGetDNSRecords(context.Background(),
		newCallToolRequest("get_dns_records", map[string]interface{}{"domain": "example.com"}), sc)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	got := resultText(t, result)
	if !strings.Contains(got, `"Line": 4`) || !strings.Contains(got, `"Line": 9`) {
		t.Errorf("result = %q, want remote line numbers preserved", got)
	}
	if strings.Contains(got, ":RAW") {
		t.Errorf("result = %q, want control lines filtered out", got)
	}
}

func TestHandleDeleteDNSRecord(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"metadata":{"result":1,"reason":"OK"},"data":{}}`))
	}))
	defer srv.Close()

	sc := newTestContext(t, srv)

	args := map[string]interface{}{
		"domain": "example.com",
		"line":   float64(23),
	}
	result, err := handleDeleteDNSRecord(context.Background(), newCallToolRequest("delete_dns_record", args), sc)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	if gotPath != "/json-api/removezonerecord" {
		t.Errorf("path = %q, want /json-api/removezonerecord", gotPath)
	}
	if gotQuery.Get("zone") != "example.com" || gotQuery.Get("line") != "23" {
		t.Errorf("params = %v, want zone=example.com line=23", gotQuery)
	}
}

func TestHandleDeleteDNSRecord_RemoteErrorVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"metadata":{"result":0,"reason":"line not found."},"data":{}}`))
	}))
	defer srv.Close()

	sc := newTestContext(t, srv)

	args := map[string]interface{}{
		"domain": "example.com",
		"line":   float64(23),
	}
	result, err := handleDeleteDNSRecord(context.Background(), newCallToolRequest("delete_dns_record", args), sc)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}
	if got := resultText(t, result); !strings.Contains(got, "line not found.") {
		t.Errorf("result = %q, want the remote message verbatim", got)
	}
}

func TestHandleDeleteDNSRecord_InvalidLine(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"metadata":{"result":1,"reason":"OK"},"data":{}}`))
	}))
	defer srv.Close()

	sc := newTestContext(t, srv)

	for _, line := range []interface{}{float64(0), float64(-3), nil} {
		args := map[string]interface{}{"domain": "example.com"}
		if line != nil {
			args["line"] = line
		}
		result, err := handleDeleteDNSRecord(context.Background(), newCallToolRequest("delete_dns_record", args), sc)
		if err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if !result.IsError {
			t.Errorf("line %v: expected error result", line)
		}
	}

	if calls != 0 {
		t.Errorf("expected no network calls for invalid line numbers, got %d", calls)
	}
}

func TestHandleEditDNSRecord(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"metadata":{"result":1,"reason":"OK"},"data":{}}`))
	}))
	defer srv.Close()

	sc := newTestContext(t, srv)

	args := map[string]interface{}{
		"domain":      "example.com",
		"line":        float64(9),
		"name":        "www",
		"record_type": "A",
		"address":     "198.51.100.7",
		"ttl":         float64(300),
	}
	result, err := handleEditDNSRecord(context.Background(), newCallToolRequest("edit_dns_record", args), sc)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	if gotPath != "/json-api/editzonerecord" {
		t.Errorf("path = %q, want /json-api/editzonerecord", gotPath)
	}
	if gotQuery.Get("domain") != "example.com" || gotQuery.Get("line") != "9" {
		t.Errorf("params = %v, want domain=example.com line=9", gotQuery)
	}
	if gotQuery.Get("ttl") != "300" {
		t.Errorf("ttl param = %q, want 300", gotQuery.Get("ttl"))
	}
}
