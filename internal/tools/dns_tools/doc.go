// Package dns_tools provides MCP tools for managing DNS zone records through
// the WHM API. Records are addressed by their zone-file line number, which the
// remote zone assigns and reshuffles on every mutation, so callers must fetch
// fresh line numbers with get_dns_records before each edit or delete.
//
// Mutating tools are gated by read-only mode: they are always registered but
// refuse to run unless the server was started with --yolo.
package dns_tools
