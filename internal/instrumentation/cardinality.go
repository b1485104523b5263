package instrumentation

import "github.com/teemow/cpanel-mcp/internal/logging"

// Cardinality management helpers for metrics.
// These functions reduce high-cardinality label values to prevent metrics explosion.
//
// # Warning
//
// High cardinality in metrics can cause:
// - Increased memory usage in Prometheus/metrics backends
// - Slower query performance
// - Higher storage costs
//
// Always use these helpers when recording metrics with mailbox identifiers.

// ExtractMailboxDomain extracts the domain part from an email address.
// This reduces cardinality by using the domain instead of the full address.
//
// Example:
//
//	ExtractMailboxDomain("jane@example.com")  // "example.com"
//	ExtractMailboxDomain("invalid")           // "unknown"
//	ExtractMailboxDomain("")                  // "unknown"
func ExtractMailboxDomain(email string) string {
	if domain := logging.ExtractDomain(email); domain != "" {
		return domain
	}
	return "unknown"
}

// Common operation types for cPanel API metrics.
// Status and namespace constants are defined in config.go.
const (
	OperationList   = "list"
	OperationGet    = "get"
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)
