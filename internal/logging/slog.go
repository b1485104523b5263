package logging

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation   = "operation"
	KeyNamespace   = "namespace"
	KeyFunction    = "function"
	KeyDomain      = "domain"
	KeyMailboxHash = "mailbox_hash"
	KeyDuration    = "duration"
	KeyStatus      = "status"
	KeyError       = "error"
	KeyTool        = "tool"
)

// Status values for consistent logging.
// Note: These are intentionally duplicated from instrumentation package
// to avoid circular dependencies (instrumentation imports logging).
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// WithOperation returns a logger with the operation attribute set.
func WithOperation(logger *slog.Logger, operation string) *slog.Logger {
	return logger.With(slog.String(KeyOperation, operation))
}

// WithTool returns a logger with the tool attribute set.
func WithTool(logger *slog.Logger, tool string) *slog.Logger {
	return logger.With(slog.String(KeyTool, tool))
}

// WithNamespace returns a logger with the API namespace attribute set
// ("uapi" or "whm").
func WithNamespace(logger *slog.Logger, namespace string) *slog.Logger {
	return logger.With(slog.String(KeyNamespace, namespace))
}

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Namespace returns a slog attribute for the API namespace.
func Namespace(ns string) slog.Attr {
	return slog.String(KeyNamespace, ns)
}

// Function returns a slog attribute for the remote API function.
func Function(fn string) slog.Attr {
	return slog.String(KeyFunction, fn)
}

// Tool returns a slog attribute for the tool name.
func Tool(tool string) slog.Attr {
	return slog.String(KeyTool, tool)
}

// Status returns a slog attribute for the status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// Err returns a slog attribute for an error.
// If err is nil, returns an empty Group attribute that will be omitted from
// output. This allows safely passing Err(maybeNilErr) without adding empty
// attributes.
//
// Usage:
//
//	logger.Info("operation", logging.Err(err))  // Safe even if err is nil
func Err(err error) slog.Attr {
	if err == nil {
		// Return an empty Group that slog will omit from output
		return slog.Group("")
	}
	return slog.String(KeyError, err.Error())
}

// AnonymizeMailbox returns a hashed representation of a mailbox address for
// logging purposes. This allows correlation of log entries without exposing
// PII.
func AnonymizeMailbox(address string) string {
	if address == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(address))
	return "mailbox:" + hex.EncodeToString(hash[:8])
}

// MailboxHash returns a slog attribute with the anonymized mailbox address.
// This is a convenience function to reduce repetition in logging calls and
// ensure consistent attribute naming across the codebase.
//
// Usage:
//
//	logger.Info("mailbox created", logging.MailboxHash(address))
func MailboxHash(address string) slog.Attr {
	return slog.String(KeyMailboxHash, AnonymizeMailbox(address))
}

// SanitizeToken returns a masked version of an API token for logging.
// It returns a length indicator without exposing any token content,
// as even partial token prefixes can aid attacks.
func SanitizeToken(token string) string {
	if token == "" {
		return "<empty>"
	}
	return fmt.Sprintf("[token:%d chars]", len(token))
}

// ExtractDomain extracts the domain part from a mailbox address.
// This is useful for lower-cardinality logging where the full address would
// create too many unique values.
func ExtractDomain(address string) string {
	if address == "" {
		return ""
	}
	parts := strings.Split(address, "@")
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

// Domain returns a slog attribute for the mailbox domain (lower cardinality
// than the full address).
func Domain(address string) slog.Attr {
	return slog.String(KeyDomain, ExtractDomain(address))
}
