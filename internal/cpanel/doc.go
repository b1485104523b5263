// Package cpanel provides a client for the cPanel UAPI and WHM API 1.
//
// The package covers two remote namespaces:
//
//   - UAPI (per-account): email account management, quotas, passwords,
//     forwarders, and client settings. Requests go to
//     /execute/<Module>/<function> and authenticate with the
//     "cpanel user:token" authorization scheme.
//   - WHM API 1 (administrative): DNS zone record management. Requests go
//     to /json-api/<function>?api.version=1 and authenticate with the
//     "whm user:token" authorization scheme.
//
// Both namespaces wrap their results in an envelope that carries its own
// status indicator; a 200 HTTP response can still report a logical failure.
// The client inspects the envelope on every call and surfaces the remote
// error message verbatim as an *APIError.
//
// Argument validation happens before any network traffic. Local
// precondition failures are returned as *ValidationError so callers can
// tell them apart from remote errors.
//
// Configuration is loaded once from the environment (see LoadConfig) and
// injected into the client; the client itself performs no environment
// lookups and keeps no state between calls beyond a pooled transport.
package cpanel
