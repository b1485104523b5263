// Package server provides the MCP server context, health checks, and the
// dedicated metrics server for the cpanel-mcp application.
//
// # Key Components
//
// ServerContext holds the shared cPanel API client together with the metrics
// recorder and audit logger. Tool handlers receive it at registration time and
// reach the client through it, so the client can be swapped in tests.
//
// HealthChecker serves Kubernetes-style probe endpoints on the streamable HTTP
// transport: /healthz (liveness), /readyz (readiness), and /healthz/detailed.
//
// MetricsServer exposes Prometheus metrics on a dedicated port, isolated from
// the MCP traffic so operational metrics are never reachable through the
// client-facing endpoint.
//
// HTTPMetrics is middleware for the streamable HTTP transport that records
// request counts and durations with normalized paths to keep metric
// cardinality bounded.
package server
