// Package server provides the optional observability HTTP endpoint for the bot.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Current Usage
//
// When a metrics port is configured, `libbot serve` starts a small HTTP
// server exposing /healthz and /metrics (Prometheus text format) on
// localhost. The chat surface itself never goes through this server; it
// exists purely for operators.
package server
