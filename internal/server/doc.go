// Package server exposes the footer over HTTP.
//
// Routes:
//
//	GET /              demo page with the footer (?mode=dark&class=...)
//	GET /footer        footer fragment HTML
//	GET /footer/live   websocket; each {"mode": "..."} message is answered
//	                   with freshly rendered footer HTML
//	GET /assets/*      embedded icon files
//	GET /healthz       liveness probe
//	GET /metrics       Prometheus exposition (when enabled)
//
// Every request passes through one instrumentation middleware that logs
// with slog, records Prometheus metrics and starts an OpenTelemetry span.
package server
