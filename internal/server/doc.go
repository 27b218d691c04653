// Package server exposes the analysis engine over HTTP with echo.
//
// Routes:
//
//	POST /v1/analyze   full report for {"text": ..., "top": n, "markdown": bool}
//	POST /v1/keywords  top keywords for the same body
//	GET  /health/live  liveness with uptime
//	GET  /version      build information
//	GET  /metrics      Prometheus exposition
package server
