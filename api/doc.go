// Package api provides the HTTP layer for the briefing service.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: router construction and middleware wiring
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
// - POST /generate-briefing: run the full briefing pipeline
// - GET /health: liveness plus cached startup checks
// - GET /info: service metadata, voices and formats
// - GET /static/...: generated audio files
//
// # Middleware
//
// Requests pass through CORS handling, request logging with unique
// request IDs, and per-IP rate limiting, in that order.
//
// # Error Handling
//
// Domain errors are mapped to HTTP status codes by remediation class:
// input errors become 400, environment errors 503, transient upstream
// failures 502, and everything else 500. Every error body has the shape:
//
//	{
//	    "success": false,
//	    "error": "invalid request",
//	    "details": "validation error on field 'feeds': ..."
//	}
package api
