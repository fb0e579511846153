// Package api contains the HTTP handlers for the task board. Handlers
// decode and validate requests, delegate to the service layer, and map
// service errors to HTTP status codes with safe client-facing messages.
package api
