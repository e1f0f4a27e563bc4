// Package api provides the HTTP API layer for the Stash application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// The OpenAPI spec is generated automatically (JSON at /openapi.json,
// Swagger UI at /docs). Domain errors are mapped to RFC 7807 problem
// responses by the handlers package.
package api
