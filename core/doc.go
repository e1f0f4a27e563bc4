// Package core contains the business logic for the Stash API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (ContentRecord, Collection, etc.)
// - extraction: URL classification and the extraction dispatcher
// - extraction/video: Video transcript extraction
// - extraction/page: Web page content extraction
// - collections: Collection management service
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// The extraction sub-packages are deliberately stateless: each call is an
// independent request/response sequence with no shared mutable state, so
// extractions may run concurrently without coordination.
package core
