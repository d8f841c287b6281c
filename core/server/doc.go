// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package
// defines the configuration structure for server settings.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key expected in the
// X-API-Key header, and the request body limit used for CSV uploads.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the start command to configure Fiber and the auth middleware.
package server
