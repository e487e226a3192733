// Package domain translates MCP tool calls and resource reads into food
// aggregation operations.
//
// Each handler decodes the typed tool input, runs the operation under a
// per-call timeout with a fresh invocation id, and maps core results onto
// the JSON shapes MCP clients read.
package domain
