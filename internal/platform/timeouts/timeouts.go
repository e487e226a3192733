// Package timeouts defines shared timeout constants used by the MCP process.
package timeouts

import "time"

// ToolCall is the default budget for one MCP tool call, covering every
// provider request the call fans out to.
const ToolCall = 10 * time.Second

// ReadHeader limits how long the HTTP transport waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP transport waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// TelemetryShutdown caps the flush of pending spans on exit.
const TelemetryShutdown = 5 * time.Second
