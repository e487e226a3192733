// Package mcp adapts command configuration to the MCP service runtime.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/louisbranch/im-hungry/internal/services/mcp/service"
)

// Options carries the command-level settings for one MCP run.
type Options struct {
	Transport    string
	HTTPAddr     string
	AllowedHosts []string
	ToolTimeout  time.Duration
	Logger       *slog.Logger
}

// Run starts the MCP app with the selected transport.
func Run(ctx context.Context, opts Options) error {
	transportKind, err := ParseTransport(opts.Transport)
	if err != nil {
		return err
	}
	return service.Run(ctx, service.Config{
		Transport:    transportKind,
		HTTPAddr:     opts.HTTPAddr,
		AllowedHosts: opts.AllowedHosts,
		ToolTimeout:  opts.ToolTimeout,
		Logger:       opts.Logger,
	})
}

// ParseTransport maps a transport name to its service kind. Empty means stdio.
func ParseTransport(transport string) (service.TransportKind, error) {
	switch strings.ToLower(strings.TrimSpace(transport)) {
	case "http":
		return service.TransportHTTP, nil
	case "stdio", "":
		return service.TransportStdio, nil
	default:
		return "", fmt.Errorf("invalid transport %q: must be 'stdio' or 'http'", transport)
	}
}
