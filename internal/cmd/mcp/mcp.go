// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	mcpapp "github.com/louisbranch/im-hungry/internal/app/mcp"
	"github.com/louisbranch/im-hungry/internal/platform/config"
	platformcmd "github.com/louisbranch/im-hungry/internal/platform/cmd"
	"github.com/louisbranch/im-hungry/internal/platform/logging"
)

// Config holds MCP command configuration.
type Config struct {
	Transport    string        `env:"FOOD_MCP_TRANSPORT"     envDefault:"stdio"`
	HTTPAddr     string        `env:"FOOD_MCP_HTTP_ADDR"     envDefault:"localhost:8081"`
	AllowedHosts []string      `env:"FOOD_MCP_ALLOWED_HOSTS" envSeparator:","`
	ToolTimeout  time.Duration `env:"FOOD_MCP_TOOL_TIMEOUT"  envDefault:"10s"`
	LogLevel     string        `env:"FOOD_MCP_LOG_LEVEL"     envDefault:"info"`
}

// ParseConfig parses the process environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	return parseFlags(cfg, fs, args)
}

// ParseConfigFrom is ParseConfig with an explicit environment.
func ParseConfigFrom(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	var cfg Config
	if err := config.ParseEnvFrom(&cfg, environ); err != nil {
		return Config{}, err
	}
	return parseFlags(cfg, fs, args)
}

func parseFlags(cfg Config, fs *flag.FlagSet, args []string) (Config, error) {
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.Func("allowed-hosts", "Comma-separated extra hosts accepted by the HTTP transport", func(value string) error {
		cfg.AllowedHosts = splitHosts(value)
		return nil
	})
	fs.DurationVar(&cfg.ToolTimeout, "tool-timeout", cfg.ToolTimeout, "Budget for a single tool call")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, or error")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.ToolTimeout < 0 {
		return Config{}, fmt.Errorf("tool timeout must not be negative: %s", cfg.ToolTimeout)
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	return platformcmd.RunWithTelemetryAndOptions(ctx, platformcmd.ServiceMCP, platformcmd.RunOptions{Logger: logger}, func(ctx context.Context) error {
		return mcpapp.Run(ctx, mcpapp.Options{
			Transport:    cfg.Transport,
			HTTPAddr:     cfg.HTTPAddr,
			AllowedHosts: cfg.AllowedHosts,
			ToolTimeout:  cfg.ToolTimeout,
			Logger:       logger,
		})
	})
}

func splitHosts(value string) []string {
	var hosts []string
	for _, host := range strings.Split(value, ",") {
		if host = strings.TrimSpace(host); host != "" {
			hosts = append(hosts, host)
		}
	}
	return hosts
}
