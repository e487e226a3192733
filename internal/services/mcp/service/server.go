package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/louisbranch/im-hungry/internal/platform/logging"
	"github.com/louisbranch/im-hungry/internal/services/food/aggregate"
	"github.com/louisbranch/im-hungry/internal/services/food/mockprovider"
	"github.com/louisbranch/im-hungry/internal/services/food/storage/sqlite"
	"github.com/louisbranch/im-hungry/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "mcp-im-hungry"
	// serverVersion identifies the MCP server version.
	serverVersion = "1.0.0"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for browser or remote clients.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	Transport TransportKind
	// HTTPAddr is the listen address for HTTP transport. Defaults to localhost:8081.
	HTTPAddr string
	// AllowedHosts extends the loopback-only Host/Origin allowlist.
	AllowedHosts []string
	// ToolTimeout bounds one tool call. Zero uses the platform default.
	ToolTimeout time.Duration
	Logger      *slog.Logger
}

// Server hosts the MCP server and the catalog it reads from.
type Server struct {
	mcpServer *mcp.Server
	store     *sqlite.Store
	logger    *slog.Logger
}

// New opens the mock catalog, builds the provider clients and aggregation
// service, and registers every tool and resource.
func New(ctx context.Context, cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	store, err := sqlite.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	clients, err := mockprovider.NewAll(store)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("build provider clients: %w", err)
	}
	food, err := aggregate.New(clients, aggregate.WithLogger(logger.With("component", "aggregate")))
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("build aggregate service: %w", err)
	}

	server, err := newServer(food, store, domain.Invoker{
		Logger:  logger.With("component", "mcp"),
		Timeout: cfg.ToolTimeout,
	})
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	server.store = store
	server.logger = logger
	return server, nil
}

// newServer creates the MCP tool and resource bindings once.
func newServer(food domain.FoodService, users domain.UserDataStore, invoker domain.Invoker) (*Server, error) {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	for _, module := range newMCPRegistrationModules(food, users, invoker) {
		if err := module.register(mcpServerRegistrationAdapter{server: mcpServer}); err != nil {
			return nil, fmt.Errorf("register MCP module %q: %w", module.name, err)
		}
	}

	logger := invoker.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Server{mcpServer: mcpServer, logger: logger}, nil
}
