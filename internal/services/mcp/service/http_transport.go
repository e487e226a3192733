package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/louisbranch/im-hungry/internal/platform/logging"
	"github.com/louisbranch/im-hungry/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultHTTPAddr = "localhost:8081"

var listenTCP = net.Listen

// HTTPTransport serves one MCP server over streamable HTTP. Sessions and
// SSE streams are handled by the SDK; this type owns routing, host checks,
// CORS and request logging.
type HTTPTransport struct {
	addr         string
	allowedHosts map[string]struct{}
	server       *mcp.Server
	logger       *slog.Logger
	httpServer   *http.Server
}

// NewHTTPTransport creates a transport bound to addr, or localhost:8081 when
// addr is empty. Only loopback hosts pass unless allowedHosts widens that.
func NewHTTPTransport(addr string, server *mcp.Server, allowedHosts []string, logger *slog.Logger) *HTTPTransport {
	if addr == "" {
		addr = defaultHTTPAddr
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &HTTPTransport{
		addr:         addr,
		allowedHosts: parseAllowedHosts(allowedHosts),
		server:       server,
		logger:       logger,
	}
}

// Handler returns the routed HTTP handler:
//
//	POST/GET/DELETE /mcp   streamable MCP endpoint
//	GET /mcp/health        liveness probe
func (t *HTTPTransport) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(requestLogger(t.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return t.isAllowedOrigin(origin)
		},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Last-Event-ID", "Mcp-Session-Id", "Mcp-Protocol-Version"},
		ExposedHeaders:   []string{"Mcp-Session-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(t.requireLocalRequest)

	r.Get("/mcp/health", t.handleHealth)
	r.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return t.server
	}, nil))

	return r
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (t *HTTPTransport) Start(ctx context.Context) error {
	if t.server == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	t.httpServer = &http.Server{
		Addr:              t.addr,
		Handler:           t.Handler(),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	listener, err := listenTCP("tcp", t.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", t.addr, err)
	}
	t.logger.Info("starting MCP HTTP server", "addr", listener.Addr().String())

	errChan := make(chan error, 1)
	go func() {
		if err := t.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		t.logger.Info("shutting down MCP HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := t.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("HTTP server error: %w", err)
	}
}

func (t *HTTPTransport) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		t.logger.Warn("write health response failed", "error", err)
	}
}

// requestLogger logs one line per HTTP request. chi's wrapped writer keeps
// http.Flusher available for SSE responses.
func requestLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", chimiddleware.GetReqID(r.Context()),
				"remote_addr", r.RemoteAddr,
			)
		})
	}
}
