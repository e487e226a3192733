package aggregate

import (
	"fmt"
	"log/slog"

	"github.com/louisbranch/im-hungry/internal/platform/logging"
	"github.com/louisbranch/im-hungry/internal/platform/otel"
	"github.com/louisbranch/im-hungry/internal/services/food/provider"
	"go.opentelemetry.io/otel/trace"
)

// Service owns the provider clients and implements the four food operations.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	clients map[provider.Provider]provider.Client
	logger  *slog.Logger
	tracer  trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the structured logger used for provider failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTracer overrides the tracer, mainly for tests.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// New builds a Service. Every provider in provider.All must have a client.
func New(clients map[provider.Provider]provider.Client, opts ...Option) (*Service, error) {
	registry := make(map[provider.Provider]provider.Client, len(provider.All))
	for _, p := range provider.All {
		client, ok := clients[p]
		if !ok || client == nil {
			return nil, fmt.Errorf("client for %s is required", p)
		}
		registry[p] = client
	}
	s := &Service{
		clients: registry,
		logger:  logging.Discard(),
		tracer:  otel.Tracer("aggregate"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}
