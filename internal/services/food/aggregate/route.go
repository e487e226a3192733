package aggregate

import (
	"context"

	"github.com/louisbranch/im-hungry/internal/services/food/provider"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// GetMenu routes restaurantID to the provider named by its tag and returns
// that provider's answer unchanged. Ids with an unknown tag fail with an
// InvalidIdentifier error and never reach a provider.
func (s *Service) GetMenu(ctx context.Context, restaurantID string) (provider.Menu, error) {
	p, err := provider.ParseID(restaurantID)
	if err != nil {
		return provider.Menu{}, err
	}

	ctx, span := s.tracer.Start(ctx, "provider.GetMenu", trace.WithAttributes(serviceAttr(p)))
	defer span.End()

	menu, err := s.clients[p].GetMenu(ctx, restaurantID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "get menu failed")
		return provider.Menu{}, err
	}
	return menu, nil
}
