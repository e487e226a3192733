package aggregate

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	apperrors "github.com/louisbranch/im-hungry/internal/platform/errors"
	"github.com/louisbranch/im-hungry/internal/services/food/provider"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Outcome records how one provider answered a fan-out.
type Outcome struct {
	Provider provider.Provider
	Count    int
	Err      error
}

// SearchResult is the ranked restaurant list plus one outcome per provider,
// in invocation order.
type SearchResult struct {
	Restaurants []provider.Restaurant
	Outcomes    []Outcome
}

// Failed counts the providers whose call failed.
func (r SearchResult) Failed() int {
	failed := 0
	for _, outcome := range r.Outcomes {
		if outcome.Err != nil {
			failed++
		}
	}
	return failed
}

// SearchRestaurants queries every provider concurrently and returns the
// successful results sorted by rating, highest first. Equal ratings keep
// provider order (dd, ue, gh) and then each provider's own order. When every
// provider fails the result is empty, not an error.
func (s *Service) SearchRestaurants(ctx context.Context, query, location string) (SearchResult, error) {
	if err := requireText("query", query); err != nil {
		return SearchResult{}, err
	}
	if err := requireText("location", location); err != nil {
		return SearchResult{}, err
	}

	ctx, span := s.tracer.Start(ctx, "aggregate.SearchRestaurants")
	defer span.End()

	outcomes := make([]Outcome, len(provider.All))
	batches := make([][]provider.Restaurant, len(provider.All))
	var wg sync.WaitGroup
	for i, p := range provider.All {
		wg.Add(1)
		go func() {
			defer wg.Done()
			batches[i], outcomes[i] = s.searchProvider(ctx, p, query, location)
		}()
	}
	wg.Wait()

	total := 0
	for _, batch := range batches {
		total += len(batch)
	}
	merged := make([]provider.Restaurant, 0, total)
	for _, batch := range batches {
		merged = append(merged, batch...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Rating > merged[j].Rating
	})

	result := SearchResult{Restaurants: merged, Outcomes: outcomes}
	failed := result.Failed()
	span.SetAttributes(
		attribute.Int("food.restaurants", len(merged)),
		attribute.Int("food.providers_failed", failed),
	)
	if failed > 0 {
		s.logger.WarnContext(ctx, "restaurant search degraded",
			"failed_providers", failed,
			"restaurants", len(merged),
		)
	}
	return result, nil
}

func (s *Service) searchProvider(ctx context.Context, p provider.Provider, query, location string) (results []provider.Restaurant, outcome Outcome) {
	ctx, span := s.tracer.Start(ctx, "provider.Search", trace.WithAttributes(serviceAttr(p)))
	defer span.End()

	outcome.Provider = p
	defer func() {
		if r := recover(); r != nil {
			results = nil
			outcome.Err = apperrors.New(apperrors.CodeProviderFailure, fmt.Sprintf("%s search panicked: %v", p, r))
		}
		if outcome.Err != nil {
			span.RecordError(outcome.Err)
			span.SetStatus(codes.Error, "provider search failed")
			s.logger.WarnContext(ctx, "provider search failed",
				"service", p.Service(),
				"error", outcome.Err,
			)
		}
	}()

	results, err := s.clients[p].Search(ctx, query, location)
	if err != nil {
		outcome.Err = err
		return nil, outcome
	}
	for i := range results {
		results[i].Provider = p
	}
	outcome.Count = len(results)
	span.SetAttributes(attribute.Int("food.restaurants", len(results)))
	return results, outcome
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.WithMetadata(
			apperrors.CodeInvalidInput,
			field+" is required",
			map[string]string{"field": field},
		)
	}
	return nil
}

func serviceAttr(p provider.Provider) attribute.KeyValue {
	return attribute.String("food.service", p.Service())
}
