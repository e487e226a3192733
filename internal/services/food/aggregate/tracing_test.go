package aggregate

import (
	"context"
	"errors"
	"testing"

	"github.com/louisbranch/im-hungry/internal/services/food/provider"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSearchRestaurantsRecordsProviderSpans(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	fakes := newFakeSet()
	fakes[provider.DoorDash].restaurants = []provider.Restaurant{restaurant(provider.DoorDash, 1, "A", 4.2)}
	fakes[provider.UberEats].searchErr = errors.New("bad gateway")
	svc, err := New(fakes.clients(), WithTracer(tp.Tracer("test")))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if _, err := svc.SearchRestaurants(context.Background(), "pizza", "NYC"); err != nil {
		t.Fatalf("search restaurants: %v", err)
	}

	statusByService := map[string]codes.Code{}
	parents := 0
	for _, span := range recorder.Ended() {
		switch span.Name() {
		case "aggregate.SearchRestaurants":
			parents++
		case "provider.Search":
			for _, attr := range span.Attributes() {
				if attr.Key == "food.service" {
					statusByService[attr.Value.AsString()] = span.Status().Code
				}
			}
		}
	}
	if parents != 1 {
		t.Fatalf("aggregate spans = %d, want 1", parents)
	}
	if len(statusByService) != 3 {
		t.Fatalf("provider spans = %v, want one per service", statusByService)
	}
	if statusByService["ubereats"] != codes.Error {
		t.Fatalf("ubereats span status = %v, want error", statusByService["ubereats"])
	}
	if statusByService["doordash"] == codes.Error || statusByService["grubhub"] == codes.Error {
		t.Fatalf("unexpected error status: %v", statusByService)
	}
}
