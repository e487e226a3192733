package domain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/louisbranch/im-hungry/internal/services/food/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type fakeUserStore struct {
	prefs  storage.Preferences
	loc    storage.Location
	orders []storage.Order
	err    error
}

func (f fakeUserStore) GetPreferences(context.Context) (storage.Preferences, error) {
	return f.prefs, f.err
}

func (f fakeUserStore) GetLocation(context.Context) (storage.Location, error) {
	return f.loc, f.err
}

func (f fakeUserStore) ListOrders(context.Context) ([]storage.Order, error) {
	return f.orders, f.err
}

func readText(t *testing.T, handler mcp.ResourceHandler, uri string) string {
	t.Helper()

	result, err := handler(context.Background(), &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}})
	if err != nil {
		t.Fatalf("read %s: %v", uri, err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(result.Contents))
	}
	content := result.Contents[0]
	if content.URI != uri || content.MIMEType != "application/json" {
		t.Fatalf("unexpected content header: %s %s", content.URI, content.MIMEType)
	}
	return content.Text
}

func TestUserPreferencesResourceHandler(t *testing.T) {
	store := fakeUserStore{prefs: storage.Preferences{
		DietaryRestrictions: []string{"vegetarian"},
		FavoriteCuisines:    []string{"Italian", "Japanese", "Thai"},
		PriceMin:            10,
		PriceMax:            50,
	}}
	var payload UserPreferencesPayload
	if err := json.Unmarshal([]byte(readText(t, UserPreferencesResourceHandler(store), UserPreferencesURI)), &payload); err != nil {
		t.Fatalf("decode preferences: %v", err)
	}
	if payload.PriceRange.Min != 10 || payload.PriceRange.Max != 50 {
		t.Errorf("price range = %+v", payload.PriceRange)
	}
	if len(payload.FavoriteCuisines) != 3 || payload.DietaryRestrictions[0] != "vegetarian" {
		t.Errorf("unexpected preferences: %+v", payload)
	}
}

func TestUserPreferencesUseCamelCaseKeys(t *testing.T) {
	text := readText(t, UserPreferencesResourceHandler(fakeUserStore{}), UserPreferencesURI)
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{"dietaryRestrictions", "favoriteCuisines", "priceRange"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing key %q in %s", key, text)
		}
	}
	if string(raw["dietaryRestrictions"]) != "[]" {
		t.Errorf("expected empty list, got %s", raw["dietaryRestrictions"])
	}
}

func TestUserLocationResourceHandler(t *testing.T) {
	store := fakeUserStore{loc: storage.Location{Address: "123 Main Street", City: "San Francisco", State: "CA", ZipCode: "94102"}}
	var payload UserLocationPayload
	if err := json.Unmarshal([]byte(readText(t, UserLocationResourceHandler(store), UserLocationURI)), &payload); err != nil {
		t.Fatalf("decode location: %v", err)
	}
	if payload.ZipCode != "94102" || payload.City != "San Francisco" {
		t.Errorf("unexpected location: %+v", payload)
	}
}

func TestUserOrderHistoryResourceHandler(t *testing.T) {
	store := fakeUserStore{orders: []storage.Order{
		{RestaurantName: "Pizza Express", Items: []string{"Margherita Pizza"}, Date: "2024-01-15", Total: 28.98, Service: "doordash"},
		{RestaurantName: "Nothing", Date: "2024-01-01", Service: "grubhub"},
	}}
	var payload []OrderHistoryEntry
	if err := json.Unmarshal([]byte(readText(t, UserOrderHistoryResourceHandler(store), UserOrderHistoryURI)), &payload); err != nil {
		t.Fatalf("decode orders: %v", err)
	}
	if len(payload) != 2 || payload[0].Total != 28.98 || payload[0].Service != "doordash" {
		t.Errorf("unexpected orders: %+v", payload)
	}
	if payload[1].Items == nil {
		t.Error("expected empty items list to decode as non-nil")
	}
}

func TestUserResourceHandlersSurfaceStoreErrors(t *testing.T) {
	store := fakeUserStore{err: errors.New("boom")}
	handlers := map[string]mcp.ResourceHandler{
		UserPreferencesURI:  UserPreferencesResourceHandler(store),
		UserLocationURI:     UserLocationResourceHandler(store),
		UserOrderHistoryURI: UserOrderHistoryResourceHandler(store),
	}
	for uri, handler := range handlers {
		if _, err := handler(context.Background(), &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}); err == nil {
			t.Errorf("%s: expected error", uri)
		}
	}
	if _, err := UserLocationResourceHandler(nil)(context.Background(), nil); err == nil {
		t.Error("expected error for nil store")
	}
}
