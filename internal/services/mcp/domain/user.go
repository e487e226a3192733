package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/louisbranch/im-hungry/internal/services/food/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Resource URIs for the user profile documents.
const (
	UserPreferencesURI  = "user://preferences"
	UserLocationURI     = "user://location"
	UserOrderHistoryURI = "user://order-history"
)

// UserDataStore reads the user profile documents.
type UserDataStore interface {
	GetPreferences(ctx context.Context) (storage.Preferences, error)
	GetLocation(ctx context.Context) (storage.Location, error)
	ListOrders(ctx context.Context) ([]storage.Order, error)
}

// PriceRange is an inclusive spending range per order.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// UserPreferencesPayload represents the user://preferences document.
type UserPreferencesPayload struct {
	DietaryRestrictions []string   `json:"dietaryRestrictions"`
	FavoriteCuisines    []string   `json:"favoriteCuisines"`
	PriceRange          PriceRange `json:"priceRange"`
}

// UserLocationPayload represents the user://location document.
type UserLocationPayload struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// OrderHistoryEntry is one past order in the user://order-history document.
type OrderHistoryEntry struct {
	RestaurantName string   `json:"restaurantName"`
	Items          []string `json:"items"`
	Date           string   `json:"date"`
	Total          float64  `json:"total"`
	Service        string   `json:"service"`
}

// UserPreferencesResource defines the MCP resource for user preferences.
func UserPreferencesResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "User Preferences",
		Description: "Dietary restrictions, favorite cuisines, price range",
		MIMEType:    "application/json",
		URI:         UserPreferencesURI,
	}
}

// UserLocationResource defines the MCP resource for the delivery address.
func UserLocationResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "User Location",
		Description: "Delivery address",
		MIMEType:    "application/json",
		URI:         UserLocationURI,
	}
}

// UserOrderHistoryResource defines the MCP resource for past orders.
func UserOrderHistoryResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "Order History",
		Description: "Past orders for recommendations",
		MIMEType:    "application/json",
		URI:         UserOrderHistoryURI,
	}
}

// UserPreferencesResourceHandler returns the preferences document.
func UserPreferencesResourceHandler(store UserDataStore) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if store == nil {
			return nil, fmt.Errorf("user data store is not configured")
		}
		prefs, err := store.GetPreferences(ctx)
		if err != nil {
			return nil, fmt.Errorf("read preferences: %w", err)
		}
		return jsonResource(UserPreferencesURI, UserPreferencesPayload{
			DietaryRestrictions: nonNil(prefs.DietaryRestrictions),
			FavoriteCuisines:    nonNil(prefs.FavoriteCuisines),
			PriceRange:          PriceRange{Min: prefs.PriceMin, Max: prefs.PriceMax},
		})
	}
}

// UserLocationResourceHandler returns the delivery address document.
func UserLocationResourceHandler(store UserDataStore) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if store == nil {
			return nil, fmt.Errorf("user data store is not configured")
		}
		loc, err := store.GetLocation(ctx)
		if err != nil {
			return nil, fmt.Errorf("read location: %w", err)
		}
		return jsonResource(UserLocationURI, UserLocationPayload{
			Address: loc.Address,
			City:    loc.City,
			State:   loc.State,
			ZipCode: loc.ZipCode,
		})
	}
}

// UserOrderHistoryResourceHandler returns the past orders as a JSON array.
func UserOrderHistoryResourceHandler(store UserDataStore) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if store == nil {
			return nil, fmt.Errorf("user data store is not configured")
		}
		orders, err := store.ListOrders(ctx)
		if err != nil {
			return nil, fmt.Errorf("read order history: %w", err)
		}
		payload := make([]OrderHistoryEntry, 0, len(orders))
		for _, order := range orders {
			payload = append(payload, OrderHistoryEntry{
				RestaurantName: order.RestaurantName,
				Items:          nonNil(order.Items),
				Date:           order.Date,
				Total:          order.Total,
				Service:        order.Service,
			})
		}
		return jsonResource(UserOrderHistoryURI, payload)
	}
}

func jsonResource(uri string, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
