package domain

import (
	"github.com/louisbranch/im-hungry/internal/services/food/aggregate"
	"github.com/louisbranch/im-hungry/internal/services/food/provider"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool names are part of the wire contract.
const (
	SearchRestaurantsToolName     = "search_restaurants"
	GetMenuToolName               = "get_menu"
	SearchMenuItemsToolName       = "search_menu_items"
	CheckDeliveryEstimateToolName = "check_delivery_estimate"
)

// SearchRestaurantsInput represents the MCP tool input for restaurant search.
type SearchRestaurantsInput struct {
	Query    string `json:"query" jsonschema:"Search query (e.g. burger, pizza)"`
	Location string `json:"location" jsonschema:"Delivery location (address, city, state zip)"`
}

// RestaurantResult is one ranked restaurant.
type RestaurantResult struct {
	ID           string  `json:"id" jsonschema:"restaurant identifier prefixed with the service tag (dd-, ue-, gh-)"`
	Name         string  `json:"name" jsonschema:"restaurant name"`
	Cuisine      string  `json:"cuisine" jsonschema:"cuisine"`
	Rating       float64 `json:"rating" jsonschema:"rating from 0 to 5"`
	DeliveryTime int     `json:"deliveryTime" jsonschema:"delivery time in minutes"`
	DeliveryFee  float64 `json:"deliveryFee" jsonschema:"delivery fee"`
	Service      string  `json:"service" jsonschema:"delivery service (doordash, ubereats, grubhub)"`
}

// SearchRestaurantsResult represents the MCP tool output for restaurant search.
type SearchRestaurantsResult struct {
	Restaurants []RestaurantResult `json:"restaurants" jsonschema:"restaurants sorted by rating, highest first"`
}

// GetMenuInput represents the MCP tool input for menu lookup.
type GetMenuInput struct {
	RestaurantID string `json:"restaurantId" jsonschema:"Restaurant ID (format: dd-{id}, ue-{id}, or gh-{id})"`
}

// MenuItemResult is one dish on a menu.
type MenuItemResult struct {
	ID          string  `json:"id" jsonschema:"menu item identifier"`
	Name        string  `json:"name" jsonschema:"dish name"`
	Description string  `json:"description,omitempty" jsonschema:"dish description"`
	Price       float64 `json:"price" jsonschema:"price"`
	Category    string  `json:"category" jsonschema:"menu category"`
}

// MenuResult represents the MCP tool output for menu lookup.
type MenuResult struct {
	RestaurantID   string           `json:"restaurantId" jsonschema:"restaurant identifier"`
	RestaurantName string           `json:"restaurantName" jsonschema:"restaurant name"`
	Items          []MenuItemResult `json:"items" jsonschema:"menu items in menu order"`
}

// SearchMenuItemsInput represents the MCP tool input for dish search.
type SearchMenuItemsInput struct {
	Query    string   `json:"query" jsonschema:"Dish name to search for"`
	Location string   `json:"location" jsonschema:"Delivery location"`
	Limit    *float64 `json:"limit,omitempty" jsonschema:"Maximum results (default: 20)"`
}

// DishResult is a matching dish tagged with its restaurant.
type DishResult struct {
	ID             string  `json:"id" jsonschema:"menu item identifier"`
	Name           string  `json:"name" jsonschema:"dish name"`
	Description    string  `json:"description,omitempty" jsonschema:"dish description"`
	Price          float64 `json:"price" jsonschema:"price"`
	Category       string  `json:"category" jsonschema:"menu category"`
	RestaurantID   string  `json:"restaurantId" jsonschema:"restaurant identifier"`
	RestaurantName string  `json:"restaurantName" jsonschema:"restaurant name"`
	Service        string  `json:"service" jsonschema:"delivery service"`
}

// SearchMenuItemsResult represents the MCP tool output for dish search.
type SearchMenuItemsResult struct {
	Items []DishResult `json:"items" jsonschema:"matching dishes"`
}

// CheckDeliveryEstimateInput represents the MCP tool input for delivery estimates.
type CheckDeliveryEstimateInput struct {
	RestaurantID string `json:"restaurantId" jsonschema:"Restaurant ID"`
	Location     string `json:"location" jsonschema:"Delivery location"`
}

// DeliveryEstimateResult represents the MCP tool output for delivery estimates.
type DeliveryEstimateResult struct {
	RestaurantID   string  `json:"restaurantId" jsonschema:"restaurant identifier"`
	RestaurantName string  `json:"restaurantName" jsonschema:"restaurant name"`
	EstimatedTime  int     `json:"estimatedTime" jsonschema:"estimated delivery time in minutes"`
	DeliveryFee    float64 `json:"deliveryFee" jsonschema:"delivery fee"`
	MinimumOrder   float64 `json:"minimumOrder" jsonschema:"minimum order amount"`
	Service        string  `json:"service" jsonschema:"delivery service"`
}

// SearchRestaurantsTool defines the MCP tool schema for restaurant search.
func SearchRestaurantsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        SearchRestaurantsToolName,
		Description: "Search for restaurants across DoorDash, Uber Eats, and Grubhub",
	}
}

// GetMenuTool defines the MCP tool schema for menu lookup.
func GetMenuTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        GetMenuToolName,
		Description: "Get the full menu for a specific restaurant",
	}
}

// SearchMenuItemsTool defines the MCP tool schema for dish search.
func SearchMenuItemsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        SearchMenuItemsToolName,
		Description: "Search for specific dishes across ALL restaurants",
	}
}

// CheckDeliveryEstimateTool defines the MCP tool schema for delivery estimates.
func CheckDeliveryEstimateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        CheckDeliveryEstimateToolName,
		Description: "Get delivery time estimate and fees for a restaurant",
	}
}

func restaurantResultFrom(r provider.Restaurant) RestaurantResult {
	return RestaurantResult{
		ID:           r.ID,
		Name:         r.Name,
		Cuisine:      r.Cuisine,
		Rating:       r.Rating,
		DeliveryTime: r.DeliveryTimeMinutes,
		DeliveryFee:  r.DeliveryFee,
		Service:      r.Provider.Service(),
	}
}

func menuResultFrom(m provider.Menu) MenuResult {
	result := MenuResult{
		RestaurantID:   m.RestaurantID,
		RestaurantName: m.RestaurantName,
		Items:          make([]MenuItemResult, 0, len(m.Items)),
	}
	for _, item := range m.Items {
		result.Items = append(result.Items, MenuItemResult{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Category:    item.Category,
		})
	}
	return result
}

func dishResultFrom(d aggregate.DishMatch) DishResult {
	return DishResult{
		ID:             d.Item.ID,
		Name:           d.Item.Name,
		Description:    d.Item.Description,
		Price:          d.Item.Price,
		Category:       d.Item.Category,
		RestaurantID:   d.RestaurantID,
		RestaurantName: d.RestaurantName,
		Service:        d.Provider.Service(),
	}
}

func deliveryEstimateResultFrom(e provider.DeliveryEstimate) DeliveryEstimateResult {
	return DeliveryEstimateResult{
		RestaurantID:   e.RestaurantID,
		RestaurantName: e.RestaurantName,
		EstimatedTime:  e.EstimatedTimeMinutes,
		DeliveryFee:    e.DeliveryFee,
		MinimumOrder:   e.MinimumOrder,
		Service:        e.Provider.Service(),
	}
}
