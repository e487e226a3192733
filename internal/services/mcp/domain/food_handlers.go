package domain

import (
	"context"
	"math"

	"github.com/louisbranch/im-hungry/internal/services/food/aggregate"
	"github.com/louisbranch/im-hungry/internal/services/food/provider"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FoodService is the aggregation core behind the food tools.
type FoodService interface {
	SearchRestaurants(ctx context.Context, query, location string) (aggregate.SearchResult, error)
	GetMenu(ctx context.Context, restaurantID string) (provider.Menu, error)
	SearchMenuItems(ctx context.Context, q aggregate.DishQuery) ([]aggregate.DishMatch, error)
	CheckDeliveryEstimate(ctx context.Context, restaurantID, location string) (provider.DeliveryEstimate, error)
}

// SearchRestaurantsHandler executes a cross-provider restaurant search.
func SearchRestaurantsHandler(svc FoodService, invoker Invoker) mcp.ToolHandlerFor[SearchRestaurantsInput, SearchRestaurantsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SearchRestaurantsInput) (*mcp.CallToolResult, SearchRestaurantsResult, error) {
		call, err := invoker.start(ctx, SearchRestaurantsToolName)
		if err != nil {
			return nil, SearchRestaurantsResult{}, err
		}

		found, err := svc.SearchRestaurants(call.RunCtx, input.Query, input.Location)
		if err != nil {
			return nil, SearchRestaurantsResult{}, call.finish(err)
		}

		result := SearchRestaurantsResult{Restaurants: make([]RestaurantResult, 0, len(found.Restaurants))}
		for _, r := range found.Restaurants {
			result.Restaurants = append(result.Restaurants, restaurantResultFrom(r))
		}
		call.logger.Debug("restaurant search merged",
			"restaurants", len(result.Restaurants),
			"failed_providers", found.Failed(),
		)
		toolResult, err := CallToolResultWithJSONText(call.metadata(), result.Restaurants)
		if err != nil {
			return nil, SearchRestaurantsResult{}, call.finish(err)
		}
		_ = call.finish(nil)
		return toolResult, result, nil
	}
}

// GetMenuHandler routes a menu lookup to the provider that owns the id.
func GetMenuHandler(svc FoodService, invoker Invoker) mcp.ToolHandlerFor[GetMenuInput, MenuResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetMenuInput) (*mcp.CallToolResult, MenuResult, error) {
		call, err := invoker.start(ctx, GetMenuToolName)
		if err != nil {
			return nil, MenuResult{}, err
		}

		menu, err := svc.GetMenu(call.RunCtx, input.RestaurantID)
		if err != nil {
			return nil, MenuResult{}, call.finish(err)
		}

		_ = call.finish(nil)
		return CallToolResultWithMetadata(call.metadata()), menuResultFrom(menu), nil
	}
}

// SearchMenuItemsHandler executes a dish search over the top restaurants.
func SearchMenuItemsHandler(svc FoodService, invoker Invoker) mcp.ToolHandlerFor[SearchMenuItemsInput, SearchMenuItemsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SearchMenuItemsInput) (*mcp.CallToolResult, SearchMenuItemsResult, error) {
		call, err := invoker.start(ctx, SearchMenuItemsToolName)
		if err != nil {
			return nil, SearchMenuItemsResult{}, err
		}

		matches, err := svc.SearchMenuItems(call.RunCtx, aggregate.DishQuery{
			Query:    input.Query,
			Location: input.Location,
			Limit:    dishLimit(input.Limit),
		})
		if err != nil {
			return nil, SearchMenuItemsResult{}, call.finish(err)
		}

		result := SearchMenuItemsResult{Items: make([]DishResult, 0, len(matches))}
		for _, match := range matches {
			result.Items = append(result.Items, dishResultFrom(match))
		}
		toolResult, err := CallToolResultWithJSONText(call.metadata(), result.Items)
		if err != nil {
			return nil, SearchMenuItemsResult{}, call.finish(err)
		}
		_ = call.finish(nil)
		return toolResult, result, nil
	}
}

// dishLimit floors a numeric limit to a whole count. Negative values stay
// negative so the search rejects them.
func dishLimit(limit *float64) *int {
	if limit == nil {
		return nil
	}
	n := math.Floor(*limit)
	if n > math.MaxInt32 {
		n = math.MaxInt32
	}
	if n < math.MinInt32 {
		n = math.MinInt32
	}
	count := int(n)
	return &count
}

// CheckDeliveryEstimateHandler returns the delivery estimate for a restaurant id.
func CheckDeliveryEstimateHandler(svc FoodService, invoker Invoker) mcp.ToolHandlerFor[CheckDeliveryEstimateInput, DeliveryEstimateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CheckDeliveryEstimateInput) (*mcp.CallToolResult, DeliveryEstimateResult, error) {
		call, err := invoker.start(ctx, CheckDeliveryEstimateToolName)
		if err != nil {
			return nil, DeliveryEstimateResult{}, err
		}

		estimate, err := svc.CheckDeliveryEstimate(call.RunCtx, input.RestaurantID, input.Location)
		if err != nil {
			return nil, DeliveryEstimateResult{}, call.finish(err)
		}

		_ = call.finish(nil)
		return CallToolResultWithMetadata(call.metadata()), deliveryEstimateResultFrom(estimate), nil
	}
}
