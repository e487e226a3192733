package aggregate

import (
	"context"

	"github.com/louisbranch/im-hungry/internal/services/food/provider"
)

// Placeholder delivery figures. No provider exposes a delivery quote yet, so
// every estimate carries these values.
const (
	placeholderRestaurantName = "Unknown"
	placeholderMinutes        = 30
	placeholderFee            = 5.99
	placeholderMinimumOrder   = 15.00
)

// CheckDeliveryEstimate validates the id's provider tag and returns the
// placeholder estimate for that provider. Location is not consulted.
func (s *Service) CheckDeliveryEstimate(ctx context.Context, restaurantID, location string) (provider.DeliveryEstimate, error) {
	p, err := provider.ParseID(restaurantID)
	if err != nil {
		return provider.DeliveryEstimate{}, err
	}
	_, span := s.tracer.Start(ctx, "aggregate.CheckDeliveryEstimate")
	span.SetAttributes(serviceAttr(p))
	span.End()
	return PlaceholderEstimate(restaurantID, p), nil
}

// PlaceholderEstimate is the stub boundary for delivery quotes: only the
// service is derived from the id.
func PlaceholderEstimate(restaurantID string, p provider.Provider) provider.DeliveryEstimate {
	return provider.DeliveryEstimate{
		RestaurantID:         restaurantID,
		RestaurantName:       placeholderRestaurantName,
		EstimatedTimeMinutes: placeholderMinutes,
		DeliveryFee:          placeholderFee,
		MinimumOrder:         placeholderMinimumOrder,
		Provider:             p,
	}
}
