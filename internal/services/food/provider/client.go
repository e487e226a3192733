package provider

import "context"

// Client is the uniform contract for one upstream provider.
//
// Search fails only by returning an error, never with partial results.
// GetMenu returns a NotFound error for ids the provider does not recognize.
// Neither call has side effects beyond its own request.
type Client interface {
	Search(ctx context.Context, query, location string) ([]Restaurant, error)
	GetMenu(ctx context.Context, restaurantID string) (Menu, error)
}
