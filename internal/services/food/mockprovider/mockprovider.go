// Package mockprovider implements the three provider clients over the
// read-only mock catalog. It stands in for the real provider APIs.
package mockprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/im-hungry/internal/platform/errors"
	"github.com/louisbranch/im-hungry/internal/services/food/provider"
	"github.com/louisbranch/im-hungry/internal/services/food/storage"
	"golang.org/x/text/cases"
)

// Client serves one provider from the shared catalog. Restaurant ids are
// numbered by catalog position so a search hit always resolves to the same
// menu.
type Client struct {
	provider provider.Provider
	catalog  storage.CatalogStore
}

var _ provider.Client = (*Client)(nil)

// New creates a mock client for p.
func New(p provider.Provider, catalog storage.CatalogStore) (*Client, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("unknown provider %d", p)
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog store is required")
	}
	return &Client{provider: p, catalog: catalog}, nil
}

// NewAll creates one mock client per provider.
func NewAll(catalog storage.CatalogStore) (map[provider.Provider]provider.Client, error) {
	clients := make(map[provider.Provider]provider.Client, len(provider.All))
	for _, p := range provider.All {
		client, err := New(p, catalog)
		if err != nil {
			return nil, err
		}
		clients[p] = client
	}
	return clients, nil
}

// Search returns catalog restaurants whose name or cuisine contains query,
// ignoring case. Location is accepted but does not narrow the catalog.
func (c *Client) Search(ctx context.Context, query, location string) ([]provider.Restaurant, error) {
	rows, err := c.catalog.ListRestaurants(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeProviderFailure, c.provider.String()+" search failed", err)
	}

	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(query))
	results := make([]provider.Restaurant, 0, len(rows))
	for _, row := range rows {
		if !strings.Contains(fold.String(row.Name), needle) && !strings.Contains(fold.String(row.Cuisine), needle) {
			continue
		}
		results = append(results, provider.Restaurant{
			ID:                  provider.RestaurantID(c.provider, row.Position),
			Name:                row.Name,
			Cuisine:             row.Cuisine,
			Rating:              row.Rating,
			DeliveryTimeMinutes: row.DeliveryTimeMinutes,
			DeliveryFee:         row.DeliveryFee,
			Provider:            c.provider,
		})
	}
	return results, nil
}

// GetMenu returns the full menu for one of this provider's restaurant ids.
func (c *Client) GetMenu(ctx context.Context, restaurantID string) (provider.Menu, error) {
	p, position, err := provider.ParseRestaurantID(restaurantID)
	if err != nil || p != c.provider {
		return provider.Menu{}, c.notFound(restaurantID)
	}

	row, err := c.catalog.GetRestaurant(ctx, position)
	if errors.Is(err, storage.ErrNotFound) {
		return provider.Menu{}, c.notFound(restaurantID)
	}
	if err != nil {
		return provider.Menu{}, apperrors.Wrap(apperrors.CodeProviderFailure, c.provider.String()+" menu lookup failed", err)
	}
	items, err := c.catalog.ListMenuItems(ctx, position)
	if errors.Is(err, storage.ErrNotFound) {
		return provider.Menu{}, c.notFound(restaurantID)
	}
	if err != nil {
		return provider.Menu{}, apperrors.Wrap(apperrors.CodeProviderFailure, c.provider.String()+" menu lookup failed", err)
	}

	menu := provider.Menu{
		RestaurantID:   restaurantID,
		RestaurantName: row.Name,
		Items:          make([]provider.MenuItem, 0, len(items)),
	}
	for i, item := range items {
		menu.Items = append(menu.Items, provider.MenuItem{
			ID:          provider.MenuItemID(c.provider, i+1),
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Category:    item.Category,
		})
	}
	return menu, nil
}

func (c *Client) notFound(restaurantID string) error {
	return apperrors.WithMetadata(
		apperrors.CodeNotFound,
		fmt.Sprintf("restaurant %s not found on %s", restaurantID, c.provider),
		map[string]string{"restaurant_id": restaurantID, "service": c.provider.Service()},
	)
}
