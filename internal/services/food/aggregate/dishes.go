package aggregate

import (
	"context"
	"fmt"
	"strings"
	"sync"

	apperrors "github.com/louisbranch/im-hungry/internal/platform/errors"
	"github.com/louisbranch/im-hungry/internal/services/food/provider"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/text/cases"
)

const (
	// MaxMenuFanOut caps how many restaurants a dish search inspects.
	MaxMenuFanOut = 10
	// DefaultDishLimit applies when a dish search names no limit.
	DefaultDishLimit = 20
)

// DishQuery describes a dish search. A nil Limit means DefaultDishLimit.
type DishQuery struct {
	Query    string
	Location string
	Limit    *int
}

// DishMatch is a menu item tagged with the restaurant it came from.
type DishMatch struct {
	Item           provider.MenuItem
	RestaurantID   string
	RestaurantName string
	Provider       provider.Provider
}

type menuSlot struct {
	menu provider.Menu
	err  error
}

// SearchMenuItems finds dishes whose name or description contains the query.
// It searches restaurants, loads up to MaxMenuFanOut of the top-ranked menus
// concurrently, and returns matches in restaurant rank order then menu order,
// truncated to the limit. A menu that fails to load is skipped.
func (s *Service) SearchMenuItems(ctx context.Context, q DishQuery) ([]DishMatch, error) {
	limit := DefaultDishLimit
	if q.Limit != nil {
		limit = *q.Limit
	}
	if limit < 0 {
		return nil, apperrors.WithMetadata(
			apperrors.CodeInvalidInput,
			fmt.Sprintf("limit must be zero or greater, got %d", limit),
			map[string]string{"field": "limit"},
		)
	}
	if err := requireText("query", q.Query); err != nil {
		return nil, err
	}
	if err := requireText("location", q.Location); err != nil {
		return nil, err
	}
	if limit == 0 {
		return []DishMatch{}, nil
	}

	ctx, span := s.tracer.Start(ctx, "aggregate.SearchMenuItems")
	defer span.End()

	found, err := s.SearchRestaurants(ctx, q.Query, q.Location)
	if err != nil {
		return nil, err
	}
	restaurants := found.Restaurants
	if len(restaurants) > MaxMenuFanOut {
		restaurants = restaurants[:MaxMenuFanOut]
	}

	slots := make([]menuSlot, len(restaurants))
	var wg sync.WaitGroup
	for i, restaurant := range restaurants {
		wg.Add(1)
		go func() {
			defer wg.Done()
			slots[i] = s.loadMenu(ctx, restaurant.ID)
		}()
	}
	wg.Wait()

	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(q.Query))
	matches := make([]DishMatch, 0, min(limit, DefaultDishLimit))
	skipped := 0
collect:
	for i, slot := range slots {
		if slot.err != nil {
			skipped++
			s.logger.WarnContext(ctx, "menu skipped during dish search",
				"restaurant_id", restaurants[i].ID,
				"error", slot.err,
			)
			continue
		}
		for _, item := range slot.menu.Items {
			if !strings.Contains(fold.String(item.Name), needle) && !strings.Contains(fold.String(item.Description), needle) {
				continue
			}
			matches = append(matches, DishMatch{
				Item:           item,
				RestaurantID:   restaurants[i].ID,
				RestaurantName: restaurants[i].Name,
				Provider:       restaurants[i].Provider,
			})
			if len(matches) == limit {
				break collect
			}
		}
	}

	span.SetAttributes(
		attribute.Int("food.menus_inspected", len(restaurants)),
		attribute.Int("food.menus_skipped", skipped),
		attribute.Int("food.dishes", len(matches)),
	)
	return matches, nil
}

func (s *Service) loadMenu(ctx context.Context, restaurantID string) (slot menuSlot) {
	defer func() {
		if r := recover(); r != nil {
			slot = menuSlot{err: apperrors.New(apperrors.CodeProviderFailure, fmt.Sprintf("menu %s panicked: %v", restaurantID, r))}
		}
	}()
	menu, err := s.GetMenu(ctx, restaurantID)
	return menuSlot{menu: menu, err: err}
}
