package aggregate

import (
	"context"
	"sync"
	"testing"

	apperrors "github.com/louisbranch/im-hungry/internal/platform/errors"
	"github.com/louisbranch/im-hungry/internal/services/food/provider"
)

type fakeClient struct {
	restaurants []provider.Restaurant
	searchErr   error
	searchPanic bool
	menus       map[string]provider.Menu
	menuErrs    map[string]error
	menuPanics  map[string]bool

	mu        sync.Mutex
	menuCalls []string
	searches  int
}

func (f *fakeClient) Search(_ context.Context, _, _ string) ([]provider.Restaurant, error) {
	f.mu.Lock()
	f.searches++
	f.mu.Unlock()
	if f.searchPanic {
		panic("upstream exploded")
	}
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	out := make([]provider.Restaurant, len(f.restaurants))
	copy(out, f.restaurants)
	return out, nil
}

func (f *fakeClient) GetMenu(_ context.Context, restaurantID string) (provider.Menu, error) {
	f.mu.Lock()
	f.menuCalls = append(f.menuCalls, restaurantID)
	f.mu.Unlock()
	if f.menuPanics[restaurantID] {
		panic("menu exploded")
	}
	if err := f.menuErrs[restaurantID]; err != nil {
		return provider.Menu{}, err
	}
	menu, ok := f.menus[restaurantID]
	if !ok {
		return provider.Menu{}, apperrors.New(apperrors.CodeNotFound, "restaurant "+restaurantID+" not found")
	}
	return menu, nil
}

func (f *fakeClient) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.menuCalls...)
}

type fakeSet map[provider.Provider]*fakeClient

func newFakeSet() fakeSet {
	return fakeSet{
		provider.DoorDash: {},
		provider.UberEats: {},
		provider.Grubhub:  {},
	}
}

func (f fakeSet) clients() map[provider.Provider]provider.Client {
	clients := make(map[provider.Provider]provider.Client, len(f))
	for p, c := range f {
		clients[p] = c
	}
	return clients
}

func (f fakeSet) service(t testing.TB) *Service {
	t.Helper()
	svc, err := New(f.clients())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func restaurant(p provider.Provider, seq int, name string, rating float64) provider.Restaurant {
	return provider.Restaurant{
		ID:                  provider.RestaurantID(p, seq),
		Name:                name,
		Cuisine:             "Test",
		Rating:              rating,
		DeliveryTimeMinutes: 20,
		DeliveryFee:         1.99,
		Provider:            p,
	}
}

func menuOf(r provider.Restaurant, names ...string) provider.Menu {
	p, _ := provider.ParseID(r.ID)
	menu := provider.Menu{RestaurantID: r.ID, RestaurantName: r.Name}
	for i, name := range names {
		menu.Items = append(menu.Items, provider.MenuItem{
			ID:       provider.MenuItemID(p, i+1),
			Name:     name,
			Price:    9.99,
			Category: "Mains",
		})
	}
	return menu
}
