// Package storage defines the read-only contracts for the mock catalog and
// the user profile documents.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound indicates a requested catalog record is missing.
var ErrNotFound = errors.New("record not found")

// Restaurant is one catalog entry. Position is its 1-based place in the
// catalog and never changes.
type Restaurant struct {
	Position            int
	Name                string
	Cuisine             string
	Rating              float64
	DeliveryTimeMinutes int
	DeliveryFee         float64
}

// MenuItem is one catalog dish. Position is its 1-based place in the menu.
type MenuItem struct {
	Position    int
	Name        string
	Description string
	Price       float64
	Category    string
}

// Preferences stores the user's food preferences.
type Preferences struct {
	DietaryRestrictions []string
	FavoriteCuisines    []string
	PriceMin            float64
	PriceMax            float64
}

// Location stores the user's delivery address.
type Location struct {
	Address string
	City    string
	State   string
	ZipCode string
}

// Order stores one past order.
type Order struct {
	RestaurantName string
	Items          []string
	Date           string
	Total          float64
	Service        string
}

// CatalogStore reads restaurants and menus.
type CatalogStore interface {
	ListRestaurants(ctx context.Context) ([]Restaurant, error)
	GetRestaurant(ctx context.Context, position int) (Restaurant, error)
	ListMenuItems(ctx context.Context, restaurantPosition int) ([]MenuItem, error)
}

// UserStore reads the user profile documents.
type UserStore interface {
	GetPreferences(ctx context.Context) (Preferences, error)
	GetLocation(ctx context.Context) (Location, error)
	ListOrders(ctx context.Context) ([]Order, error)
}
