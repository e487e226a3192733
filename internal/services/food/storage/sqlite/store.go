// Package sqlite provides the in-memory SQLite catalog behind the mock
// providers and the user profile resources.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqlitemigrate "github.com/louisbranch/im-hungry/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/im-hungry/internal/services/food/storage"
	"github.com/louisbranch/im-hungry/internal/services/food/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const (
	kindDietaryRestriction = "dietary_restriction"
	kindFavoriteCuisine    = "favorite_cuisine"
)

var (
	_ storage.CatalogStore = (*Store)(nil)
	_ storage.UserStore    = (*Store)(nil)
)

// Store reads the seeded catalog. It is never written after Open.
type Store struct {
	sqlDB *sql.DB
}

// Open creates a private in-memory database and applies the embedded schema
// and seed migrations.
func Open(ctx context.Context) (*Store, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle, discarding the catalog.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// ListRestaurants returns the catalog in position order.
func (s *Store) ListRestaurants(ctx context.Context) ([]storage.Restaurant, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT position, name, cuisine, rating, delivery_time_minutes, delivery_fee
		 FROM restaurants
		 ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := make([]storage.Restaurant, 0, 8)
	for rows.Next() {
		restaurant, err := scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		restaurants = append(restaurants, restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate restaurants: %w", err)
	}
	return restaurants, nil
}

// GetRestaurant returns one restaurant by catalog position.
func (s *Store) GetRestaurant(ctx context.Context, position int) (storage.Restaurant, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Restaurant{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT position, name, cuisine, rating, delivery_time_minutes, delivery_fee
		 FROM restaurants
		 WHERE position = ?`,
		position,
	)
	restaurant, err := scanRestaurant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Restaurant{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Restaurant{}, fmt.Errorf("get restaurant %d: %w", position, err)
	}
	return restaurant, nil
}

// ListMenuItems returns a restaurant's menu in menu order. A restaurant
// without items yields an empty slice; an unknown restaurant is ErrNotFound.
func (s *Store) ListMenuItems(ctx context.Context, restaurantPosition int) ([]storage.MenuItem, error) {
	if _, err := s.GetRestaurant(ctx, restaurantPosition); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT position, name, description, price, category
		 FROM menu_items
		 WHERE restaurant_position = ?
		 ORDER BY position`,
		restaurantPosition,
	)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	items := make([]storage.MenuItem, 0, 4)
	for rows.Next() {
		var item storage.MenuItem
		if err := rows.Scan(&item.Position, &item.Name, &item.Description, &item.Price, &item.Category); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate menu items: %w", err)
	}
	return items, nil
}

// GetPreferences returns the user's preferences document.
func (s *Store) GetPreferences(ctx context.Context) (storage.Preferences, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Preferences{}, err
	}
	var prefs storage.Preferences
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT price_min, price_max FROM user_preferences WHERE id = 1`,
	).Scan(&prefs.PriceMin, &prefs.PriceMax)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Preferences{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Preferences{}, fmt.Errorf("get preferences: %w", err)
	}

	if prefs.DietaryRestrictions, err = s.preferenceValues(ctx, kindDietaryRestriction); err != nil {
		return storage.Preferences{}, err
	}
	if prefs.FavoriteCuisines, err = s.preferenceValues(ctx, kindFavoriteCuisine); err != nil {
		return storage.Preferences{}, err
	}
	return prefs, nil
}

func (s *Store) preferenceValues(ctx context.Context, kind string) ([]string, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT value FROM user_preference_values WHERE kind = ? ORDER BY position`,
		kind,
	)
	if err != nil {
		return nil, fmt.Errorf("list %s values: %w", kind, err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("scan %s value: %w", kind, err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s values: %w", kind, err)
	}
	return values, nil
}

// GetLocation returns the user's delivery address.
func (s *Store) GetLocation(ctx context.Context) (storage.Location, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Location{}, err
	}
	var loc storage.Location
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT address, city, state, zip_code FROM user_location WHERE id = 1`,
	).Scan(&loc.Address, &loc.City, &loc.State, &loc.ZipCode)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Location{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Location{}, fmt.Errorf("get location: %w", err)
	}
	return loc, nil
}

// ListOrders returns past orders, most recent first.
func (s *Store) ListOrders(ctx context.Context) ([]storage.Order, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT position, restaurant_name, ordered_on, total, service
		 FROM orders
		 ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	// Only one connection exists, so rows are drained before the item query.
	orders := make([]storage.Order, 0, 4)
	index := make(map[int]int)
	for rows.Next() {
		var (
			position int
			order    storage.Order
		)
		if err := rows.Scan(&position, &order.RestaurantName, &order.Date, &order.Total, &order.Service); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan order: %w", err)
		}
		order.Items = []string{}
		index[position] = len(orders)
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	_ = rows.Close()

	itemRows, err := s.sqlDB.QueryContext(ctx,
		`SELECT order_position, name FROM order_items ORDER BY order_position, position`,
	)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var (
			position int
			name     string
		)
		if err := itemRows.Scan(&position, &name); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if i, ok := index[position]; ok {
			orders[i].Items = append(orders[i].Items, name)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}
	return orders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRestaurant(row rowScanner) (storage.Restaurant, error) {
	var r storage.Restaurant
	err := row.Scan(&r.Position, &r.Name, &r.Cuisine, &r.Rating, &r.DeliveryTimeMinutes, &r.DeliveryFee)
	return r, err
}
