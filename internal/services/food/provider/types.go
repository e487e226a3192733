package provider

// Restaurant is one search hit from a provider. ID always carries the tag of
// Provider as its prefix.
type Restaurant struct {
	ID                  string
	Name                string
	Cuisine             string
	Rating              float64
	DeliveryTimeMinutes int
	DeliveryFee         float64
	Provider            Provider
}

// MenuItem is one orderable dish.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
}

// Menu is a restaurant's full item list in provider order.
type Menu struct {
	RestaurantID   string
	RestaurantName string
	Items          []MenuItem
}

// DeliveryEstimate is the time and cost of delivery from one restaurant.
type DeliveryEstimate struct {
	RestaurantID         string
	RestaurantName       string
	EstimatedTimeMinutes int
	DeliveryFee          float64
	MinimumOrder         float64
	Provider             Provider
}
