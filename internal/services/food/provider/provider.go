package provider

// Provider identifies one upstream food-delivery service. The set is closed:
// only the constants below are valid.
type Provider int

const (
	// Unknown is the zero value and never routes anywhere.
	Unknown Provider = iota
	// DoorDash uses tag "dd".
	DoorDash
	// UberEats uses tag "ue".
	UberEats
	// Grubhub uses tag "gh".
	Grubhub
)

// All lists every provider in invocation order. Aggregated results are
// concatenated in this order before ranking.
var All = []Provider{DoorDash, UberEats, Grubhub}

var (
	tags = map[Provider]string{
		DoorDash: "dd",
		UberEats: "ue",
		Grubhub:  "gh",
	}
	services = map[Provider]string{
		DoorDash: "doordash",
		UberEats: "ubereats",
		Grubhub:  "grubhub",
	}
)

// Valid reports whether p is one of the known providers.
func (p Provider) Valid() bool {
	_, ok := tags[p]
	return ok
}

// Tag returns the short identifier prefix, or "" for an invalid provider.
func (p Provider) Tag() string {
	return tags[p]
}

// Service returns the wire name ("doordash", "ubereats", "grubhub").
func (p Provider) Service() string {
	return services[p]
}

// String implements fmt.Stringer.
func (p Provider) String() string {
	if s := services[p]; s != "" {
		return s
	}
	return "unknown"
}

// FromTag resolves a tag such as "ue" to its provider.
func FromTag(tag string) (Provider, bool) {
	for _, p := range All {
		if tags[p] == tag {
			return p, true
		}
	}
	return Unknown, false
}

// FromService resolves a wire service name such as "grubhub" to its provider.
func FromService(name string) (Provider, bool) {
	for _, p := range All {
		if services[p] == name {
			return p, true
		}
	}
	return Unknown, false
}
