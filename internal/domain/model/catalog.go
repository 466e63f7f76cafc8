// Package model defines the core domain entities for the pizzeria stock service.
package model

// Flavor is one of the fixed pizza flavors tracked by the catalog.
type Flavor string

// Day is one of the fixed weekday labels tracked by the catalog.
type Day string

var (
	// DefaultFlavors is the flavor catalog used when none is configured.
	DefaultFlavors = []Flavor{"Calabresa", "Mussarela", "Frango", "Americana"}

	// DefaultDays is the weekday catalog used when none is configured.
	DefaultDays = []Day{"Segunda-Feira", "Terça-Feira", "Quarta-Feira"}
)

// Catalog holds the fixed flavor and day enumerations.
// Entries are configuration, never created or destroyed at runtime.
type Catalog struct {
	flavors []Flavor
	days    []Day

	flavorSet map[Flavor]struct{}
	daySet    map[Day]struct{}
}

// NewCatalog builds a catalog from the given flavor and day lists.
// Empty lists fall back to the defaults.
func NewCatalog(flavors []Flavor, days []Day) Catalog {
	if len(flavors) == 0 {
		flavors = DefaultFlavors
	}
	if len(days) == 0 {
		days = DefaultDays
	}

	c := Catalog{
		flavors:   make([]Flavor, len(flavors)),
		days:      make([]Day, len(days)),
		flavorSet: make(map[Flavor]struct{}, len(flavors)),
		daySet:    make(map[Day]struct{}, len(days)),
	}
	copy(c.flavors, flavors)
	copy(c.days, days)

	for _, f := range flavors {
		c.flavorSet[f] = struct{}{}
	}
	for _, d := range days {
		c.daySet[d] = struct{}{}
	}
	return c
}

// DefaultCatalog returns a catalog with the default flavors and days.
func DefaultCatalog() Catalog {
	return NewCatalog(nil, nil)
}

// Flavors returns the flavor list in catalog order.
func (c Catalog) Flavors() []Flavor {
	out := make([]Flavor, len(c.flavors))
	copy(out, c.flavors)
	return out
}

// Days returns the day list in catalog order.
func (c Catalog) Days() []Day {
	out := make([]Day, len(c.days))
	copy(out, c.days)
	return out
}

// HasFlavor reports whether the flavor belongs to the catalog.
func (c Catalog) HasFlavor(f Flavor) bool {
	_, ok := c.flavorSet[f]
	return ok
}

// HasDay reports whether the day belongs to the catalog.
func (c Catalog) HasDay(d Day) bool {
	_, ok := c.daySet[d]
	return ok
}
