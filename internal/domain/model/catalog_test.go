package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewCatalog tests catalog construction and default fallback.
func TestNewCatalog(t *testing.T) {
	tests := []struct {
		name            string
		flavors         []Flavor
		days            []Day
		expectedFlavors []Flavor
		expectedDays    []Day
	}{
		{
			name:            "empty lists fall back to defaults",
			flavors:         nil,
			days:            nil,
			expectedFlavors: DefaultFlavors,
			expectedDays:    DefaultDays,
		},
		{
			name:            "custom flavors keep order",
			flavors:         []Flavor{"Quatro Queijos", "Portuguesa"},
			days:            []Day{"Quinta-Feira"},
			expectedFlavors: []Flavor{"Quatro Queijos", "Portuguesa"},
			expectedDays:    []Day{"Quinta-Feira"},
		},
		{
			name:            "empty flavors with custom days",
			flavors:         nil,
			days:            []Day{"Sexta-Feira"},
			expectedFlavors: DefaultFlavors,
			expectedDays:    []Day{"Sexta-Feira"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCatalog(tt.flavors, tt.days)
			assert.Equal(t, tt.expectedFlavors, c.Flavors())
			assert.Equal(t, tt.expectedDays, c.Days())
		})
	}
}

// TestCatalog_Membership tests HasFlavor and HasDay.
func TestCatalog_Membership(t *testing.T) {
	c := DefaultCatalog()

	assert.True(t, c.HasFlavor("Calabresa"))
	assert.True(t, c.HasFlavor("Americana"))
	assert.False(t, c.HasFlavor("Margherita"))
	assert.False(t, c.HasFlavor(""))

	assert.True(t, c.HasDay("Segunda-Feira"))
	assert.True(t, c.HasDay("Quarta-Feira"))
	assert.False(t, c.HasDay("Domingo"))
	assert.False(t, c.HasDay(""))
}

// TestCatalog_AccessorsReturnCopies verifies callers cannot mutate the catalog.
func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	c := DefaultCatalog()

	flavors := c.Flavors()
	flavors[0] = "Hacked"
	assert.Equal(t, DefaultFlavors[0], c.Flavors()[0])

	days := c.Days()
	days[0] = "Hacked"
	assert.Equal(t, DefaultDays[0], c.Days()[0])
}

// TestNewCatalog_CopiesInput verifies the catalog does not alias caller slices.
func TestNewCatalog_CopiesInput(t *testing.T) {
	flavors := []Flavor{"Calabresa"}
	days := []Day{"Segunda-Feira"}
	c := NewCatalog(flavors, days)

	flavors[0] = "Mutated"
	days[0] = "Mutated"

	assert.Equal(t, []Flavor{"Calabresa"}, c.Flavors())
	assert.Equal(t, []Day{"Segunda-Feira"}, c.Days())
}
