package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	snap := NewSnapshot(10, map[string]int{"Electronics": 5, "Food": 0})

	assert.Equal(t, 5, snap.Resolve("Electronics"))
	assert.Equal(t, 0, snap.Resolve("Food"), "zero override must win over the default")
	assert.Equal(t, 10, snap.Resolve("Clothing"))
	assert.Equal(t, 10, snap.Resolve(""))
}

func TestResolveFallsBackToBuiltInDefault(t *testing.T) {
	snap := NewSnapshot(-1, nil)
	assert.Equal(t, DefaultThreshold, snap.Resolve("anything"))
}

func TestDerive(t *testing.T) {
	snap := NewSnapshot(10, nil)

	cases := []struct {
		name     string
		quantity int
		want     Status
	}{
		{"negative quantity is out of stock", -3, StatusOutOfStock},
		{"zero is out of stock", 0, StatusOutOfStock},
		{"one below threshold is low", 9, StatusLowStock},
		{"single unit is low", 1, StatusLowStock},
		{"exactly at threshold is in stock", 10, StatusInStock},
		{"above threshold is in stock", 250, StatusInStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Derive(tc.quantity, "Uncategorized", snap))
		})
	}
}

func TestDeriveWithCategoryOverride(t *testing.T) {
	snap := NewSnapshot(10, map[string]int{"Electronics": 5})

	// Global default would call 6 low, the override says in stock.
	assert.Equal(t, StatusInStock, Derive(6, "Electronics", snap))
	assert.Equal(t, StatusLowStock, Derive(4, "Electronics", snap))
	assert.Equal(t, StatusLowStock, Derive(6, "Clothing", snap))
}

func TestOverrideRoundTrip(t *testing.T) {
	base := NewSnapshot(10, nil)
	withOverride := NewSnapshot(10, map[string]int{"Toys": 3})

	assert.Equal(t, StatusLowStock, Derive(5, "Toys", base))
	assert.Equal(t, StatusInStock, Derive(5, "Toys", withOverride))
	// Clearing the override returns resolution to the global default.
	assert.Equal(t, base.Resolve("Toys"), NewSnapshot(10, map[string]int{}).Resolve("Toys"))
}

func TestCorrections(t *testing.T) {
	snap := NewSnapshot(10, map[string]int{"Electronics": 5})

	rows := []StatusRow{
		// 1 and 3 have drifted: the override says 6 is in stock, and 0
		// can never be in stock.
		{ID: 1, Category: "Electronics", Quantity: 6, Status: StatusLowStock},
		{ID: 2, Category: "Clothing", Quantity: 6, Status: StatusLowStock},
		{ID: 3, Category: "Clothing", Quantity: 0, Status: StatusInStock},
		{ID: 4, Category: "Electronics", Quantity: 12, Status: StatusInStock},
	}

	batch := Corrections(rows, snap)
	assert.Len(t, batch, 2)
	assert.Equal(t, Correction{ProductID: 1, Status: StatusInStock}, batch[0])
	assert.Equal(t, Correction{ProductID: 3, Status: StatusOutOfStock}, batch[1])
}

func TestCorrectionsCleanListing(t *testing.T) {
	snap := NewSnapshot(10, nil)
	rows := []StatusRow{
		{ID: 1, Quantity: 10, Status: StatusInStock},
		{ID: 2, Quantity: 9, Status: StatusLowStock},
		{ID: 3, Quantity: 0, Status: StatusOutOfStock},
	}
	assert.Empty(t, Corrections(rows, snap))
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "Uncategorized", NormalizeCategory(""))
	assert.Equal(t, "Uncategorized", NormalizeCategory("   "))
	assert.Equal(t, "Electronics", NormalizeCategory(" Electronics "))
}
