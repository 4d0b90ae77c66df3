package stock

import "strings"

// Status is the derived stock level of a product. It is cached in the
// products table but is always recomputable from quantity + thresholds;
// the stored value is never treated as ground truth.
type Status string

const (
	StatusInStock    Status = "In Stock"
	StatusLowStock   Status = "Low Stock"
	StatusOutOfStock Status = "Out of Stock"
)

// DefaultThreshold applies when no global default was ever configured.
const DefaultThreshold = 10

// DefaultCategory is the normalized form of an empty category.
const DefaultCategory = "Uncategorized"

// Snapshot is an immutable view of the threshold configuration: a global
// default plus per-category overrides. Callers load it once per
// operation; Resolve and Derive never touch storage.
type Snapshot struct {
	Default   int
	Overrides map[string]int
}

// NewSnapshot builds a snapshot, falling back to DefaultThreshold when
// the default is negative (never persisted, but defensive).
func NewSnapshot(def int, overrides map[string]int) Snapshot {
	if def < 0 {
		def = DefaultThreshold
	}
	return Snapshot{Default: def, Overrides: overrides}
}

// Resolve returns the effective low-stock threshold for a category.
// An override wins even when it is zero; anything else falls back to
// the global default.
func (s Snapshot) Resolve(category string) int {
	if t, ok := s.Overrides[category]; ok {
		return t
	}
	return s.Default
}

// Derive computes the stock status for a quantity in a category.
// Quantity at exactly the threshold is In Stock; zero or negative is
// Out of Stock.
func Derive(quantity int, category string, snap Snapshot) Status {
	if quantity <= 0 {
		return StatusOutOfStock
	}
	if quantity < snap.Resolve(category) {
		return StatusLowStock
	}
	return StatusInStock
}

// Correction is one entry of a status reconciliation batch.
type Correction struct {
	ProductID uint
	Status    Status
}

// StatusRow is the minimal product projection reconciliation needs.
type StatusRow struct {
	ID       uint
	Category string
	Quantity int
	Status   Status
}

// Corrections returns the batch of products whose stored status has
// drifted from the derived one, e.g. after a threshold change. The
// caller persists the batch before considering the listing fresh.
func Corrections(rows []StatusRow, snap Snapshot) []Correction {
	var batch []Correction
	for _, r := range rows {
		if derived := Derive(r.Quantity, r.Category, snap); derived != r.Status {
			batch = append(batch, Correction{ProductID: r.ID, Status: derived})
		}
	}
	return batch
}

// NormalizeCategory maps an empty or whitespace-only category to
// DefaultCategory.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return DefaultCategory
	}
	return category
}
