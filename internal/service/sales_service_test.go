package service

import (
	"testing"

	"github.com/hannahbenyin498-lang/inventory-system/internal/model"
	"github.com/hannahbenyin498-lang/inventory-system/internal/stock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSale(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, model.Product{
		SKU: "W-1", Name: "Widget", Category: "Tools",
		Quantity: 5, Price: 9.99, Status: stock.StatusLowStock,
	})

	result, err := env.sales.RecordSale(p.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, result.NewQuantity)
	assert.Equal(t, stock.StatusLowStock, result.Status)

	// Ledger entry carries the quantity sold and the price at sale time.
	assert.Equal(t, 3, result.Sale.Quantity)
	assert.Equal(t, 9.99, result.Sale.Price)
	assert.Equal(t, "W-1", result.Sale.SKU)
	assert.Equal(t, "Widget", result.Sale.Name)
	assert.False(t, result.Sale.SaleDate.IsZero())

	var stored model.Product
	require.NoError(t, env.db.First(&stored, p.ID).Error)
	assert.Equal(t, 2, stored.Quantity)

	sales, err := env.sales.ListSales(10)
	require.NoError(t, err)
	require.Len(t, sales, 1)
}

func TestRecordSaleExactQuantity(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, model.Product{
		Name: "Widget", Quantity: 4, Price: 2, Status: stock.StatusLowStock,
	})

	result, err := env.sales.RecordSale(p.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, result.NewQuantity)
	assert.Equal(t, stock.StatusOutOfStock, result.Status)
	assert.Equal(t, 4, result.Sale.Quantity)
}

func TestRecordSaleInsufficientStock(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, model.Product{
		Name: "Widget", Quantity: 5, Price: 1, Status: stock.StatusLowStock,
	})

	_, err := env.sales.RecordSale(p.ID, 10)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// No mutation: quantity untouched, ledger empty.
	var stored model.Product
	require.NoError(t, env.db.First(&stored, p.ID).Error)
	assert.Equal(t, 5, stored.Quantity)

	var n int64
	env.db.Model(&model.Sale{}).Count(&n)
	assert.Zero(t, n)
}

func TestRecordSaleInvalidQuantity(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, model.Product{Name: "Widget", Quantity: 5, Price: 1})

	for _, qty := range []int{0, -2} {
		_, err := env.sales.RecordSale(p.ID, qty)
		assert.ErrorIs(t, err, ErrInvalidQuantity, "quantity %d", qty)
	}
}

func TestRecordSaleProductNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.sales.RecordSale(999, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestRecordSaleDBFailureIsNotNotFound(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, model.Product{Name: "Widget", Quantity: 5, Price: 1})

	// A broken connection must surface as a storage error, not as a
	// missing product.
	sqlDB, err := env.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = env.sales.RecordSale(p.ID, 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrProductNotFound)
}

func TestRecordSaleUsesCategoryOverride(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.thresholdRepo.SetOverride("Electronics", 5))
	p := env.seedProduct(t, model.Product{
		Name: "Cable", Category: "Electronics", Quantity: 9, Price: 1,
		Status: stock.StatusInStock,
	})

	// 9 -> 6: still at or above the override of 5.
	result, err := env.sales.RecordSale(p.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, stock.StatusInStock, result.Status)
}
