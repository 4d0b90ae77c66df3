package service

import (
	"testing"

	"github.com/hannahbenyin498-lang/inventory-system/internal/model"
	"github.com/hannahbenyin498-lang/inventory-system/internal/stock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	env := newTestEnv(t)

	p := &model.Product{SKU: "W-1", Name: "Widget", Quantity: 25, Price: 9.99}
	require.NoError(t, env.inventory.CreateProduct(p))

	assert.NotZero(t, p.ID)
	assert.Equal(t, stock.DefaultCategory, p.Category, "empty category normalizes")
	assert.Equal(t, stock.StatusInStock, p.Status)
}

func TestCreateProductDuplicateSKU(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, model.Product{SKU: "W-1", Name: "Widget", Quantity: 1, Price: 1})

	err := env.inventory.CreateProduct(&model.Product{SKU: "W-1", Name: "Other", Quantity: 1, Price: 1})
	assert.ErrorIs(t, err, ErrSKUExists)
}

func TestCreateProductDBFailureIsNotTreatedAsUnique(t *testing.T) {
	env := newTestEnv(t)

	sqlDB, err := env.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// With the store unreachable the duplicate check cannot pass; the
	// create must fail rather than assume the sku is free.
	err = env.inventory.CreateProduct(&model.Product{SKU: "W-1", Name: "Widget", Quantity: 1, Price: 1})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSKUExists)
}

func TestCreateProductEmptySKUsDoNotCollide(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.inventory.CreateProduct(&model.Product{Name: "One", Quantity: 1, Price: 1}))
	require.NoError(t, env.inventory.CreateProduct(&model.Product{Name: "Two", Quantity: 1, Price: 1}))
}

func TestCreateProductRejectsNegativeValues(t *testing.T) {
	env := newTestEnv(t)

	err := env.inventory.CreateProduct(&model.Product{Name: "Widget", Quantity: -1, Price: 1})
	assert.Error(t, err)

	err = env.inventory.CreateProduct(&model.Product{Name: "Widget", Quantity: 1, Price: -0.5})
	assert.Error(t, err)
}

func TestUpdateProductRecomputesStatus(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, model.Product{
		SKU: "W-1", Name: "Widget", Quantity: 25, Price: 1, Status: stock.StatusInStock,
	})

	updated, err := env.inventory.UpdateProduct(p.ID, &model.Product{
		SKU: "W-1", Name: "Widget", Quantity: 4, Price: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, stock.StatusLowStock, updated.Status)
}

func TestUpdateProductSKUConflict(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, model.Product{SKU: "A-1", Name: "A", Quantity: 1, Price: 1})
	p := env.seedProduct(t, model.Product{SKU: "B-1", Name: "B", Quantity: 1, Price: 1})

	_, err := env.inventory.UpdateProduct(p.ID, &model.Product{SKU: "A-1", Name: "B", Quantity: 1, Price: 1})
	assert.ErrorIs(t, err, ErrSKUExists)
}

func TestListProductsReconcilesDriftedStatus(t *testing.T) {
	env := newTestEnv(t)
	// Stored status says Low Stock; with the default threshold of 10 a
	// quantity of 10 derives In Stock.
	p := env.seedProduct(t, model.Product{
		Name: "Widget", Category: "Tools", Quantity: 10, Price: 1,
		Status: stock.StatusLowStock,
	})

	products, err := env.inventory.ListProducts("")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, stock.StatusInStock, products[0].Status)

	// Correction was persisted, not just reported.
	var stored model.Product
	require.NoError(t, env.db.First(&stored, p.ID).Error)
	assert.Equal(t, stock.StatusInStock, stored.Status)
}

func TestListProductsSearch(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, model.Product{SKU: "W-1", Name: "Widget", Category: "Tools", Quantity: 1, Price: 1, Status: stock.StatusLowStock})
	env.seedProduct(t, model.Product{SKU: "C-1", Name: "Cable", Category: "Electronics", Quantity: 1, Price: 1, Status: stock.StatusLowStock})

	products, err := env.inventory.ListProducts("Elect")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Cable", products[0].Name)
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, model.Product{Name: "Widget", Quantity: 1, Price: 1})

	t.Run("non-admin is rejected", func(t *testing.T) {
		err := env.inventory.DeleteProduct(p.ID, false)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("admin deletes", func(t *testing.T) {
		require.NoError(t, env.inventory.DeleteProduct(p.ID, true))
		_, err := env.inventory.GetProduct(p.ID)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("missing product", func(t *testing.T) {
		err := env.inventory.DeleteProduct(9999, true)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestListCategoriesMergesDefaults(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, model.Product{Name: "Widget", Category: "Tools", Quantity: 1, Price: 1})

	cats, err := env.inventory.ListCategories()
	require.NoError(t, err)
	assert.Contains(t, cats, "Tools")
	assert.Contains(t, cats, "Electronics")
	assert.Contains(t, cats, "Uncategorized")
	assert.IsIncreasing(t, cats)
}
