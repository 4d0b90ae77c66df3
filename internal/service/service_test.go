package service

import (
	"fmt"
	"testing"

	"github.com/hannahbenyin498-lang/inventory-system/internal/model"
	"github.com/hannahbenyin498-lang/inventory-system/internal/repository"
	"github.com/hannahbenyin498-lang/inventory-system/internal/ws"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the services against a fresh in-memory sqlite database.
type testEnv struct {
	db            *gorm.DB
	productRepo   repository.ProductRepository
	saleRepo      repository.SaleRepository
	thresholdRepo repository.ThresholdRepository
	inventory     InventoryService
	sales         SalesService
	csv           CSVService
	thresholds    ThresholdService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Product{}, &model.Sale{}, &model.Setting{}, &model.CategoryThreshold{}, &model.User{},
	))

	hub := ws.NewHub()
	go hub.Run()

	productRepo := repository.NewProductRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	thresholdRepo := repository.NewThresholdRepo(db)

	return &testEnv{
		db:            db,
		productRepo:   productRepo,
		saleRepo:      saleRepo,
		thresholdRepo: thresholdRepo,
		inventory:     NewInventoryService(productRepo, thresholdRepo, db, hub),
		sales:         NewSalesService(saleRepo, thresholdRepo, db, hub),
		csv:           NewCSVService(productRepo, thresholdRepo, db),
		thresholds:    NewThresholdService(thresholdRepo, productRepo),
	}
}

// seedProduct inserts a product directly, bypassing the service.
func (e *testEnv) seedProduct(t *testing.T, p model.Product) model.Product {
	t.Helper()
	require.NoError(t, e.db.Create(&p).Error)
	return p
}
