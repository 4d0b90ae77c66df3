package service

import (
	"errors"
	"time"

	"github.com/hannahbenyin498-lang/inventory-system/internal/model"
	"github.com/hannahbenyin498-lang/inventory-system/internal/repository"
	"github.com/hannahbenyin498-lang/inventory-system/internal/stock"
	"github.com/hannahbenyin498-lang/inventory-system/internal/ws"

	"gorm.io/gorm"
)

type SalesService interface {
	RecordSale(productID uint, quantitySold int) (*SaleResult, error)
	ListSales(limit int) ([]model.Sale, error)
}

// SaleResult reports the outcome of a committed sale.
type SaleResult struct {
	NewQuantity int          `json:"new_quantity"`
	Status      stock.Status `json:"status"`
	Sale        model.Sale   `json:"sale"`
}

type salesService struct {
	saleRepo      repository.SaleRepository
	thresholdRepo repository.ThresholdRepository
	db            *gorm.DB
	wsHub         *ws.Hub
}

func NewSalesService(sRepo repository.SaleRepository, tRepo repository.ThresholdRepository, db *gorm.DB, hub *ws.Hub) SalesService {
	return &salesService{
		saleRepo:      sRepo,
		thresholdRepo: tRepo,
		db:            db,
		wsHub:         hub,
	}
}

// RecordSale atomically decrements stock, recomputes status, and
// appends a ledger entry priced at the time of sale. Either the
// quantity update and the ledger append both happen, or neither does.
func (s *salesService) RecordSale(productID uint, quantitySold int) (*SaleResult, error) {
	if quantitySold <= 0 {
		return nil, ErrInvalidQuantity
	}

	snap, err := s.thresholdRepo.Snapshot()
	if err != nil {
		return nil, err
	}

	var result *SaleResult
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := lockForUpdate(tx).First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		if quantitySold > product.Quantity {
			return ErrInsufficientStock
		}

		product.Quantity -= quantitySold
		product.Status = stock.Derive(product.Quantity, product.Category, snap)
		if err := tx.Save(&product).Error; err != nil {
			return err
		}

		sale := model.Sale{
			ProductID: product.ID,
			SKU:       product.SKU,
			Name:      product.Name,
			Quantity:  quantitySold,
			Price:     product.Price,
			SaleDate:  time.Now(),
		}
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		result = &SaleResult{
			NewQuantity: product.Quantity,
			Status:      product.Status,
			Sale:        sale,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":   "stock_update",
		"action": "sale_recorded",
		"sale": map[string]interface{}{
			"product_id":   result.Sale.ProductID,
			"name":         result.Sale.Name,
			"quantity":     result.Sale.Quantity,
			"new_quantity": result.NewQuantity,
			"status":       result.Status,
		},
	})

	return result, nil
}

func (s *salesService) ListSales(limit int) ([]model.Sale, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.saleRepo.ListRecent(limit)
}
