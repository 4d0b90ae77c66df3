package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hannahbenyin498-lang/inventory-system/internal/model"
	"github.com/hannahbenyin498-lang/inventory-system/internal/repository"
	"github.com/hannahbenyin498-lang/inventory-system/internal/stock"
	"github.com/hannahbenyin498-lang/inventory-system/internal/ws"
	"github.com/hannahbenyin498-lang/inventory-system/pkg/validator"

	"gorm.io/gorm"
)

type InventoryService interface {
	CreateProduct(req *model.Product) error
	UpdateProduct(id uint, req *model.Product) (*model.Product, error)
	GetProduct(id uint) (*model.Product, error)
	ListProducts(search string) ([]model.Product, error)
	DeleteProduct(id uint, isAdmin bool) error
	ListCategories() ([]string, error)
}

type inventoryService struct {
	productRepo   repository.ProductRepository
	thresholdRepo repository.ThresholdRepository
	db            *gorm.DB
	wsHub         *ws.Hub
}

func NewInventoryService(pRepo repository.ProductRepository, tRepo repository.ThresholdRepository, db *gorm.DB, hub *ws.Hub) InventoryService {
	return &inventoryService{
		productRepo:   pRepo,
		thresholdRepo: tRepo,
		db:            db,
		wsHub:         hub,
	}
}

// defaultCategories are always offered alongside categories in use.
var defaultCategories = []string{"Electronics", "Clothing", "Food", stock.DefaultCategory}

func (s *inventoryService) CreateProduct(req *model.Product) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	if req.Quantity < 0 || req.Price < 0 {
		return ErrNegativeValue
	}
	req.Category = stock.NormalizeCategory(req.Category)

	// Empty SKUs are allowed and never participate in uniqueness.
	if req.SKU != "" {
		existing, err := s.productRepo.FindBySKU(req.SKU)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if existing != nil {
			return ErrSKUExists
		}
	}

	snap, err := s.thresholdRepo.Snapshot()
	if err != nil {
		return err
	}
	req.Status = stock.Derive(req.Quantity, req.Category, snap)

	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":   "stock_update",
		"action": "product_created",
		"product": map[string]interface{}{
			"id":       req.ID,
			"sku":      req.SKU,
			"name":     req.Name,
			"quantity": req.Quantity,
			"status":   req.Status,
		},
	})
	return nil
}

func (s *inventoryService) UpdateProduct(id uint, req *model.Product) (*model.Product, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	if req.Quantity < 0 || req.Price < 0 {
		return nil, ErrNegativeValue
	}
	req.Category = stock.NormalizeCategory(req.Category)

	snap, err := s.thresholdRepo.Snapshot()
	if err != nil {
		return nil, err
	}

	var updated *model.Product
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Product
		if err := lockForUpdate(tx).First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		// A renamed SKU must not collide with another product's.
		if req.SKU != "" && req.SKU != existing.SKU {
			var other model.Product
			if err := tx.First(&other, "sku = ? AND id <> ?", req.SKU, id).Error; err == nil {
				return ErrSKUExists
			}
		}

		existing.SKU = req.SKU
		existing.Name = req.Name
		existing.Category = req.Category
		existing.Quantity = req.Quantity
		existing.Price = req.Price
		existing.Status = stock.Derive(req.Quantity, req.Category, snap)
		if req.Image != "" {
			existing.Image = req.Image
		}

		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		updated = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":   "stock_update",
		"action": "product_updated",
		"product": map[string]interface{}{
			"id":       updated.ID,
			"sku":      updated.SKU,
			"name":     updated.Name,
			"quantity": updated.Quantity,
			"status":   updated.Status,
		},
	})
	return updated, nil
}

func (s *inventoryService) GetProduct(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// ListProducts returns the inventory, reconciling any stored status that
// has drifted from the derived one (e.g. after a threshold change).
// Corrections are persisted before the listing is returned.
func (s *inventoryService) ListProducts(search string) ([]model.Product, error) {
	products, err := s.productRepo.FindAll(search)
	if err != nil {
		return nil, err
	}
	snap, err := s.thresholdRepo.Snapshot()
	if err != nil {
		return nil, err
	}

	rows := make([]stock.StatusRow, len(products))
	for i := range products {
		rows[i] = products[i].StatusRow()
	}
	if batch := stock.Corrections(rows, snap); len(batch) > 0 {
		if err := s.productRepo.ApplyStatusCorrections(batch); err != nil {
			return nil, err
		}
		corrected := make(map[uint]stock.Status, len(batch))
		for _, c := range batch {
			corrected[c.ProductID] = c.Status
		}
		for i := range products {
			if st, ok := corrected[products[i].ID]; ok {
				products[i].Status = st
			}
		}
	}
	return products, nil
}

// DeleteProduct removes a product. Admin only; the sales ledger keeps
// its denormalized history rows.
func (s *inventoryService) DeleteProduct(id uint, isAdmin bool) error {
	if !isAdmin {
		return ErrPermissionDenied
	}
	if _, err := s.productRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return s.productRepo.Delete(id)
}

// ListCategories merges categories in use with the default set.
func (s *inventoryService) ListCategories() ([]string, error) {
	cats, err := s.productRepo.ListCategories()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(cats))
	for _, c := range cats {
		seen[c] = true
	}
	for _, d := range defaultCategories {
		if !seen[d] {
			cats = append(cats, d)
			seen[d] = true
		}
	}
	sort.Strings(cats)
	return cats, nil
}
