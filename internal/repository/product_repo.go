package repository

import (
	"github.com/hannahbenyin498-lang/inventory-system/internal/model"
	"github.com/hannahbenyin498-lang/inventory-system/internal/stock"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(search string) ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uint) error
	ApplyStatusCorrections(batch []stock.Correction) error
	IDAndSKUIndex() (map[uint]bool, map[string]uint, error)
	ListCategories() ([]string, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

// FindAll lists products ordered by name, optionally filtered by a
// substring match on name, sku, or category.
func (r *productRepo) FindAll(search string) ([]model.Product, error) {
	var products []model.Product
	q := r.db.Order("name")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR sku LIKE ? OR category LIKE ?", like, like, like)
	}
	err := q.Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "sku = ?", sku).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uint) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

// ApplyStatusCorrections persists a reconciliation batch. Each
// correction is written individually; the batch is small in practice
// (only drifted rows).
func (r *productRepo) ApplyStatusCorrections(batch []stock.Correction) error {
	for _, c := range batch {
		err := r.db.Model(&model.Product{}).
			Where("id = ?", c.ProductID).
			Update("status", c.Status).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// IDAndSKUIndex loads the conflict-detection indexes for CSV import:
// the set of existing ids and a non-empty-sku → id map.
func (r *productRepo) IDAndSKUIndex() (map[uint]bool, map[string]uint, error) {
	var rows []struct {
		ID  uint
		SKU string
	}
	if err := r.db.Model(&model.Product{}).Select("id", "sku").Find(&rows).Error; err != nil {
		return nil, nil, err
	}
	ids := make(map[uint]bool, len(rows))
	skus := make(map[string]uint)
	for _, row := range rows {
		ids[row.ID] = true
		if row.SKU != "" {
			skus[row.SKU] = row.ID
		}
	}
	return ids, skus, nil
}

func (r *productRepo) ListCategories() ([]string, error) {
	var cats []string
	err := r.db.Model(&model.Product{}).
		Distinct("category").
		Where("category IS NOT NULL AND category != ''").
		Order("category").
		Pluck("category", &cats).Error
	return cats, err
}
