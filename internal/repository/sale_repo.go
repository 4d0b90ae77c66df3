package repository

import (
	"github.com/hannahbenyin498-lang/inventory-system/internal/model"

	"gorm.io/gorm"
)

// SaleRepository is append-only: ledger rows are never updated or
// deleted by normal operation.
type SaleRepository interface {
	Append(sale *model.Sale) error
	ListRecent(limit int) ([]model.Sale, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) Append(sale *model.Sale) error {
	return r.db.Create(sale).Error
}

func (r *saleRepo) ListRecent(limit int) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Order("sale_date DESC").Limit(limit).Find(&sales).Error
	return sales, err
}
