package repository

import (
	"github.com/hannahbenyin498-lang/inventory-system/internal/model"
	"github.com/hannahbenyin498-lang/inventory-system/internal/stock"

	"gorm.io/gorm"
)

// CategoryQuantity is one slice of the dashboard category distribution.
type CategoryQuantity struct {
	Name     string `json:"name"`
	Quantity int    `json:"qty"`
}

// DashboardStats is the overview block for the dashboard view.
type DashboardStats struct {
	TotalProducts int64              `json:"total_products"`
	TotalQuantity int64              `json:"total_quantity"`
	TotalValue    float64            `json:"total_value"`
	LowStock      int64              `json:"low_stock"`
	OutOfStock    int64              `json:"out_of_stock"`
	Categories    []CategoryQuantity `json:"categories"`
	RecentSales   []model.Sale       `json:"recent_sales"`
}

type DashboardRepository interface {
	GetStats() (*DashboardStats, error)
}

type dashboardRepo struct {
	db *gorm.DB
}

func NewDashboardRepo(db *gorm.DB) DashboardRepository {
	return &dashboardRepo{db}
}

// GetStats aggregates the dashboard numbers. Status counts read the
// stored column; callers run reconciliation first so the column is
// fresh.
func (r *dashboardRepo) GetStats() (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&stats.TotalQuantity).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(quantity * price), 0)").
		Scan(&stats.TotalValue).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Where("status = ?", stock.StatusLowStock).
		Count(&stats.LowStock).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Where("status = ?", stock.StatusOutOfStock).
		Count(&stats.OutOfStock).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Product{}).
		Select("category AS name, COALESCE(SUM(quantity), 0) AS quantity").
		Group("category").
		Order("quantity DESC").
		Limit(5).
		Scan(&stats.Categories).Error; err != nil {
		return nil, err
	}

	if err := r.db.Order("sale_date DESC").Limit(10).Find(&stats.RecentSales).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
