package repository

import (
	"errors"
	"strconv"

	"github.com/hannahbenyin498-lang/inventory-system/internal/model"
	"github.com/hannahbenyin498-lang/inventory-system/internal/stock"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ThresholdRepository interface {
	GetGlobalDefault() (int, error)
	SetGlobalDefault(value int) error
	GetOverrides() (map[string]int, error)
	SetOverride(category string, value int) error
	ClearOverride(category string) error
	Snapshot() (stock.Snapshot, error)
}

type thresholdRepo struct {
	db *gorm.DB
}

func NewThresholdRepo(db *gorm.DB) ThresholdRepository {
	return &thresholdRepo{db}
}

// GetGlobalDefault returns the configured default, or the built-in
// default when none was ever set.
func (r *thresholdRepo) GetGlobalDefault() (int, error) {
	var setting model.Setting
	err := r.db.First(&setting, "key = ?", model.SettingLowStockDefault).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return stock.DefaultThreshold, nil
	}
	if err != nil {
		return 0, err
	}
	value, convErr := strconv.Atoi(setting.Value)
	if convErr != nil || value < 0 {
		return stock.DefaultThreshold, nil
	}
	return value, nil
}

func (r *thresholdRepo) SetGlobalDefault(value int) error {
	setting := model.Setting{Key: model.SettingLowStockDefault, Value: strconv.Itoa(value)}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
}

func (r *thresholdRepo) GetOverrides() (map[string]int, error) {
	var rows []model.CategoryThreshold
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	overrides := make(map[string]int, len(rows))
	for _, row := range rows {
		overrides[row.Category] = row.Threshold
	}
	return overrides, nil
}

func (r *thresholdRepo) SetOverride(category string, value int) error {
	row := model.CategoryThreshold{Category: category, Threshold: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"threshold"}),
	}).Create(&row).Error
}

func (r *thresholdRepo) ClearOverride(category string) error {
	return r.db.Delete(&model.CategoryThreshold{}, "category = ?", category).Error
}

// Snapshot loads the full threshold configuration as one immutable
// value for the status engine.
func (r *thresholdRepo) Snapshot() (stock.Snapshot, error) {
	def, err := r.GetGlobalDefault()
	if err != nil {
		return stock.Snapshot{}, err
	}
	overrides, err := r.GetOverrides()
	if err != nil {
		return stock.Snapshot{}, err
	}
	return stock.NewSnapshot(def, overrides), nil
}
