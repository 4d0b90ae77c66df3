package service

import (
	"github.com/hannahbenyin498-lang/inventory-system/internal/repository"
	"github.com/hannahbenyin498-lang/inventory-system/internal/stock"
)

// ThresholdConfig is the full threshold configuration as exposed to the
// API.
type ThresholdConfig struct {
	Default   int            `json:"default"`
	Overrides map[string]int `json:"overrides"`
}

type ThresholdService interface {
	GetConfig() (*ThresholdConfig, error)
	SetGlobalDefault(value int) error
	SetCategoryOverride(category string, value int) error
	ClearCategoryOverride(category string) error
	ReconcileAll() error
}

type thresholdService struct {
	thresholdRepo repository.ThresholdRepository
	productRepo   repository.ProductRepository
}

func NewThresholdService(tRepo repository.ThresholdRepository, pRepo repository.ProductRepository) ThresholdService {
	return &thresholdService{
		thresholdRepo: tRepo,
		productRepo:   pRepo,
	}
}

func (s *thresholdService) GetConfig() (*ThresholdConfig, error) {
	def, err := s.thresholdRepo.GetGlobalDefault()
	if err != nil {
		return nil, err
	}
	overrides, err := s.thresholdRepo.GetOverrides()
	if err != nil {
		return nil, err
	}
	return &ThresholdConfig{Default: def, Overrides: overrides}, nil
}

func (s *thresholdService) SetGlobalDefault(value int) error {
	if value < 0 {
		return ErrInvalidThreshold
	}
	if err := s.thresholdRepo.SetGlobalDefault(value); err != nil {
		return err
	}
	return s.ReconcileAll()
}

func (s *thresholdService) SetCategoryOverride(category string, value int) error {
	if value < 0 {
		return ErrInvalidThreshold
	}
	if err := s.thresholdRepo.SetOverride(stock.NormalizeCategory(category), value); err != nil {
		return err
	}
	return s.ReconcileAll()
}

func (s *thresholdService) ClearCategoryOverride(category string) error {
	if err := s.thresholdRepo.ClearOverride(stock.NormalizeCategory(category)); err != nil {
		return err
	}
	return s.ReconcileAll()
}

// ReconcileAll recomputes every product's status against the current
// thresholds and persists the drifted rows. Runs after every threshold
// mutation.
func (s *thresholdService) ReconcileAll() error {
	products, err := s.productRepo.FindAll("")
	if err != nil {
		return err
	}
	snap, err := s.thresholdRepo.Snapshot()
	if err != nil {
		return err
	}
	rows := make([]stock.StatusRow, len(products))
	for i := range products {
		rows[i] = products[i].StatusRow()
	}
	if batch := stock.Corrections(rows, snap); len(batch) > 0 {
		return s.productRepo.ApplyStatusCorrections(batch)
	}
	return nil
}
