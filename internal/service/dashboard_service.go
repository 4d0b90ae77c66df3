package service

import (
	"github.com/hannahbenyin498-lang/inventory-system/internal/repository"
)

type DashboardService interface {
	GetDashboard() (*repository.DashboardStats, error)
}

type dashboardService struct {
	dashRepo   repository.DashboardRepository
	thresholds ThresholdService
}

func NewDashboardService(dashRepo repository.DashboardRepository, thresholds ThresholdService) DashboardService {
	return &dashboardService{
		dashRepo:   dashRepo,
		thresholds: thresholds,
	}
}

// GetDashboard reconciles statuses first so the low/out-of-stock counts
// read a fresh column.
func (s *dashboardService) GetDashboard() (*repository.DashboardStats, error) {
	if err := s.thresholds.ReconcileAll(); err != nil {
		return nil, err
	}
	return s.dashRepo.GetStats()
}
