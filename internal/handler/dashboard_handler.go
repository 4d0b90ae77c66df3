package handler

import (
	"github.com/hannahbenyin498-lang/inventory-system/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboard returns overview statistics for the store.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	stats, err := h.service.GetDashboard()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}
	return c.JSON(stats)
}
