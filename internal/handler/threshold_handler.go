package handler

import (
	"errors"
	"net/url"

	"github.com/hannahbenyin498-lang/inventory-system/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ThresholdHandler struct {
	service service.ThresholdService
}

func NewThresholdHandler(s service.ThresholdService) *ThresholdHandler {
	return &ThresholdHandler{service: s}
}

type thresholdRequest struct {
	Value int `json:"value"`
}

func (h *ThresholdHandler) GetThresholds(c *fiber.Ctx) error {
	config, err := h.service.GetConfig()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(config)
}

func (h *ThresholdHandler) SetDefault(c *fiber.Ctx) error {
	var req thresholdRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := h.service.SetGlobalDefault(req.Value); err != nil {
		if errors.Is(err, service.ErrInvalidThreshold) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "Default threshold updated"})
}

func (h *ThresholdHandler) SetOverride(c *fiber.Ctx) error {
	category := pathCategory(c)
	var req thresholdRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := h.service.SetCategoryOverride(category, req.Value); err != nil {
		if errors.Is(err, service.ErrInvalidThreshold) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "Threshold for " + category + " updated"})
}

func (h *ThresholdHandler) ClearOverride(c *fiber.Ctx) error {
	category := pathCategory(c)
	if err := h.service.ClearCategoryOverride(category); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "Threshold for " + category + " cleared"})
}

// pathCategory decodes the :category route param (category names may
// contain spaces).
func pathCategory(c *fiber.Ctx) string {
	raw := c.Params("category")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
