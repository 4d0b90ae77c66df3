package handler

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ImageHandler stores uploaded product images and hands back a relative
// path. The rest of the system treats that path as an opaque string.
type ImageHandler struct {
	dir string
}

func NewImageHandler(dir string) *ImageHandler {
	return &ImageHandler{dir: dir}
}

var allowedImageExt = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
}

func (h *ImageHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "No file provided"})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExt[ext] {
		return c.Status(400).JSON(fiber.Map{"error": "Unsupported image type"})
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Could not store image"})
	}

	name := uuid.New().String() + ext
	if err := c.SaveFile(fileHeader, filepath.Join(h.dir, name)); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Could not store image"})
	}

	return c.Status(201).JSON(fiber.Map{"image": filepath.Join("images", name)})
}
