package api

import (
	"github.com/gofiber/fiber/v3"

	"altboard/internal/config"
)

// CategoryHandler serves the configured category list to the SPA.
type CategoryHandler struct {
	categories *config.Categories
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categories *config.Categories) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List returns the category tags suggestions can carry.
func (h *CategoryHandler) List(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories": h.categories.Tags,
	})
}
