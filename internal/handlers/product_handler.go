package handlers

import (
	"log"

	"beautyshop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the public catalog.
type ProductHandler struct {
	service *services.CatalogService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/categories", h.HandleGetCategories)
}

// HandleGetProducts lists the catalog, optionally filtered by the category
// query parameter ("all" or absent means everything).
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	category := c.Query("category")

	products, err := h.service.ListProducts(category)
	if err != nil {
		log.Printf("Error fetching products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load the products",
		})
	}
	return c.JSON(products)
}

// HandleGetCategories lists the categories for the storefront filter.
func (h *ProductHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		log.Printf("Error fetching categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load the categories",
		})
	}
	return c.JSON(categories)
}
