package handlers

import (
	"errors"
	"fmt"
	"log"

	"beautyshop/internal/repositories"
	"beautyshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles HTTP requests for the administrative panel.
type AdminHandler struct {
	service  *services.AdminService
	validate *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the admin routes with the Fiber app.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	adminRoutes := router.Group("/admin")
	adminRoutes.Post("/products", h.HandleCreateProduct)
	adminRoutes.Delete("/products/:id", h.HandleDeleteProduct)
	adminRoutes.Get("/stats", h.HandleGetStats)
	adminRoutes.Get("/categories", h.HandleGetCategories)
	adminRoutes.Patch("/orders/:id/status", h.HandleUpdateOrderStatus)
}

// CreateProductRequest is the admin product form body. The category arrives
// as a slug.
type CreateProductRequest struct {
	Name         string  `json:"name" validate:"required"`
	Price        float64 `json:"price" validate:"gte=0"`
	CategorySlug string  `json:"category_slug" validate:"required"`
	ImageURL     string  `json:"image_url"`
	Description  string  `json:"description"`
}

// HandleCreateProduct inserts a new catalog product.
func (h *AdminHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create-product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid data (name, price, or category)",
			"errors":  errorMessages,
		})
	}

	productID, err := h.service.CreateProduct(services.CreateProductInput{
		Name:         req.Name,
		Price:        req.Price,
		CategorySlug: req.CategorySlug,
		ImageURL:     req.ImageURL,
		Description:  req.Description,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid category",
			})
		}
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add the product",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Product added successfully",
		"productId": productID,
	})
}

// HandleDeleteProduct deletes a product by its ID.
func (h *AdminHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product ID",
		})
	}

	if err := h.service.DeleteProduct(uint(productID)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error deleting product %d: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete the product",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

// HandleGetStats returns the admin overview counters.
func (h *AdminHandler) HandleGetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats()
	if err != nil {
		log.Printf("Error fetching admin stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load the statistics",
		})
	}
	return c.JSON(stats)
}

// HandleGetCategories lists the categories for the admin product form.
func (h *AdminHandler) HandleGetCategories(c *fiber.Ctx) error {
	options, err := h.service.ListCategoryOptions()
	if err != nil {
		log.Printf("Error fetching categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load the categories",
		})
	}
	return c.JSON(options)
}

// UpdateOrderStatusRequest is the body for an order status transition.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateOrderStatus writes an order's status directly. Transitions are
// fulfillment tooling, deliberately outside the checkout engine.
func (h *AdminHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("id")
	if err != nil || orderID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid order ID",
		})
	}

	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required",
		})
	}

	if err := h.service.UpdateOrderStatus(uint(orderID), req.Status); err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("Invalid order status: %s", req.Status),
			})
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		log.Printf("Error updating status of order %d: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update the order status",
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Order %d status updated to %s", orderID, req.Status),
	})
}
