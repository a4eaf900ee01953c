package handlers

import (
	"errors"
	"log"

	"beautyshop/internal/repositories"
	"beautyshop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the cart and for checkout.
type CartHandler struct {
	cartService     *services.CartService
	checkoutService *services.CheckoutService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService, checkoutService *services.CheckoutService) *CartHandler {
	return &CartHandler{
		cartService:     cartService,
		checkoutService: checkoutService,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/:userId", h.HandleGetCart)
	cartRoutes.Post("/add", h.HandleAddItem)
	cartRoutes.Delete("/remove/:productId", h.HandleRemoveItem)
	cartRoutes.Post("/checkout", h.HandleCheckout)
}

// HandleGetCart returns the user's cart lines joined with product details.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID",
		})
	}

	lines, err := h.cartService.GetCart(uint(userID))
	if err != nil {
		log.Printf("Error fetching cart for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load the cart",
		})
	}
	return c.JSON(lines)
}

// AddItemRequest is the body for adding a product to the cart.
type AddItemRequest struct {
	UserID    uint `json:"userId"`
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

// HandleAddItem adds a product to the cart, accumulating quantity when the
// product is already there.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-to-cart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.cartService.AddItem(req.UserID, req.ProductID, req.Quantity); err != nil {
		if errors.Is(err, services.ErrInvalidRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid data (userId, productId, or quantity)",
			})
		}
		log.Printf("Error adding product %d to cart of user %d: %v", req.ProductID, req.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add the product to the cart",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Product added to the cart",
	})
}

// RemoveItemRequest carries the acting user; the product comes from the path.
type RemoveItemRequest struct {
	UserID uint `json:"userId"`
}

// HandleRemoveItem deletes a cart line entirely.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product ID",
		})
	}

	var req RemoveItemRequest
	if err := c.BodyParser(&req); err != nil || req.UserID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid data (userId or productId)",
		})
	}

	if err := h.cartService.RemoveItem(req.UserID, uint(productID)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found in the cart",
			})
		}
		log.Printf("Error removing product %d from cart of user %d: %v", productID, req.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove the product from the cart",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Product removed from the cart",
	})
}

// HandleCheckout commits an order from the submitted cart snapshot.
func (h *CartHandler) HandleCheckout(c *fiber.Ctx) error {
	var req services.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing checkout request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	orderID, err := h.checkoutService.Checkout(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid data (user or cart contents)",
			})
		}
		log.Printf("Checkout error for user %d: %v", req.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not place the order",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed successfully",
		"orderId": orderID,
	})
}
