package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"beautyshop/internal/handlers"
	"beautyshop/internal/models"
	"beautyshop/internal/repositories"
	"beautyshop/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testEnv bundles the app with direct handles into its database.
type testEnv struct {
	app      *fiber.App
	db       *gorm.DB
	skincare models.Category
	serum    models.Product
	cream    models.Product
}

// setupApp wires the full API against a private in-memory SQLite database,
// the same way main does against PostgreSQL. The RabbitMQ client is nil, so
// checkout skips event publication.
func setupApp(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to open in-memory database")

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	require.NoError(t, err, "failed to migrate test database")

	// Repositories
	userRepo := repositories.NewGORMUserRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	txManager := repositories.NewGORMTxManager(db)

	// Services
	authService := services.NewAuthService(userRepo, "admin@cosmetic.shop")
	catalogService := services.NewCatalogService(productRepo, categoryRepo)
	cartService := services.NewCartService(cartRepo)
	checkoutService := services.NewCheckoutService(txManager, nil)
	adminService := services.NewAdminService(productRepo, categoryRepo, orderRepo)

	app := fiber.New()
	api := app.Group("/api")
	handlers.NewAuthHandler(authService).RegisterRoutes(api)
	handlers.NewProductHandler(catalogService).RegisterRoutes(api)
	handlers.NewCartHandler(cartService, checkoutService).RegisterRoutes(api)
	handlers.NewAdminHandler(adminService).RegisterRoutes(api)

	env := &testEnv{app: app, db: db}

	// Seed reference data
	env.skincare = models.Category{Label: "Skincare", Slug: "skincare"}
	require.NoError(t, db.Create(&env.skincare).Error)
	makeup := models.Category{Label: "Makeup", Slug: "makeup"}
	require.NoError(t, db.Create(&makeup).Error)

	env.serum = models.Product{Name: "Vitamin C Serum", Price: 45.99, CategoryID: env.skincare.ID, ImageURL: "serum.jpg"}
	require.NoError(t, db.Create(&env.serum).Error)
	env.cream = models.Product{Name: "Night Cream", Price: 22.50, CategoryID: makeup.ID, ImageURL: "cream.jpg"}
	require.NoError(t, db.Create(&env.cream).Error)

	return env
}

// doJSON performs one request against the app and decodes the JSON response
// body into out (when out is non-nil).
func doJSON(t *testing.T, app *fiber.App, method, target string, body any, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	resp.Body.Close()
	return resp
}

func TestMain(m *testing.M) {
	// Suppress handler logging during tests for cleaner output
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestAuthRegisterAndLogin(t *testing.T) {
	env := setupApp(t)

	var registered map[string]any
	resp := doJSON(t, env.app, http.MethodPost, "/api/auth/register",
		map[string]string{"email": "ani@example.com", "password": "password123"}, &registered)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	user := registered["user"].(map[string]any)
	assert.Equal(t, "ani@example.com", user["email"])
	assert.Equal(t, false, user["is_admin"])

	// Same email again conflicts
	resp = doJSON(t, env.app, http.MethodPost, "/api/auth/register",
		map[string]string{"email": "ani@example.com", "password": "password456"}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Login round-trip
	var loggedIn map[string]any
	resp = doJSON(t, env.app, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "ani@example.com", "password": "password123"}, &loggedIn)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ani@example.com", loggedIn["user"].(map[string]any)["email"])

	// Wrong password
	resp = doJSON(t, env.app, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "ani@example.com", "password": "wrong-password"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// The admin email registers with the admin flag set
	var adminReg map[string]any
	resp = doJSON(t, env.app, http.MethodPost, "/api/auth/register",
		map[string]string{"email": "admin@cosmetic.shop", "password": "password123"}, &adminReg)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, adminReg["user"].(map[string]any)["is_admin"])
}

func TestProductListingAndCategoryFilter(t *testing.T) {
	env := setupApp(t)

	var all []models.ProductView
	resp := doJSON(t, env.app, http.MethodGet, "/api/products", nil, &all)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, all, 2)
	assert.Equal(t, "skincare", all[0].Category)

	var filtered []models.ProductView
	resp = doJSON(t, env.app, http.MethodGet, "/api/products?category=makeup", nil, &filtered)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Night Cream", filtered[0].Name)

	var everything []models.ProductView
	resp = doJSON(t, env.app, http.MethodGet, "/api/products?category=all", nil, &everything)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, everything, 2)

	var categories []models.CategoryRef
	resp = doJSON(t, env.app, http.MethodGet, "/api/products/categories", nil, &categories)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []models.CategoryRef{
		{ID: "skincare", Label: "Skincare"},
		{ID: "makeup", Label: "Makeup"},
	}, categories)
}

func TestCartAddFetchRemove(t *testing.T) {
	env := setupApp(t)

	resp := doJSON(t, env.app, http.MethodPost, "/api/cart/add",
		map[string]any{"userId": 4, "productId": env.serum.ID, "quantity": 2}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, env.app, http.MethodPost, "/api/cart/add",
		map[string]any{"userId": 4, "productId": env.serum.ID, "quantity": 3}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var lines []models.CartLine
	resp = doJSON(t, env.app, http.MethodGet, "/api/cart/4", nil, &lines)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, lines, 1, "repeated adds accumulate into one line")
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, "Vitamin C Serum", lines[0].Name)

	// Missing quantity is rejected
	resp = doJSON(t, env.app, http.MethodPost, "/api/cart/add",
		map[string]any{"userId": 4, "productId": env.serum.ID}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Remove deletes the line outright
	resp = doJSON(t, env.app, http.MethodDelete, fmt.Sprintf("/api/cart/remove/%d", env.serum.ID),
		map[string]any{"userId": 4}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, env.app, http.MethodDelete, fmt.Sprintf("/api/cart/remove/%d", env.serum.ID),
		map[string]any{"userId": 4}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var empty []models.CartLine
	resp = doJSON(t, env.app, http.MethodGet, "/api/cart/4", nil, &empty)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, empty)
}

func checkoutBody(env *testEnv) map[string]any {
	return map[string]any{
		"userId": 4,
		"items": []map[string]any{
			{"id": env.serum.ID, "price": 45.99, "quantity": 1},
			{"id": env.cream.ID, "price": 22.50, "quantity": 2},
		},
		"recipientName":   "Ani Petrosyan",
		"phoneNumber":     "+37491123456",
		"deliveryAddress": "12 Abovyan St, Yerevan",
		"paymentMethod":   "Card",
	}
}

func TestCheckoutCommitsOrderAndEmptiesCart(t *testing.T) {
	env := setupApp(t)

	// Put the matching lines into the server-side cart first
	doJSON(t, env.app, http.MethodPost, "/api/cart/add",
		map[string]any{"userId": 4, "productId": env.serum.ID, "quantity": 1}, nil)
	doJSON(t, env.app, http.MethodPost, "/api/cart/add",
		map[string]any{"userId": 4, "productId": env.cream.ID, "quantity": 2}, nil)

	var placed map[string]any
	resp := doJSON(t, env.app, http.MethodPost, "/api/cart/checkout", checkoutBody(env), &placed)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	orderID := uint(placed["orderId"].(float64))
	require.NotZero(t, orderID)

	var order models.Order
	require.NoError(t, env.db.Preload("Items").First(&order, orderID).Error)
	assert.Equal(t, uint(4), order.UserID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.InDelta(t, 45.99+2*22.50, order.TotalAmount, 1e-9)
	require.Len(t, order.Items, 2)
	assert.InDelta(t, 45.99, order.Items[0].PriceAtOrder, 1e-9)
	assert.InDelta(t, 22.50, order.Items[1].PriceAtOrder, 1e-9)

	var lines []models.CartLine
	resp = doJSON(t, env.app, http.MethodGet, "/api/cart/4", nil, &lines)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, lines, "the cart must be empty right after checkout")

	var stats map[string]any
	resp = doJSON(t, env.app, http.MethodGet, "/api/admin/stats", nil, &stats)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), stats["orders"])
	assert.Equal(t, float64(0), stats["revenue"], "a pending order is not revenue yet")
}

func TestCheckoutValidationWritesNothing(t *testing.T) {
	env := setupApp(t)

	doJSON(t, env.app, http.MethodPost, "/api/cart/add",
		map[string]any{"userId": 4, "productId": env.serum.ID, "quantity": 1}, nil)

	body := checkoutBody(env)
	body["deliveryAddress"] = ""
	resp := doJSON(t, env.app, http.MethodPost, "/api/cart/checkout", body, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body = checkoutBody(env)
	body["items"] = []map[string]any{}
	resp = doJSON(t, env.app, http.MethodPost, "/api/cart/checkout", body, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body = checkoutBody(env)
	body["paymentMethod"] = "Barter"
	resp = doJSON(t, env.app, http.MethodPost, "/api/cart/checkout", body, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var orders, items int64
	require.NoError(t, env.db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, env.db.Model(&models.OrderItem{}).Count(&items).Error)
	assert.Zero(t, orders, "rejected checkouts must not write an order")
	assert.Zero(t, items)

	var lines []models.CartLine
	doJSON(t, env.app, http.MethodGet, "/api/cart/4", nil, &lines)
	assert.Len(t, lines, 1, "rejected checkouts must not touch the cart")
}

func TestAdminProductLifecycle(t *testing.T) {
	env := setupApp(t)

	var created map[string]any
	resp := doJSON(t, env.app, http.MethodPost, "/api/admin/products", map[string]any{
		"name":          "Rose Toner",
		"price":         18.00,
		"category_slug": "skincare",
		"image_url":     "toner.jpg",
		"description":   "Gentle daily toner",
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	productID := uint(created["productId"].(float64))
	require.NotZero(t, productID)

	// Unknown category slug is a client error
	resp = doJSON(t, env.app, http.MethodPost, "/api/admin/products", map[string]any{
		"name":          "Mystery Item",
		"price":         9.99,
		"category_slug": "gadgets",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// The new product shows up in the catalog under its category
	var filtered []models.ProductView
	doJSON(t, env.app, http.MethodGet, "/api/products?category=skincare", nil, &filtered)
	require.Len(t, filtered, 2)

	// Admin category options
	var options []models.CategoryOption
	resp = doJSON(t, env.app, http.MethodGet, "/api/admin/categories", nil, &options)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, options, models.CategoryOption{Label: "Skincare", Value: "skincare"})

	// Delete, then the second delete 404s
	resp = doJSON(t, env.app, http.MethodDelete, fmt.Sprintf("/api/admin/products/%d", productID), nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, env.app, http.MethodDelete, fmt.Sprintf("/api/admin/products/%d", productID), nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminOrderStatusUpdate(t *testing.T) {
	env := setupApp(t)

	doJSON(t, env.app, http.MethodPost, "/api/cart/add",
		map[string]any{"userId": 4, "productId": env.serum.ID, "quantity": 1}, nil)
	var placed map[string]any
	resp := doJSON(t, env.app, http.MethodPost, "/api/cart/checkout", checkoutBody(env), &placed)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	orderID := uint(placed["orderId"].(float64))

	// Unknown status is rejected
	resp = doJSON(t, env.app, http.MethodPatch, fmt.Sprintf("/api/admin/orders/%d/status", orderID),
		map[string]any{"status": "Shipped"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Unknown order 404s
	resp = doJSON(t, env.app, http.MethodPatch, "/api/admin/orders/99999/status",
		map[string]any{"status": "Completed"}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Completing the order moves its total into revenue
	resp = doJSON(t, env.app, http.MethodPatch, fmt.Sprintf("/api/admin/orders/%d/status", orderID),
		map[string]any{"status": "Completed"}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var stats map[string]any
	doJSON(t, env.app, http.MethodGet, "/api/admin/stats", nil, &stats)
	assert.InDelta(t, 45.99+2*22.50, stats["revenue"].(float64), 1e-9)
}
