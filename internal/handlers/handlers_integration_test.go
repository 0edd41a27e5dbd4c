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

	"gerai/internal/handlers"
	"gerai/internal/middleware"
	"gerai/internal/models"
	"gerai/internal/repositories"
	"gerai/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp builds a Fiber app backed by an in-memory SQLite database. Each
// test passes its own database name so state never leaks between tests.
func setupApp(dbName string) (*fiber.App, error) {
	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()
	jwtSecret := viper.GetString("JWT_SECRET")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", dbName)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to in-memory database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	repos := repositories.RepositorySet{
		Users:    repositories.NewGORMUserRepository(db),
		Products: repositories.NewGORMProductRepository(db),
		Carts:    repositories.NewGORMCartRepository(db),
		Orders:   repositories.NewGORMOrderRepository(db),
	}
	txRunner := repositories.NewGORMTxRunner(db)

	authService := services.NewAuthService(repos.Users, jwtSecret)
	userService := services.NewUserService(repos.Users)
	productService := services.NewProductService(repos.Products)
	cartService := services.NewCartService(repos.Carts, repos.Products)
	orderService := services.NewOrderService(repos, txRunner, nil) // nil for RabbitMQ client

	app := fiber.New()
	apiV1 := app.Group("/api/v1")

	handlers.NewAuthHandler(authService).RegisterRoutes(apiV1)

	protected := apiV1.Group("", middleware.AuthRequired(authService))
	handlers.NewUserHandler(userService).RegisterRoutes(protected)
	handlers.NewProductHandler(productService, nil).RegisterRoutes(protected)
	handlers.NewCartHandler(cartService).RegisterRoutes(protected)
	handlers.NewOrderHandler(orderService).RegisterRoutes(protected)

	return app, nil
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// doJSON issues a JSON request, optionally authenticated, and decodes the
// response body into out when out is non-nil.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}, out interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1) // -1 for no timeout
	assert.NoError(t, err)
	if out != nil {
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	resp.Body.Close()
	return resp
}

// registerAndLogin creates an account with the given role and returns its
// token and id.
func registerAndLogin(t *testing.T, app *fiber.App, username, email, role string) (token, userID string) {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": username,
		"email":    email,
		"password": "password123",
		"role":     role,
	}, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var loginResp map[string]string
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": "password123",
	}, &loginResp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, loginResp["token"])

	var profile models.User
	resp = doJSON(t, app, http.MethodGet, "/api/v1/users/me", loginResp["token"], nil, &profile)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	return loginResp["token"], profile.ID
}

func TestAuthRegisterAndLogin(t *testing.T) {
	app, err := setupApp("auth_test")
	assert.NoError(t, err)

	body := map[string]string{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "password123",
	}
	var registerResp map[string]interface{}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", body, &registerResp)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "User registered successfully", registerResp["message"])

	// Duplicate registration conflicts
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", body, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var loginResp map[string]string
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "test@example.com",
		"password": "password123",
	}, &loginResp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, loginResp["token"])

	// Wrong password is rejected
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "test@example.com",
		"password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestEndpointsRequireAuth(t *testing.T) {
	app, err := setupApp("noauth_test")
	assert.NoError(t, err)

	for _, path := range []string{
		"/api/v1/products",
		"/api/v1/cart",
		"/api/v1/orders/customer",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		resp.Body.Close()
	}
}

func TestOrderLifecycleFlow(t *testing.T) {
	app, err := setupApp("lifecycle_test")
	assert.NoError(t, err)

	vendorToken, _ := registerAndLogin(t, app, "vendor1", "vendor1@example.com", models.RoleVendor)
	customerToken, _ := registerAndLogin(t, app, "customer1", "customer1@example.com", models.RoleCustomer)

	// Vendor creates and publishes a product.
	var product models.Product
	resp := doJSON(t, app, http.MethodPost, "/api/v1/products", vendorToken, map[string]interface{}{
		"name":           "Batik Shirt",
		"description":    "Hand made",
		"category":       "clothing",
		"price":          100.0,
		"discount":       10.0,
		"stock_quantity": 5,
		"sizes":          []string{"M", "L"},
		"colors":         []string{"Blue"},
	}, &product)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, product.ID)
	assert.False(t, product.IsVisible, "new products start hidden")

	resp = doJSON(t, app, http.MethodPatch, "/api/v1/products/"+product.ID+"/visibility", vendorToken,
		map[string]bool{"is_visible": true}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Customers cannot create products.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", customerToken, map[string]interface{}{
		"name":  "Nope",
		"price": 1.0,
	}, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Placing an order before filling in shipping details fails.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/cart", customerToken, map[string]interface{}{
		"product_id": product.ID,
		"size":       "M",
		"color":      "Blue",
		"quantity":   2,
	}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/orders", customerToken,
		map[string]string{"order_date": "2024-05-01"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/v1/users/me/shipping", customerToken, map[string]string{
		"phone_number": "08123456789",
		"address":      "Jl. Merdeka 1",
		"city":         "Bandung",
		"state":        "Jawa Barat",
		"postal_code":  "40111",
	}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Now the placement succeeds.
	var placeResp map[string]string
	resp = doJSON(t, app, http.MethodPost, "/api/v1/orders", customerToken,
		map[string]string{"order_date": "2024-05-01"}, &placeResp)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	orderID := placeResp["order_id"]
	assert.NotEmpty(t, orderID)

	// The order froze the discounted price: 2 * (100 - 10%) = 180.00.
	var order models.Order
	resp = doJSON(t, app, http.MethodGet, "/api/v1/orders/"+orderID, customerToken, nil, &order)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 180.0, order.TotalOrderPrice)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, 90.0, order.Items[0].Price)
	assert.Equal(t, "Jl. Merdeka 1", order.Address)

	// The cart was cleared by the placement.
	var cart []models.CartItemView
	resp = doJSON(t, app, http.MethodGet, "/api/v1/cart", customerToken, nil, &cart)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, cart)

	// The order shows up in the customer listing.
	var page map[string]interface{}
	resp = doJSON(t, app, http.MethodGet, "/api/v1/orders/customer", customerToken, nil, &page)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), page["total_count"])

	// Customers cannot change order statuses.
	resp = doJSON(t, app, http.MethodPatch, "/api/v1/orders/"+orderID+"/status", customerToken,
		map[string]string{"status": "Shipped"}, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Vendors can, and a bad status name is rejected.
	resp = doJSON(t, app, http.MethodPatch, "/api/v1/orders/"+orderID+"/status", vendorToken,
		map[string]string{"status": "Shiped"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPatch, "/api/v1/orders/"+orderID+"/status", vendorToken,
		map[string]string{"status": "Shipped"}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/orders/"+orderID, customerToken, nil, &order)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.StatusShipped, order.Status)
}

func TestAdminOrderLookup(t *testing.T) {
	app, err := setupApp("admin_test")
	assert.NoError(t, err)

	adminToken, _ := registerAndLogin(t, app, "admin1", "admin1@example.com", models.RoleAdmin)
	customerToken, _ := registerAndLogin(t, app, "customer2", "customer2@example.com", models.RoleCustomer)

	// Customers cannot use the admin listing.
	resp := doJSON(t, app, http.MethodGet, "/api/v1/orders/admin?email=customer2@example.com", customerToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// The email parameter is mandatory.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/orders/admin", adminToken, nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var page map[string]interface{}
	resp = doJSON(t, app, http.MethodGet, "/api/v1/orders/admin?email=customer2@example.com", adminToken, nil, &page)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), page["total_count"])

	// An unknown customer email is a 404.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/orders/admin?email=nobody@example.com", adminToken, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPaginationValidation(t *testing.T) {
	app, err := setupApp("pagination_test")
	assert.NoError(t, err)

	token, _ := registerAndLogin(t, app, "pager", "pager@example.com", models.RoleCustomer)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/orders/customer?page=0&size=10", token, nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/products?page=1&size=0", token, nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
