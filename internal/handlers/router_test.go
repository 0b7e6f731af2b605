package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"campuswear/internal/middleware"
	"campuswear/internal/store/memory"
)

const (
	testSecret    = "test-secret"
	testUserID    = "user-1"
	testUserEmail = "student@campus.edu"
)

// testRouter wires the real routes against a fresh in-memory store. Order
// and admin routes get a stub identity instead of the JWT middleware so the
// handlers are exercised in isolation; auth_test.go covers the real guard.
func testRouter(mem *memory.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	asUser := func(c *gin.Context) {
		c.Set("userId", testUserID)
		c.Set("userEmail", testUserEmail)
	}

	r.GET("/products", ListProducts(mem))
	r.GET("/products/:id", GetProduct(mem))

	r.POST("/orders", asUser, CreateOrder(mem, mem))
	r.GET("/orders/mine", asUser, ListMyOrders(mem))

	r.GET("/admin/api/products", ListProducts(mem))
	r.POST("/admin/api/products", CreateProduct(mem))
	r.PUT("/admin/api/products/:id", UpdateProduct(mem))
	r.DELETE("/admin/api/products/:id", DeleteProduct(mem))
	r.GET("/admin/api/orders", ListOrders(mem))
	r.GET("/admin/api/orders/:id", GetOrder(mem))
	r.PATCH("/admin/api/orders/:id/status", UpdateOrderStatus(mem))

	return r
}

// authRouter wires the auth routes with the real JWT middleware.
func authRouter(mem *memory.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	accessTTL := 20 * time.Minute
	refreshTTL := 7 * 24 * time.Hour

	r.POST("/auth/register", Register(mem, testSecret, accessTTL, refreshTTL))
	r.POST("/auth/login", Login(mem, testSecret, accessTTL, refreshTTL))
	r.POST("/auth/refresh", Refresh(mem, testSecret, accessTTL, refreshTTL))
	r.POST("/auth/logout", Logout(mem))
	r.GET("/auth/me", middleware.UserAuth(testSecret), GetMe(mem))

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}
