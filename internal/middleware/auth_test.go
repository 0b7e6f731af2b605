package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func guardedRouter(guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", guard, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId":    c.GetString("userId"),
			"userEmail": c.GetString("userEmail"),
		})
	})
	return r
}

func get(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/guarded", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserAuthInjectsIdentity(t *testing.T) {
	r := guardedRouter(UserAuth(testSecret))

	token := signToken(t, jwt.MapClaims{
		"userId": "user-1",
		"email":  "student@campus.edu",
		"exp":    time.Now().Add(time.Minute).Unix(),
	})

	w := get(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "user-1") || !strings.Contains(body, "student@campus.edu") {
		t.Fatalf("identity missing from context: %s", body)
	}
}

func TestUserAuthRejectsMissingAndMalformedTokens(t *testing.T) {
	r := guardedRouter(UserAuth(testSecret))

	if w := get(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: expected 401, got %d", w.Code)
	}
	if w := get(r, "Basic abc"); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong scheme: expected 401, got %d", w.Code)
	}
	if w := get(r, "Bearer not-a-jwt"); w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: expected 401, got %d", w.Code)
	}
}

func TestUserAuthRejectsExpiredToken(t *testing.T) {
	r := guardedRouter(UserAuth(testSecret))

	token := signToken(t, jwt.MapClaims{
		"userId": "user-1",
		"exp":    time.Now().Add(-time.Minute).Unix(),
	})
	if w := get(r, "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Fatalf("expired token: expected 401, got %d", w.Code)
	}
}

func TestAdminAuthRequiresRole(t *testing.T) {
	r := guardedRouter(AdminAuth(testSecret))

	userToken := signToken(t, jwt.MapClaims{
		"userId": "user-1",
		"exp":    time.Now().Add(time.Minute).Unix(),
	})
	if w := get(r, "Bearer "+userToken); w.Code != http.StatusForbidden {
		t.Fatalf("user token on admin route: expected 403, got %d", w.Code)
	}

	adminToken := signToken(t, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(time.Minute).Unix(),
	})
	if w := get(r, "Bearer "+adminToken); w.Code != http.StatusOK {
		t.Fatalf("admin token: expected 200, got %d", w.Code)
	}
}
