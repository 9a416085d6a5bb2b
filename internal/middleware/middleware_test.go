package middleware_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kwamkid/joolz-factory-sub003/internal/middleware"
	"github.com/kwamkid/joolz-factory-sub003/internal/testutil"
)

func setupProtected(extra ...gin.HandlerFunc) *gin.Engine {
	r := testutil.SetupRouter()
	handlers := append([]gin.HandlerFunc{middleware.JWTAuth(testutil.JWTSecret)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"code":    0,
			"user_id": c.GetString("user_id"),
		})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestJWTAuth_ValidToken(t *testing.T) {
	r := setupProtected()
	token := testutil.GenerateTestToken("u-100", "Alice", "alice@test.com", []string{"staff"})

	w := testutil.DoRequest(r, "GET", "/protected", nil, token)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["user_id"] != "u-100" {
		t.Fatalf("user_id = %v, want u-100", resp["user_id"])
	}
}

func TestJWTAuth_MissingToken(t *testing.T) {
	r := setupProtected()

	w := testutil.DoRequest(r, "GET", "/protected", nil, "")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	r := setupProtected()

	w := testutil.DoRequest(r, "GET", "/protected", nil, "not-a-jwt")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireRole_Matches(t *testing.T) {
	r := setupProtected(middleware.RequireRole("manager"))
	token := testutil.GenerateTestToken("u-1", "Bob", "bob@test.com", []string{"manager"})

	w := testutil.DoRequest(r, "GET", "/protected", nil, token)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
}

func TestRequireRole_AdminBypass(t *testing.T) {
	r := setupProtected(middleware.RequireRole("manager"))
	token := testutil.GenerateTestToken("u-1", "Root", "root@test.com", []string{"admin"})

	w := testutil.DoRequest(r, "GET", "/protected", nil, token)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	r := setupProtected(middleware.RequireRole("manager"))
	token := testutil.GenerateTestToken("u-1", "Eve", "eve@test.com", []string{"staff"})

	w := testutil.DoRequest(r, "GET", "/protected", nil, token)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}
