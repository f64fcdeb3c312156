package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newGatedRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AdminSecretMiddleware(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestAdminSecretMiddleware_AllowsMatchingSecret(t *testing.T) {
	router := newGatedRouter("s3cret")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("X-Admin-Secret", "s3cret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAdminSecretMiddleware_RejectsMissingOrWrongSecret(t *testing.T) {
	router := newGatedRouter("s3cret")

	for _, header := range []string{"", "wrong"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("X-Admin-Secret", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, w.Code)
		}
	}
}

func TestAdminSecretMiddleware_FailsClosedWithoutConfig(t *testing.T) {
	router := newGatedRouter("")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("X-Admin-Secret", "anything")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when secret unset, got %d", w.Code)
	}
}
