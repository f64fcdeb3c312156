package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"openflexSite/internal/content"
	"openflexSite/internal/database"
)

func TestPublicHero_UnsetReturns404(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewPublicHandler(newTestStore(t), testLogger())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/public/hero", nil)
	h.GetHero(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unset hero, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "error") {
		t.Fatalf("expected error body, got %q", w.Body.String())
	}
}

func TestPublicHero_SetReturnsContent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newTestStore(t)
	if _, err := store.SaveHero(context.Background(), content.HeroInput{Title: "hi"}); err != nil {
		t.Fatalf("seed hero: %v", err)
	}
	h := NewPublicHandler(store, testLogger())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/public/hero", nil)
	h.GetHero(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var hero database.Hero
	if err := json.Unmarshal(w.Body.Bytes(), &hero); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if hero.Title != "hi" {
		t.Fatalf("expected seeded title, got %+v", hero)
	}
}

func TestPublicCollections_EmptyReturnsEmptyArray(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewPublicHandler(newTestStore(t), testLogger())

	endpoints := map[string]gin.HandlerFunc{
		"/public/services": h.GetServices,
		"/public/clients":  h.GetClients,
		"/public/faq":      h.GetFAQs,
	}
	for path, handler := range endpoints {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, path, nil)
		handler(c)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
		if strings.TrimSpace(w.Body.String()) != "[]" {
			t.Fatalf("%s: expected empty array, got %q", path, w.Body.String())
		}
	}
}

func TestPublicClients_OrderedByDisplayOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newTestStore(t)
	two, zero := 2, 0
	ctx := context.Background()
	if _, err := store.CreateClient(ctx, content.ClientInput{Name: "b", LogoURL: "l", Order: &two}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := store.CreateClient(ctx, content.ClientInput{Name: "a", LogoURL: "l", Order: &zero}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	h := NewPublicHandler(store, testLogger())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/public/clients", nil)
	h.GetClients(c)

	var clients []database.Client
	if err := json.Unmarshal(w.Body.Bytes(), &clients); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(clients) != 2 || clients[0].Name != "a" || clients[1].Name != "b" {
		t.Fatalf("expected order asc, got %+v", clients)
	}
}
