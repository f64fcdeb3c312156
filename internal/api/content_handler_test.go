package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"openflexSite/internal/content"
	"openflexSite/internal/database"
)

func newTestStore(t *testing.T) *content.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return content.NewStore(db)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestPutContact_MissingPhoneRejectedWithoutWrite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newTestStore(t)
	h := NewContentHandler(store, testLogger())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPut, "/content/contacts", gin.H{"email": "a@b.com"})

	h.PutContact(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
	if _, err := store.Contact(context.Background()); err == nil {
		t.Fatal("store must stay untouched on validation failure")
	}
}

func TestPutContact_UpsertsPinnedRow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newTestStore(t)
	h := NewContentHandler(store, testLogger())

	for _, email := range []string{"a@b.com", "c@d.com"} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = jsonRequest(t, http.MethodPut, "/content/contacts", gin.H{"email": email, "phone": "123"})
		h.PutContact(c)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	}

	contact, err := store.Contact(context.Background())
	if err != nil {
		t.Fatalf("fetch contact: %v", err)
	}
	if contact.ID != 1 || contact.Email != "c@d.com" {
		t.Fatalf("expected id=1 with latest email, got %+v", contact)
	}
}

func TestPutHero_CreatesThenUpdates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newTestStore(t)
	h := NewContentHandler(store, testLogger())

	var first database.Hero
	for i, title := range []string{"v1", "v2"} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = jsonRequest(t, http.MethodPut, "/content/hero", gin.H{"title": title})
		h.PutHero(c)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}

		var hero database.Hero
		if err := json.Unmarshal(w.Body.Bytes(), &hero); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if i == 0 {
			first = hero
		} else if hero.ID != first.ID {
			t.Fatalf("expected stable id %d, got %d", first.ID, hero.ID)
		}
		if hero.Title != title {
			t.Fatalf("expected title %q, got %q", title, hero.Title)
		}
	}
}

func TestGetHero_UnsetReturnsNull(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewContentHandler(newTestStore(t), testLogger())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/content/hero", nil)
	h.GetHero(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "null" {
		t.Fatalf("expected null body, got %q", w.Body.String())
	}
}

func TestCreateClient_DefaultsOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newTestStore(t)
	h := NewContentHandler(store, testLogger())

	for i, name := range []string{"Acme", "Bolt"} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = jsonRequest(t, http.MethodPost, "/content/clients", gin.H{
			"name":    name,
			"logoUrl": "https://x/" + name + ".png",
		})
		h.CreateClient(c)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}

		var client database.Client
		if err := json.Unmarshal(w.Body.Bytes(), &client); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if client.Order != i {
			t.Fatalf("expected order %d for %s, got %d", i, name, client.Order)
		}
	}

	clients, err := store.ListClients(context.Background())
	if err != nil {
		t.Fatalf("list clients: %v", err)
	}
	if clients[0].Name != "Acme" || clients[1].Name != "Bolt" {
		t.Fatalf("expected [Acme, Bolt], got %+v", clients)
	}
}

func TestCreateClient_MissingLogoRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewContentHandler(newTestStore(t), testLogger())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/content/clients", gin.H{"name": "Acme"})
	h.CreateClient(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestUpdateClient_MissingRowReturns404(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewContentHandler(newTestStore(t), testLogger())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPut, "/content/clients/42", gin.H{
		"name":    "ghost",
		"logoUrl": "x",
		"order":   0,
	})
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	h.UpdateClient(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestBatchUpdateClients_PartialFailureReported(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newTestStore(t)
	h := NewContentHandler(store, testLogger())

	a, err := store.CreateClient(context.Background(), content.ClientInput{Name: "a", LogoURL: "la"})
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPut, "/content/clients", []gin.H{
		{"id": a.ID, "name": "a2", "logoUrl": "la2", "order": 0},
		{"id": 9999, "name": "ghost", "logoUrl": "lg", "order": 1},
	})
	h.BatchUpdateClients(c)

	if w.Code != http.StatusMultiStatus {
		t.Fatalf("expected 207, got %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Failed  int `json:"failed"`
		Results []struct {
			ID    uint   `json:"id"`
			OK    bool   `json:"ok"`
			Error string `json:"error"`
		} `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Failed != 1 || len(resp.Results) != 2 {
		t.Fatalf("expected one failure of two, got %+v", resp)
	}
	if !resp.Results[0].OK || resp.Results[1].OK {
		t.Fatalf("expected first ok and second failed, got %+v", resp.Results)
	}
	if resp.Results[1].Error != "client not found" {
		t.Fatalf("expected not-found detail, got %q", resp.Results[1].Error)
	}
}

func TestReplaceServices_Transactional(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newTestStore(t)
	h := NewContentHandler(store, testLogger())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPut, "/content/services", []gin.H{
		{"title": "one", "features": "f1, f2"},
		{"title": "two"},
	})
	h.ReplaceServices(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	services, err := store.ListServices(context.Background())
	if err != nil {
		t.Fatalf("list services: %v", err)
	}
	if len(services) != 2 {
		t.Fatalf("expected 2 services, got %d", len(services))
	}
}

func TestDeleteFAQ_MissingRowReturns404(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewContentHandler(newTestStore(t), testLogger())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/content/faq/7", nil)
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	h.DeleteFAQ(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}
}
