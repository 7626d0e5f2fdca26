package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devfolio/portfolio-api/internal/config"
	"github.com/devfolio/portfolio-api/internal/db"
	"github.com/devfolio/portfolio-api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestEngine(t *testing.T) (*gin.Engine, *store.Stores) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:app_%d?mode=memory&cache=shared", time.Now().UnixNano())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}

	stores := store.New(conn)
	cfg := config.Config{Auth: config.AuthConfig{SessionTTLHours: 24}}
	return BuildEngine(conn, stores, cfg), stores
}

func TestEngineRoutes(t *testing.T) {
	engine, _ := newTestEngine(t)

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if recorder.Code != http.StatusOK {
		t.Errorf("healthz status = %d", recorder.Code)
	}

	recorder = httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/no/such/route", nil))
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("unknown route status = %d", recorder.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if payload["message"] != "Not found" {
		t.Errorf("message = %v", payload["message"])
	}
}

// TestEngineEndToEnd walks the admin bootstrap flow through the assembled
// engine: provision the default admin, log in, create a project, and see it
// appear on the public listing.
func TestEngineEndToEnd(t *testing.T) {
	engine, _ := newTestEngine(t)

	post := func(path, token string, body any) *httptest.ResponseRecorder {
		t.Helper()
		data, errMarshal := json.Marshal(body)
		if errMarshal != nil {
			t.Fatalf("marshal body: %v", errMarshal)
		}
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, req)
		return recorder
	}

	if recorder := post("/api/admin/create-default", "", map[string]string{}); recorder.Code != http.StatusOK {
		t.Fatalf("create-default status = %d, body = %s", recorder.Code, recorder.Body.String())
	}

	recorder := post("/api/admin/login", "", map[string]string{"username": "admin", "password": "password"})
	if recorder.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", recorder.Code, recorder.Body.String())
	}
	var loginPayload map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &loginPayload); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	token := loginPayload["sessionToken"].(string)

	recorder = post("/api/admin/projects", token, map[string]any{
		"title":       "Live Project",
		"description": "d",
		"image":       "i",
		"category":    "web-app",
		"demoUrl":     "#",
		"githubUrl":   "#",
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("create project status = %d, body = %s", recorder.Code, recorder.Body.String())
	}

	recorder = httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("public list status = %d", recorder.Code)
	}
	var listed []map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 || listed[0]["title"] != "Live Project" {
		t.Fatalf("listed = %+v", listed)
	}
}

func TestSeedStoresIdempotent(t *testing.T) {
	_, stores := newTestEngine(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := seedStores(ctx, stores); err != nil {
			t.Fatalf("seed #%d: %v", i+1, err)
		}
	}

	projectCount, err := stores.Projects.Count(ctx)
	if err != nil {
		t.Fatalf("count projects: %v", err)
	}
	if want := int64(len(seedProjects())); projectCount != want {
		t.Errorf("project count = %d, want %d", projectCount, want)
	}

	techCount, err := stores.TechStack.Count(ctx)
	if err != nil {
		t.Fatalf("count tech stack: %v", err)
	}
	if want := int64(len(seedTechStack())); techCount != want {
		t.Errorf("tech stack count = %d, want %d", techCount, want)
	}
}
