package admin

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
	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/security"
	"github.com/devfolio/portfolio-api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newAdminEngine(t *testing.T) (*gin.Engine, *store.Stores) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:admin_%d?mode=memory&cache=shared", time.Now().UnixNano())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}

	stores := store.New(conn)
	engine := gin.New()
	RegisterAdminRoutes(engine, stores, config.AuthConfig{SessionTTLHours: 24})
	return engine, stores
}

func createAdmin(t *testing.T, stores *store.Stores, username, password string, active bool) models.Admin {
	t.Helper()
	hash, err := security.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	admin := models.Admin{
		Username: username,
		Password: hash,
		Email:    username + "@example.com",
		IsActive: active,
	}
	if errCreate := stores.Admins.Create(context.Background(), &admin); errCreate != nil {
		t.Fatalf("create admin: %v", errCreate)
	}
	return admin
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, errMarshal := json.Marshal(body)
		if errMarshal != nil {
			t.Fatalf("marshal body: %v", errMarshal)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body %q: %v", recorder.Body.String(), err)
	}
	return payload
}

func login(t *testing.T, engine *gin.Engine, username, password string) string {
	t.Helper()
	recorder := doRequest(t, engine, http.MethodPost, "/api/admin/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", recorder.Code, recorder.Body.String())
	}
	payload := decodeBody(t, recorder)
	token, ok := payload["sessionToken"].(string)
	if !ok || token == "" {
		t.Fatalf("no session token in %v", payload)
	}
	return token
}

func TestLoginLifecycle(t *testing.T) {
	engine, stores := newAdminEngine(t)
	createAdmin(t, stores, "jane", "hunter2", true)

	recorder := doRequest(t, engine, http.MethodPost, "/api/admin/login", "", map[string]string{
		"username": "jane",
		"password": "hunter2",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", recorder.Code, recorder.Body.String())
	}
	payload := decodeBody(t, recorder)
	if payload["message"] != "Login successful" {
		t.Errorf("message = %v", payload["message"])
	}
	adminPayload, ok := payload["admin"].(map[string]any)
	if !ok {
		t.Fatalf("admin projection missing: %v", payload)
	}
	if adminPayload["username"] != "jane" {
		t.Errorf("projected username = %v", adminPayload["username"])
	}
	if _, leaked := adminPayload["password"]; leaked {
		t.Error("password leaked in projection")
	}
	token := payload["sessionToken"].(string)

	recorder = doRequest(t, engine, http.MethodGet, "/api/admin/me", token, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("me status = %d", recorder.Code)
	}

	recorder = doRequest(t, engine, http.MethodPost, "/api/admin/logout", token, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("logout status = %d", recorder.Code)
	}
	if payload := decodeBody(t, recorder); payload["message"] != "Logout successful" {
		t.Errorf("logout message = %v", payload["message"])
	}

	// The token dies with the session row.
	recorder = doRequest(t, engine, http.MethodGet, "/api/admin/me", token, nil)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("me after logout status = %d, want 401", recorder.Code)
	}
}

func TestLoginRejections(t *testing.T) {
	engine, stores := newAdminEngine(t)
	createAdmin(t, stores, "jane", "hunter2", true)
	createAdmin(t, stores, "mothballed", "hunter2", false)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "jane", password: "nope"},
		{name: "unknown user", username: "ghost", password: "hunter2"},
		{name: "inactive account", username: "mothballed", password: "hunter2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doRequest(t, engine, http.MethodPost, "/api/admin/login", "", map[string]string{
				"username": tt.username,
				"password": tt.password,
			})
			if recorder.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", recorder.Code)
			}
			if payload := decodeBody(t, recorder); payload["message"] != "Invalid credentials" {
				t.Errorf("message = %v", payload["message"])
			}
		})
	}

	recorder := doRequest(t, engine, http.MethodPost, "/api/admin/login", "", map[string]string{"username": "jane"})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("missing password status = %d, want 400", recorder.Code)
	}
}

func TestSessionTokenRequired(t *testing.T) {
	engine, _ := newAdminEngine(t)

	recorder := doRequest(t, engine, http.MethodGet, "/api/admin/me", "", nil)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", recorder.Code)
	}
	if payload := decodeBody(t, recorder); payload["message"] != "No session token provided" {
		t.Errorf("message = %v", payload["message"])
	}

	recorder = doRequest(t, engine, http.MethodGet, "/api/admin/me", "not-a-real-token", nil)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token status = %d, want 401", recorder.Code)
	}
	if payload := decodeBody(t, recorder); payload["message"] != "Invalid or expired session" {
		t.Errorf("message = %v", payload["message"])
	}
}

func TestExpiredSessionRejected(t *testing.T) {
	engine, stores := newAdminEngine(t)
	admin := createAdmin(t, stores, "jane", "hunter2", true)

	expired, err := stores.Sessions.Create(context.Background(), admin.ID, -time.Minute)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	recorder := doRequest(t, engine, http.MethodGet, "/api/admin/me", expired.ID, nil)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", recorder.Code)
	}
}

func TestCreateDefaultIdempotent(t *testing.T) {
	engine, _ := newAdminEngine(t)

	recorder := doRequest(t, engine, http.MethodPost, "/api/admin/create-default", "", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}
	if payload := decodeBody(t, recorder); payload["message"] != "Default admin created successfully" {
		t.Errorf("first message = %v", payload["message"])
	}

	recorder = doRequest(t, engine, http.MethodPost, "/api/admin/create-default", "", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("second status = %d", recorder.Code)
	}
	if payload := decodeBody(t, recorder); payload["message"] != "Default admin already exists" {
		t.Errorf("second message = %v", payload["message"])
	}

	// The provisioned credentials work.
	login(t, engine, "admin", "password")
}

func TestProjectAdminCRUD(t *testing.T) {
	engine, stores := newAdminEngine(t)
	createAdmin(t, stores, "jane", "hunter2", true)
	token := login(t, engine, "jane", "hunter2")

	recorder := doRequest(t, engine, http.MethodPost, "/api/admin/projects", token, map[string]any{
		"title":       "New Project",
		"description": "desc",
		"image":       "img.png",
		"category":    "web-app",
		"tags":        []string{"Go", "Gin"},
		"primaryTags": []string{"Go"},
		"demoUrl":     "https://demo",
		"githubUrl":   "https://github",
		"sortOrder":   7,
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", recorder.Code, recorder.Body.String())
	}
	created := decodeBody(t, recorder)["project"].(map[string]any)
	id := uint64(created["id"].(float64))

	// A partial payload touches only the supplied columns.
	recorder = doRequest(t, engine, http.MethodPut, fmt.Sprintf("/api/admin/projects/%d", id), token, map[string]any{
		"title":    "Renamed Project",
		"isActive": false,
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", recorder.Code, recorder.Body.String())
	}
	project, err := stores.Projects.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if project.Title != "Renamed Project" {
		t.Errorf("title = %q", project.Title)
	}
	if project.IsActive {
		t.Error("isActive not updated")
	}
	if project.Description != "desc" {
		t.Errorf("description changed: %q", project.Description)
	}
	if project.SortOrder != 7 {
		t.Errorf("sort order changed: %d", project.SortOrder)
	}
	if len(project.Tags) != 2 {
		t.Errorf("tags changed: %v", project.Tags)
	}

	recorder = doRequest(t, engine, http.MethodPut, "/api/admin/projects/99999", token, map[string]any{"title": "x"})
	if recorder.Code != http.StatusNotFound {
		t.Errorf("update missing status = %d, want 404", recorder.Code)
	}

	// Deletes are idempotent.
	for i := 0; i < 2; i++ {
		recorder = doRequest(t, engine, http.MethodDelete, fmt.Sprintf("/api/admin/projects/%d", id), token, nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("delete #%d status = %d", i+1, recorder.Code)
		}
	}
}

func TestProjectCreateExplicitInactive(t *testing.T) {
	engine, stores := newAdminEngine(t)
	createAdmin(t, stores, "jane", "hunter2", true)
	token := login(t, engine, "jane", "hunter2")

	recorder := doRequest(t, engine, http.MethodPost, "/api/admin/projects", token, map[string]any{
		"title":       "Parked Project",
		"description": "d",
		"image":       "i",
		"category":    "web-app",
		"demoUrl":     "#",
		"githubUrl":   "#",
		"isActive":    false,
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", recorder.Code, recorder.Body.String())
	}
	created := decodeBody(t, recorder)["project"].(map[string]any)
	id := uint64(created["id"].(float64))

	project, err := stores.Projects.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if project.IsActive {
		t.Fatal("explicit isActive=false was stored as active")
	}
}

func TestProjectCreateValidation(t *testing.T) {
	engine, stores := newAdminEngine(t)
	createAdmin(t, stores, "jane", "hunter2", true)
	token := login(t, engine, "jane", "hunter2")

	recorder := doRequest(t, engine, http.MethodPost, "/api/admin/projects", token, map[string]any{
		"title": "Only a title",
	})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", recorder.Code)
	}
	payload := decodeBody(t, recorder)
	if payload["message"] != "Validation error" {
		t.Errorf("message = %v", payload["message"])
	}
	if errs, ok := payload["errors"].([]any); !ok || len(errs) == 0 {
		t.Errorf("errors = %v", payload["errors"])
	}
}

func TestTechStackAdminCRUD(t *testing.T) {
	engine, stores := newAdminEngine(t)
	createAdmin(t, stores, "jane", "hunter2", true)
	token := login(t, engine, "jane", "hunter2")

	recorder := doRequest(t, engine, http.MethodPost, "/api/admin/tech-stack", token, map[string]any{
		"name":        "Go",
		"icon":        "go",
		"bg":          "bg-blue",
		"description": "Language",
		"category":    "backend",
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", recorder.Code, recorder.Body.String())
	}
	created := decodeBody(t, recorder)["tech"].(map[string]any)
	id := uint64(created["id"].(float64))

	tech, err := stores.TechStack.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("reload tech: %v", err)
	}
	if !tech.IsActive {
		t.Error("new entry should default to active")
	}

	recorder = doRequest(t, engine, http.MethodPut, fmt.Sprintf("/api/admin/tech-stack/%d", id), token, map[string]any{
		"description": "The language",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", recorder.Code, recorder.Body.String())
	}
	tech, err = stores.TechStack.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("reload tech: %v", err)
	}
	if tech.Description != "The language" {
		t.Errorf("description = %q", tech.Description)
	}
	if tech.Name != "Go" {
		t.Errorf("name changed: %q", tech.Name)
	}

	recorder = doRequest(t, engine, http.MethodDelete, fmt.Sprintf("/api/admin/tech-stack/%d", id), token, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("delete status = %d", recorder.Code)
	}
}

func TestBlogWritesRequireSession(t *testing.T) {
	engine, _ := newAdminEngine(t)

	post := map[string]any{
		"title":    "T",
		"slug":     "t",
		"content":  "c",
		"excerpt":  "e",
		"category": "backend",
	}
	recorder := doRequest(t, engine, http.MethodPost, "/api/blog", "", post)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("create without token status = %d, want 401", recorder.Code)
	}
	recorder = doRequest(t, engine, http.MethodPut, "/api/blog/1", "", post)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("update without token status = %d, want 401", recorder.Code)
	}
	recorder = doRequest(t, engine, http.MethodDelete, "/api/blog/1", "", nil)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("delete without token status = %d, want 401", recorder.Code)
	}
}

func TestBlogAdminCRUD(t *testing.T) {
	engine, stores := newAdminEngine(t)
	createAdmin(t, stores, "jane", "hunter2", true)
	token := login(t, engine, "jane", "hunter2")

	recorder := doRequest(t, engine, http.MethodPost, "/api/blog", token, map[string]any{
		"title":    "First Post",
		"slug":     "first-post",
		"content":  "body",
		"excerpt":  "teaser",
		"category": "backend",
		"tags":     []string{"go"},
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", recorder.Code, recorder.Body.String())
	}
	created := decodeBody(t, recorder)["post"].(map[string]any)
	id := uint64(created["id"].(float64))

	post, err := stores.Blog.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("reload post: %v", err)
	}
	if !post.IsPublished {
		t.Error("new post should default to published")
	}
	if post.PublishedAt == nil {
		t.Error("publishedAt not defaulted")
	}

	recorder = doRequest(t, engine, http.MethodPut, fmt.Sprintf("/api/blog/%d", id), token, map[string]any{
		"isPublished": false,
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", recorder.Code, recorder.Body.String())
	}
	post, err = stores.Blog.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("reload post: %v", err)
	}
	if post.IsPublished {
		t.Error("isPublished not updated")
	}
	if post.Title != "First Post" {
		t.Errorf("title changed: %q", post.Title)
	}

	recorder = doRequest(t, engine, http.MethodDelete, fmt.Sprintf("/api/blog/%d", id), token, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("delete status = %d", recorder.Code)
	}
}
