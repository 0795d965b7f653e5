package router

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sitebuilder/internal/config"
	"github.com/sitebuilder/internal/db"
	"github.com/sitebuilder/internal/handler"
	"github.com/sitebuilder/internal/publish"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRouter(t *testing.T, origins []string) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	store, err := db.Open(dsn, db.DefaultWorkers, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})

	uploadDir := t.TempDir()
	cfg := config.AppConfig{
		UploadDir:     uploadDir,
		UploadURLPath: "/api/uploads",
		CORSOrigins:   origins,
	}
	api := handler.NewAPI(store, publish.NewPublisher(nil), nil, cfg.UploadDir, cfg.UploadURLPath)
	return SetupRouter(api, cfg), uploadDir
}

func TestSetupRouterServesUploads(t *testing.T) {
	r, uploadDir := setupTestRouter(t, []string{"*"})

	fileName := "example.txt"
	fileContent := []byte("hello uploads")
	if err := os.WriteFile(filepath.Join(uploadDir, fileName), fileContent, 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/uploads/"+fileName, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if rr.Body.String() != string(fileContent) {
		t.Fatalf("unexpected body, got %q", rr.Body.String())
	}
}

func TestSetupRouterHello(t *testing.T) {
	r, _ := setupTestRouter(t, []string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK || rr.Body.String() != `{"message":"Hello World"}` {
		t.Fatalf("unexpected response %d %s", rr.Code, rr.Body.String())
	}
}

func TestSetupRouterPageLifecycle(t *testing.T) {
	r, _ := setupTestRouter(t, []string{"*"})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		return rr
	}

	if rr := do(http.MethodPost, "/api/projects", `{"id":"p1","name":"Site","blocks":[]}`); rr.Code != http.StatusOK {
		t.Fatalf("save project: %d %s", rr.Code, rr.Body.String())
	}
	if rr := do(http.MethodPost, "/api/pages", `{"project_id":"p1","name":"Home","is_home":true}`); rr.Code != http.StatusCreated {
		t.Fatalf("create page: %d %s", rr.Code, rr.Body.String())
	}
	rr := do(http.MethodGet, "/api/pages/p1", "")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"name":"Home"`) {
		t.Fatalf("list pages: %d %s", rr.Code, rr.Body.String())
	}
	if rr := do(http.MethodDelete, "/api/projects/p1", ""); rr.Code != http.StatusOK {
		t.Fatalf("delete project: %d", rr.Code)
	}
	if rr := do(http.MethodGet, "/api/pages/p1", ""); rr.Body.String() != "[]" {
		t.Fatalf("expected cascade to remove pages, got %s", rr.Body.String())
	}
	if rr := do(http.MethodGet, "/api/page/unknown", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestSetupRouterExposesMetrics(t *testing.T) {
	r, _ := setupTestRouter(t, []string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "sitebuilder_store_operation_seconds") {
		t.Fatalf("expected store histogram in exposition")
	}
}

func TestCORSConfig(t *testing.T) {
	open := corsConfig([]string{"*"})
	if !open.AllowAllOrigins || open.AllowCredentials || len(open.AllowOrigins) != 0 {
		t.Fatalf("wildcard should allow all origins without credentials: %+v", open)
	}

	restricted := corsConfig([]string{"https://builder.example.com"})
	if restricted.AllowAllOrigins || !restricted.AllowCredentials || restricted.AllowOrigins[0] != "https://builder.example.com" {
		t.Fatalf("unexpected restricted config: %+v", restricted)
	}

	r, _ := setupTestRouter(t, []string{"https://builder.example.com"})
	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	req.Header.Set("Origin", "https://builder.example.com")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://builder.example.com" {
		t.Fatalf("expected origin to be echoed, got %q", got)
	}
}
