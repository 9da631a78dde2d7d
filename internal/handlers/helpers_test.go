package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"RegistryAdmin/internal/config"
	"RegistryAdmin/internal/handlers"
	"RegistryAdmin/internal/middleware"
	"RegistryAdmin/internal/repo"
	"RegistryAdmin/internal/service"

	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

const testSecret = "test-secret"

// newTestRouter собирает роутер поверх in-memory SQLite.
func newTestRouter(t *testing.T) (http.Handler, *config.Config) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: fmt.Sprintf("file:%s?mode=memory&cache=shared", name)}, &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := repo.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := &config.Config{
		AuthSecret:  testSecret,
		SessionTTL:  time.Minute,
		Credentials: config.Credentials{Username: "admin", Password: "secret"},
	}
	logger := zap.NewNop().Sugar()
	customers := repo.NewCustomerRepository(db)
	sps := repo.NewServiceProviderRepository(db)
	middleware.SetLogger(logger)

	h := handlers.NewHandler(
		service.NewSessionService(cfg.Credentials),
		service.NewCustomerService(customers, sps, logger),
		service.NewServiceProviderService(sps, customers, logger),
		logger,
		cfg,
	)
	return h.Router, cfg
}

func authHeader(t *testing.T, req *http.Request) {
	t.Helper()
	tok, err := middleware.IssueToken("admin", testSecret, time.Minute)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok)
}

// do выполняет запрос с авторизацией и JSON-телом.
func do(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	authHeader(t, req)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
