package commands

import (
	"bytes"
	"fmt"
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

// withStdoutCapture перехватывает вывод CLI на время fn.
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// withTempConfig возвращает клиентский конфиг, у которого сессия лежит во временном каталоге.
func withTempConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	return &config.Config{
		ServerURL:      serverURL,
		ClientStore:    config.StoreFS,
		SessionDir:     t.TempDir(),
		ForbiddenRoute: "login",
	}
}

// startRegistry поднимает настоящий сервер реестра поверх in-memory SQLite.
func startRegistry(t *testing.T) *httptest.Server {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: fmt.Sprintf("file:cli_%s?mode=memory&cache=shared", name)}, &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := repo.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		AuthSecret:  "cli-test-secret",
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
	ts := httptest.NewServer(h.Router)
	t.Cleanup(func() {
		ts.Close()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return ts
}
