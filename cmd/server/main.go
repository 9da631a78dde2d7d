package main

import (
	"RegistryAdmin/internal/config"
	"RegistryAdmin/internal/handlers"
	"RegistryAdmin/internal/middleware"
	"RegistryAdmin/internal/repo"
	"RegistryAdmin/internal/service"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Credentials.Empty() {
		sugar.Warnw("no admin credentials configured, every login will be refused",
			"config_file", cfg.ConfigFile,
		)
	}

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	sessionService := service.NewSessionService(cfg.Credentials)
	customerRepo := repo.NewCustomerRepository(gormDB)
	spRepo := repo.NewServiceProviderRepository(gormDB)
	customerService := service.NewCustomerService(customerRepo, spRepo, sugar)
	spService := service.NewServiceProviderService(spRepo, customerRepo, sugar)

	h := handlers.NewHandler(sessionService, customerService, spService, sugar, cfg)

	addr := cfg.BaseURL
	srv := &http.Server{Addr: addr, Handler: h.Router, ReadHeaderTimeout: 10 * time.Second}

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"SessionTTL", cfg.SessionTTL,
		"AdminUser", cfg.Credentials.Username,
	)

	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("Shutdown failed", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Fatalw("Server failed", "error", err)
	}
}
