package bootstrap

import (
	"fmt"

	"RegistryAdmin/internal/cli/api"
	"RegistryAdmin/internal/cli/repo"
	fsrepo "RegistryAdmin/internal/cli/repo/fs"
	reposqlite "RegistryAdmin/internal/cli/repo/sqlite"
	"RegistryAdmin/internal/cli/service"
	"RegistryAdmin/internal/cli/session"
	"RegistryAdmin/internal/config"

	"go.uber.org/zap"
)

// App - всё, что нужно командам CLI: сессия, типизированный клиент реестра и логгер.
type App struct {
	Config   *config.Config
	Session  *session.Accessor
	Registry *service.Registry
	Logger   *zap.SugaredLogger

	cleanup func() error
}

// Close освобождает хранилище сессии. Повторный вызов безопасен.
func (a *App) Close() error {
	if a == nil || a.cleanup == nil {
		return nil
	}
	f := a.cleanup
	a.cleanup = nil
	return f()
}

// OpenSessionStore открывает клиентское key-value хранилище согласно cfg.ClientStore
// и возвращает (store, cleanup, error).
func OpenSessionStore(cfg *config.Config) (repo.KVStore, func() error, error) {
	switch cfg.ClientStore {
	case config.StoreSQLite:
		s, err := reposqlite.Open(cfg.ClientDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open client db: %w", err)
		}
		return s, s.Close, nil
	case config.StoreFS, "":
		s, err := fsrepo.NewStore(cfg.SessionDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open session dir: %w", err)
		}
		return s, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown client store %q", cfg.ClientStore)
	}
}

// NewLogger возвращает development-логгер в режиме отладки и no-op иначе.
func NewLogger(debug bool) *zap.SugaredLogger {
	if !debug {
		return zap.NewNop().Sugar()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

// Open собирает App. nav получает управление при ответе 401,
// если cfg.ForbiddenRoute не пустой.
func Open(cfg *config.Config, nav api.Navigator) (*App, error) {
	store, cleanup, err := OpenSessionStore(cfg)
	if err != nil {
		return nil, err
	}
	logger := NewLogger(cfg.Debug)
	acc := session.New(store, logger)
	client := api.NewClient(acc,
		api.WithBaseURL(cfg.ServerURL),
		api.WithForbiddenRoute(cfg.ForbiddenRoute, nav),
		api.WithLogger(logger),
	)
	return &App{
		Config:   cfg,
		Session:  acc,
		Registry: service.NewRegistry(client, acc),
		Logger:   logger,
		cleanup:  cleanup,
	}, nil
}
