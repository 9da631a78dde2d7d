package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultBaseURL        = "localhost:1303"
	defaultAuthSecret     = "dev-secret-key"
	defaultConfigFile     = "server.config.yaml"
	defaultSessionTTL     = 20 * time.Minute
	defaultForbiddenRoute = "login"

	// NoForbiddenRoute отключает редирект на 401: ошибка возвращается вызывающему.
	NoForbiddenRoute = "none"

	StoreFS     = "fs"
	StoreSQLite = "sqlite"
)

// Credentials - учётные данные администратора сервера.
type Credentials struct {
	Username     string `yaml:"username" env:"ADMIN_USERNAME"`
	Password     string `yaml:"password" env:"ADMIN_PASSWORD"`
	PasswordHash string `yaml:"password_hash" env:"ADMIN_PASSWORD_HASH"`
}

// Empty reports whether no credentials were configured at all.
func (c Credentials) Empty() bool {
	return c.Username == "" && c.Password == "" && c.PasswordHash == ""
}

type Config struct {
	// Server-side settings
	DatabaseDSN string        `yaml:"database" env:"DATABASE_URI"`
	AuthSecret  string        `yaml:"auth_secret" env:"AUTH_SECRET"`
	SessionTTL  time.Duration `yaml:"session_ttl" env:"SESSION_TTL"`
	ConfigFile  string        `yaml:"-" env:"CONFIG_FILE"`
	Credentials Credentials   `yaml:"credentials"`

	// Shared settings
	BaseURL     string `yaml:"base_url" env:"BASE_URL"`
	EnableHTTPS bool   `yaml:"https" env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL      string `yaml:"-" env:"-"`
	ClientStore    string `yaml:"-" env:"CLIENT_STORE"` // fs | sqlite
	ClientDBPath   string `yaml:"-" env:"CLIENT_DB_PATH"`
	SessionDir     string `yaml:"-" env:"SESSION_DIR"`
	ForbiddenRoute string `yaml:"-" env:"FORBIDDEN_ROUTE"`
	Debug          bool   `yaml:"-" env:"DEBUG"`
	Version        bool   `yaml:"-" env:"-"` // show client version and exit (flag only)
}

// LoadFile накладывает значения из YAML-файла на cfg. Отсутствующий файл - не ошибка.
func LoadFile(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{ConfigFile: os.Getenv("CONFIG_FILE")}
	if cfg.ConfigFile == "" {
		cfg.ConfigFile = defaultConfigFile
	}
	if err := LoadFile(cfg, cfg.ConfigFile); err != nil {
		fmt.Fprintf(os.Stderr, "config file ignored: %v\n", err)
	}
	_ = env.Parse(cfg)

	// flags работают поверх env и файла
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres DSN или путь к SQLite)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "время жизни сессии")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the registry server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.ClientStore, "store", cfg.ClientStore, "client session store: fs or sqlite")
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "path to client SQLite DB")
	flag.StringVar(&cfg.SessionDir, "session-dir", cfg.SessionDir, "directory of the file session store")
	flag.StringVar(&cfg.ForbiddenRoute, "forbidden-route", cfg.ForbiddenRoute, "command suggested on 401 (\"none\" to surface the error)")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "verbose client logging")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

func (cfg *Config) applyDefaults() {
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = defaultAuthSecret
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	// BaseURL: только "address:port" (без схемы и пути), иначе дефолт.
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	switch strings.ToLower(cfg.ForbiddenRoute) {
	case "":
		cfg.ForbiddenRoute = defaultForbiddenRoute
	case NoForbiddenRoute:
		cfg.ForbiddenRoute = ""
	}

	cfg.ClientStore = strings.ToLower(cfg.ClientStore)
	if cfg.ClientStore != StoreSQLite {
		cfg.ClientStore = StoreFS
	}
	if cfg.ClientDBPath == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.ClientDBPath = filepath.Join(dir, "RegistryAdmin", "client.sqlite")
		}
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "registry-admin.db"
	}
}
