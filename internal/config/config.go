package config

import (
	"flag"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Storage backends for the client token.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

type Config struct {
	// Server-side settings
	DatabaseDSN string        `env:"DATABASE_URI"`
	AuthSecret  string        `env:"AUTH_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`
	LogLevel    string `env:"LOG_LEVEL"`

	// Client-side settings
	BackendURL    string `env:"BACKEND_URL"`
	ServerURL     string `env:"-"`
	StorageDriver string `env:"STORAGE_DRIVER"`
	StorageDir    string `env:"STORAGE_DIR"`
	ClientDBPath  string `env:"CLIENT_DB_PATH"`
	Version       bool   `env:"-"` // show client version and exit (flag only)
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags override whatever env has set
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN (postgres://... or sqlite file)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "secret for signing JWT")
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "lifetime of issued tokens")
	// Shared flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the backend in host:port form")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	// Client flags
	flag.StringVar(&cfg.BackendURL, "backend-url", cfg.BackendURL, "full backend base URL, wins over -base-url")
	flag.StringVar(&cfg.StorageDriver, "storage", cfg.StorageDriver, "token storage backend: file or sqlite")
	flag.StringVar(&cfg.StorageDir, "storage-dir", cfg.StorageDir, "directory of the file token storage")
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "path to client SQLite DB")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "gophsession.db"
	}

	// BaseURL must be "address:port" (no scheme, no path). Otherwise use default.
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}
	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}
	if u, err := url.Parse(cfg.BackendURL); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		cfg.ServerURL = strings.TrimRight(cfg.BackendURL, "/")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	switch cfg.StorageDriver {
	case StorageFile, StorageSQLite:
	default:
		cfg.StorageDriver = StorageFile
	}
	if cfg.StorageDir == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.StorageDir = filepath.Join(dir, "GophSession")
		} else {
			home, _ := os.UserHomeDir()
			cfg.StorageDir = filepath.Join(home, ".gophsession")
		}
	}
	if cfg.ClientDBPath == "" {
		cfg.ClientDBPath = filepath.Join(cfg.StorageDir, "client.sqlite")
	}
}
