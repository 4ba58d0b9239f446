package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface, shared by the
// console client and the development API server.
type Config struct {
	API     APIConfig
	Session SessionConfig
	Refresh RefreshConfig
	Server  ServerConfig
	Storage StorageConfig
	Auth    AuthConfig
	Log     LogConfig
}

// APIConfig holds options for the REST API client.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig holds where the auth token is persisted between runs.
type SessionConfig struct {
	TokenPath string
}

// RefreshConfig holds the periodic list-refresh schedule.
type RefreshConfig struct {
	CronSchedule string
}

// ServerConfig holds HTTP server related options for agroapid.
type ServerConfig struct {
	Port string
}

// StorageConfig selects the backing store for agroapid.
type StorageConfig struct {
	Backend string // "memory" or "mongodb"
	MongoDB MongoDBConfig
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// AuthConfig holds the credentials agroapid accepts on /auth/login.
type AuthConfig struct {
	AdminIdentifier string
	AdminPassword   string
}

// LogConfig holds where the console client writes its log file.
type LogConfig struct {
	Path string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	timeout, err := parseTimeout(getenvWithDefault("API_TIMEOUT_SECONDS", "5"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL: getenvWithDefault("API_BASE_URL", "http://localhost:8080/api"),
			Timeout: timeout,
		},
		Session: SessionConfig{
			TokenPath: getenvWithDefault("SESSION_TOKEN_PATH", defaultTokenPath()),
		},
		Refresh: RefreshConfig{
			CronSchedule: getenvWithDefault("REFRESH_CRON_SCHEDULE", "*/5 * * * *"),
		},
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Storage: StorageConfig{
			Backend: getenvWithDefault("STORAGE_BACKEND", "memory"),
			MongoDB: MongoDBConfig{
				URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
				DBName: getenvWithDefault("MONGODB_DB_NAME", "agromanager"),
			},
		},
		Auth: AuthConfig{
			AdminIdentifier: getenvWithDefault("ADMIN_IDENTIFIER", "admin"),
			AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		},
		Log: LogConfig{
			Path: getenvWithDefault("LOG_PATH", defaultLogPath()),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.API.BaseURL == "" {
		return errors.New("API_BASE_URL must not be empty")
	}

	if c.API.Timeout <= 0 {
		return errors.New("API_TIMEOUT_SECONDS must be positive")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch c.Storage.Backend {
	case "memory":
	case "mongodb":
		if c.Storage.MongoDB.URI == "" {
			return errors.New("MONGODB_URI must be provided for the mongodb backend")
		}
		if c.Storage.MongoDB.DBName == "" {
			return errors.New("MONGODB_DB_NAME must be provided for the mongodb backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}

	if c.Refresh.CronSchedule == "" {
		return errors.New("REFRESH_CRON_SCHEDULE must be provided")
	}

	return nil
}

func parseTimeout(value string) (time.Duration, error) {
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("API_TIMEOUT_SECONDS must be an integer: %w", err)
	}
	return time.Duration(seconds) * time.Second, nil
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".agromanager-token")
	}
	return filepath.Join(dir, "agromanager", "token")
}

func defaultLogPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "agroconsole.log")
	}
	return filepath.Join(dir, "agromanager", "agroconsole.log")
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
