package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

type Config struct {
	HTTP    HTTPConfig
	Storage StorageConfig
	Log     LogConfig
	Metrics bool
}

type HTTPConfig struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func (c HTTPConfig) Addr() string { return fmt.Sprintf(":%d", c.Port) }

type StorageConfig struct {
	Driver     Driver
	DSN        string
	SQLitePath string
}

type LogConfig struct {
	Level  string
	Format string
	App    string
}

const (
	defaultPort            = 8080
	defaultReadTimeout     = 5 * time.Second
	defaultWriteTimeout    = 10 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultSQLitePath      = "pet-care.db"
	defaultApp             = "pet-care-registry"
)

// Load lee la configuración desde env. Solo falla por valores mal formados.
func Load() (Config, error) {
	cfg := Config{
		Storage: StorageConfig{
			DSN:        os.Getenv("DB_DSN"),
			SQLitePath: valueOrDefault("SQLITE_PATH", defaultSQLitePath),
		},
		Log: LogConfig{
			Level:  valueOrDefault("LOG_LEVEL", "info"),
			Format: valueOrDefault("LOG_FORMAT", "text"),
			App:    valueOrDefault("APP_NAME", defaultApp),
		},
		Metrics: parseBoolWithDefault("METRICS_ENABLED", true),
	}

	port, err := parsePort("PORT", defaultPort)
	if err != nil {
		return Config{}, err
	}
	cfg.HTTP.Port = port

	if cfg.HTTP.ReadTimeout, err = parseDuration("HTTP_READ_TIMEOUT", defaultReadTimeout); err != nil {
		return Config{}, err
	}
	if cfg.HTTP.WriteTimeout, err = parseDuration("HTTP_WRITE_TIMEOUT", defaultWriteTimeout); err != nil {
		return Config{}, err
	}
	if cfg.HTTP.ShutdownTimeout, err = parseDuration("HTTP_SHUTDOWN_TIMEOUT", defaultShutdownTimeout); err != nil {
		return Config{}, err
	}

	if cfg.Storage.Driver, err = parseDriver(os.Getenv("STORAGE_DRIVER"), cfg.Storage.DSN); err != nil {
		return Config{}, err
	}
	if cfg.Storage.Driver == DriverPostgres && cfg.Storage.DSN == "" {
		return Config{}, fmt.Errorf("STORAGE_DRIVER=postgres requires DB_DSN")
	}

	return cfg, nil
}

// parseDriver: sin STORAGE_DRIVER, postgres si hay DSN y memoria si no.
func parseDriver(v, dsn string) (Driver, error) {
	switch d := Driver(strings.ToLower(strings.TrimSpace(v))); d {
	case "":
		if dsn != "" {
			return DriverPostgres, nil
		}
		return DriverMemory, nil
	case DriverMemory, DriverSQLite, DriverPostgres:
		return d, nil
	default:
		return "", fmt.Errorf("invalid STORAGE_DRIVER %q (memory|sqlite|postgres)", v)
	}
}

func valueOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func parsePort(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	port, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	if port <= 0 || port > 65535 {
		return 0, fmt.Errorf("port %d is out of range", port)
	}
	return port, nil
}
