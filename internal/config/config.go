package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=0,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=text json"`
	Environment string
	ServiceName string
	Version     string
	APIKey      string // enables X-API-Key auth when set

	TrustedProxies []string

	DataDir        string `validate:"required"`
	StorageBackend string `validate:"oneof=postgres memory"`

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int `validate:"min=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	AutosaveDelay         time.Duration `validate:"gt=0"`
	CatalogReloadInterval time.Duration `validate:"gte=0"`
	StrategyCacheSize     int           `validate:"min=1"`
	StrategyCacheTTL      time.Duration `validate:"gte=0"`
	WorkerCount           int           `validate:"min=1"`
	WorkerQueueSize       int           `validate:"min=1"`
	MaxRequestBytes       int64         `validate:"min=1"`
}

var configValidator = validator.New()

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		APIKey:      getEnv("API_KEY", ""),

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		DataDir:        getEnv("DATA_DIR", DefaultDataDir),
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", DefaultStorageBackend)),

		DBUser:            getEnv("DB_USER", DefaultDBUser),
		DBPassword:        getEnv("DB_PASSWORD", DefaultDBPassword),
		DBHost:            getEnv("DB_HOST", DefaultDBHost),
		DBPort:            getEnv("DB_PORT", DefaultDBPort),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		AutosaveDelay:         getEnvAsDuration("AUTOSAVE_DELAY", DefaultAutosaveDelay),
		CatalogReloadInterval: getEnvAsDuration("CATALOG_RELOAD_INTERVAL", DefaultCatalogReloadInterval),
		StrategyCacheSize:     getEnvAsInt("STRATEGY_CACHE_SIZE", DefaultStrategyCacheSize),
		StrategyCacheTTL:      getEnvAsDuration("STRATEGY_CACHE_TTL", DefaultStrategyCacheTTL),
		WorkerCount:           getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		WorkerQueueSize:       getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),
		MaxRequestBytes:       int64(getEnvAsInt("MAX_REQUEST_BYTES", DefaultMaxRequestBytes)),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and reports every failing variable
func (c *Config) Validate() error {
	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s=%v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
}

// UsesPostgres reports whether profiles are stored in PostgreSQL
func (c *Config) UsesPostgres() bool {
	return c.StorageBackend == StorageBackendPostgres
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
