package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds the application configuration
type Config struct {
	Port           int
	LogLevel       string
	LogFormat      string
	Environment    string
	LogDir         string
	APIKey         string // API key for authentication
	TrustedProxies []string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMinConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// InitialBalance funds newly created accounts
	InitialBalance decimal.Decimal

	CryptoProvider     string
	CryptoProviderURL  string
	CryptoProviderKey  string
	StockProvider      string
	StockProviderURL   string
	StockProviderKey   string
	JSONPathList       string
	JSONPathSymbol     string
	JSONPathPrice      string
	JSONPathName       string
	QuoteTimeout       time.Duration

	CacheBackend  string
	CacheSize     int
	CacheTTL      time.Duration
	RedisAddr     string
	RedisDB       int
	RedisPassword string

	CatalogFile            string
	CatalogSchemaFile      string
	CatalogRefreshInterval time.Duration

	WorkerCount int

	// EventLogRetentionDays of 0 disables the cleanup job
	EventLogRetentionDays   int
	EventLogCleanupInterval time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	if err := ValidateEnvSchema(); err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:      getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment:    getEnv("ENVIRONMENT", DefaultEnvironment),
		LogDir:         getEnv("LOG_DIR", DefaultLogDir),
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMinConns:        getEnvAsInt("DB_MIN_CONNS", DefaultDBMinConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		CryptoProvider:    getEnv("CRYPTO_PROVIDER", DefaultCryptoProvider),
		CryptoProviderURL: getEnv("CRYPTO_PROVIDER_URL", ""),
		CryptoProviderKey: getEnv("CRYPTO_PROVIDER_KEY", ""),
		StockProvider:     getEnv("STOCK_PROVIDER", DefaultStockProvider),
		StockProviderURL:  getEnv("STOCK_PROVIDER_URL", ""),
		StockProviderKey:  getEnv("STOCK_PROVIDER_KEY", ""),
		JSONPathList:      getEnv("QUOTE_JSONPATH_LIST", ""),
		JSONPathSymbol:    getEnv("QUOTE_JSONPATH_SYMBOL", ""),
		JSONPathPrice:     getEnv("QUOTE_JSONPATH_PRICE", ""),
		JSONPathName:      getEnv("QUOTE_JSONPATH_NAME", ""),
		QuoteTimeout:      getEnvAsDuration("QUOTE_TIMEOUT", DefaultQuoteTimeout),

		CacheBackend:  getEnv("CACHE_BACKEND", DefaultCacheBackend),
		CacheSize:     getEnvAsInt("CACHE_SIZE", DefaultCacheSize),
		CacheTTL:      getEnvAsDuration("CACHE_TTL", DefaultCacheTTL),
		RedisAddr:     getEnv("REDIS_ADDR", DefaultRedisAddr),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		CatalogFile:            getEnv("CATALOG_FILE", ConfigPathCatalog),
		CatalogSchemaFile:      getEnv("CATALOG_SCHEMA_FILE", ConfigPathCatalogSchema),
		CatalogRefreshInterval: getEnvAsDuration("CATALOG_REFRESH_INTERVAL", DefaultCatalogRefreshInterval),

		WorkerCount: getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),

		EventLogRetentionDays:   getEnvAsInt("EVENT_LOG_RETENTION_DAYS", DefaultEventLogRetentionDays),
		EventLogCleanupInterval: getEnvAsDuration("EVENT_LOG_CLEANUP_INTERVAL", DefaultEventLogCleanupInterval),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	balance, err := decimal.NewFromString(getEnv("INITIAL_BALANCE", DefaultInitialBalance))
	if err != nil {
		return nil, fmt.Errorf("invalid INITIAL_BALANCE value: %w", err)
	}
	if balance.IsNegative() {
		return nil, fmt.Errorf("INITIAL_BALANCE must not be negative, got %s", balance)
	}
	cfg.InitialBalance = balance

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration accepts Go duration strings ("90s") or plain seconds
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
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

// IsProduction reports whether the service runs in the production environment
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production") || strings.EqualFold(c.Environment, "prod")
}
