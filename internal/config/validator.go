package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build reads. Files that
// declare ENV_SCHEMA_VERSION must match it; files without it are accepted.
const ExpectedEnvSchemaVersion = "1.0"

// Example values shipped in .env.example
const (
	exampleDBPassword = "change_this_secure_password"
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// keyedProviders need an API key to return quotes
var keyedProviders = map[string]bool{
	"marketstack":   true,
	"alphavantage":  true,
	"coingecko-pro": true,
}

// ValidateEnvSchema rejects a .env written for another schema version
func ValidateEnvSchema() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" || schemaVersion == ExpectedEnvSchemaVersion {
		return nil
	}
	return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
}

// Warnings lists settings that load fine but are probably mistakes
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == exampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == exampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	for _, src := range []struct{ name, provider, key string }{
		{"CRYPTO_PROVIDER", c.CryptoProvider, c.CryptoProviderKey},
		{"STOCK_PROVIDER", c.StockProvider, c.StockProviderKey},
	} {
		provider := strings.ToLower(src.provider)
		if keyedProviders[provider] && src.key == "" {
			warnings = append(warnings, fmt.Sprintf("%s=%s requires %s_KEY - quotes will fail until it is set", src.name, provider, src.name))
		}
	}

	if strings.EqualFold(c.CacheBackend, "redis") && c.RedisAddr == "" {
		warnings = append(warnings, "CACHE_BACKEND=redis without REDIS_ADDR")
	}
	if c.InitialBalance.IsZero() {
		warnings = append(warnings, "INITIAL_BALANCE is 0 - new accounts cannot buy anything")
	}
	if c.WorkerCount < 1 {
		warnings = append(warnings, "WORKER_COUNT below 1 - background refreshes will not run")
	}

	return warnings
}
