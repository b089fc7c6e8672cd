package bootstrap

import (
	"github.com/osse101/InvestSim_Go/internal/cache"
	"github.com/osse101/InvestSim_Go/internal/config"
	"github.com/osse101/InvestSim_Go/internal/database"
	"github.com/osse101/InvestSim_Go/internal/quote"
)

// QuoteConfig maps the environment settings onto both quote sources.
// The JSONPath expressions are shared by the crypto and stock sources.
func QuoteConfig(cfg *config.Config) quote.Config {
	paths := quote.JSONPathConfig{
		ListPath:   cfg.JSONPathList,
		SymbolPath: cfg.JSONPathSymbol,
		PricePath:  cfg.JSONPathPrice,
		NamePath:   cfg.JSONPathName,
	}.WithDefaults()

	return quote.Config{
		Crypto: quote.SourceConfig{
			Provider: cfg.CryptoProvider,
			BaseURL:  cfg.CryptoProviderURL,
			APIKey:   cfg.CryptoProviderKey,
			JSONPath: paths,
		},
		Stock: quote.SourceConfig{
			Provider: cfg.StockProvider,
			BaseURL:  cfg.StockProviderURL,
			APIKey:   cfg.StockProviderKey,
			JSONPath: paths,
		},
		Timeout: cfg.QuoteTimeout,
	}
}

// CacheConfig maps the environment settings onto the cache store
func CacheConfig(cfg *config.Config) cache.Config {
	c := cache.DefaultConfig()
	c.Backend = cfg.CacheBackend
	if cfg.CacheSize > 0 {
		c.Size = cfg.CacheSize
	}
	if cfg.CacheTTL > 0 {
		c.TTL = cfg.CacheTTL
	}
	c.RedisAddr = cfg.RedisAddr
	c.RedisDB = cfg.RedisDB
	c.RedisPass = cfg.RedisPassword
	return c
}

// PoolOptions maps the environment settings onto the connection pool
func PoolOptions(cfg *config.Config) database.PoolOptions {
	return database.PoolOptions{
		MaxConns:    cfg.DBMaxConns,
		MinConns:    cfg.DBMinConns,
		MaxIdleTime: cfg.DBMaxConnIdleTime,
		MaxLifetime: cfg.DBMaxConnLifetime,
	}
}
