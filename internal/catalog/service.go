package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/osse101/InvestSim_Go/internal/cache"
	"github.com/osse101/InvestSim_Go/internal/domain"
	"github.com/osse101/InvestSim_Go/internal/event"
	"github.com/osse101/InvestSim_Go/internal/logger"
	"github.com/osse101/InvestSim_Go/internal/metrics"
	"github.com/osse101/InvestSim_Go/internal/quote"
)

// Service serves the priced catalog of cryptos and stocks
type Service interface {
	GetCatalog(ctx context.Context) (*domain.Catalog, error)
	Lookup(ctx context.Context, symbol string) (domain.Asset, error)
	Refresh(ctx context.Context, source string) (*domain.Catalog, error)
	CacheStats() cache.Stats
}

type service struct {
	store     cache.Store
	backend   string
	providers quote.Set
	def       *Definition
	bus       event.Bus
	now       func() time.Time

	loads singleflight.Group

	mu       sync.RWMutex
	lastGood *domain.Catalog
}

// NewService creates a catalog service. bus may be nil.
func NewService(store cache.Store, providers quote.Set, def *Definition, bus event.Bus) Service {
	if def == nil {
		def = &Definition{Version: DefinitionVersion}
	}
	return &service{
		store:     store,
		backend:   store.Stats().Backend,
		providers: providers,
		def:       def,
		bus:       bus,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// GetCatalog returns the cached catalog, loading it from the providers on a miss.
// Concurrent misses share one load. When the providers fail the last good
// catalog is served and cached again.
func (s *service) GetCatalog(ctx context.Context) (*domain.Catalog, error) {
	if c, ok := s.fromCache(ctx); ok {
		return c, nil
	}
	c, err := s.load(ctx)
	if err == nil {
		return c, nil
	}

	s.mu.RLock()
	stale := s.lastGood
	s.mu.RUnlock()
	if stale == nil {
		return nil, err
	}
	logger.FromContext(ctx).Warn(LogMsgServingStale, "fetched_at", stale.FetchedAt)
	s.writeCache(ctx, stale)
	return stale, nil
}

func (s *service) Lookup(ctx context.Context, symbol string) (domain.Asset, error) {
	c, err := s.GetCatalog(ctx)
	if err != nil {
		return domain.Asset{}, err
	}
	asset, ok := c.Find(symbol)
	if !ok {
		return domain.Asset{}, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, domain.NormalizeSymbol(symbol))
	}
	return asset, nil
}

// Refresh loads a fresh catalog from the providers. On failure the cached
// catalog is left in place and nothing is published.
func (s *service) Refresh(ctx context.Context, source string) (*domain.Catalog, error) {
	log := logger.FromContext(ctx)

	c, err := s.load(ctx)
	if err != nil {
		log.Warn(LogMsgRefreshFailed, "source", source, "error", err)
		return nil, err
	}

	log.Info(LogMsgRefreshed, "source", source, "cryptos", len(c.Cryptos), "stocks", len(c.Stocks))
	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewCatalogRefreshedEvent(*c, source)); err != nil {
			log.Warn(LogMsgPublishFailed, "error", err)
		}
	}
	return c, nil
}

func (s *service) CacheStats() cache.Stats {
	return s.store.Stats()
}

func (s *service) fromCache(ctx context.Context) (*domain.Catalog, bool) {
	log := logger.FromContext(ctx)

	data, ok, err := s.store.Get(ctx, CacheKey)
	if err != nil {
		log.Warn(LogMsgCacheReadFailed, "error", err)
		return nil, false
	}
	if !ok {
		metrics.CacheRequests.WithLabelValues(s.backend, metrics.CacheResultMiss).Inc()
		return nil, false
	}
	metrics.CacheRequests.WithLabelValues(s.backend, metrics.CacheResultHit).Inc()

	var c domain.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		log.Warn(LogMsgCacheDecodeFailed, "error", err)
		return nil, false
	}
	return &c, true
}

func (s *service) load(ctx context.Context) (*domain.Catalog, error) {
	// The shared load must not die with whichever caller happened to start it
	v, err, _ := s.loads.Do(CacheKey, func() (any, error) {
		return s.fetchAndStore(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Catalog), nil
}

func (s *service) fetchAndStore(ctx context.Context) (*domain.Catalog, error) {
	log := logger.FromContext(ctx)

	c, err := s.fetch(ctx)
	if err != nil {
		log.Error(LogMsgFetchFailed, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}

	log.Info(LogMsgFetched, "cryptos", len(c.Cryptos), "stocks", len(c.Stocks))

	s.mu.Lock()
	s.lastGood = c
	s.mu.Unlock()

	s.writeCache(ctx, c)
	return c, nil
}

func (s *service) writeCache(ctx context.Context, c *domain.Catalog) {
	data, err := json.Marshal(c)
	if err == nil {
		err = s.store.Set(ctx, CacheKey, data)
	}
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgCacheWriteFailed, "error", err)
	}
}

// fetch queries both providers concurrently and assembles the catalog
func (s *service) fetch(ctx context.Context) (*domain.Catalog, error) {
	var cryptos, stocks []domain.Asset

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cryptos, err = s.fetchKind(gctx, s.providers.Crypto, domain.KindCrypto)
		return err
	})
	g.Go(func() error {
		var err error
		stocks, err = s.fetchKind(gctx, s.providers.Stock, domain.KindStock)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cryptos = dedupe(ctx, cryptos, nil)
	stocks = dedupe(ctx, stocks, cryptos)
	domain.SortByPrice(cryptos)
	domain.SortByPrice(stocks)

	return &domain.Catalog{Cryptos: cryptos, Stocks: stocks, FetchedAt: s.now()}, nil
}

func (s *service) fetchKind(ctx context.Context, p quote.Provider, kind domain.AssetKind) ([]domain.Asset, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: no %s provider", domain.ErrProviderNotConfigured, kind)
	}

	start := time.Now()
	assets, err := p.FetchQuotes(ctx, s.def.Instruments(kind))
	metrics.QuoteFetchDuration.WithLabelValues(p.Name(), string(kind)).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.QuoteFetchErrors.WithLabelValues(p.Name(), string(kind)).Inc()
		return nil, err
	}

	out := make([]domain.Asset, 0, len(assets))
	for _, a := range assets {
		a.Symbol = domain.NormalizeSymbol(a.Symbol)
		a.Kind = kind
		if a.Symbol == "" || a.UnitPrice.IsNegative() {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// dedupe keeps the first asset per symbol and drops any symbol already in taken
func dedupe(ctx context.Context, assets, taken []domain.Asset) []domain.Asset {
	seen := make(map[string]bool, len(assets)+len(taken))
	for _, a := range taken {
		seen[a.Symbol] = true
	}
	out := assets[:0]
	for _, a := range assets {
		if seen[a.Symbol] {
			logger.FromContext(ctx).Warn(LogMsgDuplicateSymbol, "symbol", a.Symbol, "kind", a.Kind)
			continue
		}
		seen[a.Symbol] = true
		out = append(out, a)
	}
	return out
}
