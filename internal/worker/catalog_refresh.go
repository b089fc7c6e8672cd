package worker

import (
	"context"

	"github.com/osse101/InvestSim_Go/internal/domain"
	"github.com/osse101/InvestSim_Go/internal/logger"
)

// CatalogRefresher is the part of the catalog service a refresh job needs
type CatalogRefresher interface {
	Refresh(ctx context.Context, source string) (*domain.Catalog, error)
}

// CatalogRefreshJob reloads the catalog from the quote providers
type CatalogRefreshJob struct {
	catalog CatalogRefresher
	source  string
}

// NewCatalogRefreshJob creates a refresh job tagged with source
func NewCatalogRefreshJob(catalog CatalogRefresher, source string) *CatalogRefreshJob {
	return &CatalogRefreshJob{catalog: catalog, source: source}
}

func (j *CatalogRefreshJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgCatalogRefreshStarting, "source", j.source)

	c, err := j.catalog.Refresh(ctx, j.source)
	if err != nil {
		return err
	}

	log.Debug(LogMsgCatalogRefreshCompleted, "source", j.source, "cryptos", len(c.Cryptos), "stocks", len(c.Stocks))
	return nil
}
