package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/InvestSim_Go/internal/catalog"
	"github.com/osse101/InvestSim_Go/internal/config"
	"github.com/osse101/InvestSim_Go/internal/domain"
	"github.com/osse101/InvestSim_Go/internal/validation"
)

// LoadCatalogDefinition reads the instrument list the catalog is built from
// and checks it against its JSON schema.
func LoadCatalogDefinition(cfg *config.Config) (*catalog.Definition, error) {
	slog.Info(LogMsgLoadingCatalogDefinition, "path", cfg.CatalogFile, "schema", cfg.CatalogSchemaFile)

	def, err := catalog.LoadDefinition(validation.NewSchemaValidator(), cfg.CatalogFile, cfg.CatalogSchemaFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	slog.Info(LogMsgCatalogDefinitionLoaded,
		"cryptos", len(def.Instruments(domain.KindCrypto)),
		"stocks", len(def.Instruments(domain.KindStock)))
	return def, nil
}
