package catalog

import (
	"fmt"

	"github.com/osse101/InvestSim_Go/internal/domain"
	"github.com/osse101/InvestSim_Go/internal/quote"
	"github.com/osse101/InvestSim_Go/internal/validation"
)

// Definition lists the instruments tracked per kind
type Definition struct {
	Version string             `json:"version"`
	Crypto  []quote.Instrument `json:"crypto"`
	Stocks  []quote.Instrument `json:"stocks"`
}

// Instruments returns the tracked instruments of a kind
func (d *Definition) Instruments(kind domain.AssetKind) []quote.Instrument {
	if kind == domain.KindStock {
		return d.Stocks
	}
	return d.Crypto
}

// LoadDefinition reads and validates the catalog definition file. An empty
// path yields an empty definition, which tracks everything the sources list.
func LoadDefinition(v validation.SchemaValidator, path, schemaPath string) (*Definition, error) {
	if path == "" {
		return &Definition{Version: DefinitionVersion}, nil
	}

	var def Definition
	if err := validation.DecodeFile(v, path, schemaPath, &def); err != nil {
		return nil, fmt.Errorf("invalid catalog definition: %w", err)
	}
	if err := def.check(); err != nil {
		return nil, fmt.Errorf("invalid catalog definition %s: %w", path, err)
	}
	return &def, nil
}

// check enforces what the schema cannot: symbols are unique across both kinds
func (d *Definition) check() error {
	if d.Version != DefinitionVersion {
		return fmt.Errorf("unsupported version %q", d.Version)
	}
	seen := make(map[string]domain.AssetKind)
	for _, kind := range []domain.AssetKind{domain.KindCrypto, domain.KindStock} {
		for _, inst := range d.Instruments(kind) {
			symbol := domain.NormalizeSymbol(inst.Symbol)
			if prev, ok := seen[symbol]; ok {
				return fmt.Errorf("%w: symbol %s listed as %s and %s", domain.ErrInvalidInput, symbol, prev, kind)
			}
			seen[symbol] = kind
		}
	}
	return nil
}
