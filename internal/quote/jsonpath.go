package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"github.com/osse101/InvestSim_Go/internal/domain"
)

// JSONPathConfig locates quotes inside an arbitrary JSON document.
// ListPath selects the quote objects; the other paths are evaluated against
// each selected object.
type JSONPathConfig struct {
	ListPath   string
	SymbolPath string
	PricePath  string
	NamePath   string
}

// DefaultJSONPathConfig matches a {"data":[{"symbol","name","price"}]} document
func DefaultJSONPathConfig() JSONPathConfig {
	return JSONPathConfig{
		ListPath:   "$.data[*]",
		SymbolPath: "$.symbol",
		PricePath:  "$.price",
		NamePath:   "$.name",
	}
}

// WithDefaults fills the empty paths from DefaultJSONPathConfig
func (c JSONPathConfig) WithDefaults() JSONPathConfig {
	d := DefaultJSONPathConfig()
	if c.ListPath == "" {
		c.ListPath = d.ListPath
	}
	if c.SymbolPath == "" {
		c.SymbolPath = d.SymbolPath
	}
	if c.PricePath == "" {
		c.PricePath = d.PricePath
	}
	if c.NamePath == "" {
		c.NamePath = d.NamePath
	}
	return c
}

// JSONPathProvider reads quotes from any JSON endpoint described by a JSONPathConfig
type JSONPathProvider struct {
	httpSource
	kind  domain.AssetKind
	paths JSONPathConfig
}

func NewJSONPathProvider(kind domain.AssetKind, baseURL, apiKey string, paths JSONPathConfig, timeout time.Duration) *JSONPathProvider {
	return &JSONPathProvider{
		httpSource: newHTTPSource(baseURL, apiKey, timeout),
		kind:       kind,
		paths:      paths,
	}
}

func (p *JSONPathProvider) Name() string           { return ProviderJSONPath }
func (p *JSONPathProvider) Kind() domain.AssetKind { return p.kind }

func (p *JSONPathProvider) FetchQuotes(ctx context.Context, instruments []Instrument) ([]domain.Asset, error) {
	var raw json.RawMessage
	headers := map[string]string{}
	if p.apiKey != "" {
		headers["Authorization"] = p.apiKey
	}
	if err := p.getJSON(ctx, p.Name(), p.baseURL, headers, &raw); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeFailedFmt, p.Name(), err)
	}

	list, err := jsonpath.Get(p.paths.ListPath, doc)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgJSONPathFmt, p.Name(), p.paths.ListPath, err)
	}
	items, ok := list.([]any)
	if !ok {
		items = []any{list}
	}

	assets := make([]domain.Asset, 0, len(items))
	for _, item := range items {
		asset, err := p.assetFrom(item)
		if err != nil {
			return nil, err
		}
		if asset.Symbol == "" {
			continue
		}
		assets = append(assets, asset)
	}
	return applyInstruments(assets, instruments), nil
}

func (p *JSONPathProvider) assetFrom(item any) (domain.Asset, error) {
	symbolVal, err := firstValue(p.paths.SymbolPath, item)
	if err != nil {
		return domain.Asset{}, fmt.Errorf(ErrMsgJSONPathFmt, p.Name(), p.paths.SymbolPath, err)
	}
	priceVal, err := firstValue(p.paths.PricePath, item)
	if err != nil {
		return domain.Asset{}, fmt.Errorf(ErrMsgJSONPathFmt, p.Name(), p.paths.PricePath, err)
	}
	price, err := toDecimal(priceVal)
	if err != nil {
		return domain.Asset{}, fmt.Errorf(ErrMsgJSONPathFmt, p.Name(), p.paths.PricePath, err)
	}

	symbol := domain.NormalizeSymbol(fmt.Sprint(symbolVal))
	name := symbol
	if p.paths.NamePath != "" {
		if v, err := firstValue(p.paths.NamePath, item); err == nil && v != nil {
			name = fmt.Sprint(v)
		}
	}
	return domain.Asset{Symbol: symbol, Name: name, Kind: p.kind, UnitPrice: price}, nil
}

// firstValue evaluates path and keeps the first element when the result is a list
func firstValue(path string, v any) (any, error) {
	val, err := jsonpath.Get(path, v)
	if err != nil {
		return nil, err
	}
	if list, ok := val.([]any); ok {
		if len(list) == 0 {
			return nil, nil
		}
		val = list[0]
	}
	return val, nil
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case json.Number:
		return decimal.NewFromString(n.String())
	case string:
		return decimal.NewFromString(n)
	case float64:
		return decimal.NewFromFloat(n), nil
	case nil:
		return decimal.Zero, fmt.Errorf("missing price")
	}
	return decimal.Zero, fmt.Errorf("unsupported price type %T", v)
}
