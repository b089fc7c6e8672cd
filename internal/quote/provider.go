// Package quote fetches unit prices for the catalog from remote sources.
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/InvestSim_Go/internal/domain"
)

// Instrument is an asset tracked by the catalog definition. LookupKey is the
// identifier the remote source knows the asset by when it differs from the
// ticker symbol (for example a CoinGecko coin id).
type Instrument struct {
	Symbol    string `json:"symbol"`
	Name      string `json:"name,omitempty"`
	IconURL   string `json:"icon_url,omitempty"`
	LookupKey string `json:"lookup_key,omitempty"`
}

// Key returns the identifier used against the remote source
func (i Instrument) Key() string {
	if i.LookupKey != "" {
		return i.LookupKey
	}
	return i.Symbol
}

// Provider fetches quotes for one kind of asset. With no instruments a
// provider returns everything its source lists, if the source supports that.
type Provider interface {
	Name() string
	Kind() domain.AssetKind
	FetchQuotes(ctx context.Context, instruments []Instrument) ([]domain.Asset, error)
}

// httpSource holds the transport shared by the HTTP providers
type httpSource struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func newHTTPSource(baseURL, apiKey string, timeout time.Duration) httpSource {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return httpSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// getJSON issues a GET and decodes the JSON body into out
func (s httpSource) getJSON(ctx context.Context, provider, endpoint string, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf(ErrMsgBuildRequestFmt, provider, err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf(ErrMsgRequestFailedFmt, provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return fmt.Errorf(ErrMsgBadStatusFmt, provider, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf(ErrMsgDecodeFailedFmt, provider, err)
	}
	return nil
}

// applyInstruments filters fetched assets down to the tracked instruments and
// fills in display names and icons. An empty instrument list keeps everything.
func applyInstruments(assets []domain.Asset, instruments []Instrument) []domain.Asset {
	if len(instruments) == 0 {
		return assets
	}
	bySymbol := make(map[string]domain.Asset, len(assets))
	for _, a := range assets {
		bySymbol[a.Symbol] = a
	}

	out := make([]domain.Asset, 0, len(instruments))
	for _, inst := range instruments {
		a, ok := bySymbol[domain.NormalizeSymbol(inst.Symbol)]
		if !ok {
			continue
		}
		if inst.Name != "" {
			a.Name = inst.Name
		}
		if inst.IconURL != "" {
			a.IconURL = inst.IconURL
		}
		out = append(out, a)
	}
	return out
}

// symbolsFor returns the normalized, de-duplicated lookup keys
func symbolsFor(instruments []Instrument, lower bool) []string {
	seen := make(map[string]struct{}, len(instruments))
	out := make([]string, 0, len(instruments))
	for _, inst := range instruments {
		key := strings.TrimSpace(inst.Key())
		if lower {
			key = strings.ToLower(key)
		} else {
			key = strings.ToUpper(key)
		}
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}
