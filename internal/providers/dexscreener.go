package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"wallet-burner/internal/models"
)

// dexScreenerResponse mirrors the DexScreener token-pairs API response
type dexScreenerResponse struct {
	Pairs []struct {
		BaseToken struct {
			Address string `json:"address"`
			Name    string `json:"name"`
			Symbol  string `json:"symbol"`
		} `json:"baseToken"`
		Info struct {
			ImageURL string `json:"imageUrl"`
		} `json:"info"`
	} `json:"pairs"`
}

// DexScreenerProvider resolves fungible-token metadata through the
// DexScreener pair aggregator. Second choice after the curated token list.
type DexScreenerProvider struct {
	baseURL    string
	httpClient *http.Client
}

func NewDexScreenerProvider(baseURL string, timeout time.Duration) *DexScreenerProvider {
	return &DexScreenerProvider{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (p *DexScreenerProvider) Name() string { return "dexscreener" }

func (p *DexScreenerProvider) Lookup(ctx context.Context, mint string, decimals uint8) (*models.AssetMetadata, error) {
	url := fmt.Sprintf("%s/latest/dex/tokens/%s", p.baseURL, mint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build dexscreener request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dexscreener request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dexscreener returned status %d for %s", resp.StatusCode, mint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read dexscreener body: %w", err)
	}

	var out dexScreenerResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("unmarshal dexscreener response: %w", err)
	}

	// The response lists pairs the mint trades in; take the first pair where
	// the mint is the base token.
	for _, pair := range out.Pairs {
		if !strings.EqualFold(pair.BaseToken.Address, mint) {
			continue
		}
		if pair.BaseToken.Name == "" {
			continue
		}
		return &models.AssetMetadata{
			DisplayName: pair.BaseToken.Name,
			Symbol:      pair.BaseToken.Symbol,
			ImageURL:    pair.Info.ImageURL,
			Decimals:    decimals,
			Source:      models.SourceAggregator,
		}, nil
	}

	return nil, ErrNoData
}
