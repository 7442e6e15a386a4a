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
	"wallet-burner/internal/solana"
)

// tokenURIDocument is the off-chain JSON document the Metaplex metadata URI
// points at. Fields beyond these are ignored.
type tokenURIDocument struct {
	Name       string `json:"name"`
	Symbol     string `json:"symbol"`
	Image      string `json:"image"`
	Collection struct {
		Name string `json:"name"`
	} `json:"collection"`
}

// OnChainProvider reads the Metaplex metadata account directly from the
// ledger and, when the record carries a URI, enriches it with the off-chain
// JSON document. URI failures are non-fatal; the on-chain name and symbol
// already satisfy the lookup.
type OnChainProvider struct {
	ledger     solana.LedgerClientInterface
	httpClient *http.Client
}

func NewOnChainProvider(ledger solana.LedgerClientInterface, uriTimeout time.Duration) *OnChainProvider {
	return &OnChainProvider{
		ledger: ledger,
		httpClient: &http.Client{
			Timeout: uriTimeout,
		},
	}
}

func (p *OnChainProvider) Name() string { return "onchain" }

func (p *OnChainProvider) Lookup(ctx context.Context, mint string, decimals uint8) (*models.AssetMetadata, error) {
	md, err := p.ledger.OnChainMetadata(ctx, mint)
	if err != nil {
		return nil, fmt.Errorf("onchain metadata %s: %w", mint, err)
	}
	if md.Name == "" {
		return nil, ErrNoData
	}

	meta := &models.AssetMetadata{
		DisplayName: md.Name,
		Symbol:      md.Symbol,
		Decimals:    decimals,
		Source:      models.SourceOnChain,
	}

	if uri := strings.TrimSpace(md.URI); uri != "" {
		if doc := p.fetchURIDocument(ctx, uri); doc != nil {
			if doc.Image != "" {
				meta.ImageURL = doc.Image
			}
			if doc.Collection.Name != "" {
				meta.CollectionName = doc.Collection.Name
			}
		}
	}

	return meta, nil
}

// fetchURIDocument best-effort fetches the off-chain metadata JSON.
// Any failure returns nil.
func (p *OnChainProvider) fetchURIDocument(ctx context.Context, uri string) *tokenURIDocument {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}

	var doc tokenURIDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil
	}
	return &doc
}
