package providers

import (
	"context"

	"wallet-burner/internal/models"
	"wallet-burner/internal/tokenlist"
)

// TokenListProvider serves fungible-token metadata from the curated token
// list snapshot. The registry is injected and shared process-wide, so the
// list is fetched at most once per cold start.
type TokenListProvider struct {
	registry *tokenlist.Registry
}

func NewTokenListProvider(registry *tokenlist.Registry) *TokenListProvider {
	return &TokenListProvider{registry: registry}
}

func (p *TokenListProvider) Name() string { return "tokenlist" }

func (p *TokenListProvider) Lookup(ctx context.Context, mint string, decimals uint8) (*models.AssetMetadata, error) {
	entry, ok := p.registry.Lookup(ctx, mint)
	if !ok {
		return nil, ErrNoData
	}

	return &models.AssetMetadata{
		DisplayName: entry.Name,
		Symbol:      entry.Symbol,
		ImageURL:    entry.LogoURI,
		Decimals:    decimals,
		Source:      models.SourceTokenList,
	}, nil
}
