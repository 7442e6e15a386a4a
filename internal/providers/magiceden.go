package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"wallet-burner/internal/models"
)

// magicEdenToken mirrors the Magic Eden tokens API response
type magicEdenToken struct {
	MintAddress    string `json:"mintAddress"`
	Name           string `json:"name"`
	Image          string `json:"image"`
	Collection     string `json:"collection"`
	CollectionName string `json:"collectionName"`
}

// MagicEdenProvider looks NFTs up on the Magic Eden marketplace API.
// First choice in the NFT chain; misses fall through to on-chain metadata.
type MagicEdenProvider struct {
	baseURL    string
	httpClient *http.Client
}

func NewMagicEdenProvider(baseURL string, timeout time.Duration) *MagicEdenProvider {
	return &MagicEdenProvider{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (p *MagicEdenProvider) Name() string { return "magiceden" }

func (p *MagicEdenProvider) Lookup(ctx context.Context, mint string, decimals uint8) (*models.AssetMetadata, error) {
	url := fmt.Sprintf("%s/tokens/%s", p.baseURL, mint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build magiceden request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("magiceden request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("magiceden returned status %d for %s", resp.StatusCode, mint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read magiceden body: %w", err)
	}

	var token magicEdenToken
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("unmarshal magiceden response: %w", err)
	}

	if token.Name == "" {
		return nil, ErrNoData
	}

	collection := token.CollectionName
	if collection == "" {
		collection = token.Collection
	}

	return &models.AssetMetadata{
		DisplayName:    token.Name,
		ImageURL:       token.Image,
		CollectionName: collection,
		Decimals:       decimals,
		Source:         models.SourceMarketplace,
	}, nil
}
