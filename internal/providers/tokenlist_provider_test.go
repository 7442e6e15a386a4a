package providers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wallet-burner/internal/models"
	"wallet-burner/internal/providers"
	"wallet-burner/internal/tokenlist"

	"github.com/stretchr/testify/suite"
)

type TokenListProviderTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestTokenListProviderSuite(t *testing.T) {
	suite.Run(t, new(TokenListProviderTestSuite))
}

func (s *TokenListProviderTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *TokenListProviderTestSuite) TestLookup_CuratedMint() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"tokens": [
				{
					"address": "` + usdcTestMint + `",
					"chainId": 101,
					"name": "USD Coin",
					"symbol": "USDC",
					"decimals": 6,
					"logoURI": "https://example.com/usdc.png"
				}
			]
		}`))
	}))
	defer server.Close()

	registry := tokenlist.NewRegistry(server.URL, time.Second)
	provider := providers.NewTokenListProvider(registry)

	s.Equal("tokenlist", provider.Name())

	meta, err := provider.Lookup(s.ctx, usdcTestMint, 6)

	s.NoError(err)
	s.Equal("USD Coin", meta.DisplayName)
	s.Equal("USDC", meta.Symbol)
	s.Equal("https://example.com/usdc.png", meta.ImageURL)
	s.Equal(models.SourceTokenList, meta.Source)
}

func (s *TokenListProviderTestSuite) TestLookup_UncuratedMint_NoData() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tokens": []}`))
	}))
	defer server.Close()

	registry := tokenlist.NewRegistry(server.URL, time.Second)
	provider := providers.NewTokenListProvider(registry)

	_, err := provider.Lookup(s.ctx, testMint, 0)

	s.ErrorIs(err, providers.ErrNoData)
}

func (s *TokenListProviderTestSuite) TestLookup_ListUnavailable_NoData() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	registry := tokenlist.NewRegistry(server.URL, time.Second)
	provider := providers.NewTokenListProvider(registry)

	_, err := provider.Lookup(s.ctx, usdcTestMint, 6)

	s.ErrorIs(err, providers.ErrNoData)
}
