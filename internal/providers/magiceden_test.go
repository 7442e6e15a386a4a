package providers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wallet-burner/internal/models"
	"wallet-burner/internal/providers"

	"github.com/stretchr/testify/suite"
)

const testMint = "F9Lw3ki3hJu3kGkmqYqXGKCbQPYnXrEnkiXmCFYRD3C3"

type MagicEdenProviderTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestMagicEdenProviderSuite(t *testing.T) {
	suite.Run(t, new(MagicEdenProviderTestSuite))
}

func (s *MagicEdenProviderTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *MagicEdenProviderTestSuite) TestLookup_KnownNFT() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/tokens/"+testMint, r.URL.Path)
		_, _ = w.Write([]byte(`{
			"mintAddress": "` + testMint + `",
			"name": "Mad Lad #42",
			"image": "https://example.com/42.png",
			"collection": "mad_lads",
			"collectionName": "Mad Lads"
		}`))
	}))
	defer server.Close()

	provider := providers.NewMagicEdenProvider(server.URL, time.Second)

	meta, err := provider.Lookup(s.ctx, testMint, 0)

	s.NoError(err)
	s.Equal("Mad Lad #42", meta.DisplayName)
	s.Equal("https://example.com/42.png", meta.ImageURL)
	s.Equal("Mad Lads", meta.CollectionName)
	s.Equal(models.SourceMarketplace, meta.Source)
}

func (s *MagicEdenProviderTestSuite) TestLookup_CollectionSlugFallback() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name": "Degen #7", "collection": "degens"}`))
	}))
	defer server.Close()

	provider := providers.NewMagicEdenProvider(server.URL, time.Second)

	meta, err := provider.Lookup(s.ctx, testMint, 0)

	s.NoError(err)
	s.Equal("degens", meta.CollectionName)
}

func (s *MagicEdenProviderTestSuite) TestLookup_NotFound() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	provider := providers.NewMagicEdenProvider(server.URL, time.Second)

	_, err := provider.Lookup(s.ctx, testMint, 0)

	s.Error(err)
	s.Contains(err.Error(), "status 404")
}

func (s *MagicEdenProviderTestSuite) TestLookup_EmptyName_NoData() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"mintAddress": "` + testMint + `"}`))
	}))
	defer server.Close()

	provider := providers.NewMagicEdenProvider(server.URL, time.Second)

	_, err := provider.Lookup(s.ctx, testMint, 0)

	s.ErrorIs(err, providers.ErrNoData)
}

func (s *MagicEdenProviderTestSuite) TestLookup_Timeout() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer server.Close()

	provider := providers.NewMagicEdenProvider(server.URL, 10*time.Millisecond)

	_, err := provider.Lookup(s.ctx, testMint, 0)

	s.Error(err)
}
