package providers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wallet-burner/internal/models"
	"wallet-burner/internal/providers"
	"wallet-burner/internal/solana"
	"wallet-burner/internal/solana/solana_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type OnChainProviderTestSuite struct {
	suite.Suite
	ctx    context.Context
	ctrl   *gomock.Controller
	ledger *solana_mocks.MockLedgerClientInterface
}

func TestOnChainProviderSuite(t *testing.T) {
	suite.Run(t, new(OnChainProviderTestSuite))
}

func (s *OnChainProviderTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.ledger = solana_mocks.NewMockLedgerClientInterface(s.ctrl)
}

func (s *OnChainProviderTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OnChainProviderTestSuite) TestLookup_MetadataWithoutURI() {
	s.ledger.EXPECT().OnChainMetadata(gomock.Any(), testMint).Return(&solana.OnChainMetadata{
		Name:   "Bonk",
		Symbol: "BONK",
	}, nil)

	provider := providers.NewOnChainProvider(s.ledger, time.Second)

	meta, err := provider.Lookup(s.ctx, testMint, 5)

	s.NoError(err)
	s.Equal("Bonk", meta.DisplayName)
	s.Equal("BONK", meta.Symbol)
	s.Empty(meta.ImageURL)
	s.Equal(uint8(5), meta.Decimals)
	s.Equal(models.SourceOnChain, meta.Source)
}

func (s *OnChainProviderTestSuite) TestLookup_URIDocumentEnrichesResult() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"name": "Mad Lad #42",
			"image": "https://example.com/42.png",
			"collection": {"name": "Mad Lads"}
		}`))
	}))
	defer server.Close()

	s.ledger.EXPECT().OnChainMetadata(gomock.Any(), testMint).Return(&solana.OnChainMetadata{
		Name:   "Mad Lad #42",
		Symbol: "MAD",
		URI:    server.URL,
	}, nil)

	provider := providers.NewOnChainProvider(s.ledger, time.Second)

	meta, err := provider.Lookup(s.ctx, testMint, 0)

	s.NoError(err)
	s.Equal("https://example.com/42.png", meta.ImageURL)
	s.Equal("Mad Lads", meta.CollectionName)
}

func (s *OnChainProviderTestSuite) TestLookup_URIFailureIsNonFatal() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	s.ledger.EXPECT().OnChainMetadata(gomock.Any(), testMint).Return(&solana.OnChainMetadata{
		Name:   "Mad Lad #42",
		Symbol: "MAD",
		URI:    server.URL,
	}, nil)

	provider := providers.NewOnChainProvider(s.ledger, time.Second)

	meta, err := provider.Lookup(s.ctx, testMint, 0)

	s.NoError(err)
	s.Equal("Mad Lad #42", meta.DisplayName)
	s.Empty(meta.ImageURL)
}

func (s *OnChainProviderTestSuite) TestLookup_LedgerFailure() {
	s.ledger.EXPECT().OnChainMetadata(gomock.Any(), testMint).Return(nil, errors.New("account not found"))

	provider := providers.NewOnChainProvider(s.ledger, time.Second)

	_, err := provider.Lookup(s.ctx, testMint, 0)

	s.Error(err)
}

func (s *OnChainProviderTestSuite) TestLookup_EmptyName_NoData() {
	s.ledger.EXPECT().OnChainMetadata(gomock.Any(), testMint).Return(&solana.OnChainMetadata{}, nil)

	provider := providers.NewOnChainProvider(s.ledger, time.Second)

	_, err := provider.Lookup(s.ctx, testMint, 0)

	s.ErrorIs(err, providers.ErrNoData)
}
