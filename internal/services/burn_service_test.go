package services_test

import (
	"context"
	"strings"
	"testing"

	"wallet-burner/internal/dto"
	"wallet-burner/internal/models"
	"wallet-burner/internal/services"
	"wallet-burner/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BurnServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	metrics     *service_mocks.MockMetricsRecorderInterface
	burnService services.BurnServiceInterface
}

func TestBurnServiceSuite(t *testing.T) {
	suite.Run(t, new(BurnServiceTestSuite))
}

func (s *BurnServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.metrics.EXPECT().RecordBurnRequest(gomock.Any(), gomock.Any()).AnyTimes()
	s.burnService = services.NewBurnService(s.metrics)
}

func (s *BurnServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BurnServiceTestSuite) TestBurn_ValidToken_ReturnsMockReceipt() {
	amount := decimal.NewFromFloat(12.5)
	req := dto.BurnRequest{
		AssetType: "token",
		AssetID:   usdcMint,
		Amount:    &amount,
	}

	receipt, message, err := s.burnService.Burn(s.ctx, req)

	s.NoError(err)
	s.NotNil(receipt)
	s.True(strings.HasPrefix(receipt.Signature, "mock-"))
	s.Equal(models.BurnAssetToken, receipt.AssetType)
	s.Equal(usdcMint, receipt.AssetID)
	s.Equal("12.5", receipt.Amount.String())
	s.Contains(message, "Successfully burned 12.5 tokens")
}

func (s *BurnServiceTestSuite) TestBurn_NFT_AmountIsOne() {
	req := dto.BurnRequest{
		AssetType: "nft",
		AssetID:   sampleNFT,
	}

	receipt, message, err := s.burnService.Burn(s.ctx, req)

	s.NoError(err)
	s.Equal("1", receipt.Amount.String())
	s.Contains(message, "Successfully burned NFT")
}

func (s *BurnServiceTestSuite) TestBurn_Vacant_ClaimsRent() {
	req := dto.BurnRequest{
		AssetType: "vacant",
		AssetID:   sampleNFT,
	}

	receipt, message, err := s.burnService.Burn(s.ctx, req)

	s.NoError(err)
	s.True(receipt.Amount.IsZero())
	s.Contains(message, "Successfully claimed rent")
}

func (s *BurnServiceTestSuite) TestBurn_AssetTypeCaseInsensitive() {
	req := dto.BurnRequest{
		AssetType: "  NFT ",
		AssetID:   sampleNFT,
	}

	receipt, _, err := s.burnService.Burn(s.ctx, req)

	s.NoError(err)
	s.Equal(models.BurnAssetNFT, receipt.AssetType)
}

func (s *BurnServiceTestSuite) TestBurn_MissingFields_Rejected() {
	testCases := []struct {
		name string
		req  dto.BurnRequest
	}{
		{"empty request", dto.BurnRequest{}},
		{"missing asset id", dto.BurnRequest{AssetType: "token"}},
		{"missing asset type", dto.BurnRequest{AssetID: usdcMint}},
		{"whitespace asset id", dto.BurnRequest{AssetType: "token", AssetID: "   "}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			receipt, _, err := s.burnService.Burn(s.ctx, tc.req)
			s.ErrorIs(err, services.ErrBurnMissingFields)
			s.Nil(receipt)
		})
	}
}

func (s *BurnServiceTestSuite) TestBurn_UnknownAssetType_Rejected() {
	req := dto.BurnRequest{
		AssetType: "domain",
		AssetID:   usdcMint,
	}

	receipt, _, err := s.burnService.Burn(s.ctx, req)

	s.ErrorIs(err, services.ErrBurnInvalidAssetType)
	s.Nil(receipt)
}

func (s *BurnServiceTestSuite) TestBurn_TokenAmountValidation() {
	negative := decimal.NewFromInt(-5)
	zero := decimal.Zero

	testCases := []struct {
		name   string
		amount *decimal.Decimal
	}{
		{"missing amount", nil},
		{"zero amount", &zero},
		{"negative amount", &negative},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := dto.BurnRequest{
				AssetType: "token",
				AssetID:   usdcMint,
				Amount:    tc.amount,
			}
			receipt, _, err := s.burnService.Burn(s.ctx, req)
			s.ErrorIs(err, services.ErrBurnInvalidAmount)
			s.Nil(receipt)
		})
	}
}

func (s *BurnServiceTestSuite) TestBurn_NFTWithoutAmount_Accepted() {
	// amount is only required for fungible tokens
	req := dto.BurnRequest{
		AssetType: "nft",
		AssetID:   sampleNFT,
	}

	_, _, err := s.burnService.Burn(s.ctx, req)

	s.NoError(err)
}
