package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wallet-burner/internal/dto"
	apierrors "wallet-burner/internal/errors"
	"wallet-burner/internal/middleware"
	"wallet-burner/internal/models"
	"wallet-burner/internal/services"
	"wallet-burner/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BurnHandlerTestSuite struct {
	suite.Suite
	echo            *echo.Echo
	ctrl            *gomock.Controller
	mockBurnService *service_mocks.MockBurnServiceInterface
	handler         *BurnHandler
}

func TestBurnHandlerSuite(t *testing.T) {
	suite.Run(t, new(BurnHandlerTestSuite))
}

func (s *BurnHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockBurnService = service_mocks.NewMockBurnServiceInterface(s.ctrl)
	s.handler = NewBurnHandler(s.mockBurnService)
}

func (s *BurnHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BurnHandlerTestSuite) postBurn(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/burn", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(middleware.TraceIDContextKey, "test-trace-id")

	err := s.handler.Burn(c)
	s.NoError(err)
	return rec
}

func (s *BurnHandlerTestSuite) TestBurn_ValidToken_Returns200() {
	amount := decimal.NewFromFloat(12.5)
	receipt := &models.BurnReceipt{
		Signature: "mock-" + gofakeit.UUID(),
		AssetType: models.BurnAssetToken,
		AssetID:   usdcMint,
		Amount:    amount,
		BurnedAt:  time.Now().UTC(),
	}

	s.mockBurnService.EXPECT().
		Burn(gomock.Any(), gomock.Any()).
		Return(receipt, "Successfully burned 12.5 tokens of EPjF...Dt1v", nil)

	rec := s.postBurn(`{"assetType": "token", "assetId": "` + usdcMint + `", "amount": "12.5"}`)

	s.Equal(http.StatusOK, rec.Code)

	var resp dto.BurnResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Success)
	s.Contains(resp.Message, "Successfully burned")
	s.NotNil(resp.Receipt)
	s.True(strings.HasPrefix(resp.Receipt.Signature, "mock-"))
}

func (s *BurnHandlerTestSuite) TestBurn_BareNumberAmount_Binds() {
	s.mockBurnService.EXPECT().
		Burn(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req dto.BurnRequest) (*models.BurnReceipt, string, error) {
			s.NotNil(req.Amount)
			s.Equal("12.5", req.Amount.String())
			return &models.BurnReceipt{}, "ok", nil
		})

	rec := s.postBurn(`{"assetType": "token", "assetId": "` + usdcMint + `", "amount": 12.5}`)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *BurnHandlerTestSuite) TestBurn_InvalidJSON_Returns400() {
	rec := s.postBurn(`{"assetType": `)

	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.False(resp.Success)
	s.Equal(string(apierrors.BurnMissingFields), resp.Code)
}

func (s *BurnHandlerTestSuite) TestBurn_ValidationRejectsBeforeService() {
	// no mock expectation is registered: the request must be rejected by
	// the bound validation rules before the service is reached
	testCases := []struct {
		name         string
		body         string
		expectedCode apierrors.ErrorCode
	}{
		{"missing asset id", `{"assetType": "token"}`, apierrors.BurnMissingFields},
		{"missing asset type", `{"assetId": "` + usdcMint + `"}`, apierrors.BurnMissingFields},
		{"unknown asset type", `{"assetType": "domain", "assetId": "` + usdcMint + `"}`, apierrors.BurnInvalidAssetType},
		{"negative amount", `{"assetType": "token", "assetId": "` + usdcMint + `", "amount": "-5"}`, apierrors.BurnInvalidAmount},
		{"zero amount", `{"assetType": "token", "assetId": "` + usdcMint + `", "amount": 0}`, apierrors.BurnInvalidAmount},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec := s.postBurn(tc.body)

			s.Equal(http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
			s.False(resp.Success)
			s.Equal(string(tc.expectedCode), resp.Code)
		})
	}
}

func (s *BurnHandlerTestSuite) TestBurn_ServiceErrors_MapToCodes() {
	testCases := []struct {
		name         string
		serviceErr   error
		expectedCode apierrors.ErrorCode
	}{
		{"missing fields", services.ErrBurnMissingFields, apierrors.BurnMissingFields},
		{"invalid asset type", services.ErrBurnInvalidAssetType, apierrors.BurnInvalidAssetType},
		{"invalid amount", services.ErrBurnInvalidAmount, apierrors.BurnInvalidAmount},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockBurnService.EXPECT().
				Burn(gomock.Any(), gomock.Any()).
				Return(nil, "", tc.serviceErr)

			rec := s.postBurn(`{"assetType": "token", "assetId": "` + usdcMint + `"}`)

			s.Equal(http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
			s.Equal(string(tc.expectedCode), resp.Code)
		})
	}
}

func (s *BurnHandlerTestSuite) TestBurn_UnexpectedServiceError_Returns500() {
	s.mockBurnService.EXPECT().
		Burn(gomock.Any(), gomock.Any()).
		Return(nil, "", errors.New("boom"))

	rec := s.postBurn(`{"assetType": "nft", "assetId": "` + usdcMint + `"}`)

	s.Equal(http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(apierrors.SystemInternalError), resp.Code)
}
