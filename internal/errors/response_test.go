package errors_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"wallet-burner/internal/errors"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
}

func TestResponseSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	resp := errors.NewErrorResponse(errors.WalletMissing, "trace-123")

	s.False(resp.Success)
	s.Equal("WALLET_001", resp.Code)
	s.Equal("Wallet address is required", resp.Message)
	s.Equal("trace-123", resp.TraceID)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithMessageOverride() {
	resp := errors.NewErrorResponse(
		errors.BurnMissingFields,
		"trace-123",
		errors.WithMessage("Request body is not valid JSON"),
	)

	s.Equal("Request body is not valid JSON", resp.Message)
}

func (s *ResponseTestSuite) TestToJSON_EnvelopeShape() {
	resp := errors.NewErrorResponse(errors.WalletInvalidAddress, "trace-123")

	body, err := resp.ToJSON()
	s.NoError(err)

	var decoded map[string]interface{}
	s.NoError(json.Unmarshal(body, &decoded))
	s.Equal(false, decoded["success"])
	s.Equal("WALLET_002", decoded["code"])
	s.Equal("trace-123", decoded["trace_id"])
	s.NotEmpty(decoded["message"])
}

func (s *ResponseTestSuite) TestToJSON_OmitsEmptyTraceID() {
	resp := errors.NewErrorResponse(errors.WalletMissing, "")

	body, err := resp.ToJSON()
	s.NoError(err)
	s.NotContains(string(body), "trace_id")
}

func (s *ResponseTestSuite) TestGetHTTPStatus_Mapping() {
	testCases := []struct {
		code   errors.ErrorCode
		status int
	}{
		{errors.WalletMissing, http.StatusBadRequest},
		{errors.WalletInvalidAddress, http.StatusBadRequest},
		{errors.BurnInvalidAmount, http.StatusBadRequest},
		{errors.SystemRateLimitExceeded, http.StatusTooManyRequests},
		{errors.SystemServiceUnavailable, http.StatusServiceUnavailable},
		{errors.ProviderUnavailable, http.StatusInternalServerError},
		{errors.SystemInternalError, http.StatusInternalServerError},
		{errors.ErrorCode("NOPE_999"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Equal(tc.status, errors.GetHTTPStatus(tc.code), string(tc.code))
	}
}

func (s *ResponseTestSuite) TestClientServerErrorSplit() {
	s.True(errors.NewErrorResponse(errors.WalletMissing, "").IsClientError())
	s.False(errors.NewErrorResponse(errors.WalletMissing, "").IsServerError())
	s.True(errors.NewErrorResponse(errors.SystemInternalError, "").IsServerError())
}

func (s *ResponseTestSuite) TestWrapSystemError_KeepsInternalErrorServerSide() {
	internal := errors.NewErrorResponse(errors.SystemInternalError, "trace-123")
	s.NotContains(internal.Message, "trace-123")

	resp, err := errors.WrapSystemError(assertError("db password leaked"), "trace-123")
	s.Error(err)
	s.Equal("SYSTEM_001", resp.Code)
	s.NotContains(resp.Message, "db password")
}

type assertError string

func (e assertError) Error() string { return string(e) }
