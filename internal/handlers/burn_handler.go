package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"wallet-burner/internal/dto"
	apierrors "wallet-burner/internal/errors"
	"wallet-burner/internal/services"
)

type BurnHandler struct {
	burnService services.BurnServiceInterface
}

// NewBurnHandler creates the handler for the mocked burn endpoint
func NewBurnHandler(burnService services.BurnServiceInterface) *BurnHandler {
	return &BurnHandler{burnService: burnService}
}

// Burn acknowledges a burn request without touching the ledger
//
// Method: POST /burn
//
// Body:
//   - assetType: "token" | "nft" | "vacant" (required)
//   - assetId: mint or account address (required)
//   - amount: positive decimal (required for assetType "token")
//   - decimals: optional integer
//
// Success Response: 200 OK
//   - success: true
//   - message: acknowledgment text
//   - receipt: mock receipt with synthetic signature
//
// Error Responses:
//   - 400: missing fields, unknown asset type, or non-positive amount
func (h *BurnHandler) Burn(c echo.Context) error {
	var req dto.BurnRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.BurnMissingFields, apierrors.WithMessage("Request body is not valid JSON"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, burnErrorCode(err))
	}

	receipt, message, err := h.burnService.Burn(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBurnMissingFields):
			return SendError(c, apierrors.BurnMissingFields)
		case errors.Is(err, services.ErrBurnInvalidAssetType):
			return SendError(c, apierrors.BurnInvalidAssetType)
		case errors.Is(err, services.ErrBurnInvalidAmount):
			return SendError(c, apierrors.BurnInvalidAmount)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.BurnResponse{
		Success: true,
		Message: message,
		Receipt: receipt,
	})
}

// burnErrorCode picks the error code for a burn request that failed
// structural validation. Required-field failures win over type and amount
// failures only when no more specific rule fired.
func burnErrorCode(err error) apierrors.ErrorCode {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fieldErr := range fieldErrs {
			switch fieldErr.Tag() {
			case "burn_asset_type":
				return apierrors.BurnInvalidAssetType
			case "positive_amount":
				return apierrors.BurnInvalidAmount
			}
		}
	}
	return apierrors.BurnMissingFields
}
