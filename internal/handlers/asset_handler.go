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

type AssetHandler struct {
	assetService services.AssetServiceInterface
	network      string
}

// NewAssetHandler creates the handler for the wallet-asset listing endpoint
func NewAssetHandler(assetService services.AssetServiceInterface, network string) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
		network:      network,
	}
}

// GetAssets lists a wallet's classified, enriched holdings
//
// Method: GET /assets
//
// Query parameters:
//   - wallet: base58 Solana address (required)
//
// Success Response: 200 OK
//   - success: true
//   - network: configured network name
//   - wallet: echoed wallet address
//   - assets: {tokens: [...], nfts: [...], cnfts: [...]}
//
// Error Responses:
//   - 400: missing or malformed wallet address (no provider is contacted)
//   - 500: ledger data provider failed
func (h *AssetHandler) GetAssets(c echo.Context) error {
	var req dto.AssetsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.WalletMissing)
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, walletErrorCode(err))
	}

	groups, err := h.assetService.Aggregate(c.Request().Context(), req.Wallet)
	if err != nil {
		if errors.Is(err, services.ErrProviderUnavailable) {
			return SendProviderError(c, err)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AssetsResponse{
		Success: true,
		Network: h.network,
		Wallet:  req.Wallet,
		Assets:  groups,
	})
}

// walletErrorCode maps a validation failure on the wallet field to the
// missing-vs-malformed distinction the API promises.
func walletErrorCode(err error) apierrors.ErrorCode {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fieldErr := range fieldErrs {
			if fieldErr.Tag() == "required" {
				return apierrors.WalletMissing
			}
		}
	}
	return apierrors.WalletInvalidAddress
}
