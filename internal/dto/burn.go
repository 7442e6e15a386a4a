package dto

import (
	"github.com/shopspring/decimal"

	"wallet-burner/internal/models"
)

// BurnRequest is the JSON body of POST /burn. Amount is a decimal so both
// quoted and bare JSON numbers parse without float rounding.
type BurnRequest struct {
	AssetType string           `json:"assetType" validate:"required,burn_asset_type"`
	AssetID   string           `json:"assetId" validate:"required"`
	Amount    *decimal.Decimal `json:"amount,omitempty" validate:"omitempty,positive_amount"`
	Decimals  *uint8           `json:"decimals,omitempty"`
}

// BurnResponse is the success envelope for POST /burn
type BurnResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Receipt *models.BurnReceipt `json:"receipt,omitempty"`
}
