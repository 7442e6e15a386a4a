package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BurnAssetType enumerates what the mocked burn endpoint accepts.
type BurnAssetType string

const (
	BurnAssetToken  BurnAssetType = "token"
	BurnAssetNFT    BurnAssetType = "nft"
	BurnAssetVacant BurnAssetType = "vacant"
)

// ValidBurnAssetType reports whether t is one of the accepted burn targets.
func ValidBurnAssetType(t string) bool {
	switch BurnAssetType(t) {
	case BurnAssetToken, BurnAssetNFT, BurnAssetVacant:
		return true
	}
	return false
}

// BurnReceipt acknowledges a mocked burn. The signature is synthetic; no
// transaction is ever constructed, signed, or submitted.
type BurnReceipt struct {
	Signature string          `json:"signature"`
	AssetType BurnAssetType   `json:"assetType"`
	AssetID   string          `json:"assetId"`
	Amount    decimal.Decimal `json:"amount"`
	BurnedAt  time.Time       `json:"burnedAt"`
}
