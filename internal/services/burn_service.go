package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"wallet-burner/internal/dto"
	"wallet-burner/internal/models"
)

var (
	ErrBurnMissingFields    = errors.New("asset type and id are required")
	ErrBurnInvalidAssetType = errors.New("invalid asset type")
	ErrBurnInvalidAmount    = errors.New("amount must be greater than 0")
)

type burnService struct {
	metrics MetricsRecorderInterface
}

// NewBurnService returns the mocked burn service. It validates the request
// shape and acknowledges with a synthetic receipt; by design it has no
// ledger client to call.
func NewBurnService(metrics MetricsRecorderInterface) BurnServiceInterface {
	return &burnService{metrics: metrics}
}

func (s *burnService) Burn(ctx context.Context, req dto.BurnRequest) (*models.BurnReceipt, string, error) {
	assetType := models.BurnAssetType(strings.ToLower(strings.TrimSpace(req.AssetType)))
	assetID := strings.TrimSpace(req.AssetID)

	if assetType == "" || assetID == "" {
		s.metrics.RecordBurnRequest(string(assetType), statusFailure)
		return nil, "", ErrBurnMissingFields
	}

	if !models.ValidBurnAssetType(string(assetType)) {
		s.metrics.RecordBurnRequest(string(assetType), statusFailure)
		return nil, "", ErrBurnInvalidAssetType
	}

	amount := decimal.Zero
	switch assetType {
	case models.BurnAssetToken:
		if req.Amount == nil || !req.Amount.IsPositive() {
			s.metrics.RecordBurnRequest(string(assetType), statusFailure)
			return nil, "", ErrBurnInvalidAmount
		}
		amount = *req.Amount
	case models.BurnAssetNFT:
		amount = decimal.NewFromInt(1)
	}

	receipt := &models.BurnReceipt{
		Signature: "mock-" + uuid.New().String(),
		AssetType: assetType,
		AssetID:   assetID,
		Amount:    amount,
		BurnedAt:  time.Now().UTC(),
	}

	var message string
	switch assetType {
	case models.BurnAssetToken:
		message = fmt.Sprintf("Successfully burned %s tokens of %s", amount.String(), shortMint(assetID))
	case models.BurnAssetNFT:
		message = fmt.Sprintf("Successfully burned NFT %s", shortMint(assetID))
	case models.BurnAssetVacant:
		message = fmt.Sprintf("Successfully claimed rent from account %s", shortMint(assetID))
	}

	s.metrics.RecordBurnRequest(string(assetType), statusSuccess)
	slog.Info("mock burn acknowledged",
		"asset_type", assetType,
		"asset_id", assetID,
		"amount", amount.String(),
		"signature", receipt.Signature)

	return receipt, message, nil
}

func shortMint(mint string) string {
	if len(mint) <= 12 {
		return mint
	}
	return mint[:4] + "..." + mint[len(mint)-4:]
}
