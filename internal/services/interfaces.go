package services

import (
	"context"
	"time"

	"wallet-burner/internal/dto"
	"wallet-burner/internal/models"
)

// AssetServiceInterface is the wallet-asset aggregation contract: list the
// wallet's token accounts, classify each holding, enrich with metadata, and
// return the grouped result.
type AssetServiceInterface interface {
	Aggregate(ctx context.Context, wallet string) (models.AssetGroups, error)
}

// BurnServiceInterface validates burn requests and issues mocked receipts.
// No implementation may touch the ledger.
type BurnServiceInterface interface {
	Burn(ctx context.Context, req dto.BurnRequest) (*models.BurnReceipt, string, error)
}

// MetricsRecorderInterface abstracts metric emission so services stay
// testable without a live registry.
type MetricsRecorderInterface interface {
	RecordAssetRequest(status string, duration time.Duration)
	RecordAssetsReturned(tokens, nfts, cnfts int)
	RecordProviderLookup(provider, status string, duration time.Duration)
	RecordCircuitBreakerState(provider string, state models.CircuitBreakerState)
	RecordBurnRequest(assetType, status string)
}

// CircuitBreakerInterface guards one outbound provider.
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
}
