package providers

import (
	"context"
	"errors"

	"wallet-burner/internal/models"
)

// ErrNoData means the provider answered but had nothing usable for the mint.
// The pipeline treats it exactly like a transport failure: move on to the
// next provider in the chain.
var ErrNoData = errors.New("no data from provider")

// MetadataProviderInterface answers "what human-readable name/symbol/image
// does mint M have?". Providers are queried in a fixed fallback order; any
// of them may be unavailable.
type MetadataProviderInterface interface {
	// Name identifies the provider in logs and metrics.
	Name() string

	// Lookup fetches metadata for a mint. decimals is the on-ledger decimal
	// count of the asset, echoed into the result. Non-200s, timeouts, and
	// empty answers all surface as errors.
	Lookup(ctx context.Context, mint string, decimals uint8) (*models.AssetMetadata, error)
}
