package solana

import (
	"context"

	"wallet-burner/internal/models"
)

// OnChainMetadata is the decoded Metaplex metadata record for a mint.
type OnChainMetadata struct {
	Name   string
	Symbol string
	URI    string
}

// LedgerClientInterface is the read-only contract against the Solana RPC node.
// One implementation talks JSON-RPC; tests substitute a mock.
type LedgerClientInterface interface {
	// TokenAccountsByOwner lists the wallet's SPL token accounts, parsed into
	// records. Individual malformed entries are skipped, not fatal.
	TokenAccountsByOwner(ctx context.Context, owner string) ([]models.TokenAccountRecord, error)

	// HasTokenMetadata reports whether a Metaplex metadata account exists for
	// the mint. A clean "not found" is (false, nil); transport failures error.
	HasTokenMetadata(ctx context.Context, mint string) (bool, error)

	// OnChainMetadata fetches and decodes the Metaplex metadata record.
	OnChainMetadata(ctx context.Context, mint string) (*OnChainMetadata, error)

	// CompressedAssetsByOwner lists compression-program accounts whose owner
	// bytes match the wallet. Existence is ownership; no amounts apply.
	CompressedAssetsByOwner(ctx context.Context, owner string) ([]string, error)

	// Health checks RPC node connectivity.
	Health(ctx context.Context) error
}
