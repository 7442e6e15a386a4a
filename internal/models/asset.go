package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AssetClassification distinguishes the three kinds of holdings a wallet can
// surface. Classification is derived, never stored.
type AssetClassification string

const (
	ClassificationFungibleToken AssetClassification = "token"
	ClassificationNFT           AssetClassification = "nft"
	ClassificationCompressedNFT AssetClassification = "cnft"
)

// MetadataSource tags which provider ultimately supplied an asset's metadata.
type MetadataSource string

const (
	SourceTokenList   MetadataSource = "tokenlist"
	SourceMarketplace MetadataSource = "marketplace"
	SourceAggregator  MetadataSource = "aggregator"
	SourceOnChain     MetadataSource = "onchain"
	SourcePlaceholder MetadataSource = "placeholder"
)

// TokenAccountRecord is one parsed entry from the ledger's token-account
// listing. Immutable once parsed.
type TokenAccountRecord struct {
	Mint      string
	RawAmount uint64
	Decimals  uint8
}

// IsNFTCandidate reports whether the record carries the necessary (but not
// sufficient) NFT signal: a whole-unit supply of one with no decimal places.
func (r TokenAccountRecord) IsNFTCandidate() bool {
	return r.Decimals == 0 && r.RawAmount == 1
}

// HumanAmount converts the raw integer amount into its display value.
// Exact decimal arithmetic; no float math on balances.
func (r TokenAccountRecord) HumanAmount() decimal.Decimal {
	return decimal.NewFromUint64(r.RawAmount).Shift(-int32(r.Decimals))
}

// AssetMetadata is the merged, human-readable description of one asset.
type AssetMetadata struct {
	DisplayName    string         `json:"name"`
	Symbol         string         `json:"symbol,omitempty"`
	ImageURL       string         `json:"image,omitempty"`
	CollectionName string         `json:"collection,omitempty"`
	Decimals       uint8          `json:"decimals"`
	Source         MetadataSource `json:"source"`
}

// AssetSummary is the externally visible unit: one classified, enriched asset.
type AssetSummary struct {
	Mint           string              `json:"mint"`
	Classification AssetClassification `json:"type"`
	HumanAmount    decimal.Decimal     `json:"amount"`
	Metadata       AssetMetadata       `json:"metadata"`
}

// AssetGroups is the response grouping: tokens first, then NFTs, then
// compressed NFTs. Within each group, ledger return order is preserved.
// Groups are always non-nil so empty results serialize as [].
type AssetGroups struct {
	Tokens []AssetSummary `json:"tokens"`
	NFTs   []AssetSummary `json:"nfts"`
	CNFTs  []AssetSummary `json:"cnfts"`
}

// NewAssetGroups returns groups with empty (non-nil) slices.
func NewAssetGroups() AssetGroups {
	return AssetGroups{
		Tokens: []AssetSummary{},
		NFTs:   []AssetSummary{},
		CNFTs:  []AssetSummary{},
	}
}

// Total returns the number of assets across all groups.
func (g AssetGroups) Total() int {
	return len(g.Tokens) + len(g.NFTs) + len(g.CNFTs)
}

// PlaceholderName builds the synthesized display name used when every
// metadata provider fails for a mint: "Token " + first4 + "..." + last4.
func PlaceholderName(mint string) string {
	if len(mint) <= 8 {
		return fmt.Sprintf("Token %s", mint)
	}
	return fmt.Sprintf("Token %s...%s", mint[:4], mint[len(mint)-4:])
}
