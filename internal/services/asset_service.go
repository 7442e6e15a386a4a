package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"wallet-burner/internal/models"
	"wallet-burner/internal/providers"
	"wallet-burner/internal/solana"
)

var (
	// ErrProviderUnavailable means the primary account-listing call failed;
	// without it there is nothing to classify, so the whole request fails.
	ErrProviderUnavailable = errors.New("ledger data provider unavailable")
)

const (
	statusSuccess = "success"
	statusFailure = "failure"
	statusSkipped = "skipped"
)

type assetService struct {
	ledger           solana.LedgerClientInterface
	tokenChain       []providers.MetadataProviderInterface
	nftChain         []providers.MetadataProviderInterface
	breakers         map[string]CircuitBreakerInterface
	metrics          MetricsRecorderInterface
	lookupTimeout    time.Duration
	placeholderImage string
}

// NewAssetService wires the aggregator: a ledger client, the two
// provider fallback chains (fungible and NFT order differ), and metrics.
// One circuit breaker guards each distinct provider.
func NewAssetService(
	ledger solana.LedgerClientInterface,
	tokenChain []providers.MetadataProviderInterface,
	nftChain []providers.MetadataProviderInterface,
	metrics MetricsRecorderInterface,
	lookupTimeout time.Duration,
	placeholderImage string,
) AssetServiceInterface {
	breakers := make(map[string]CircuitBreakerInterface)
	for _, p := range tokenChain {
		breakers[p.Name()] = NewCircuitBreaker(DefaultCircuitBreakerConfig())
	}
	for _, p := range nftChain {
		if _, ok := breakers[p.Name()]; !ok {
			breakers[p.Name()] = NewCircuitBreaker(DefaultCircuitBreakerConfig())
		}
	}

	return &assetService{
		ledger:           ledger,
		tokenChain:       tokenChain,
		nftChain:         nftChain,
		breakers:         breakers,
		metrics:          metrics,
		lookupTimeout:    lookupTimeout,
		placeholderImage: placeholderImage,
	}
}

// Aggregate runs the full pipeline: list accounts, classify, fan out
// metadata lookups, merge, group.
func (s *assetService) Aggregate(ctx context.Context, wallet string) (models.AssetGroups, error) {
	start := time.Now()

	records, err := s.ledger.TokenAccountsByOwner(ctx, wallet)
	if err != nil {
		s.metrics.RecordAssetRequest(statusFailure, time.Since(start))
		slog.Error("token account listing failed",
			"wallet", wallet,
			"error", err)
		return models.AssetGroups{}, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	tokens, nfts := s.classify(ctx, wallet, records)
	cnfts := s.listCompressed(ctx, wallet)

	metadata := s.fetchMetadata(ctx, tokens, nfts, cnfts)

	groups := models.NewAssetGroups()
	for _, record := range tokens {
		groups.Tokens = append(groups.Tokens, models.AssetSummary{
			Mint:           record.Mint,
			Classification: models.ClassificationFungibleToken,
			HumanAmount:    record.HumanAmount(),
			Metadata:       metadata[record.Mint],
		})
	}
	for _, record := range nfts {
		groups.NFTs = append(groups.NFTs, models.AssetSummary{
			Mint:           record.Mint,
			Classification: models.ClassificationNFT,
			HumanAmount:    record.HumanAmount(),
			Metadata:       metadata[record.Mint],
		})
	}
	for _, mint := range cnfts {
		groups.CNFTs = append(groups.CNFTs, models.AssetSummary{
			Mint:           mint,
			Classification: models.ClassificationCompressedNFT,
			// Existence is ownership for compressed assets.
			HumanAmount: models.TokenAccountRecord{RawAmount: 1}.HumanAmount(),
			Metadata:    metadata[mint],
		})
	}

	s.metrics.RecordAssetRequest(statusSuccess, time.Since(start))
	s.metrics.RecordAssetsReturned(len(groups.Tokens), len(groups.NFTs), len(groups.CNFTs))

	slog.Info("wallet assets aggregated",
		"wallet", wallet,
		"tokens", len(groups.Tokens),
		"nfts", len(groups.NFTs),
		"cnfts", len(groups.CNFTs),
		"duration_ms", time.Since(start).Milliseconds())

	return groups, nil
}

// classify splits the non-empty token accounts into fungible tokens and
// NFTs. decimals==0 && amount==1 is only a candidate signal; NFT status is
// confirmed via the metadata-program account, and when that confirmation is
// unavailable the asset falls back to FungibleToken rather than being
// dropped.
func (s *assetService) classify(ctx context.Context, wallet string, records []models.TokenAccountRecord) (tokens, nfts []models.TokenAccountRecord) {
	tokens = []models.TokenAccountRecord{}
	nfts = []models.TokenAccountRecord{}

	for _, record := range records {
		if record.RawAmount == 0 {
			continue
		}

		if record.IsNFTCandidate() && s.confirmNFT(ctx, record.Mint) {
			nfts = append(nfts, record)
			continue
		}
		tokens = append(tokens, record)
	}

	if len(records) > 0 {
		slog.Debug("classified token accounts",
			"wallet", wallet,
			"accounts", len(records),
			"tokens", len(tokens),
			"nfts", len(nfts))
	}
	return tokens, nfts
}

func (s *assetService) confirmNFT(ctx context.Context, mint string) bool {
	hasMetadata, err := s.ledger.HasTokenMetadata(ctx, mint)
	if err != nil {
		slog.Warn("nft confirmation unavailable, treating as fungible token",
			"mint", mint,
			"error", err)
		return false
	}
	return hasMetadata
}

// listCompressed queries the compression program for records owned by the
// wallet. Unlike the primary listing, a failure here degrades to an empty
// group instead of failing the request.
func (s *assetService) listCompressed(ctx context.Context, wallet string) []string {
	cnfts, err := s.ledger.CompressedAssetsByOwner(ctx, wallet)
	if err != nil {
		slog.Warn("compressed asset listing failed",
			"wallet", wallet,
			"error", err)
		return []string{}
	}
	return cnfts
}

// fetchMetadata fans out one lookup per asset and gathers the results into
// a map keyed by mint. The response is not assembled until every dispatched
// lookup has resolved or failed; results join back to assets by identity,
// never by position.
func (s *assetService) fetchMetadata(ctx context.Context, tokens, nfts []models.TokenAccountRecord, cnfts []string) map[string]models.AssetMetadata {
	type job struct {
		mint     string
		decimals uint8
		chain    []providers.MetadataProviderInterface
	}

	jobs := make([]job, 0, len(tokens)+len(nfts)+len(cnfts))
	for _, record := range tokens {
		jobs = append(jobs, job{mint: record.Mint, decimals: record.Decimals, chain: s.tokenChain})
	}
	for _, record := range nfts {
		jobs = append(jobs, job{mint: record.Mint, decimals: record.Decimals, chain: s.nftChain})
	}
	for _, mint := range cnfts {
		jobs = append(jobs, job{mint: mint, decimals: 0, chain: s.nftChain})
	}

	results := make(map[string]models.AssetMetadata, len(jobs))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, j := range jobs {
		wg.Add(1)
		go func(j job) {
			defer wg.Done()
			meta := s.lookup(ctx, j.mint, j.decimals, j.chain)
			mu.Lock()
			results[j.mint] = meta
			mu.Unlock()
		}(j)
	}
	wg.Wait()

	return results
}

// lookup walks one provider chain for one mint. Every failure mode
// (non-200, timeout, open breaker, empty answer) means "try the next
// provider"; exhausting the chain synthesizes the placeholder. No retries.
func (s *assetService) lookup(ctx context.Context, mint string, decimals uint8, chain []providers.MetadataProviderInterface) models.AssetMetadata {
	for _, provider := range chain {
		breaker := s.breakers[provider.Name()]
		if breaker != nil && breaker.IsOpen() {
			s.metrics.RecordProviderLookup(provider.Name(), statusSkipped, 0)
			continue
		}

		lookupCtx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
		start := time.Now()
		meta, err := provider.Lookup(lookupCtx, mint, decimals)
		cancel()

		if err != nil {
			if breaker != nil {
				breaker.RecordFailure()
				s.metrics.RecordCircuitBreakerState(provider.Name(), breaker.GetState())
			}
			s.metrics.RecordProviderLookup(provider.Name(), statusFailure, time.Since(start))
			slog.Debug("metadata provider miss",
				"provider", provider.Name(),
				"mint", mint,
				"error", err)
			continue
		}

		if breaker != nil {
			breaker.RecordSuccess()
			s.metrics.RecordCircuitBreakerState(provider.Name(), breaker.GetState())
		}
		s.metrics.RecordProviderLookup(provider.Name(), statusSuccess, time.Since(start))
		return *meta
	}

	return s.placeholder(mint, decimals)
}

func (s *assetService) placeholder(mint string, decimals uint8) models.AssetMetadata {
	return models.AssetMetadata{
		DisplayName: models.PlaceholderName(mint),
		Symbol:      "Unknown",
		ImageURL:    s.placeholderImage,
		Decimals:    decimals,
		Source:      models.SourcePlaceholder,
	}
}
