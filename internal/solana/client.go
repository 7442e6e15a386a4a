package solana

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/blocto/solana-go-sdk/program/metaplex/token_metadata"
	ag_solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"wallet-burner/internal/config"
	"wallet-burner/internal/models"
)

var (
	// ErrInvalidAddress is returned when an address does not parse as a
	// base58 public key.
	ErrInvalidAddress = errors.New("invalid address")
)

// accountCompressionProgramID owns the shared state records compressed NFTs
// live in (one record per merkle tree, not one account per token).
var accountCompressionProgramID = ag_solana.MustPublicKeyFromBase58("cmtDvXumGCrqC1Age74AVPhSRVXJMd8PJS91L8KbNCK")

// leafOwnerOffset is where the owner pubkey sits in a compression-program
// record: 8-byte discriminator followed by the tree pubkey.
const leafOwnerOffset = 40

// Client is the JSON-RPC ledger client.
type Client struct {
	rpc        *rpc.Client
	commitment rpc.CommitmentType
}

// NewClient builds a ledger client from configuration.
func NewClient(cfg config.SolanaConfig) *Client {
	return &Client{
		rpc:        rpc.New(cfg.RPCEndpoint),
		commitment: rpc.CommitmentType(cfg.Commitment),
	}
}

func (c *Client) TokenAccountsByOwner(ctx context.Context, owner string) ([]models.TokenAccountRecord, error) {
	ownerKey, err := ag_solana.PublicKeyFromBase58(owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAddress, owner)
	}

	tokenProgram := ag_solana.TokenProgramID
	out, err := c.rpc.GetTokenAccountsByOwner(
		ctx,
		ownerKey,
		&rpc.GetTokenAccountsConfig{ProgramId: &tokenProgram},
		&rpc.GetTokenAccountsOpts{
			Commitment: c.commitment,
			Encoding:   ag_solana.EncodingJSONParsed,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("getTokenAccountsByOwner %s: %w", owner, err)
	}

	records := make([]models.TokenAccountRecord, 0, len(out.Value))
	for _, acc := range out.Value {
		if acc == nil || acc.Account.Data == nil {
			continue
		}

		record, err := ParseTokenAccount(acc.Account.Data.GetRawJSON())
		if err != nil {
			// Partial results are acceptable; one bad entry never aborts
			// the listing.
			slog.Warn("skipping malformed token account",
				"owner", owner,
				"account", acc.Pubkey.String(),
				"error", err)
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

func (c *Client) HasTokenMetadata(ctx context.Context, mint string) (bool, error) {
	pda, err := metadataPDA(mint)
	if err != nil {
		return false, err
	}

	res, err := c.rpc.GetAccountInfoWithOpts(ctx, pda, &rpc.GetAccountInfoOpts{Commitment: c.commitment})
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("getAccountInfo metadata %s: %w", mint, err)
	}

	return res != nil && res.Value != nil, nil
}

func (c *Client) OnChainMetadata(ctx context.Context, mint string) (*OnChainMetadata, error) {
	pda, err := metadataPDA(mint)
	if err != nil {
		return nil, err
	}

	res, err := c.rpc.GetAccountInfoWithOpts(ctx, pda, &rpc.GetAccountInfoOpts{Commitment: c.commitment})
	if err != nil {
		return nil, fmt.Errorf("getAccountInfo metadata %s: %w", mint, err)
	}
	if res == nil || res.Value == nil {
		return nil, fmt.Errorf("no metadata account for mint %s", mint)
	}

	data := res.Value.Data.GetBinary()
	if len(data) == 0 {
		return nil, fmt.Errorf("empty metadata account for mint %s", mint)
	}

	md, err := token_metadata.MetadataDeserialize(data)
	if err != nil {
		return nil, fmt.Errorf("deserialize metadata %s: %w", mint, err)
	}

	// Metaplex pads strings with NUL bytes up to their fixed field width.
	return &OnChainMetadata{
		Name:   strings.TrimRight(md.Data.Name, "\x00"),
		Symbol: strings.TrimRight(md.Data.Symbol, "\x00"),
		URI:    strings.TrimRight(md.Data.Uri, "\x00"),
	}, nil
}

func (c *Client) CompressedAssetsByOwner(ctx context.Context, owner string) ([]string, error) {
	ownerKey, err := ag_solana.PublicKeyFromBase58(owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAddress, owner)
	}

	out, err := c.rpc.GetProgramAccountsWithOpts(ctx, accountCompressionProgramID, &rpc.GetProgramAccountsOpts{
		Commitment: c.commitment,
		Filters: []rpc.RPCFilter{
			{
				Memcmp: &rpc.RPCFilterMemcmp{
					Offset: leafOwnerOffset,
					Bytes:  ag_solana.Base58(ownerKey.Bytes()),
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("getProgramAccounts compression %s: %w", owner, err)
	}

	assets := make([]string, 0, len(out))
	for _, keyed := range out {
		if keyed == nil {
			continue
		}
		assets = append(assets, keyed.Pubkey.String())
	}

	return assets, nil
}

func (c *Client) Health(ctx context.Context) error {
	out, err := c.rpc.GetHealth(ctx)
	if err != nil {
		return fmt.Errorf("getHealth: %w", err)
	}
	if out != rpc.HealthOk {
		return fmt.Errorf("rpc node unhealthy: %s", out)
	}
	return nil
}

// metadataPDA derives the Metaplex metadata account for a mint:
// seeds ["metadata", program id, mint] under the token metadata program.
func metadataPDA(mint string) (ag_solana.PublicKey, error) {
	mintKey, err := ag_solana.PublicKeyFromBase58(mint)
	if err != nil {
		return ag_solana.PublicKey{}, fmt.Errorf("%w: %s", ErrInvalidAddress, mint)
	}

	pda, _, err := ag_solana.FindProgramAddress(
		[][]byte{
			[]byte("metadata"),
			ag_solana.TokenMetadataProgramID.Bytes(),
			mintKey.Bytes(),
		},
		ag_solana.TokenMetadataProgramID,
	)
	if err != nil {
		return ag_solana.PublicKey{}, fmt.Errorf("derive metadata pda %s: %w", mint, err)
	}
	return pda, nil
}
