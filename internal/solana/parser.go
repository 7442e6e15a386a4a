package solana

import (
	"encoding/json"
	"fmt"
	"strconv"

	"wallet-burner/internal/models"
)

// parsedTokenAccount mirrors the jsonParsed encoding of an SPL token account
// as returned by getTokenAccountsByOwner.
type parsedTokenAccount struct {
	Parsed struct {
		Info struct {
			Mint        string `json:"mint"`
			TokenAmount struct {
				Amount   string `json:"amount"`
				Decimals uint8  `json:"decimals"`
			} `json:"tokenAmount"`
		} `json:"info"`
		Type string `json:"type"`
	} `json:"parsed"`
	Program string `json:"program"`
}

// ParseTokenAccount converts one jsonParsed account blob into a record.
// Missing or malformed fields error out so the caller can skip the entry
// without aborting the listing.
func ParseTokenAccount(raw json.RawMessage) (models.TokenAccountRecord, error) {
	var acc parsedTokenAccount
	if err := json.Unmarshal(raw, &acc); err != nil {
		return models.TokenAccountRecord{}, fmt.Errorf("unmarshal token account: %w", err)
	}

	info := acc.Parsed.Info
	if info.Mint == "" {
		return models.TokenAccountRecord{}, fmt.Errorf("token account missing mint")
	}
	if info.TokenAmount.Amount == "" {
		return models.TokenAccountRecord{}, fmt.Errorf("token account %s missing amount", info.Mint)
	}

	rawAmount, err := strconv.ParseUint(info.TokenAmount.Amount, 10, 64)
	if err != nil {
		return models.TokenAccountRecord{}, fmt.Errorf("token account %s amount %q: %w", info.Mint, info.TokenAmount.Amount, err)
	}

	return models.TokenAccountRecord{
		Mint:      info.Mint,
		RawAmount: rawAmount,
		Decimals:  info.TokenAmount.Decimals,
	}, nil
}
