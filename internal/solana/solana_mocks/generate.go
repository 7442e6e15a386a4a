package solana_mocks

//go:generate mockgen -source=../interfaces.go -destination=solana_mocks.go -package=solana_mocks

// This file contains the go:generate directive to generate mocks for the ledger client interface.
// To regenerate the mocks, run:
//   go generate ./internal/solana/solana_mocks
