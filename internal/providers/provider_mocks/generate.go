package provider_mocks

//go:generate mockgen -source=../interfaces.go -destination=provider_mocks.go -package=provider_mocks

// This file contains the go:generate directive to generate mocks for the metadata provider interface.
// To regenerate the mocks, run:
//   go generate ./internal/providers/provider_mocks
