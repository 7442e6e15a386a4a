package dto

import "wallet-burner/internal/models"

// AssetsRequest carries the query parameters of GET /assets
type AssetsRequest struct {
	Wallet string `query:"wallet" validate:"required,solana_address"`
}

// AssetsResponse is the success envelope for GET /assets
type AssetsResponse struct {
	Success bool               `json:"success"`
	Network string             `json:"network"`
	Wallet  string             `json:"wallet"`
	Assets  models.AssetGroups `json:"assets"`
}
