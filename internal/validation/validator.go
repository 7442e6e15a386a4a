package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mr-tron/base58"
	"github.com/shopspring/decimal"

	"wallet-burner/internal/models"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("solana_address", validateSolanaAddress)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("burn_asset_type", validateBurnAssetType)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateSolanaAddress checks that the field decodes as a 32-byte base58
// public key. Checksum semantics beyond that are left to the RPC node.
func validateSolanaAddress(fl validator.FieldLevel) bool {
	addr := fl.Field().String()
	if addr == "" {
		return false
	}

	decoded, err := base58.Decode(addr)
	if err != nil {
		return false
	}
	return len(decoded) == 32
}

// validatePositiveAmount validates that an amount is strictly greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch v := fl.Field().Interface().(type) {
	case decimal.Decimal:
		return v.IsPositive()
	case string:
		d, err := decimal.NewFromString(v)
		return err == nil && d.IsPositive()
	}

	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fl.Field().Uint() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}

// validateBurnAssetType validates that the asset type is one the burn
// endpoint accepts. Surrounding whitespace and case are forgiven here the
// same way the burn service forgives them.
func validateBurnAssetType(fl validator.FieldLevel) bool {
	return models.ValidBurnAssetType(strings.ToLower(strings.TrimSpace(fl.Field().String())))
}
