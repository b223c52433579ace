package config

import (
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/aztecnode/provisioner/pkg/errors"
)

var addressRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// ValidateRPCURL checks that an endpoint starts with http:// or https://.
func ValidateRPCURL(field, url string) error {
	if url == "" {
		return errors.NewValidationError(field, url, "is required")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return errors.NewValidationError(field, url, "must start with http:// or https://")
	}
	return nil
}

// ValidateCoinbase checks for a 0x-prefixed 40-hex-digit address.
func ValidateCoinbase(address string) error {
	if !addressRegex.MatchString(address) || !common.IsHexAddress(address) {
		return errors.NewValidationError("COINBASE", address, "must be a 0x-prefixed 40-hex-digit address")
	}
	return nil
}

// ValidateValidatorKey checks that the key is non-empty.
func ValidateValidatorKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.NewValidationError("VALIDATOR_PRIVATE_KEY", "", "must not be empty")
	}
	return nil
}

// KeyParseWarning reports a non-fatal warning when the validator key does
// not parse as a secp256k1 hex key. Operators sometimes paste keys with
// unusual encodings; the node itself is the final authority.
func KeyParseWarning(key string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(key), "0x")
	if _, err := crypto.HexToECDSA(trimmed); err != nil {
		return "validator key does not parse as a secp256k1 hex key; the node may reject it"
	}
	return ""
}

// Validate checks the whole NodeConfig, aggregating every problem so the
// operator sees all of them at once. Any error aborts the install run.
func (c *NodeConfig) Validate() []error {
	var errs []error

	if err := ValidateRPCURL("ETHEREUM_HOSTS", c.ExecutionRPCURL); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateRPCURL("L1_CONSENSUS_HOST_URLS", c.ConsensusRPCURL); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateValidatorKey(c.ValidatorPrivateKey); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateCoinbase(c.CoinbaseAddress); err != nil {
		errs = append(errs, err)
	}
	if c.BlobSinkURL != "" {
		if err := ValidateRPCURL("BLOB_SINK_URL", c.BlobSinkURL); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}
