package config

import (
	"strings"
	"testing"
)

func TestValidateRPCURL(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		shouldError bool
	}{
		{"http", "http://x", false},
		{"https", "https://x", false},
		{"http host port", "http://1.2.3.4:8545", false},
		{"ftp", "ftp://x", true},
		{"bare host", "x", true},
		{"empty", "", true},
		{"ws", "ws://x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRPCURL("ETHEREUM_HOSTS", tt.url)
			if (err != nil) != tt.shouldError {
				t.Errorf("ValidateRPCURL(%q) error = %v, shouldError = %v", tt.url, err, tt.shouldError)
			}
		})
	}
}

func TestValidateCoinbase(t *testing.T) {
	valid := "0x" + strings.Repeat("ab", 20)

	tests := []struct {
		name        string
		address     string
		shouldError bool
	}{
		{"valid lowercase", valid, false},
		{"valid mixed case", "0xAbCd" + strings.Repeat("12", 18), false},
		{"too short", "0x" + strings.Repeat("ab", 19), true},
		{"too long", "0x" + strings.Repeat("ab", 21), true},
		{"no prefix", strings.Repeat("ab", 21), true},
		{"non-hex payload", "0x" + strings.Repeat("zz", 20), true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoinbase(tt.address)
			if (err != nil) != tt.shouldError {
				t.Errorf("ValidateCoinbase(%q) error = %v, shouldError = %v", tt.address, err, tt.shouldError)
			}
		})
	}
}

func TestValidateValidatorKey(t *testing.T) {
	if err := ValidateValidatorKey(""); err == nil {
		t.Error("empty key should be rejected")
	}
	if err := ValidateValidatorKey("   "); err == nil {
		t.Error("blank key should be rejected")
	}
	if err := ValidateValidatorKey("0x" + strings.Repeat("11", 32)); err != nil {
		t.Errorf("non-empty key should pass: %v", err)
	}
}

func TestKeyParseWarning(t *testing.T) {
	if w := KeyParseWarning("0x" + strings.Repeat("11", 32)); w != "" {
		t.Errorf("well-formed key should not warn: %s", w)
	}
	if w := KeyParseWarning("not-a-key"); w == "" {
		t.Error("malformed key should produce a warning")
	}
}

func TestNodeConfigValidateAggregatesErrors(t *testing.T) {
	cfg := &NodeConfig{
		ExecutionRPCURL:     "ftp://x",
		ConsensusRPCURL:     "y",
		ValidatorPrivateKey: "",
		CoinbaseAddress:     "0x12",
	}

	errs := cfg.Validate()
	if len(errs) != 4 {
		t.Fatalf("expected 4 validation errors, got %d: %v", len(errs), errs)
	}
}

func TestNodeConfigValidateOptionalBlobSink(t *testing.T) {
	cfg := &NodeConfig{
		ExecutionRPCURL:     "http://1.2.3.4:8545",
		ConsensusRPCURL:     "https://consensus.example.com",
		ValidatorPrivateKey: "0x" + strings.Repeat("11", 32),
		CoinbaseAddress:     "0x" + strings.Repeat("ab", 20),
	}

	if errs := cfg.Validate(); len(errs) != 0 {
		t.Fatalf("blank blob sink should be allowed: %v", errs)
	}

	cfg.BlobSinkURL = "ftp://blobs"
	if errs := cfg.Validate(); len(errs) != 1 {
		t.Fatalf("bad blob sink should be rejected: %v", errs)
	}
}
