// Package config generates the sequencer node configuration: the .env file
// consumed by the container and the docker-compose service definition.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Network and service constants for the alpha-testnet deployment.
const (
	Network     = "alpha-testnet"
	Image       = "aztecprotocol/aztec:latest"
	ServiceName = "aztec-sequencer"

	// ContainerDataDir is the data mount point inside the container.
	ContainerDataDir = "/data"

	P2PPort = 40400
	RPCPort = 8080
)

// NodeConfig holds everything the sequencer container needs. Created once
// per install run from operator input; persisted to the env file; never
// mutated afterward.
type NodeConfig struct {
	ExecutionRPCURL     string
	ConsensusRPCURL     string
	PublicIP            string
	ValidatorPrivateKey string
	CoinbaseAddress     string
	DataDirectory       string
	LogLevel            string
	BlobSinkURL         string // optional
}

// DefaultDataDirectory returns the host directory mounted into the container.
func DefaultDataDirectory(home string) string {
	return filepath.Join(home, ".aztec", Network, "data")
}

// DefaultConfigDir returns the directory holding the generated files.
func DefaultConfigDir(home string) string {
	return filepath.Join(home, ".aztec-sequencer")
}

// EnvFileContent renders the .env key=value pairs for the container.
func (c *NodeConfig) EnvFileContent() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ETHEREUM_HOSTS=%s\n", c.ExecutionRPCURL)
	fmt.Fprintf(&b, "L1_CONSENSUS_HOST_URLS=%s\n", c.ConsensusRPCURL)
	fmt.Fprintf(&b, "P2P_IP=%s\n", c.PublicIP)
	fmt.Fprintf(&b, "VALIDATOR_PRIVATE_KEY=%s\n", c.ValidatorPrivateKey)
	fmt.Fprintf(&b, "COINBASE=%s\n", c.CoinbaseAddress)
	fmt.Fprintf(&b, "DATA_DIRECTORY=%s\n", ContainerDataDir)
	fmt.Fprintf(&b, "LOG_LEVEL=%s\n", c.LogLevel)
	if c.BlobSinkURL != "" {
		fmt.Fprintf(&b, "BLOB_SINK_URL=%s\n", c.BlobSinkURL)
	}
	return b.String()
}

// Generator writes the config directory contents for one install run.
type Generator struct {
	configDir string
}

// NewGenerator creates a generator rooted at configDir.
func NewGenerator(configDir string) *Generator {
	return &Generator{configDir: configDir}
}

// ConfigDir returns the directory the generator writes into.
func (g *Generator) ConfigDir() string {
	return g.configDir
}

// EnvFilePath returns the path of the generated env file.
func (g *Generator) EnvFilePath() string {
	return filepath.Join(g.configDir, ".env")
}

// ComposeFilePath returns the path of the generated service definition.
func (g *Generator) ComposeFilePath() string {
	return filepath.Join(g.configDir, "docker-compose.yml")
}

// Generate recreates the config directory and writes both files.
// The directory is wiped first so a reinstall leaves no stale keys.
// The env file carries the validator key and is owner-only.
func (g *Generator) Generate(cfg *NodeConfig) error {
	if err := os.RemoveAll(g.configDir); err != nil {
		return fmt.Errorf("failed to clean config directory %s: %w", g.configDir, err)
	}
	if err := os.MkdirAll(g.configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", g.configDir, err)
	}

	if err := os.WriteFile(g.EnvFilePath(), []byte(cfg.EnvFileContent()), 0600); err != nil {
		return fmt.Errorf("failed to write env file: %w", err)
	}

	compose, err := RenderServiceDefinition(cfg)
	if err != nil {
		return fmt.Errorf("failed to render service definition: %w", err)
	}
	if err := os.WriteFile(g.ComposeFilePath(), compose, 0644); err != nil {
		return fmt.Errorf("failed to write service definition: %w", err)
	}

	return nil
}
