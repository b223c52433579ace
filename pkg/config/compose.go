package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ComposeService is one service entry in the generated compose file.
type ComposeService struct {
	Image       string   `yaml:"image"`
	NetworkMode string   `yaml:"network_mode"`
	EnvFile     []string `yaml:"env_file"`
	Volumes     []string `yaml:"volumes"`
	Command     string   `yaml:"command"`
	Restart     string   `yaml:"restart"`
}

// ServiceDefinition is the docker-compose manifest for the sequencer.
type ServiceDefinition struct {
	Services map[string]ComposeService `yaml:"services"`
}

// BuildServiceDefinition maps a NodeConfig onto the compose manifest.
// The service binds to host networking so the p2p and RPC ports are the
// host's own; the host data directory is mounted at the container data path.
func BuildServiceDefinition(cfg *NodeConfig) *ServiceDefinition {
	return &ServiceDefinition{
		Services: map[string]ComposeService{
			ServiceName: {
				Image:       Image,
				NetworkMode: "host",
				EnvFile:     []string{".env"},
				Volumes:     []string{fmt.Sprintf("%s:%s", cfg.DataDirectory, ContainerDataDir)},
				Command:     fmt.Sprintf("start --network %s --node --archiver --sequencer", Network),
				Restart:     "unless-stopped",
			},
		},
	}
}

// RenderServiceDefinition marshals the compose manifest to YAML.
func RenderServiceDefinition(cfg *NodeConfig) ([]byte, error) {
	return yaml.Marshal(BuildServiceDefinition(cfg))
}
