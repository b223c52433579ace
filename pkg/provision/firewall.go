package provision

import (
	"context"
	"fmt"
	"strings"

	"github.com/aztecnode/provisioner/pkg/config"
	"github.com/aztecnode/provisioner/pkg/session"
)

// FirewallConfig holds the ports opened for the sequencer.
type FirewallConfig struct {
	P2PPort int // default 40400, opened for both tcp and udp
	RPCPort int // default 8080
}

// FirewallProvisioner manages UFW rules for the node. All operations are
// best effort: a host without ufw, or with a broken ufw, still gets a node.
type FirewallProvisioner struct {
	config  FirewallConfig
	session *session.Session
}

// NewFirewallProvisioner creates a new firewall provisioner
func NewFirewallProvisioner(cfg FirewallConfig, s *session.Session) *FirewallProvisioner {
	if cfg.P2PPort == 0 {
		cfg.P2PPort = config.P2PPort
	}
	if cfg.RPCPort == 0 {
		cfg.RPCPort = config.RPCPort
	}
	return &FirewallProvisioner{config: cfg, session: s}
}

// IsInstalled checks if UFW is available
func (fp *FirewallProvisioner) IsInstalled() bool {
	_, err := fp.session.Runner.LookPath("ufw")
	return err == nil
}

// GenerateRules returns the list of UFW commands to apply
func (fp *FirewallProvisioner) GenerateRules() []string {
	return []string{
		// Peer-to-peer transport
		fmt.Sprintf("ufw allow %d/tcp", fp.config.P2PPort),
		fmt.Sprintf("ufw allow %d/udp", fp.config.P2PPort),

		// Local JSON-RPC
		fmt.Sprintf("ufw allow %d/tcp", fp.config.RPCPort),
	}
}

// Setup installs ufw if needed and applies all rules. Failures are logged
// and swallowed; firewall setup never blocks provisioning.
func (fp *FirewallProvisioner) Setup(ctx context.Context) {
	if !fp.IsInstalled() {
		if err := fp.session.AptInstall(ctx, "ufw"); err != nil {
			fp.session.Logf("  ⚠️  Could not install ufw, skipping firewall setup: %v", err)
			return
		}
	}

	for _, rule := range fp.GenerateRules() {
		parts := strings.Fields(rule)
		if err := fp.session.Runner.Run(ctx, parts[0], parts[1:]...); err != nil {
			fp.session.Logf("  ⚠️  Firewall rule '%s' failed: %v", rule, err)
			continue
		}
		fp.session.Logf("  ✓ %s", rule)
	}
}
