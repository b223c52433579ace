// Package cli implements the handlers behind the interactive menu.
//
// Handlers return their failure to the caller; main maps fatal errors to
// exit code 1 and keeps the menu running for recoverable ones.
package cli

import (
	"context"
	"fmt"

	"github.com/aztecnode/provisioner/pkg/installer"
	"github.com/aztecnode/provisioner/pkg/provision"
	"github.com/aztecnode/provisioner/pkg/session"
)

// HandleInstallCommand runs the full install-and-start pipeline:
// prerequisites, operator config, dependencies, the vendor CLI, firewall,
// config generation, and the container launch.
func HandleInstallCommand(ctx context.Context, home string, s *session.Session, input installer.InputProvider) error {
	setup := provision.NewSetup(home, s)

	s.Logf("🚀 Starting sequencer node installation...\n")

	s.Logf("📋 Phase 1: Checking prerequisites...")
	if err := setup.Phase1CheckPrerequisites(); err != nil {
		return err
	}

	cfg, err := input.CollectNodeConfig()
	if err != nil {
		return fmt.Errorf("config collection failed: %w", err)
	}

	s.Logf("\n🛠️  Phase 2: Installing dependencies...")
	if err := setup.Phase2InstallDependencies(ctx); err != nil {
		return err
	}

	s.Logf("\n📦 Phase 3: Installing the aztec CLI...")
	if err := setup.Phase3InstallCLI(ctx); err != nil {
		return err
	}

	s.Logf("\n🔥 Phase 4: Opening firewall ports...")
	setup.Phase4OpenFirewall(ctx)

	s.Logf("\n⚙️  Phase 5: Generating node configuration...")
	if err := setup.Phase5GenerateConfig(cfg); err != nil {
		return err
	}

	s.Logf("\n🐳 Phase 6: Starting the sequencer container...")
	if err := setup.Phase6LaunchService(ctx); err != nil {
		return err
	}

	s.Logf("\n✅ Sequencer node is up!")
	s.Logf("   Follow its logs from the menu, or run: docker logs -f aztec-sequencer")
	return nil
}
