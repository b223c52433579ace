package provision

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aztecnode/provisioner/pkg/config"
	"github.com/aztecnode/provisioner/pkg/errors"
	"github.com/aztecnode/provisioner/pkg/session"
)

// InstallScriptURL is the vendor-hosted installer for the aztec CLI tools.
const InstallScriptURL = "https://install.aztec.network"

// CLIInstaller fetches the vendor install script and switches the CLI to
// the target network.
type CLIInstaller struct {
	session *session.Session
	home    string
}

// NewCLIInstaller creates a new CLI installer.
func NewCLIInstaller(s *session.Session, home string) *CLIInstaller {
	return &CLIInstaller{session: s, home: home}
}

// resolveAztecUp finds the aztec-up command, checking PATH first and the
// vendor's default install location second.
func (ci *CLIInstaller) resolveAztecUp() (string, error) {
	if path, err := ci.session.Runner.LookPath("aztec-up"); err == nil {
		return path, nil
	}

	candidate := filepath.Join(ci.home, ".aztec", "bin", "aztec-up")
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() && info.Mode()&0111 != 0 {
		return candidate, nil
	}

	return "", fmt.Errorf("aztec-up not found in PATH (also checked %s)", candidate)
}

// Install runs the vendor script, verifies the CLI landed, and switches it
// to the target network. Every failure here is fatal.
func (ci *CLIInstaller) Install(ctx context.Context) error {
	ci.session.Logf("  Fetching vendor install script...")
	script := fmt.Sprintf("curl -fsSL %s | bash", InstallScriptURL)
	if err := ci.session.Runner.Run(ctx, "bash", "-c", script); err != nil {
		return errors.NewDependencyInstallError("aztec-cli", "vendor install script failed", err)
	}

	aztecUp, err := ci.resolveAztecUp()
	if err != nil {
		return errors.NewDependencyInstallError("aztec-cli", "install script completed but CLI is missing", err)
	}

	ci.session.Logf("  Switching CLI to %s...", config.Network)
	if err := ci.session.Runner.Run(ctx, aztecUp, config.Network); err != nil {
		return errors.NewDependencyInstallError("aztec-cli", fmt.Sprintf("aztec-up %s failed", config.Network), err)
	}

	ci.session.Logf("  ✓ aztec CLI ready on %s", config.Network)
	return nil
}
