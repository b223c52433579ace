// Package provision implements the ordered steps that take a bare Linux
// host to a running sequencer container.
package provision

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aztecnode/provisioner/pkg/config"
	"github.com/aztecnode/provisioner/pkg/errors"
	"github.com/aztecnode/provisioner/pkg/session"
)

// Setup orchestrates a full install run as an ordered pipeline of phases.
// Fatal phase errors abort the run; the caller maps them to exit code 1.
type Setup struct {
	home    string
	session *session.Session

	privChecker     *PrivilegeChecker
	osDetector      *OSDetector
	archDetector    *ArchitectureDetector
	resourceChecker *ResourceChecker
	depInstaller    *DependencyInstaller
	cliInstaller    *CLIInstaller
	firewall        *FirewallProvisioner
	generator       *config.Generator
	launcher        *ServiceLauncher
}

// NewSetup creates a setup orchestrator rooted at the operator's home.
func NewSetup(home string, s *session.Session) *Setup {
	generator := config.NewGenerator(config.DefaultConfigDir(home))
	return &Setup{
		home:            home,
		session:         s,
		privChecker:     &PrivilegeChecker{},
		osDetector:      &OSDetector{},
		archDetector:    &ArchitectureDetector{},
		resourceChecker: NewResourceChecker(),
		depInstaller:    NewDependencyInstaller(s),
		cliInstaller:    NewCLIInstaller(s, home),
		firewall:        NewFirewallProvisioner(FirewallConfig{}, s),
		generator:       generator,
		launcher:        NewServiceLauncher(s, generator.ComposeFilePath()),
	}
}

// Generator exposes the config generator for the menu handlers.
func (ps *Setup) Generator() *config.Generator {
	return ps.generator
}

// Phase1CheckPrerequisites validates privileges, platform and resources.
func (ps *Setup) Phase1CheckPrerequisites() error {
	if err := ps.privChecker.CheckRoot(); err != nil {
		return err
	}
	ps.session.Logf("  ✓ Running as root")

	if err := ps.privChecker.CheckLinuxOS(); err != nil {
		return err
	}

	osInfo, err := ps.osDetector.Detect()
	if err != nil {
		return errors.NewInternalError("failed to detect OS", err)
	}
	ps.session.Logf("  ✓ Detected OS: %s", osInfo.Name)

	if !ps.osDetector.IsSupportedOS(osInfo) {
		ps.session.Logf("  ⚠️  OS %s is not officially supported (Ubuntu 22/24/25, Debian 12)", osInfo.Name)
		ps.session.Logf("     Proceeding anyway, but issues may occur")
	}

	if !ps.archDetector.IsSupported() {
		ps.session.Logf("  ⚠️  Architecture %s has no published node image (amd64/arm64 only)", ps.archDetector.Detect())
	}

	if err := ps.resourceChecker.CheckRAM(); err != nil {
		ps.session.Logf("  ⚠️  %v", err)
	}
	if err := ps.resourceChecker.CheckDiskSpace(config.DefaultDataDirectory(ps.home)); err != nil {
		ps.session.Logf("  ⚠️  %v", err)
	}

	return nil
}

// Phase2InstallDependencies ensures docker, compose and node.js minimums.
func (ps *Setup) Phase2InstallDependencies(ctx context.Context) error {
	return ps.depInstaller.EnsureAll(ctx)
}

// Phase3InstallCLI installs the vendor CLI and targets the network.
func (ps *Setup) Phase3InstallCLI(ctx context.Context) error {
	return ps.cliInstaller.Install(ctx)
}

// Phase4OpenFirewall opens the p2p and RPC ports. Best effort.
func (ps *Setup) Phase4OpenFirewall(ctx context.Context) {
	ps.firewall.Setup(ctx)
}

// Phase5GenerateConfig validates operator input, resolves the public IP,
// fills defaults, and writes the env and service-definition files. Any
// validation failure rejects the run; there is no retry loop.
func (ps *Setup) Phase5GenerateConfig(cfg *config.NodeConfig) error {
	if errs := cfg.Validate(); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		return errors.NewValidationError("", "", strings.Join(msgs, "; "))
	}

	if warning := config.KeyParseWarning(cfg.ValidatorPrivateKey); warning != "" {
		ps.session.Logf("  ⚠️  %s", warning)
	}

	if cfg.PublicIP == "" {
		ps.session.Logf("  Resolving public IP...")
		cfg.PublicIP = config.DetectPublicIP(nil)
		ps.session.Logf("  ✓ P2P address: %s", cfg.PublicIP)
	}
	if cfg.DataDirectory == "" {
		cfg.DataDirectory = config.DefaultDataDirectory(ps.home)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if err := os.MkdirAll(cfg.DataDirectory, 0755); err != nil {
		return errors.NewInternalError(fmt.Sprintf("failed to create data directory %s", cfg.DataDirectory), err)
	}

	if err := ps.generator.Generate(cfg); err != nil {
		return errors.NewInternalError("config generation failed", err)
	}

	ps.session.Logf("  ✓ Wrote %s", ps.generator.EnvFilePath())
	ps.session.Logf("  ✓ Wrote %s", ps.generator.ComposeFilePath())
	return nil
}

// Phase6LaunchService removes any previous instance and starts the node.
func (ps *Setup) Phase6LaunchService(ctx context.Context) error {
	ps.launcher.Cleanup(ctx)
	return ps.launcher.Launch(ctx)
}
