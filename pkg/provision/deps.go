package provision

import (
	"context"
	"fmt"

	"github.com/aztecnode/provisioner/pkg/errors"
	"github.com/aztecnode/provisioner/pkg/session"
)

// Minimum tool versions for running the sequencer container.
const (
	MinDockerVersion  = "20.10.0"
	MinComposeVersion = "2.0.0"
	MinNodeVersion    = "18.0.0"
)

// dependency describes one external tool the node stack needs.
type dependency struct {
	name       string   // display name
	command    string   // binary to probe
	versionCmd []string // command printing a version string
	minVersion string
	packages   []string // apt packages installing or upgrading it
}

// DependencyInstaller ensures the container engine, compose tool and JS
// runtime are present at their minimum versions, installing via apt when not.
type DependencyInstaller struct {
	session *session.Session
}

// NewDependencyInstaller creates a new installer bound to a session.
func NewDependencyInstaller(s *session.Session) *DependencyInstaller {
	return &DependencyInstaller{session: s}
}

func runtimeDependencies() []dependency {
	return []dependency{
		{
			name:       "Docker",
			command:    "docker",
			versionCmd: []string{"docker", "--version"},
			minVersion: MinDockerVersion,
			packages:   []string{"docker.io"},
		},
		{
			name:       "Docker Compose",
			command:    "docker",
			versionCmd: []string{"docker", "compose", "version"},
			minVersion: MinComposeVersion,
			packages:   []string{"docker-compose-plugin"},
		},
		{
			name:       "Node.js",
			command:    "node",
			versionCmd: []string{"node", "--version"},
			minVersion: MinNodeVersion,
			packages:   []string{"nodejs", "npm"},
		},
	}
}

// EnsureAll checks and installs every runtime dependency in order.
// Any apt failure aborts the whole provisioning run.
func (di *DependencyInstaller) EnsureAll(ctx context.Context) error {
	for _, dep := range runtimeDependencies() {
		if err := di.ensure(ctx, dep); err != nil {
			return err
		}
	}
	return nil
}

// CurrentVersion probes a dependency's installed version, or "" if the
// binary is missing or prints nothing recognizable.
func (di *DependencyInstaller) currentVersion(ctx context.Context, dep dependency) string {
	if _, err := di.session.Runner.LookPath(dep.command); err != nil {
		return ""
	}
	output, err := di.session.Runner.Output(ctx, dep.versionCmd[0], dep.versionCmd[1:]...)
	if err != nil {
		return ""
	}
	return ExtractVersion(string(output))
}

func (di *DependencyInstaller) ensure(ctx context.Context, dep dependency) error {
	current := di.currentVersion(ctx, dep)

	if current != "" && MeetsMinimum(current, dep.minVersion) {
		di.session.Logf("  ✓ %s %s (>= %s)", dep.name, current, dep.minVersion)
		return nil
	}

	if current == "" {
		di.session.Logf("  Installing %s...", dep.name)
	} else {
		di.session.Logf("  Upgrading %s %s -> >= %s...", dep.name, current, dep.minVersion)
	}

	if err := di.session.AptInstall(ctx, dep.packages...); err != nil {
		return errors.NewDependencyInstallError(dep.name, fmt.Sprintf("failed to install %s", dep.name), err)
	}

	// Re-probe so a silently broken install fails here instead of at launch.
	if installed := di.currentVersion(ctx, dep); installed == "" || !MeetsMinimum(installed, dep.minVersion) {
		return errors.NewDependencyInstallError(dep.name,
			fmt.Sprintf("%s still below minimum %s after install (found %q)", dep.name, dep.minVersion, installed), nil)
	}

	di.session.Logf("  ✓ %s installed", dep.name)
	return nil
}
