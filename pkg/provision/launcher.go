package provision

import (
	"context"
	"fmt"

	"github.com/aztecnode/provisioner/pkg/config"
	"github.com/aztecnode/provisioner/pkg/errors"
	"github.com/aztecnode/provisioner/pkg/session"
)

// ServiceLauncher starts the sequencer container from the generated
// compose file, falling back to the legacy docker-compose binary when the
// compose plugin invocation fails.
type ServiceLauncher struct {
	session     *session.Session
	composeFile string
}

// NewServiceLauncher creates a launcher for the compose file at composeFile.
func NewServiceLauncher(s *session.Session, composeFile string) *ServiceLauncher {
	return &ServiceLauncher{session: s, composeFile: composeFile}
}

// Cleanup stops and removes any previous sequencer instance. Idempotent;
// "not found" and similar errors are ignored.
func (sl *ServiceLauncher) Cleanup(ctx context.Context) {
	if err := sl.session.Runner.Run(ctx, "docker", "compose", "-f", sl.composeFile, "down", "--remove-orphans"); err != nil {
		sl.session.Logf("  (no previous instance to remove)")
	}
	// Also catch containers started outside compose.
	sl.session.Runner.Run(ctx, "docker", "rm", "-f", config.ServiceName)
}

// Launch starts the node service. Primary: `docker compose up -d`;
// fallback: legacy `docker-compose up -d`, invoked at most once.
func (sl *ServiceLauncher) Launch(ctx context.Context) error {
	sl.session.Logf("  Starting %s...", config.ServiceName)

	primaryErr := sl.session.Runner.Run(ctx, "docker", "compose", "-f", sl.composeFile, "up", "-d")
	if primaryErr == nil {
		sl.session.Logf("  ✓ Service started")
		return nil
	}
	sl.session.Logf("  Primary launch failed, trying legacy docker-compose...")

	if _, err := sl.session.Runner.LookPath("docker-compose"); err != nil {
		return errors.NewLaunchError(
			"failed to start the sequencer service and legacy docker-compose is unavailable",
			fmt.Sprintf("inspect logs with: docker logs %s", config.ServiceName),
			primaryErr,
		)
	}

	if err := sl.session.Runner.Run(ctx, "docker-compose", "-f", sl.composeFile, "up", "-d"); err != nil {
		return errors.NewLaunchError(
			"both primary and fallback launch attempts failed",
			fmt.Sprintf("inspect logs with: docker logs %s", config.ServiceName),
			err,
		)
	}

	sl.session.Logf("  ✓ Service started (legacy docker-compose)")
	return nil
}
