package cli

import (
	"context"

	"github.com/aztecnode/provisioner/pkg/config"
	"github.com/aztecnode/provisioner/pkg/errors"
	"github.com/aztecnode/provisioner/pkg/session"
)

// HandleLogsCommand streams container logs to the terminal until the
// operator interrupts. Failures are recoverable; the menu keeps running.
func HandleLogsCommand(ctx context.Context, s *session.Session, composeFile string) error {
	s.Logf("📜 Streaming node logs (Ctrl+C to return to the menu)...\n")

	err := s.Runner.Stream(ctx, "docker", "compose", "-f", composeFile, "logs", "-f", config.ServiceName)
	if err == nil || ctx.Err() != nil {
		// An operator interrupt ends the stream; that is a clean return.
		return nil
	}

	// Older hosts only have the standalone binary, and compose fails
	// outright when the project was never brought up.
	s.Logf("  Falling back to docker logs...")
	if err := s.Runner.Stream(ctx, "docker", "logs", "-f", config.ServiceName); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return errors.NewQueryError("docker logs",
			"failed to stream logs; is the node running?", err)
	}
	return nil
}
