package cli

import (
	"context"

	"go.uber.org/zap"

	"github.com/aztecnode/provisioner/pkg/logging"
	"github.com/aztecnode/provisioner/pkg/session"
	"github.com/aztecnode/provisioner/pkg/status"
)

// HandleStatusCommand queries the running node for the proven chain tip
// and its archive sibling path. Failures are recoverable.
func HandleStatusCommand(ctx context.Context, s *session.Session, logger *logging.ColoredLogger) error {
	s.Logf("🔍 Checking chain status...\n")

	checker := status.NewChecker(s)
	report, err := checker.Check(ctx)
	if err != nil {
		return err
	}

	logger.ComponentInfo(logging.ComponentRPC, "Proven chain tip",
		zap.String("height", report.ProvenTip))
	logger.ComponentInfo(logging.ComponentRPC, "Archive sibling path",
		zap.String("proof", string(report.SiblingPath)))
	return nil
}
