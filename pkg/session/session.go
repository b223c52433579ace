// Package session holds per-run state for a provisioning session.
//
// A Session is created once per menu action and passed to every installer
// step. It carries the command runner, the progress log writer, and the
// once-per-run apt index refresh flag.
package session

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Session is the provisioning-session context.
type Session struct {
	ID         string
	Runner     Runner
	LogWriter  io.Writer
	aptUpdated bool
}

// New creates a session with an exec-backed runner.
func New(logWriter io.Writer) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Runner:    &ExecRunner{},
		LogWriter: logWriter,
	}
}

// Logf writes a formatted progress message to the log writer.
func (s *Session) Logf(format string, args ...interface{}) {
	if s.LogWriter != nil {
		fmt.Fprintf(s.LogWriter, format+"\n", args...)
	}
}

// AptUpdate refreshes the package index at most once per session.
// A refresh failure is logged but not fatal; the subsequent install decides.
func (s *Session) AptUpdate(ctx context.Context) {
	if s.aptUpdated {
		return
	}
	s.aptUpdated = true
	if err := s.Runner.Run(ctx, "apt-get", "update"); err != nil {
		s.Logf("    Warning: apt-get update failed: %v", err)
	}
}

// AptUpdated reports whether the package index was refreshed this session.
func (s *Session) AptUpdated() bool {
	return s.aptUpdated
}

// AptInstall refreshes the index once, then installs the given packages.
func (s *Session) AptInstall(ctx context.Context, packages ...string) error {
	s.AptUpdate(ctx)
	args := append([]string{"install", "-y"}, packages...)
	return s.Runner.Run(ctx, "apt-get", args...)
}
