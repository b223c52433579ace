package session

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner abstracts external command execution so provisioning steps can be
// exercised in tests without touching the host.
type Runner interface {
	// Run executes a command and returns an error carrying combined output on failure.
	Run(ctx context.Context, name string, args ...string) error
	// Output executes a command and returns its combined stdout/stderr.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// Stream executes a command with stdio attached to the terminal.
	Stream(ctx context.Context, name string, args ...string) error
	// LookPath reports the absolute path of a binary, or an error if missing.
	LookPath(name string) (string, error)
}

// ExecRunner runs commands with os/exec. The default Runner.
type ExecRunner struct {
	// Debug echoes each command to stderr before running it.
	Debug bool
}

func (r *ExecRunner) trace(name string, args []string) {
	if r.Debug {
		fmt.Fprintf(os.Stderr, "+ %s\n", strings.Join(append([]string{name}, args...), " "))
	}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	r.trace(name, args)
	cmd := exec.CommandContext(ctx, name, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s %s: %w\n%s", name, strings.Join(args, " "), err, bytes.TrimSpace(output))
	}
	return nil
}

// Output implements Runner.
func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.trace(name, args)
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}

// Stream implements Runner.
func (r *ExecRunner) Stream(ctx context.Context, name string, args ...string) error {
	r.trace(name, args)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// LookPath implements Runner.
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
