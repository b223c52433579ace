package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	pkgerrors "github.com/aztecnode/provisioner/pkg/errors"
	"github.com/aztecnode/provisioner/pkg/session"
)

type fakeRunner struct {
	calls []string
	fail  map[string]error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{fail: make(map[string]error)}
}

func (r *fakeRunner) record(name string, args []string) error {
	call := strings.Join(append([]string{name}, args...), " ")
	r.calls = append(r.calls, call)
	for prefix, err := range r.fail {
		if strings.HasPrefix(call, prefix) {
			return err
		}
	}
	return nil
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	return r.record(name, args)
}

func (r *fakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return nil, r.record(name, args)
}

func (r *fakeRunner) Stream(ctx context.Context, name string, args ...string) error {
	return r.record(name, args)
}

func (r *fakeRunner) LookPath(name string) (string, error) {
	return "/usr/bin/" + name, nil
}

func (r *fakeRunner) countPrefix(prefix string) int {
	n := 0
	for _, call := range r.calls {
		if strings.HasPrefix(call, prefix) {
			n++
		}
	}
	return n
}

func newTestSession(runner *fakeRunner) *session.Session {
	s := session.New(&bytes.Buffer{})
	s.Runner = runner
	return s
}

func TestLogsUsesComposeFirst(t *testing.T) {
	runner := newFakeRunner()
	s := newTestSession(runner)

	if err := HandleLogsCommand(context.Background(), s, "/tmp/docker-compose.yml"); err != nil {
		t.Fatalf("HandleLogsCommand: %v", err)
	}
	if got := runner.countPrefix("docker compose -f /tmp/docker-compose.yml logs -f"); got != 1 {
		t.Errorf("compose logs ran %d times, want 1", got)
	}
	if got := runner.countPrefix("docker logs"); got != 0 {
		t.Error("fallback should not run when compose succeeds")
	}
}

func TestLogsFallsBackToDockerLogs(t *testing.T) {
	runner := newFakeRunner()
	runner.fail["docker compose"] = errors.New("exit status 1")
	s := newTestSession(runner)

	if err := HandleLogsCommand(context.Background(), s, "/tmp/docker-compose.yml"); err != nil {
		t.Fatalf("HandleLogsCommand: %v", err)
	}
	if got := runner.countPrefix("docker logs -f aztec-sequencer"); got != 1 {
		t.Errorf("docker logs fallback ran %d times, want 1", got)
	}
}

func TestLogsFailureIsRecoverable(t *testing.T) {
	runner := newFakeRunner()
	runner.fail["docker"] = errors.New("exit status 1")
	s := newTestSession(runner)

	err := HandleLogsCommand(context.Background(), s, "/tmp/docker-compose.yml")
	if !pkgerrors.IsQuery(err) {
		t.Fatalf("expected recoverable QueryError, got %v", err)
	}
	if pkgerrors.IsFatal(err) {
		t.Error("log streaming failures must not abort the menu")
	}
}

func TestLogsInterruptedStreamIsClean(t *testing.T) {
	runner := newFakeRunner()
	runner.fail["docker compose"] = errors.New("signal: interrupt")
	s := newTestSession(runner)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := HandleLogsCommand(ctx, s, "/tmp/docker-compose.yml"); err != nil {
		t.Fatalf("interrupted stream should return cleanly, got %v", err)
	}
	if got := runner.countPrefix("docker logs"); got != 0 {
		t.Error("no fallback after an operator interrupt")
	}
}
