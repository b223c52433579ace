package provision

import (
	"context"
	"errors"
	"testing"

	pkgerrors "github.com/aztecnode/provisioner/pkg/errors"
)

func TestLaunchPrimarySucceeds(t *testing.T) {
	runner := newFakeRunner()
	s, _ := newTestSession(runner)
	sl := NewServiceLauncher(s, "/tmp/docker-compose.yml")

	if err := sl.Launch(context.Background()); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if got := runner.countPrefix("docker compose -f /tmp/docker-compose.yml up -d"); got != 1 {
		t.Errorf("primary launch ran %d times, want 1", got)
	}
	if got := runner.countPrefix("docker-compose"); got != 0 {
		t.Errorf("fallback should not run when primary succeeds, ran %d times", got)
	}
}

func TestLaunchFallbackInvokedExactlyOnce(t *testing.T) {
	runner := newFakeRunner()
	runner.fail["docker compose -f /tmp/docker-compose.yml up"] = errors.New("unknown command: compose")
	s, _ := newTestSession(runner)
	sl := NewServiceLauncher(s, "/tmp/docker-compose.yml")

	if err := sl.Launch(context.Background()); err != nil {
		t.Fatalf("Launch should succeed through the fallback: %v", err)
	}
	if got := runner.countPrefix("docker-compose -f /tmp/docker-compose.yml up -d"); got != 1 {
		t.Errorf("fallback ran %d times, want exactly 1", got)
	}
}

func TestLaunchBothFail(t *testing.T) {
	runner := newFakeRunner()
	runner.fail["docker compose -f /tmp/docker-compose.yml up"] = errors.New("compose plugin broken")
	runner.fail["docker-compose -f /tmp/docker-compose.yml up"] = errors.New("legacy broken too")
	s, _ := newTestSession(runner)
	sl := NewServiceLauncher(s, "/tmp/docker-compose.yml")

	err := sl.Launch(context.Background())
	if err == nil {
		t.Fatal("expected launch error")
	}
	if !pkgerrors.IsLaunch(err) {
		t.Errorf("expected LaunchError, got %T: %v", err, err)
	}
	var launchErr *pkgerrors.LaunchError
	if errors.As(err, &launchErr) && launchErr.Hint == "" {
		t.Error("launch error should carry a log-inspection hint")
	}
	if got := runner.countPrefix("docker-compose -f"); got != 1 {
		t.Errorf("fallback ran %d times, want exactly 1", got)
	}
}

func TestLaunchFallbackUnavailable(t *testing.T) {
	runner := newFakeRunner()
	runner.fail["docker compose -f /tmp/docker-compose.yml up"] = errors.New("compose plugin broken")
	runner.missing["docker-compose"] = true
	s, _ := newTestSession(runner)
	sl := NewServiceLauncher(s, "/tmp/docker-compose.yml")

	err := sl.Launch(context.Background())
	if !pkgerrors.IsLaunch(err) {
		t.Fatalf("expected LaunchError when fallback is unavailable, got %v", err)
	}
	if got := runner.countPrefix("docker-compose -f"); got != 0 {
		t.Errorf("missing fallback binary should never be invoked, ran %d times", got)
	}
}

func TestCleanupIgnoresMissingInstance(t *testing.T) {
	runner := newFakeRunner()
	runner.fail["docker compose -f /tmp/docker-compose.yml down"] = errors.New("no such service")
	runner.fail["docker rm -f"] = errors.New("no such container")
	s, _ := newTestSession(runner)
	sl := NewServiceLauncher(s, "/tmp/docker-compose.yml")

	// Must not panic or propagate anything.
	sl.Cleanup(context.Background())

	if got := runner.countPrefix("docker compose -f /tmp/docker-compose.yml down"); got != 1 {
		t.Errorf("cleanup down ran %d times, want 1", got)
	}
}
