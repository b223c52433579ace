package provision

import (
	"bytes"
	"context"
	"strings"

	"github.com/aztecnode/provisioner/pkg/session"
)

// fakeRunner records every invocation and answers from canned tables.
type fakeRunner struct {
	calls   []string
	fail    map[string]error  // command prefix -> error
	outputs map[string]string // command prefix -> stdout
	missing map[string]bool   // binaries absent from PATH
	onCall  func(call string) // optional hook, runs before lookup
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		fail:    map[string]error{},
		outputs: map[string]string{},
		missing: map[string]bool{},
	}
}

func (r *fakeRunner) record(name string, args []string) string {
	call := strings.TrimSpace(name + " " + strings.Join(args, " "))
	r.calls = append(r.calls, call)
	if r.onCall != nil {
		r.onCall(call)
	}
	return call
}

func (r *fakeRunner) lookup(call string) (string, error) {
	for prefix, err := range r.fail {
		if strings.HasPrefix(call, prefix) {
			return "", err
		}
	}
	for prefix, out := range r.outputs {
		if strings.HasPrefix(call, prefix) {
			return out, nil
		}
	}
	return "", nil
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	_, err := r.lookup(r.record(name, args))
	return err
}

func (r *fakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	out, err := r.lookup(r.record(name, args))
	return []byte(out), err
}

func (r *fakeRunner) Stream(ctx context.Context, name string, args ...string) error {
	return r.Run(ctx, name, args...)
}

func (r *fakeRunner) LookPath(name string) (string, error) {
	if r.missing[name] {
		return "", &lookPathError{name: name}
	}
	return "/usr/bin/" + name, nil
}

type lookPathError struct{ name string }

func (e *lookPathError) Error() string { return "exec: " + e.name + ": executable file not found" }

func (r *fakeRunner) countPrefix(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func newTestSession(runner *fakeRunner) (*session.Session, *bytes.Buffer) {
	var log bytes.Buffer
	return &session.Session{ID: "test-session", Runner: runner, LogWriter: &log}, &log
}
