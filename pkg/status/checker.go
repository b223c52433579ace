package status

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/aztecnode/provisioner/pkg/config"
	"github.com/aztecnode/provisioner/pkg/errors"
	"github.com/aztecnode/provisioner/pkg/session"
)

// Report is the outcome of one status check.
type Report struct {
	ProvenTip   string
	SiblingPath json.RawMessage
}

// Checker verifies the container is up and queries the node for chain state.
type Checker struct {
	session *session.Session
	client  *Client
}

// NewChecker creates a checker backed by the session's runner and the
// default RPC endpoint.
func NewChecker(s *session.Session) *Checker {
	return &Checker{
		session: s,
		client:  NewClient(""),
	}
}

// NewCheckerWithClient creates a checker with an explicit RPC client.
func NewCheckerWithClient(s *session.Session, client *Client) *Checker {
	return &Checker{session: s, client: client}
}

// EnsureQueryTool installs jq for ad-hoc shell inspection of RPC output.
// Best-effort: a failed install never blocks the status check.
func (c *Checker) EnsureQueryTool(ctx context.Context) {
	if _, err := c.session.Runner.LookPath("jq"); err == nil {
		return
	}
	c.session.Logf("  Installing jq...")
	if err := c.session.AptInstall(ctx, "jq"); err != nil {
		c.session.Logf("    Warning: jq install failed: %v", err)
	}
}

// ContainerRunning reports whether the sequencer container is up.
func (c *Checker) ContainerRunning(ctx context.Context) (bool, error) {
	out, err := c.session.Runner.Output(ctx, "docker", "ps",
		"--filter", "name="+config.ServiceName, "--format", "{{.Names}}")
	if err != nil {
		return false, errors.NewQueryError("docker ps", "failed to list containers", err)
	}
	for _, name := range strings.Fields(string(out)) {
		if name == config.ServiceName {
			return true, nil
		}
	}
	return false, nil
}

// Check runs the full status flow: query tool, container liveness, proven
// tip, and the tip's archive sibling path. All failures are recoverable.
func (c *Checker) Check(ctx context.Context) (*Report, error) {
	c.EnsureQueryTool(ctx)

	running, err := c.ContainerRunning(ctx)
	if err != nil {
		return nil, err
	}
	if !running {
		return nil, errors.NewQueryError("docker ps",
			"container "+config.ServiceName+" is not running; start the node first", errors.ErrNotRunning)
	}

	tip, err := c.client.ProvenTip(ctx)
	if err != nil {
		return nil, err
	}

	proof, err := c.client.ArchiveSiblingPath(ctx, tip)
	if err != nil {
		return nil, err
	}

	return &Report{ProvenTip: tip, SiblingPath: proof}, nil
}
