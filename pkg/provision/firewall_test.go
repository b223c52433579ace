package provision

import (
	"context"
	"errors"
	"testing"
)

func TestFirewallProvisioner_GenerateRules_Defaults(t *testing.T) {
	runner := newFakeRunner()
	s, _ := newTestSession(runner)
	fp := NewFirewallProvisioner(FirewallConfig{}, s)

	rules := fp.GenerateRules()

	assertContainsRule(t, rules, "ufw allow 40400/tcp")
	assertContainsRule(t, rules, "ufw allow 40400/udp")
	assertContainsRule(t, rules, "ufw allow 8080/tcp")

	if len(rules) != 3 {
		t.Errorf("expected exactly 3 rules, got %d: %v", len(rules), rules)
	}
}

func TestFirewallProvisioner_GenerateRules_CustomPorts(t *testing.T) {
	runner := newFakeRunner()
	s, _ := newTestSession(runner)
	fp := NewFirewallProvisioner(FirewallConfig{P2PPort: 41400, RPCPort: 9090}, s)

	rules := fp.GenerateRules()

	assertContainsRule(t, rules, "ufw allow 41400/tcp")
	assertContainsRule(t, rules, "ufw allow 41400/udp")
	assertContainsRule(t, rules, "ufw allow 9090/tcp")
}

func TestFirewallSetupToleratesFailures(t *testing.T) {
	runner := newFakeRunner()
	runner.fail["ufw allow 40400/tcp"] = errors.New("ufw: command failed")
	s, log := newTestSession(runner)
	fp := NewFirewallProvisioner(FirewallConfig{}, s)

	// Must not panic or abort; failures are logged only.
	fp.Setup(context.Background())

	if got := runner.countPrefix("ufw allow"); got != 3 {
		t.Errorf("all 3 rules should be attempted, got %d", got)
	}
	if log.Len() == 0 {
		t.Error("failures should be logged")
	}
}

func TestFirewallSetupInstallsUfwWhenMissing(t *testing.T) {
	runner := newFakeRunner()
	runner.missing["ufw"] = true
	s, _ := newTestSession(runner)
	fp := NewFirewallProvisioner(FirewallConfig{}, s)

	fp.Setup(context.Background())

	if got := runner.countPrefix("apt-get install -y ufw"); got != 1 {
		t.Errorf("ufw install ran %d times, want 1", got)
	}
}

func TestFirewallSetupSkipsWhenInstallFails(t *testing.T) {
	runner := newFakeRunner()
	runner.missing["ufw"] = true
	runner.fail["apt-get install -y ufw"] = errors.New("exit status 100")
	s, _ := newTestSession(runner)
	fp := NewFirewallProvisioner(FirewallConfig{}, s)

	fp.Setup(context.Background())

	if got := runner.countPrefix("ufw allow"); got != 0 {
		t.Errorf("rules should be skipped when ufw cannot be installed, got %d", got)
	}
}

func assertContainsRule(t *testing.T, rules []string, expected string) {
	t.Helper()
	for _, rule := range rules {
		if rule == expected {
			return
		}
	}
	t.Errorf("rules should contain '%s', got: %v", expected, rules)
}
