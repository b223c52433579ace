// Package installer provides the interactive terminal UI: the top-level
// action menu and the configuration wizard for the sequencer node.
package installer

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aztecnode/provisioner/pkg/config"
	"github.com/aztecnode/provisioner/pkg/installer/steps"
)

// ErrCancelled is returned when the operator backs out of the wizard.
var ErrCancelled = errors.New("configuration cancelled")

// renderHeader renders the application header
func renderHeader() string {
	logo := `
    _    _____ _____ _____ ____
   / \  |__  /|_   _| ____/ ___|
  / _ \   / /   | | |  _|| |
 / ___ \ / /_   | | | |__| |___
/_/   \_\____|  |_| |_____\____|
`
	return steps.TitleStyle.Render(logo) + "\n" + steps.SubtitleStyle.Render("Alpha-Testnet Sequencer Node Provisioner")
}

// InputProvider collects the node configuration from the operator.
// The bubbletea wizard is the default; tests inject a canned provider.
type InputProvider interface {
	CollectNodeConfig() (*config.NodeConfig, error)
}

// Wizard is the bubbletea-backed InputProvider.
type Wizard struct{}

// CollectNodeConfig runs the wizard and returns the raw operator input.
// Values are collected as typed; validation happens in the install phase.
func (w *Wizard) CollectNodeConfig() (*config.NodeConfig, error) {
	p := tea.NewProgram(NewModel())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	m := finalModel.(Model)
	if m.step != stepDone {
		return nil, ErrCancelled
	}
	return m.NodeConfig(), nil
}
