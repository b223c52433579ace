package steps

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// Prompt is a single-value text input step.
type Prompt struct {
	Title       string
	Description string
	Input       textinput.Model
	Error       error
}

// View renders the prompt step
func (p *Prompt) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render(p.Title) + "\n\n")
	if p.Description != "" {
		s.WriteString(p.Description + "\n\n")
	}
	s.WriteString(p.Input.View())

	if p.Error != nil {
		s.WriteString("\n\n" + errorStyle.Render("✗ "+p.Error.Error()))
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Enter to confirm • Esc to go back"))
	return s.String()
}

// Value returns the trimmed input value
func (p *Prompt) Value() string {
	return strings.TrimSpace(p.Input.Value())
}
