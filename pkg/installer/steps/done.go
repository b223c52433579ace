package steps

import (
	"strings"
)

// Done step shown when config collection completes
type Done struct{}

// View renders the done step
func (d *Done) View() string {
	var s strings.Builder
	s.WriteString(successStyle.Render("✓ Configuration collected") + "\n\n")
	s.WriteString(subtitleStyle.Render("Handing off to the installer..."))
	return s.String()
}
