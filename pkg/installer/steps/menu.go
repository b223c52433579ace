package steps

import (
	"fmt"
	"strings"
)

// Menu is the top-level action selection step.
type Menu struct {
	Cursor  int
	Options []string
}

// View renders the menu step
func (m *Menu) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("What would you like to do?") + "\n\n")

	for i, opt := range m.Options {
		label := fmt.Sprintf("%d. %s", i+1, opt)
		if i == m.Cursor {
			s.WriteString(cursorStyle.Render("→ ") + focusedStyle.Render(label) + "\n")
		} else {
			s.WriteString("  " + blurredStyle.Render(label) + "\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("↑/↓ or 1-" + fmt.Sprint(len(m.Options)) + " to select • Enter to confirm"))
	return s.String()
}
