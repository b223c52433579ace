package installer

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aztecnode/provisioner/pkg/installer/steps"
)

// MenuChoice is the action selected from the top-level menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceInstall
	ChoiceLogs
	ChoiceStatus
	ChoiceExit
)

var menuOptions = []string{
	"Install dependencies and start the sequencer node",
	"Stream node logs",
	"Check chain status",
	"Exit",
}

// menuChoiceAt maps a menu row to its action.
func menuChoiceAt(cursor int) MenuChoice {
	switch cursor {
	case 0:
		return ChoiceInstall
	case 1:
		return ChoiceLogs
	case 2:
		return ChoiceStatus
	case 3:
		return ChoiceExit
	}
	return ChoiceNone
}

// MenuModel is the bubbletea model for the action menu
type MenuModel struct {
	cursor int
	choice MenuChoice
}

// NewMenuModel creates a new menu model
func NewMenuModel() MenuModel {
	return MenuModel{}
}

// Init initializes the model
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.choice = ChoiceExit
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(menuOptions)-1 {
				m.cursor++
			}

		case "1", "2", "3", "4":
			m.cursor = int(msg.String()[0] - '1')
			m.choice = menuChoiceAt(m.cursor)
			return m, tea.Quit

		case "enter":
			m.choice = menuChoiceAt(m.cursor)
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu
func (m MenuModel) View() string {
	if m.choice != ChoiceNone {
		return ""
	}
	menu := &steps.Menu{Cursor: m.cursor, Options: menuOptions}
	return renderHeader() + "\n\n" + menu.View() + "\n"
}

// Choice returns the selected action after the program exits.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// RunMenu shows the action menu and returns the operator's choice.
// A cancelled program counts as Exit.
func RunMenu() (MenuChoice, error) {
	finalModel, err := tea.NewProgram(NewMenuModel()).Run()
	if err != nil {
		return ChoiceNone, fmt.Errorf("menu failed: %w", err)
	}

	m := finalModel.(MenuModel)
	if m.Choice() == ChoiceNone {
		return ChoiceExit, nil
	}
	return m.Choice(), nil
}
