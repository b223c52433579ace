package steps

import (
	"strings"
)

// Welcome step shown before config collection begins
type Welcome struct{}

// View renders the welcome step
func (w *Welcome) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Sequencer Node Setup") + "\n\n")
	s.WriteString("This wizard collects the configuration for your alpha-testnet\n")
	s.WriteString("sequencer node. You will need:\n\n")
	s.WriteString("  • An Ethereum L1 execution RPC endpoint\n")
	s.WriteString("  • An L1 consensus (beacon) RPC endpoint\n")
	s.WriteString("  • Your validator private key\n")
	s.WriteString("  • A coinbase address to receive rewards\n\n")
	s.WriteString(helpStyle.Render("Enter to begin • Ctrl+C to cancel"))
	return s.String()
}
