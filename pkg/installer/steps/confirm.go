package steps

import (
	"strings"
)

// Confirm step shows the collected configuration before generation.
type Confirm struct {
	ExecutionRPCURL string
	ConsensusRPCURL string
	PublicIP        string
	CoinbaseAddress string
	BlobSinkURL     string
	KeyProvided     bool
}

// View renders the confirmation step
func (c *Confirm) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Review Configuration") + "\n\n")

	var b strings.Builder
	b.WriteString("Execution RPC:  " + c.ExecutionRPCURL + "\n")
	b.WriteString("Consensus RPC:  " + c.ConsensusRPCURL + "\n")
	b.WriteString("Public IP:      " + c.PublicIP + "\n")
	b.WriteString("Coinbase:       " + c.CoinbaseAddress + "\n")
	if c.KeyProvided {
		b.WriteString("Validator key:  ********\n")
	} else {
		b.WriteString("Validator key:  (not set)\n")
	}
	if c.BlobSinkURL != "" {
		b.WriteString("Blob sink:      " + c.BlobSinkURL + "\n")
	}
	s.WriteString(BoxStyle.Render(strings.TrimRight(b.String(), "\n")))

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Enter to install and start • Esc to go back"))
	return s.String()
}
