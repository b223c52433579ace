package installer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aztecnode/provisioner/pkg/config"
	"github.com/aztecnode/provisioner/pkg/installer/steps"
)

// wizardStep identifies a step in the config wizard
type wizardStep int

const (
	stepWelcome wizardStep = iota
	stepExecutionRPC
	stepConsensusRPC
	stepPublicIP
	stepValidatorKey
	stepCoinbase
	stepBlobSink
	stepConfirm
	stepDone
)

// promptSpec describes one text-input step.
type promptSpec struct {
	title       string
	description string
	placeholder string
	secret      bool
}

var prompts = map[wizardStep]promptSpec{
	stepExecutionRPC: {
		title:       "L1 Execution RPC",
		description: "Enter your Ethereum execution client RPC URL:",
		placeholder: "e.g., https://eth-sepolia.example.com",
	},
	stepConsensusRPC: {
		title:       "L1 Consensus RPC",
		description: "Enter your beacon chain RPC URL:",
		placeholder: "e.g., https://beacon-sepolia.example.com",
	},
	stepPublicIP: {
		title:       "Public IP Address",
		description: "Enter this server's public IP (used for P2P advertising):",
		placeholder: "e.g., 203.0.113.1",
	},
	stepValidatorKey: {
		title:       "Validator Private Key",
		description: "Enter the validator private key for this sequencer:",
		placeholder: "0x-prefixed hex",
		secret:      true,
	},
	stepCoinbase: {
		title:       "Coinbase Address",
		description: "Enter the Ethereum address that receives block rewards:",
		placeholder: "e.g., 0x1234...abcd (42 characters)",
	},
	stepBlobSink: {
		title:       "Blob Sink URL (optional)",
		description: "Enter a blob sink URL, or leave empty to skip:",
		placeholder: "e.g., https://blobs.example.com",
	},
}

// Model is the bubbletea model for the config wizard
type Model struct {
	step      wizardStep
	answers   map[wizardStep]string
	textInput textinput.Model
	width     int
	height    int
}

// NewModel creates a new wizard model
func NewModel() Model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return Model{
		step:      stepWelcome,
		answers:   make(map[wizardStep]string),
		textInput: ti,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "esc":
			if m.step > stepWelcome && m.step < stepDone {
				m.step--
				m.setupStepInput()
			}
			return m, nil
		}
	}

	if _, isPrompt := prompts[m.step]; isPrompt {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.step {
	case stepWelcome:
		m.step = stepExecutionRPC
		m.setupStepInput()

	case stepExecutionRPC, stepConsensusRPC, stepPublicIP,
		stepValidatorKey, stepCoinbase, stepBlobSink:
		// Raw values only; the install phase validates everything at once.
		m.answers[m.step] = (&steps.Prompt{Input: m.textInput}).Value()
		m.step++
		m.setupStepInput()

	case stepConfirm:
		m.step = stepDone
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) setupStepInput() {
	spec, ok := prompts[m.step]
	if !ok {
		return
	}

	m.textInput.Reset()
	m.textInput.Focus()
	m.textInput.Placeholder = spec.placeholder
	if spec.secret {
		m.textInput.EchoMode = textinput.EchoPassword
	} else {
		m.textInput.EchoMode = textinput.EchoNormal
	}

	// Restore a previous answer when stepping back, and pre-fill the
	// public IP with a best-effort detection.
	if prev, ok := m.answers[m.step]; ok && prev != "" {
		m.textInput.SetValue(prev)
	} else if m.step == stepPublicIP {
		m.textInput.SetValue(config.DetectPublicIP(nil))
	}
}

// View renders the UI
func (m Model) View() string {
	s := renderHeader() + "\n\n"

	switch m.step {
	case stepWelcome:
		s += (&steps.Welcome{}).View()
	case stepConfirm:
		s += (&steps.Confirm{
			ExecutionRPCURL: m.answers[stepExecutionRPC],
			ConsensusRPCURL: m.answers[stepConsensusRPC],
			PublicIP:        m.answers[stepPublicIP],
			CoinbaseAddress: m.answers[stepCoinbase],
			BlobSinkURL:     m.answers[stepBlobSink],
			KeyProvided:     m.answers[stepValidatorKey] != "",
		}).View()
	case stepDone:
		s += (&steps.Done{}).View()
	default:
		spec := prompts[m.step]
		s += (&steps.Prompt{
			Title:       spec.title,
			Description: spec.description,
			Input:       m.textInput,
		}).View()
	}

	return s + "\n"
}

// NodeConfig returns the collected configuration.
func (m *Model) NodeConfig() *config.NodeConfig {
	return &config.NodeConfig{
		ExecutionRPCURL:     m.answers[stepExecutionRPC],
		ConsensusRPCURL:     m.answers[stepConsensusRPC],
		PublicIP:            m.answers[stepPublicIP],
		ValidatorPrivateKey: m.answers[stepValidatorKey],
		CoinbaseAddress:     m.answers[stepCoinbase],
		BlobSinkURL:         m.answers[stepBlobSink],
	}
}
