// Package ui implements the terminal chat front end: a transcript
// viewport, an input prompt, and the tick loop that drives the reveal
// engine while keeping the view scrolled to the newest text.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AndreiNanescu/FinanceWatcher/internal/chat"
	"github.com/AndreiNanescu/FinanceWatcher/internal/config"
	"github.com/AndreiNanescu/FinanceWatcher/internal/reveal"
)

// ============================================================================
// Transcript
// ============================================================================

type role int

const (
	roleUser role = iota
	roleBot
)

// message is one finalized, immutable transcript entry
type message struct {
	role        role
	text        string
	interrupted bool // reveal was cancelled; text is the partial prefix
}

// ============================================================================
// Messages
// ============================================================================

// responseMsg carries the backend's reply (or failure) for a sent message
type responseMsg struct {
	text string
	err  error
}

// revealTickMsg advances the active reveal session. The generation tag
// ties a tick to the session it was scheduled for; a tick that outlives
// its session is dropped instead of mutating a successor.
type revealTickMsg struct {
	gen int
}

// healthTickMsg schedules the next backend health probe
type healthTickMsg struct{}

// healthMsg carries the result of a health probe
type healthMsg struct {
	err error
}

// ============================================================================
// Model
// ============================================================================

// Model is the bubbletea model for the chat view
type Model struct {
	client *chat.Client

	vp    viewport.Model
	input textinput.Model
	spin  spinner.Model

	messages []message

	// Reveal state: at most one session is live, tagged by revealGen so
	// stale ticks can be recognized after cancel or completion.
	session   *reveal.Session
	revealGen int

	waiting   bool // request in flight
	backendUp bool
	ready     bool // first WindowSizeMsg received
	width     int
	height    int
}

// New creates the chat model
func New(client *chat.Client) Model {
	input := textinput.New()
	input.Placeholder = "Ask about the markets..."
	input.Prompt = "> "
	input.PromptStyle = styles.Prompt
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		client: client,
		input:  input,
		spin:   spin,
	}
}

// Init starts the health poll loop
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, healthCmd(m.client))
}

// busy reports whether input should stay disabled: a request is in flight
// or a reveal is still running.
func (m Model) busy() bool {
	return m.waiting || m.session != nil
}

// ============================================================================
// Commands
// ============================================================================

// sendCmd posts the user message to the backend. Failure text flows back
// through the same response path as normal content.
func sendCmd(client *chat.Client, text string) tea.Cmd {
	timeout := config.GetRequestTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		reply, err := client.Send(ctx, text)
		return responseMsg{text: reply, err: err}
	}
}

// revealTickCmd schedules the next reveal tick for the given generation
func revealTickCmd(gen int) tea.Cmd {
	return tea.Tick(config.GetRevealInterval(), func(time.Time) tea.Msg {
		return revealTickMsg{gen: gen}
	})
}

// healthCmd probes the backend once
func healthCmd(client *chat.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return healthMsg{err: client.CheckHealth(ctx)}
	}
}

// healthTickCmd schedules the next health probe
func healthTickCmd() tea.Cmd {
	return tea.Tick(config.GetHealthInterval(), func(time.Time) tea.Msg {
		return healthTickMsg{}
	})
}

// ============================================================================
// Entry point
// ============================================================================

// Run launches the chat TUI against the given backend client
func Run(client *chat.Client) error {
	RefreshStyles()
	p := tea.NewProgram(New(client), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
