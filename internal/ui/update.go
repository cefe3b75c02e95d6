package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case responseMsg:
		return m.handleResponse(msg)

	case revealTickMsg:
		return m.handleRevealTick(msg)

	case healthMsg:
		m.backendUp = msg.err == nil
		return m, healthTickCmd()

	case healthTickMsg:
		return m, healthCmd(m.client)
	}

	var cmds []tea.Cmd
	if m.waiting {
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.vp, cmd = m.vp.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// handleResize lays out the viewport, status bar and input line
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	vpHeight := msg.Height - chromeHeight
	if vpHeight < 1 {
		vpHeight = 1
	}
	if !m.ready {
		m.vp = viewportNew(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.vp.Width = msg.Width
		m.vp.Height = vpHeight
	}
	m.input.Width = msg.Width - len(m.input.Prompt) - 1

	m.refreshTranscript()
	m.vp.GotoBottom()
	return m, nil
}

// handleKey routes key presses
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.teardown()
		return m, tea.Quit

	case "esc":
		if m.session != nil {
			m.cancelReveal()
			m.refreshTranscript()
			m.vp.GotoBottom()
		}
		return m, nil

	case "enter":
		return m.handleSubmit()

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}

	// Editing is disabled while a request or reveal is in flight;
	// scrolling and cancellation above stay available.
	if m.busy() {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleSubmit sends the typed message unless a request or reveal is
// still in progress; sessions are never concurrent.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	if m.busy() {
		return m, nil
	}
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	m.messages = append(m.messages, message{role: roleUser, text: text})
	m.input.Reset()
	m.waiting = true
	m.refreshTranscript()
	m.vp.GotoBottom()

	return m, tea.Batch(m.spin.Tick, sendCmd(m.client, text))
}

// handleResponse starts a reveal session for the backend's reply. Error
// text is revealed through the very same pipeline as normal content.
func (m Model) handleResponse(msg responseMsg) (tea.Model, tea.Cmd) {
	m.waiting = false

	text := msg.text
	if msg.err != nil {
		text = msg.err.Error()
	}
	cmd := m.startReveal(text)
	return m, cmd
}

// handleRevealTick advances the active session by one character and keeps
// the viewport pinned to the bottom. Scrolling is fire-and-forget and
// idempotent, so an extra request is harmless.
func (m Model) handleRevealTick(msg revealTickMsg) (tea.Model, tea.Cmd) {
	if m.session == nil || msg.gen != m.revealGen {
		// Stale tick from a cancelled or completed session.
		return m, nil
	}

	done := m.session.Step()
	if done {
		m.finalizeReveal(false)
	}
	m.refreshTranscript()
	m.vp.GotoBottom()

	if done {
		return m, nil
	}
	return m, revealTickCmd(m.revealGen)
}
