package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AndreiNanescu/FinanceWatcher/internal/format"
	"github.com/AndreiNanescu/FinanceWatcher/internal/reveal"
)

// chromeHeight is the number of terminal rows reserved around the
// transcript viewport: status bar and input line.
const chromeHeight = 2

func viewportNew(width, height int) viewport.Model {
	return viewport.New(width, height)
}

// ============================================================================
// Reveal session lifecycle
// ============================================================================

// startReveal creates and starts the session for a fresh response. An
// empty payload completes immediately, so the message finalizes with no
// tick ever scheduled. Submission is blocked while a session is live, so
// sessions are never concurrent.
func (m *Model) startReveal(text string) tea.Cmd {
	s := reveal.NewSession(text)
	m.revealGen++
	if s.Start() {
		// Completed on start: empty payload.
		m.messages = append(m.messages, message{role: roleBot, text: s.FullText()})
		m.refreshTranscript()
		m.vp.GotoBottom()
		return nil
	}
	m.session = s
	m.refreshTranscript()
	m.vp.GotoBottom()
	return revealTickCmd(m.revealGen)
}

// finalizeReveal appends the session's text as an immutable transcript
// entry and discards the session. The full payload is used on natural
// completion; cancellation keeps only the revealed prefix.
func (m *Model) finalizeReveal(cancelled bool) {
	if m.session == nil {
		return
	}
	if cancelled {
		m.messages = append(m.messages, message{role: roleBot, text: m.session.Visible(), interrupted: true})
	} else {
		m.messages = append(m.messages, message{role: roleBot, text: m.session.FullText()})
	}
	m.session = nil
	m.revealGen++ // orphan any tick already in flight
}

// cancelReveal stops a running session, keeping the partial prefix as a
// finalized message marked interrupted.
func (m *Model) cancelReveal() {
	if m.session == nil {
		return
	}
	m.session.Cancel()
	m.finalizeReveal(true)
}

// teardown releases the live session on quit so no tick can fire against
// a destroyed view.
func (m *Model) teardown() {
	if m.session != nil {
		m.session.Cancel()
		m.session = nil
		m.revealGen++
	}
}

// ============================================================================
// Transcript rendering
// ============================================================================

// refreshTranscript rebuilds the viewport content from the finalized
// messages plus the active session's revealed prefix. Each partial prefix
// is re-run through the formatter, so structure appears as soon as its
// markup is complete.
func (m *Model) refreshTranscript() {
	b := getBuilder()
	defer putBuilder(b)

	for i, msg := range m.messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(renderMessage(msg, m.vp.Width))
	}
	if m.session != nil {
		if len(m.messages) > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(RenderTree(format.Format(m.session.Visible()), m.vp.Width))
	}
	m.vp.SetContent(b.String())
}

// renderMessage renders one finalized transcript entry
func renderMessage(msg message, width int) string {
	if msg.role == roleUser {
		return styles.User.Render("You: ") + msg.text
	}
	out := RenderTree(format.Format(msg.text), width)
	if msg.interrupted {
		if out != "" {
			out += "\n"
		}
		out += styles.Interrupted.Render("(interrupted)")
	}
	return out
}
