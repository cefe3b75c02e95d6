// Package reveal implements the incremental display engine: a session
// owns a fully-known payload and exposes it one character at a time
// through a pure step function. The package keeps no timers; the caller
// schedules ticks and calls Step, which makes the state machine testable
// with a plain loop.
package reveal

// State is the lifecycle state of a Session.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCancelled
	StateCompleted
)

// String returns the state name for logs and test failures.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCancelled:
		return "cancelled"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Session is the reveal state machine for one response payload. Progress
// is counted in runes so multi-byte text never yields torn prefixes.
// Sessions are single-owner; exactly one is live per in-flight message.
type Session struct {
	full     []rune
	revealed int
	state    State
}

// NewSession creates an idle session for the given payload.
func NewSession(fullText string) *Session {
	return &Session{full: []rune(fullText)}
}

// Start moves the session from Idle to Running. An empty payload
// completes immediately with zero ticks; done reports that completion so
// the caller fires its completion handling exactly once.
func (s *Session) Start() (done bool) {
	if s.state != StateIdle {
		return false
	}
	if len(s.full) == 0 {
		s.state = StateCompleted
		return true
	}
	s.state = StateRunning
	return false
}

// Step advances the reveal by exactly one character. It reports true on
// the step that reveals the final character, and only then; in any state
// other than Running it is a no-op, so a tick that lands after
// cancellation or completion cannot mutate progress.
func (s *Session) Step() (done bool) {
	if s.state != StateRunning {
		return false
	}
	s.revealed++
	if s.revealed == len(s.full) {
		s.state = StateCompleted
		return true
	}
	return false
}

// Cancel stops the session, keeping the partially revealed prefix.
// Cancelling an already-terminal session is a no-op; progress is never
// rolled back.
func (s *Session) Cancel() {
	if s.state == StateIdle || s.state == StateRunning {
		s.state = StateCancelled
	}
}

// Visible returns the currently revealed prefix.
func (s *Session) Visible() string {
	return string(s.full[:s.revealed])
}

// FullText returns the complete payload.
func (s *Session) FullText() string {
	return string(s.full)
}

// Revealed returns the number of characters revealed so far.
func (s *Session) Revealed() int {
	return s.revealed
}

// State returns the session's lifecycle state.
func (s *Session) State() State {
	return s.state
}
