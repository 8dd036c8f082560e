// Package ssh adapts gliderlabs/ssh sessions to tcell screens so each
// remote player gets a private terminal.
package ssh

import (
	"errors"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPTY is returned for sessions opened without a terminal.
var ErrNoPTY = errors.New("ssh session has no pty")

// DefaultTerm is used when the client does not send TERM.
const DefaultTerm = "xterm-256color"

// Session is the subset of gossh.Session a SessionTty needs.
type Session interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
	Environ() []string
	Pty() (gossh.Pty, <-chan gossh.Window, bool)
}

// SessionTty implements tcell.Tty on top of an SSH session channel.
type SessionTty struct {
	session Session
	term    string

	mu     sync.Mutex
	window gossh.Window
	winCh  <-chan gossh.Window
	cb     func() // resize callback registered by tcell
}

// NewSessionTty wraps s as a tcell Tty. It fails with ErrNoPTY when the
// client did not request a pty.
func NewSessionTty(s Session) (*SessionTty, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	term := pty.Term
	if term == "" {
		term = termFromEnv(s.Environ())
	}
	return &SessionTty{session: s, term: term, window: pty.Window, winCh: winCh}, nil
}

func termFromEnv(env []string) string {
	for _, kv := range env {
		if v, ok := strings.CutPrefix(kv, "TERM="); ok && v != "" {
			return v
		}
	}
	return DefaultTerm
}

// Term returns the client's terminal type.
func (t *SessionTty) Term() string { return t.term }

func (t *SessionTty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *SessionTty) Close() error                { return t.session.Close() }

// Start, Stop and Drain are no-ops; the channel is owned by the server handler.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the current terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb and starts draining window changes for the
// lifetime of the session.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	go func() {
		for win := range t.winCh {
			t.mu.Lock()
			t.window = win
			localCb := t.cb
			t.mu.Unlock()
			if localCb != nil {
				localCb()
			}
		}
	}()
}
