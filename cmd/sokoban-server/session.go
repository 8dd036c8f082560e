package main

import (
	"fmt"
	"os"
	"sync"

	"sokoban/internal/config"
	"sokoban/internal/level"
	internalssh "sokoban/internal/ssh"
	"sokoban/internal/terminal"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// allowedTerms lists the terminal types a client may request. Anything
// else falls back to internalssh.DefaultTerm so a client cannot steer
// terminfo lookups.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// termMu protects os.Setenv("TERM") around screen creation, since
// tcell reads terminfo from the process environment.
var termMu sync.Mutex

// handler runs one independent game per SSH session.
type handler struct {
	cfg  config.Config
	pack *level.Pack
	log  *zap.Logger
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the connection so the SSH session stays open.
func (h *handler) handleSession(s gossh.Session) {
	log := h.log.With(
		zap.String("session", uuid.NewString()),
		zap.String("user", s.User()),
		zap.Stringer("remote", s.RemoteAddr()),
	)

	tty, err := internalssh.NewSessionTty(s)
	if err != nil {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		log.Warn("session rejected", zap.Error(err))
		_ = s.Exit(1)
		return
	}
	screen, err := newScreen(tty)
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		log.Error("screen setup failed", zap.Error(err))
		_ = s.Exit(1)
		return
	}
	defer screen.Fini()

	sess, err := terminal.NewSession(h.cfg, h.pack, h.cfg.RunLog, log)
	if err != nil {
		log.Error("session setup failed", zap.Error(err))
		_ = s.Exit(1)
		return
	}

	log.Info("session started", zap.String("term", tty.Term()))
	if err := terminal.Run(s.Context(), screen, sess.Game, sess.Options(h.cfg.FPS, log)); err != nil {
		log.Info("session closed by client", zap.Error(err))
	}
	st := sess.Game.Status()
	log.Info("session ended", zap.String("level", st.Level), zap.Stringer("mode", st.Mode))
	_ = s.Exit(0)
}

// newScreen creates and initialises a tcell screen on tty.
func newScreen(tty *internalssh.SessionTty) (tcell.Screen, error) {
	term := tty.Term()
	if !allowedTerms[term] {
		term = internalssh.DefaultTerm
	}

	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}
