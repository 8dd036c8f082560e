package ssh

import (
	"bytes"
	"errors"
	"testing"
	"time"

	gossh "github.com/gliderlabs/ssh"
)

type fakeSession struct {
	bytes.Buffer
	env    []string
	pty    gossh.Pty
	hasPTY bool
	winCh  chan gossh.Window
	closed bool
}

func (f *fakeSession) Close() error      { f.closed = true; return nil }
func (f *fakeSession) Environ() []string { return f.env }
func (f *fakeSession) Pty() (gossh.Pty, <-chan gossh.Window, bool) {
	return f.pty, f.winCh, f.hasPTY
}

func TestNewSessionTtyRequiresPTY(t *testing.T) {
	_, err := NewSessionTty(&fakeSession{})
	if !errors.Is(err, ErrNoPTY) {
		t.Fatalf("err = %v; want ErrNoPTY", err)
	}
}

func TestTermResolution(t *testing.T) {
	cases := []struct {
		name string
		pty  string
		env  []string
		want string
	}{
		{"from pty", "screen", []string{"TERM=vt100"}, "screen"},
		{"from env", "", []string{"LANG=C", "TERM=vt100"}, "vt100"},
		{"default", "", nil, DefaultTerm},
		{"empty env value", "", []string{"TERM="}, DefaultTerm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tty, err := NewSessionTty(&fakeSession{pty: gossh.Pty{Term: tc.pty}, env: tc.env, hasPTY: true})
			if err != nil {
				t.Fatalf("NewSessionTty: %v", err)
			}
			if got := tty.Term(); got != tc.want {
				t.Errorf("Term() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResizeUpdatesWindow(t *testing.T) {
	s := &fakeSession{
		pty:    gossh.Pty{Window: gossh.Window{Width: 80, Height: 24}},
		hasPTY: true,
		winCh:  make(chan gossh.Window, 1),
	}
	tty, err := NewSessionTty(s)
	if err != nil {
		t.Fatalf("NewSessionTty: %v", err)
	}
	ws, _ := tty.WindowSize()
	if ws.Width != 80 || ws.Height != 24 {
		t.Fatalf("initial size %dx%d", ws.Width, ws.Height)
	}

	called := make(chan struct{}, 1)
	tty.NotifyResize(func() { called <- struct{}{} })
	s.winCh <- gossh.Window{Width: 120, Height: 40}

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("resize callback not invoked")
	}
	ws, _ = tty.WindowSize()
	if ws.Width != 120 || ws.Height != 40 {
		t.Fatalf("size after resize %dx%d; want 120x40", ws.Width, ws.Height)
	}
	close(s.winCh)
}

func TestReadWriteClosePassThrough(t *testing.T) {
	s := &fakeSession{hasPTY: true}
	tty, _ := NewSessionTty(s)
	if _, err := tty.Write([]byte("hi")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	buf := make([]byte, 2)
	if n, _ := tty.Read(buf); n != 2 || string(buf) != "hi" {
		t.Fatalf("Read = %q", buf[:n])
	}
	_ = tty.Close()
	if !s.closed {
		t.Fatal("Close not forwarded")
	}
}
