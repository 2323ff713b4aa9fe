// Package ssh adapts a gliderlabs/ssh session into a tcell Tty so the
// dungeon viewer can run over a remote connection.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Terminal implements tcell.Tty on top of one SSH session. Every connected
// client gets its own Terminal → tcell.Screen pair.
type Terminal struct {
	session gossh.Session

	mu     sync.Mutex
	window gossh.Window
	winCh  <-chan gossh.Window
	resize func() // resize callback registered by tcell
}

// NewTerminal wraps an SSH session as a tcell Tty. pty carries the initial
// window size; winCh delivers resize events for the session's lifetime.
func NewTerminal(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *Terminal {
	return &Terminal{session: s, window: pty.Window, winCh: winCh}
}

// Read pulls raw keyboard input from the session.
func (t *Terminal) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write pushes rendered output to the session.
func (t *Terminal) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the underlying SSH channel.
func (t *Terminal) Close() error { return t.session.Close() }

// Start is a no-op: the SSH channel is already open when tcell gets it.
func (t *Terminal) Start() error { return nil }

// Stop is a no-op: the server handler goroutine owns the channel.
func (t *Terminal) Stop() error { return nil }

// Drain is a no-op: SSH writes flush immediately.
func (t *Terminal) Drain() error { return nil }

// WindowSize reports the client terminal's current dimensions.
func (t *Terminal) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb to fire on window-change events and starts the
// goroutine that drains them for the rest of the session.
func (t *Terminal) NotifyResize(cb func()) {
	t.mu.Lock()
	t.resize = cb
	t.mu.Unlock()

	go func() {
		for win := range t.winCh {
			t.mu.Lock()
			t.window = win
			fire := t.resize
			t.mu.Unlock()
			if fire != nil {
				fire()
			}
		}
	}()
}
