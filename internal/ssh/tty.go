// Package ssh adapts an SSH session to the tcell.Tty interface so each
// remote player gets a private terminal screen.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty is a tcell.Tty reading keys from and writing frames to one SSH session.
type SessionTty struct {
	sess gossh.Session

	mu       sync.Mutex
	size     gossh.Window
	onResize func()
	resizes  <-chan gossh.Window
	watching bool
}

var _ tcell.Tty = (*SessionTty)(nil)

// NewSessionTty wraps sess. pty carries the starting window size and
// resizes delivers window-change requests for the life of the session.
func NewSessionTty(sess gossh.Session, pty gossh.Pty, resizes <-chan gossh.Window) *SessionTty {
	return &SessionTty{sess: sess, size: pty.Window, resizes: resizes}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.sess.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.sess.Write(b) }
func (t *SessionTty) Close() error                { return t.sess.Close() }

// Start, Stop and Drain have nothing to do: the channel is opened and torn
// down by the SSH server.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize reports the latest size the client sent.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.size.Width, Height: t.size.Height}, nil
}

// NotifyResize sets the callback tcell uses to learn about resizes. The
// window-change channel is drained by a single goroutine that lives until
// the session closes it.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	start := !t.watching && t.resizes != nil
	t.watching = true
	t.mu.Unlock()

	if start {
		go t.watch()
	}
}

func (t *SessionTty) watch() {
	for win := range t.resizes {
		t.mu.Lock()
		t.size = win
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
