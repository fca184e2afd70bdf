// spriggan-server hosts spriggan over SSH. Every connection gets its own
// independent game on its own map. Build:
//
//	go build -o spriggan-server ./cmd/server
//
// Usage:
//
//	./spriggan-server [--port 2222] [--key server_host_key]
//
// Then connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/sirupsen/logrus"
	xssh "golang.org/x/crypto/ssh"

	"spriggan/internal/config"
	"spriggan/internal/game"
	"spriggan/internal/logger"
	internalssh "spriggan/internal/ssh"
	"spriggan/internal/telemetry"
)

const (
	defaultTerm = "xterm-256color"
	maxNameLen  = 16
)

// allowedTerms are the TERM values we hand to terminfo. Anything else falls
// back to defaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// termMu serialises os.Setenv("TERM") with terminfo screen creation.
var termMu sync.Mutex

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (generated if absent)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log := logger.Log.WithField("component", "server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.WithError(err).Warn("tracing disabled")
		} else {
			defer func() {
				sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = shutdown(sctx)
			}()
		}
	}

	signer, err := loadOrCreateHostKey(*keyFile)
	if err != nil {
		log.WithError(err).Fatal("host key")
	}

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(ctx, s, cfg)
		},
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: intended for a private server.
		HostSigners: []gossh.Signer{signer},
	}

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(sctx)
	}()

	log.WithField("port", *port).Info("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		log.WithError(err).Fatal("serve")
	}
}

// handleSession runs one game for one connection. It blocks for the life of
// the game so the SSH session stays open.
func handleSession(ctx context.Context, s gossh.Session, cfg config.Config) {
	log := logger.Log.WithFields(logrus.Fields{
		"component": "server",
		"player":    sanitizeName(s.User()),
		"remote":    s.RemoteAddr().String(),
	})

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "spriggan needs a terminal. Connect with: ssh -t -p 2222 <host>")
		return
	}

	screen, err := newSessionScreen(s, pty, winCh)
	if err != nil {
		log.WithError(err).Warn("screen setup failed")
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}

	g, err := game.NewWithScreen(ctx, screen, cfg)
	if err != nil {
		screen.Fini()
		log.WithError(err).Error("new game")
		fmt.Fprintf(s, "Could not start a game: %v\n", err)
		return
	}
	log = log.WithField("seed", g.Seed())
	log.Info("session started")

	// Closing the screen unblocks PollEvent when the client hangs up.
	go func() {
		select {
		case <-s.Context().Done():
			screen.Fini()
		case <-ctx.Done():
			screen.Fini()
		}
	}()

	if err := g.Run(s.Context()); err != nil {
		log.WithError(err).Error("game aborted")
		return
	}
	log.Info("session ended")
}

func newSessionScreen(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) (tcell.Screen, error) {
	term := pty.Term
	if term == "" {
		for _, env := range s.Environ() {
			if v, ok := strings.CutPrefix(env, "TERM="); ok {
				term = v
				break
			}
		}
	}
	if !allowedTerms[term] {
		term = defaultTerm
	}

	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}

// sanitizeName drops control characters and caps the name at maxNameLen
// bytes without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameLen {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey reads a PEM private key from path, or generates an
// ed25519 key and tries to persist it there.
func loadOrCreateHostKey(path string) (gossh.Signer, error) {
	log := logger.Log.WithFields(logrus.Fields{"component": "server", "path": path})
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info("loaded host key")
			return signer, nil
		}
	}

	log.Info("generating ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	if block, err := xssh.MarshalPrivateKey(key, "spriggan server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
			log.WithError(err).Warn("host key not saved")
		}
	}
	return signer, nil
}
