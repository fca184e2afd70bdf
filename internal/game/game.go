package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"spriggan/internal/component"
	"spriggan/internal/config"
	"spriggan/internal/logger"
	"spriggan/internal/render"
	"spriggan/internal/turn"
)

// Game ties a terminal screen to one Session and runs the tick loop.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	session  *Session
	cfg      config.Config
	// runLogDir is where finished games are summarised; empty disables it.
	runLogDir string
}

// New opens the local terminal and builds a fresh session.
func New(ctx context.Context, cfg config.Config) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	g, err := NewWithScreen(ctx, screen, cfg)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return g, nil
}

// NewWithScreen builds a game on an already initialised screen, such as one
// backed by an SSH session.
func NewWithScreen(ctx context.Context, screen tcell.Screen, cfg config.Config) (*Game, error) {
	session, err := NewSession(ctx, cfg)
	if err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.HideCursor()

	gmap := session.Ctrl.Map()
	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, gmap.Width, gmap.Height),
		session:  session,
		cfg:      cfg,
	}
	if cfg.RunLog {
		g.runLogDir = config.DataDir()
	}
	return g, nil
}

// Seed returns the seed the map was generated from.
func (g *Game) Seed() int64 { return g.session.Seed }

// Run drives the tick loop until the player quits. Each tick resolves state
// first and renders after; input is only read while the controller is paused.
// The screen is finalised on return.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Fini()

	ctrl := g.session.Ctrl
	key := turn.KeyNone
	outcome := OutcomeQuit
	for {
		if err := ctrl.Tick(ctx, key); err != nil {
			return err
		}
		g.draw()

		if ctrl.State() == turn.Running {
			key = turn.KeyNone
			continue
		}
		if ctrl.GameOver() {
			outcome = OutcomeDied
		} else if ctrl.MonstersLeft() == 0 {
			outcome = OutcomeCleared
		}

		var quit bool
		key, quit = g.nextKey()
		if quit || ctx.Err() != nil {
			break
		}
	}

	g.finish(outcome)
	return nil
}

// nextKey blocks for the next key press, redrawing on resize.
func (g *Game) nextKey() (turn.Key, bool) {
	for {
		switch ev := g.screen.PollEvent().(type) {
		case nil:
			// Screen finalised underneath us.
			return turn.KeyNone, true
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
			g.draw()
		case *tcell.EventKey:
			return keyToTurn(ev)
		}
	}
}

func (g *Game) draw() {
	ctrl := g.session.Ctrl
	if c := ctrl.World().Get(g.session.PlayerID, component.CPosition); c != nil {
		pos := c.(component.Position)
		g.renderer.CenterOn(pos.X, pos.Y)
	}
	g.renderer.DrawFrame(ctrl.World(), ctrl.Map())
	g.renderer.DrawHUD(render.Status{
		HP:           ctrl.PlayerHP(),
		Turn:         ctrl.Stats().Turns,
		MonstersLeft: ctrl.MonstersLeft(),
		Seed:         g.session.Seed,
		GameOver:     ctrl.GameOver(),
	}, ctrl.Messages())
}

func (g *Game) finish(outcome Outcome) {
	st := g.session.Ctrl.Stats()
	log := logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"seed":      g.session.Seed,
		"outcome":   outcome,
		"turns":     st.Turns,
		"kills":     st.Kills,
	})
	log.Info("game finished")

	if g.runLogDir == "" {
		return
	}
	if err := appendRunLog(g.runLogDir, newRunLog(g.session.Seed, outcome, st)); err != nil {
		log.WithError(err).Warn("run log not written")
	}
}
