// Package turn drives the per-tick game state machine: player input while
// paused, then monster AI, contact damage and the death sweep while running.
package turn

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"spriggan/internal/component"
	"spriggan/internal/ecs"
	"spriggan/internal/gamemap"
	"spriggan/internal/logger"
	"spriggan/internal/system"
	"spriggan/internal/telemetry"
)

// maxMessages bounds the message log.
const maxMessages = 50

// Stats accumulates over a whole game.
type Stats struct {
	Turns       int
	Kills       int
	DamageDealt int
	DamageTaken int
}

// Controller owns the run state and applies each tick to the world.
type Controller struct {
	world    *ecs.World
	gmap     *gamemap.Map
	rng      *rand.Rand
	rules    system.Rules
	state    RunState
	messages []string
	stats    Stats
}

// New returns a controller in the Running state, so the first tick resolves
// a turn before any input is read.
func New(w *ecs.World, gmap *gamemap.Map, rng *rand.Rand, rules system.Rules) *Controller {
	return &Controller{
		world: w,
		gmap:  gmap,
		rng:   rng,
		rules: rules,
		state: Running,
	}
}

func (c *Controller) State() RunState    { return c.state }
func (c *Controller) World() *ecs.World  { return c.world }
func (c *Controller) Map() *gamemap.Map  { return c.gmap }
func (c *Controller) Stats() Stats       { return c.stats }
func (c *Controller) Messages() []string { return c.messages }

// Tick advances the state machine once. While Running it resolves a turn and
// pauses; while Paused it reads key and, if it was a move or an attack, acts
// and switches to Running. The returned error means the entity store was
// left inconsistent and the game cannot continue.
func (c *Controller) Tick(ctx context.Context, key Key) error {
	if c.state == Running {
		if err := c.resolve(ctx); err != nil {
			return err
		}
		c.state = Paused
		return nil
	}
	c.state = c.handleInput(key)
	return nil
}

// handleInput applies the player's key and returns the next state.
func (c *Controller) handleInput(key Key) RunState {
	if c.GameOver() {
		return Paused
	}
	if dx, dy, ok := key.delta(); ok {
		system.TryMovePlayer(c.world, c.gmap, dx, dy)
		return Running
	}
	if key == KeyAttack {
		c.attack()
		return Running
	}
	return Paused
}

func (c *Controller) attack() {
	hits := system.TryAttack(c.world)
	if len(hits) == 0 {
		c.addMessage("You swing at empty air.")
		return
	}
	for _, h := range hits {
		c.stats.DamageDealt++
		c.addMessage(fmt.Sprintf("You hit the %c (%d HP left).", c.glyph(h.Target), h.HPLeft))
	}
}

// resolve runs one turn. Order matters: contact damage sees the monsters'
// new positions, and the sweep sees this turn's damage.
func (c *Controller) resolve(ctx context.Context) error {
	_, span := telemetry.Tracer("turn").Start(ctx, "turn.resolve")
	defer span.End()

	c.stats.Turns++
	ai := system.ProcessAI(c.world, c.gmap, c.rng, c.rules)

	hits := system.ContactDamage(c.world)
	for _, h := range hits {
		c.stats.DamageTaken++
		c.addMessage(fmt.Sprintf("OUCH! The %c hurts you. HP: %d", c.glyph(h.Attacker), h.HPLeft))
	}

	// Capture glyphs before the sweep destroys the entities.
	dead := c.condemned()
	removed, err := system.RemoveDead(c.world)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("resolve turn %d: %w", c.stats.Turns, err)
	}
	for _, id := range removed {
		c.stats.Kills++
		c.addMessage(fmt.Sprintf("The %c dies.", dead[id]))
	}
	if c.GameOver() {
		c.addMessage("You die...")
	}

	span.SetAttributes(
		attribute.Int("turn.number", c.stats.Turns),
		attribute.Int("turn.monsters_chased", ai.Chased),
		attribute.Int("turn.monsters_wandered", ai.Wandered),
		attribute.Int("turn.contact_hits", len(hits)),
		attribute.Int("turn.deaths", len(removed)),
	)
	logger.Log.WithFields(logrus.Fields{
		"component": "turn",
		"turn":      c.stats.Turns,
		"chased":    ai.Chased,
		"wandered":  ai.Wandered,
		"hits":      len(hits),
		"deaths":    len(removed),
	}).Debug("turn resolved")
	return nil
}

// condemned maps each monster at or below zero HP to its glyph.
func (c *Controller) condemned() map[ecs.EntityID]rune {
	dead := make(map[ecs.EntityID]rune)
	for _, id := range c.world.Query(component.CMonster) {
		if c.world.Get(id, component.CMonster).(component.Monster).HP <= 0 {
			dead[id] = c.glyph(id)
		}
	}
	return dead
}

// PlayerHP returns the HP of the first player, or 0 if there is none.
func (c *Controller) PlayerHP() int {
	for _, id := range c.world.Query(component.CPlayer) {
		return c.world.Get(id, component.CPlayer).(component.Player).HP
	}
	return 0
}

// GameOver reports whether no player has HP left.
func (c *Controller) GameOver() bool {
	for _, id := range c.world.Query(component.CPlayer) {
		if c.world.Get(id, component.CPlayer).(component.Player).HP > 0 {
			return false
		}
	}
	return true
}

// MonstersLeft counts live monsters.
func (c *Controller) MonstersLeft() int {
	return len(c.world.Query(component.CMonster))
}

func (c *Controller) glyph(id ecs.EntityID) rune {
	if r := c.world.Get(id, component.CRenderable); r != nil {
		return r.(component.Renderable).Glyph
	}
	return '?'
}

func (c *Controller) addMessage(msg string) {
	c.messages = append(c.messages, msg)
	if len(c.messages) > maxMessages {
		c.messages = c.messages[len(c.messages)-maxMessages:]
	}
}
