package system

import (
	"github.com/sirupsen/logrus"

	"spriggan/internal/component"
	"spriggan/internal/ecs"
	"spriggan/internal/logger"
)

// Hit records one point of damage landed on an entity.
type Hit struct {
	Attacker ecs.EntityID
	Target   ecs.EntityID
	HPLeft   int
}

// TryAttack makes every player strike every monster within AttackRange for
// one damage. A monster in range of several players is hit once per player.
func TryAttack(w *ecs.World) []Hit {
	var hits []Hit
	for _, pid := range w.Query(component.CPlayer, component.CPosition) {
		ppos := w.Get(pid, component.CPosition).(component.Position)
		for _, mid := range w.Query(component.CMonster, component.CPosition) {
			mpos := w.Get(mid, component.CPosition).(component.Position)
			if !Adjacent(AttackRange, ppos, mpos) {
				continue
			}
			mon := w.Get(mid, component.CMonster).(component.Monster)
			mon.HP--
			w.Add(mid, mon)
			hits = append(hits, Hit{Attacker: pid, Target: mid, HPLeft: mon.HP})

			logger.Log.WithFields(logrus.Fields{
				"component": "combat",
				"player":    pid,
				"monster":   mid,
				"hp":        mon.HP,
			}).Debug("monster hit")
		}
	}
	return hits
}

// ContactDamage costs each player one HP for every monster within
// ContactRange, the monster's own tile included. There is no cap.
func ContactDamage(w *ecs.World) []Hit {
	var hits []Hit
	monsters := w.Query(component.CMonster, component.CPosition)
	for _, pid := range w.Query(component.CPlayer, component.CPosition) {
		ppos := w.Get(pid, component.CPosition).(component.Position)
		player := w.Get(pid, component.CPlayer).(component.Player)
		for _, mid := range monsters {
			mpos := w.Get(mid, component.CPosition).(component.Position)
			if !Adjacent(ContactRange, ppos, mpos) {
				continue
			}
			player.HP--
			hits = append(hits, Hit{Attacker: mid, Target: pid, HPLeft: player.HP})
		}
		w.Add(pid, player)

		if n := len(hits); n > 0 && hits[n-1].Target == pid {
			logger.Log.WithFields(logrus.Fields{
				"component": "combat",
				"player":    pid,
				"hp":        player.HP,
			}).Debug("player hurt")
		}
	}
	return hits
}
