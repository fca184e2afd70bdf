package system

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"spriggan/internal/component"
	"spriggan/internal/ecs"
	"spriggan/internal/logger"
)

// RemoveDead destroys every monster whose HP has reached zero and returns
// their IDs. Dead entities are collected first and destroyed after the scan.
func RemoveDead(w *ecs.World) ([]ecs.EntityID, error) {
	var dead []ecs.EntityID
	for _, id := range w.Query(component.CMonster) {
		if w.Get(id, component.CMonster).(component.Monster).HP <= 0 {
			dead = append(dead, id)
		}
	}
	for _, id := range dead {
		if err := w.DestroyEntity(id); err != nil {
			return nil, fmt.Errorf("remove dead monster: %w", err)
		}
		logger.Log.WithFields(logrus.Fields{
			"component": "cleanup",
			"monster":   id,
		}).Debug("monster removed")
	}
	return dead, nil
}
