package component

import "spriggan/internal/ecs"

const CMonster ecs.ComponentType = 4

// Monster marks a hostile entity. It is removed at the end of the turn once HP <= 0.
type Monster struct {
	HP int
}

func (Monster) Type() ecs.ComponentType { return CMonster }
