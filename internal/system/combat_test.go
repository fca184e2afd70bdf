package system

import (
	"slices"
	"testing"

	"spriggan/internal/ecs"
)

func TestTryAttackRange(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(w, 5, 5, 10)
	near := addMonster(w, 7, 7, 2)
	far := addMonster(w, 8, 5, 2)

	hits := TryAttack(w)
	if len(hits) != 1 || hits[0].Target != near || hits[0].Attacker != player {
		t.Fatalf("hits = %+v, want one hit on %v", hits, near)
	}
	if monsterHP(w, near) != 1 {
		t.Errorf("near monster HP = %d, want 1", monsterHP(w, near))
	}
	if monsterHP(w, far) != 2 {
		t.Errorf("far monster HP = %d, want 2", monsterHP(w, far))
	}
}

func TestTryAttackOncePerPlayer(t *testing.T) {
	w := ecs.NewWorld()
	addPlayer(w, 5, 5, 10)
	addPlayer(w, 6, 5, 10)
	mon := addMonster(w, 6, 6, 3)

	hits := TryAttack(w)
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2", len(hits))
	}
	if monsterHP(w, mon) != 1 {
		t.Fatalf("monster HP = %d, want 1", monsterHP(w, mon))
	}
}

func TestContactDamageStacks(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(w, 5, 5, 10)
	addMonster(w, 5, 5, 2) // same tile counts
	addMonster(w, 4, 6, 2)
	addMonster(w, 6, 4, 2)
	addMonster(w, 7, 5, 2) // out of reach

	hits := ContactDamage(w)
	if len(hits) != 3 {
		t.Fatalf("got %d hits, want 3", len(hits))
	}
	if hp := playerHP(w, player); hp != 7 {
		t.Fatalf("player HP = %d, want 7", hp)
	}
	if hits[len(hits)-1].HPLeft != 7 {
		t.Fatalf("last hit HPLeft = %d, want 7", hits[len(hits)-1].HPLeft)
	}
}

func TestCombatScenario(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(w, 5, 5, 10)
	mon := addMonster(w, 6, 6, 2)

	TryAttack(w)
	if hp := monsterHP(w, mon); hp != 1 {
		t.Fatalf("after first attack monster HP = %d, want 1", hp)
	}

	ContactDamage(w)
	if hp := playerHP(w, player); hp != 9 {
		t.Fatalf("after contact player HP = %d, want 9", hp)
	}

	TryAttack(w)
	if hp := monsterHP(w, mon); hp != 0 {
		t.Fatalf("after second attack monster HP = %d, want 0", hp)
	}

	dead, err := RemoveDead(w)
	if err != nil {
		t.Fatal(err)
	}
	if len(dead) != 1 || dead[0] != mon || w.Alive(mon) {
		t.Fatalf("dead = %v, monster alive = %v", dead, w.Alive(mon))
	}
}

func TestRemoveDeadRemovesExactlyDeadMonsters(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(w, 0, 0, 0)
	var ids []ecs.EntityID
	for _, hp := range []int{0, -1, 1, 2} {
		ids = append(ids, addMonster(w, 3, 3, hp))
	}

	dead, err := RemoveDead(w)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(dead, ids[:2]) {
		t.Fatalf("dead = %v, want %v", dead, ids[:2])
	}
	for _, id := range ids[:2] {
		if w.Alive(id) {
			t.Errorf("monster %v should be gone", id)
		}
	}
	for _, id := range ids[2:] {
		if !w.Alive(id) {
			t.Errorf("monster %v should still be alive", id)
		}
	}
	if !w.Alive(player) {
		t.Error("the sweep must not remove players, even at 0 HP")
	}
}
