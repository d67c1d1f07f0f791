package server

import (
	"errors"
	"slices"
	"testing"

	"github.com/lab1702/cellspread/game"
)

func newTestWorld() *World {
	return NewWorld(16, 16, testConfig())
}

func TestWorldSpawnAssignsSequentialIDs(t *testing.T) {
	w := newTestWorld()
	a := w.SpawnActor(ActorSpec{Name: "a", HP: 10})
	b := w.SpawnActor(ActorSpec{Name: "b", HP: 10})

	if a != 1 || b != 2 {
		t.Errorf("ids = %d, %d, expected 1, 2", a, b)
	}
	if w.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", w.Len())
	}

	info, err := w.Actor(b)
	if err != nil {
		t.Fatalf("Actor(%d): %v", b, err)
	}
	if info.Name != "b" || info.HP != 10 || info.MaxHP != 10 || info.Dead {
		t.Errorf("unexpected snapshot %+v", info)
	}
}

func TestWorldFindActorsOnCircleOverSelects(t *testing.T) {
	w := newTestWorld()
	near := w.SpawnActor(ActorSpec{Name: "near", Pos: game.WPos{X: 1000, Y: 1000}, Shapes: []game.HitShape{&game.CircleShape{}}})
	// Centre is far outside the query radius but the shape reaches into it
	big := w.SpawnActor(ActorSpec{
		Name:   "big",
		Pos:    game.WPos{X: 9000, Y: 1000},
		Shapes: []game.HitShape{&game.CircleShape{Radius: game.WDist{Length: 7000}}},
	})

	if w.MaxReach() != 7000 {
		t.Fatalf("MaxReach() = %d, expected 7000", w.MaxReach())
	}

	got := w.FindActorsOnCircle(game.WPos{X: 1000, Y: 1000}, game.WDist{Length: 512})
	if !slices.Equal(got, []game.ActorID{near, big}) {
		t.Errorf("FindActorsOnCircle = %v, expected [%d %d]", got, near, big)
	}
}

func TestWorldCapabilities(t *testing.T) {
	w := newTestWorld()
	unit := w.SpawnActor(ActorSpec{
		Name:   "unit",
		Pos:    game.WPos{X: 512, Y: 512},
		Armors: []game.Armor{{Type: "Heavy"}},
		Shapes: []game.HitShape{&game.CircleShape{Radius: game.WDist{Length: 100}}},
	})
	cells := []game.CPos{{X: 3, Y: 3}, {X: 4, Y: 3}}
	structure := w.SpawnActor(ActorSpec{Name: "structure", Footprint: cells})

	if w.Building(unit) != nil {
		t.Errorf("expected no building capability for a unit")
	}
	b := w.Building(structure)
	if b == nil {
		t.Fatalf("expected building capability for a structure")
	}
	if !slices.Equal(b.OccupiedCells(), cells) {
		t.Errorf("OccupiedCells() = %v, expected %v", b.OccupiedCells(), cells)
	}

	// Callers get copies
	w.Armors(unit)[0].Type = "Mutated"
	if w.Armors(unit)[0].Type != "Heavy" {
		t.Errorf("armor slice was shared with the caller")
	}

	if got := w.CenterOfCell(game.CPos{X: 1, Y: 2}); got != (game.WPos{X: 1536, Y: 2560}) {
		t.Errorf("CenterOfCell = %v, expected (1536,2560,0)", got)
	}
	if got := w.CenterPosition(unit); got != (game.WPos{X: 512, Y: 512}) {
		t.Errorf("CenterPosition = %v", got)
	}
	if w.HitShapes(99) != nil || w.Building(99) != nil {
		t.Errorf("unknown actors should expose nothing")
	}
}

func TestWorldRelationship(t *testing.T) {
	w := newTestWorld()
	red1 := w.SpawnActor(ActorSpec{Name: "red1", Team: 1})
	red2 := w.SpawnActor(ActorSpec{Name: "red2", Team: 1})
	blue := w.SpawnActor(ActorSpec{Name: "blue", Team: 2})
	neutral := w.SpawnActor(ActorSpec{Name: "rock", Team: 0})

	tests := []struct {
		name     string
		a, b     game.ActorID
		expected game.Relationship
	}{
		{name: "self", a: red1, b: red1, expected: game.RelAlly},
		{name: "same team", a: red1, b: red2, expected: game.RelAlly},
		{name: "other team", a: red1, b: blue, expected: game.RelEnemy},
		{name: "unowned victim", a: neutral, b: blue, expected: game.RelNeutral},
		{name: "no attacker", a: blue, b: game.NoActor, expected: game.RelNeutral},
		{name: "unknown attacker", a: blue, b: 42, expected: game.RelNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Relationship(tt.a, tt.b); got != tt.expected {
				t.Errorf("Relationship(%d, %d) = %v, expected %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestWorldRemoveDead(t *testing.T) {
	w := newTestWorld()
	a := w.SpawnActor(ActorSpec{Name: "a", HP: 10, Pos: game.WPos{X: 100, Y: 100}})
	b := w.SpawnActor(ActorSpec{Name: "b", HP: 10, Pos: game.WPos{X: 200, Y: 100}})

	w.InflictDamage(a, b, game.Damage{Value: 50})
	removed := w.RemoveDead()

	if !slices.Equal(removed, []game.ActorID{a}) {
		t.Fatalf("RemoveDead() = %v, expected [%d]", removed, a)
	}
	if _, err := w.Actor(a); !errors.Is(err, ErrUnknownActor) {
		t.Errorf("expected ErrUnknownActor for removed actor, got %v", err)
	}
	if got := w.FindActorsOnCircle(game.WPos{X: 100, Y: 100}, game.WDist{Length: 1024}); !slices.Equal(got, []game.ActorID{b}) {
		t.Errorf("grid still returns removed actor: %v", got)
	}
	if actors := w.Actors(); len(actors) != 1 || actors[0].ID != b {
		t.Errorf("Actors() = %+v, expected only %d", actors, b)
	}
	if w.RemoveDead() != nil {
		t.Errorf("second RemoveDead should remove nothing")
	}
}

func TestWorldActorsOrdered(t *testing.T) {
	w := newTestWorld()
	for _, name := range []string{"c", "a", "b", "d"} {
		w.SpawnActor(ActorSpec{Name: name, HP: 1})
	}

	actors := w.Actors()
	if len(actors) != 4 {
		t.Fatalf("expected 4 actors, got %d", len(actors))
	}
	for i, a := range actors {
		if a.ID != game.ActorID(i+1) {
			t.Errorf("actors[%d].ID = %d, expected %d", i, a.ID, i+1)
		}
	}
}
