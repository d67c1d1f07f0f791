package server

import (
	"testing"

	"github.com/lab1702/cellspread/game"
)

func TestTargetingIsValidAgainst(t *testing.T) {
	w := newTestWorld()
	attacker := w.SpawnActor(ActorSpec{Name: "attacker", Team: 1, HP: 10})
	friend := w.SpawnActor(ActorSpec{Name: "friend", Team: 1, HP: 10, TargetTypes: []string{"Ground"}})
	foe := w.SpawnActor(ActorSpec{Name: "foe", Team: 2, HP: 10, TargetTypes: []string{"Ground", "Vehicle"}})
	plane := w.SpawnActor(ActorSpec{Name: "plane", Team: 2, HP: 10, TargetTypes: []string{"Air"}})
	corpse := w.SpawnActor(ActorSpec{Name: "corpse", Team: 2, HP: 0, TargetTypes: []string{"Ground"}})

	tests := []struct {
		name     string
		warhead  game.SpreadWarhead
		victim   game.ActorID
		expected bool
	}{
		{name: "any relationship hits friends", warhead: game.SpreadWarhead{ValidRelationships: game.RelAny}, victim: friend, expected: true},
		{name: "enemy only spares friends", warhead: game.SpreadWarhead{ValidRelationships: game.RelEnemy}, victim: friend, expected: false},
		{name: "enemy only hits foes", warhead: game.SpreadWarhead{ValidRelationships: game.RelEnemy}, victim: foe, expected: true},
		{name: "self is an ally", warhead: game.SpreadWarhead{ValidRelationships: game.RelEnemy}, victim: attacker, expected: false},
		{
			name:     "valid targets must match",
			warhead:  game.SpreadWarhead{ValidRelationships: game.RelAny, ValidTargets: []string{"Ground"}},
			victim:   plane,
			expected: false,
		},
		{
			name:     "invalid targets exclude",
			warhead:  game.SpreadWarhead{ValidRelationships: game.RelAny, InvalidTargets: []string{"Vehicle"}},
			victim:   foe,
			expected: false,
		},
		{
			name:     "valid targets with a match",
			warhead:  game.SpreadWarhead{ValidRelationships: game.RelAny, ValidTargets: []string{"Air", "Water"}},
			victim:   plane,
			expected: true,
		},
		{name: "dead actors are never valid", warhead: game.SpreadWarhead{ValidRelationships: game.RelAny}, victim: corpse, expected: false},
		{name: "unknown actors are never valid", warhead: game.SpreadWarhead{ValidRelationships: game.RelAny}, victim: 99, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Targeting{World: w, Warhead: &tt.warhead}
			if got := v.IsValidAgainst(tt.victim, attacker); got != tt.expected {
				t.Errorf("IsValidAgainst(%d, %d) = %v, expected %v", tt.victim, attacker, got, tt.expected)
			}
		})
	}
}

func TestValidTargetTypesWithoutTypes(t *testing.T) {
	w := &game.SpreadWarhead{ValidTargets: []string{"Ground"}}
	if ValidTargetTypes(w, nil) {
		t.Errorf("actor without target types should not match a non-empty ValidTargets")
	}
	if !ValidTargetTypes(&game.SpreadWarhead{}, nil) {
		t.Errorf("empty ValidTargets should accept any actor")
	}
}
