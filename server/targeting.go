package server

import (
	"slices"

	"github.com/lab1702/cellspread/game"
)

// Targeting decides which actors a warhead may affect in a World.
type Targeting struct {
	World   *World
	Warhead *game.SpreadWarhead
}

// IsValidAgainst implements game.TargetValidator. Dead victims are never
// valid; the relationship from attacker to victim must be allowed and the
// victim's target types must match ValidTargets and avoid InvalidTargets.
func (t Targeting) IsValidAgainst(victim, attacker game.ActorID) bool {
	if t.World.IsDead(victim) {
		return false
	}
	if !t.Warhead.ValidRelationships.Has(t.World.Relationship(victim, attacker)) {
		return false
	}
	return ValidTargetTypes(t.Warhead, t.World.TargetTypesOf(victim))
}

// ValidTargetTypes reports whether an actor presenting types can be
// targeted. An empty ValidTargets list accepts every actor.
func ValidTargetTypes(w *game.SpreadWarhead, types []string) bool {
	if len(w.ValidTargets) > 0 && !overlaps(w.ValidTargets, types) {
		return false
	}
	return !overlaps(w.InvalidTargets, types)
}

func overlaps(a, b []string) bool {
	for _, s := range a {
		if slices.Contains(b, s) {
			return true
		}
	}
	return false
}
