package game

import (
	"slices"
	"strings"
)

// DamageTypes is a sorted, duplicate-free set of damage type tags.
type DamageTypes []string

// NewDamageTypes builds a normalized set from the given tags. Empty tags
// are dropped.
func NewDamageTypes(tags ...string) DamageTypes {
	out := make(DamageTypes, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Contains reports whether tag is part of the set.
func (d DamageTypes) Contains(tag string) bool {
	_, ok := slices.BinarySearch(d, tag)
	return ok
}

// Overlaps reports whether any tag in other is part of the set.
func (d DamageTypes) Overlaps(other []string) bool {
	for _, t := range other {
		if d.Contains(t) {
			return true
		}
	}
	return false
}

// Damage is a single damage contribution handed to a DamageSink.
type Damage struct {
	Value int         `json:"value"`
	Types DamageTypes `json:"types,omitempty"`
}

// Health tracks hit points of a damageable actor.
type Health struct {
	HP    int  `json:"hp"`
	MaxHP int  `json:"maxHp"`
	Dead  bool `json:"dead"`
}

// ApplyDamage removes damage from h, never dropping below zero.
// Returns the total amount of damage actually applied.
// This ensures consistent damage handling across all warhead types.
func ApplyDamage(h *Health, damage int) int {
	if h == nil || h.Dead || damage <= 0 {
		return 0
	}

	applied := Min(damage, h.HP)
	h.HP -= applied
	if h.HP <= 0 {
		h.HP = 0
		h.Dead = true
	}
	return applied
}
