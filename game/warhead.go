package game

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Unbounded disables the per-cell distribution for structures.
const Unbounded = 0

// ErrInvalidWarhead is returned for warhead definitions that fail validation
var ErrInvalidWarhead = errors.New("invalid warhead")

// Relationship describes how two actors' owners regard each other.
type Relationship uint8

const (
	RelNone    Relationship = 0
	RelAlly    Relationship = 1 << 0
	RelNeutral Relationship = 1 << 1
	RelEnemy   Relationship = 1 << 2

	RelAny = RelAlly | RelNeutral | RelEnemy
)

// Has reports whether r includes every bit of other.
func (r Relationship) Has(other Relationship) bool {
	return r&other == other
}

// ParseRelationships converts names ("ally", "neutral", "enemy") into a mask.
func ParseRelationships(names []string) (Relationship, error) {
	var r Relationship
	for _, n := range names {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "ally":
			r |= RelAlly
		case "neutral":
			r |= RelNeutral
		case "enemy":
			r |= RelEnemy
		default:
			return RelNone, fmt.Errorf("unknown relationship %q", n)
		}
	}
	return r, nil
}

// Color is an RGBA colour used by the debug overlay.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Red is the default overlay colour
var Red = Color{R: 255, A: 255}

// ParseColor reads "RRGGBB" or "RRGGBBAA" hex notation.
func ParseColor(s string) (Color, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "#"))
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	switch len(b) {
	case 3:
		return Color{R: b[0], G: b[1], B: b[2], A: 255}, nil
	case 4:
		return Color{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
	}
	return Color{}, fmt.Errorf("parse color %q: want 6 or 8 hex digits", s)
}

// SpreadWarhead delivers damage to every valid actor whose closest hit
// shape lies within Spread of the impact, falling off linearly from 100% at
// the impact point to PercentAtMax at the edge. Structures can instead be
// damaged cell by cell, capped at MaxAffect cells.
type SpreadWarhead struct {
	// Base damage before any percentage modifiers
	Damage      int         `json:"damage"`
	DamageTypes DamageTypes `json:"damageTypes,omitempty"`
	// Versus maps armor type to a damage percentage
	Versus map[string]int `json:"versus,omitempty"`

	// Zero spread disables area damage entirely
	Spread       WDist `json:"spread"`
	PercentAtMax int   `json:"percentAtMax"`
	// MaxAffect caps contributing structure cells; Unbounded (0) treats
	// structures like any other actor.
	MaxAffect int `json:"maxAffect,omitempty"`

	ValidTargets       []string     `json:"validTargets,omitempty"`
	InvalidTargets     []string     `json:"invalidTargets,omitempty"`
	ValidRelationships Relationship `json:"validRelationships"`

	DebugOverlayColor Color `json:"debugOverlayColor"`
}

// Bounded reports whether structures use per-cell distribution.
func (w *SpreadWarhead) Bounded() bool {
	return w.MaxAffect > 0
}

// Validate reports every authoring problem with the definition at once.
func (w *SpreadWarhead) Validate() error {
	var errs []error
	if w.Spread.Length < 0 {
		errs = append(errs, fmt.Errorf("spread must not be negative, got %d", w.Spread.Length))
	}
	if w.MaxAffect < 0 {
		errs = append(errs, fmt.Errorf("maxAffect must not be negative, got %d", w.MaxAffect))
	}
	if w.PercentAtMax < 0 {
		errs = append(errs, fmt.Errorf("percentAtMax must not be negative, got %d", w.PercentAtMax))
	}
	if w.Damage < 0 {
		errs = append(errs, fmt.Errorf("damage must not be negative, got %d", w.Damage))
	}
	for armor, v := range w.Versus {
		if v < 0 {
			errs = append(errs, fmt.Errorf("versus %q must not be negative, got %d", armor, v))
		}
	}
	if w.ValidRelationships == RelNone {
		errs = append(errs, errors.New("validRelationships must name at least one relationship"))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidWarhead, errors.Join(errs...))
}
