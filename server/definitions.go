package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/lab1702/cellspread/game"
)

// ErrUnknownWarhead is returned when a warhead name is not defined
var ErrUnknownWarhead = errors.New("unknown warhead")

// WarheadDef is the authored form of a spread warhead.
type WarheadDef struct {
	Damage             int            `json:"damage" jsonschema:"title=Damage,description=Base damage before percentage modifiers,minimum=0"`
	DamageTypes        []string       `json:"damageTypes,omitempty" jsonschema:"description=Damage type tags forwarded with every damage event"`
	Versus             map[string]int `json:"versus,omitempty" jsonschema:"description=Damage percentage per armor type"`
	Spread             string         `json:"spread" jsonschema:"title=Spread,description=Radius of effect in world units or cell notation such as 1c512,pattern=^[0-9]+(c[0-9]*)?$,required"`
	PercentAtMax       int            `json:"percentAtMax" jsonschema:"description=Damage percentage delivered at the spread edge,minimum=0"`
	MaxAffect          int            `json:"maxAffect,omitempty" jsonschema:"description=Maximum number of structure cells damaged. Zero disables per-cell damage,minimum=0"`
	ValidTargets       []string       `json:"validTargets,omitempty" jsonschema:"description=Target types the warhead can affect. Empty accepts all"`
	InvalidTargets     []string       `json:"invalidTargets,omitempty" jsonschema:"description=Target types the warhead never affects"`
	ValidRelationships []string       `json:"validRelationships,omitempty" jsonschema:"description=Relationships to the attacker that may be damaged. Empty accepts all,enum=ally,enum=neutral,enum=enemy"`
	DebugOverlayColor  string         `json:"debugOverlayColor,omitempty" jsonschema:"description=Overlay colour as RRGGBB or RRGGBBAA hex,pattern=^#?([0-9a-fA-F]{6}|[0-9a-fA-F]{8})$"`
}

// FileDefinitions is the top-level layout of a definitions file.
type FileDefinitions struct {
	Warheads map[string]WarheadDef `json:"warheads" jsonschema:"description=Warhead definitions keyed by name,required"`
}

// Definitions maps warhead names to validated warheads.
type Definitions map[string]*game.SpreadWarhead

// Build converts the authored definition into a validated warhead.
func (d WarheadDef) Build() (*game.SpreadWarhead, error) {
	spread, err := game.ParseWDist(d.Spread)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", game.ErrInvalidWarhead, err)
	}

	rel := game.RelAny
	if len(d.ValidRelationships) > 0 {
		rel, err = game.ParseRelationships(d.ValidRelationships)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", game.ErrInvalidWarhead, err)
		}
	}

	color := game.Red
	if d.DebugOverlayColor != "" {
		color, err = game.ParseColor(d.DebugOverlayColor)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", game.ErrInvalidWarhead, err)
		}
	}

	w := &game.SpreadWarhead{
		Damage:             d.Damage,
		DamageTypes:        game.NewDamageTypes(d.DamageTypes...),
		Versus:             maps.Clone(d.Versus),
		Spread:             spread,
		PercentAtMax:       d.PercentAtMax,
		MaxAffect:          d.MaxAffect,
		ValidTargets:       slices.Clone(d.ValidTargets),
		InvalidTargets:     slices.Clone(d.InvalidTargets),
		ValidRelationships: rel,
		DebugOverlayColor:  color,
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// ParseDefinitions decodes and validates a definitions document. Every
// invalid warhead is reported.
func ParseDefinitions(data []byte) (Definitions, error) {
	var file FileDefinitions
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode definitions: %w", err)
	}

	names := make([]string, 0, len(file.Warheads))
	for name := range file.Warheads {
		names = append(names, name)
	}
	slices.Sort(names)

	defs := make(Definitions, len(names))
	var errs []error
	for _, name := range names {
		w, err := file.Warheads[name].Build()
		if err != nil {
			errs = append(errs, fmt.Errorf("warhead %q: %w", name, err))
			continue
		}
		defs[name] = w
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return defs, nil
}

// LoadDefinitions reads a definitions file from disk.
func LoadDefinitions(path string) (Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definitions: %w", err)
	}
	defs, err := ParseDefinitions(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// Lookup returns the named warhead.
func (d Definitions) Lookup(name string) (*game.SpreadWarhead, error) {
	w, ok := d[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownWarhead)
	}
	return w, nil
}

// Names returns the defined warhead names in sorted order.
func (d Definitions) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
