package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lab1702/cellspread/game"
)

// Shape kinds accepted in scenario files
const (
	ShapeCircle    = "circle"
	ShapeRectangle = "rectangle"
	ShapeCapsule   = "capsule"
)

// MapSize is the playable area in cells.
type MapSize struct {
	Cols int `json:"cols"`
	Rows int `json:"rows"`
}

// ShapeDef is the authored form of a hit shape.
type ShapeDef struct {
	Type                 string    `json:"type"`
	Radius               string    `json:"radius,omitempty"`
	TopLeft              game.WVec `json:"topLeft"`
	BottomRight          game.WVec `json:"bottomRight"`
	PointA               game.WVec `json:"pointA"`
	PointB               game.WVec `json:"pointB"`
	VerticalTopOffset    int       `json:"verticalTopOffset,omitempty"`
	VerticalBottomOffset int       `json:"verticalBottomOffset,omitempty"`
	ArmorTypes           []string  `json:"armorTypes,omitempty"`
	Disabled             bool      `json:"disabled,omitempty"`
}

// ActorDef is the authored form of an actor. Either Pos or Cell places it;
// a footprint is laid out from Cell (or the cell containing Pos) with one
// string per row, 'x' marking an occupied cell.
type ActorDef struct {
	Name        string       `json:"name"`
	Team        int          `json:"team"`
	Pos         *game.WPos   `json:"pos,omitempty"`
	Cell        *game.CPos   `json:"cell,omitempty"`
	HP          int          `json:"hp"`
	Shapes      []ShapeDef   `json:"shapes"`
	Armors      []game.Armor `json:"armors,omitempty"`
	TargetTypes []string     `json:"targetTypes,omitempty"`
	Footprint   []string     `json:"footprint,omitempty"`
}

// ImpactDef schedules a detonation. The position comes from Pos, Cell or
// the current position of the Target actor, in that order.
type ImpactDef struct {
	Tick            int        `json:"tick"`
	Warhead         string     `json:"warhead"`
	Pos             *game.WPos `json:"pos,omitempty"`
	Cell            *game.CPos `json:"cell,omitempty"`
	Target          string     `json:"target,omitempty"`
	FiredBy         string     `json:"firedBy,omitempty"`
	DamageModifiers []int      `json:"damageModifiers,omitempty"`
}

// Scenario is a scripted sandbox run.
type Scenario struct {
	Name    string      `json:"name"`
	Map     MapSize     `json:"map"`
	Ticks   int         `json:"ticks"`
	Actors  []ActorDef  `json:"actors"`
	Impacts []ImpactDef `json:"impacts"`
}

// ParseScenario decodes a scenario document.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	return &sc, nil
}

// LoadScenario reads a scenario file from disk.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

func (sc *Scenario) validate() error {
	var errs []error
	if sc.Map.Cols <= 0 || sc.Map.Rows <= 0 {
		errs = append(errs, fmt.Errorf("map size must be positive, got %dx%d", sc.Map.Cols, sc.Map.Rows))
	}

	names := make(map[string]bool, len(sc.Actors))
	for i, a := range sc.Actors {
		if a.Name == "" {
			errs = append(errs, fmt.Errorf("actor %d: missing name", i))
		} else if names[a.Name] {
			errs = append(errs, fmt.Errorf("actor %q: duplicate name", a.Name))
		}
		names[a.Name] = true
		if a.Pos == nil && a.Cell == nil {
			errs = append(errs, fmt.Errorf("actor %q: needs pos or cell", a.Name))
		}
		for j, s := range a.Shapes {
			if _, err := s.Build(); err != nil {
				errs = append(errs, fmt.Errorf("actor %q shape %d: %w", a.Name, j, err))
			}
		}
	}

	for i, imp := range sc.Impacts {
		if imp.Tick < 0 {
			errs = append(errs, fmt.Errorf("impact %d: negative tick %d", i, imp.Tick))
		}
		if imp.Pos == nil && imp.Cell == nil && imp.Target == "" {
			errs = append(errs, fmt.Errorf("impact %d: needs pos, cell or target", i))
		}
		if imp.Target != "" && !names[imp.Target] {
			errs = append(errs, fmt.Errorf("impact %d: target %q: %w", i, imp.Target, ErrUnknownActor))
		}
		if imp.FiredBy != "" && !names[imp.FiredBy] {
			errs = append(errs, fmt.Errorf("impact %d: firedBy %q: %w", i, imp.FiredBy, ErrUnknownActor))
		}
	}
	return errors.Join(errs...)
}

// Build converts the authored shape into a game.HitShape.
func (s ShapeDef) Build() (game.HitShape, error) {
	common := game.ShapeCommon{
		Armor:                s.ArmorTypes,
		Disabled:             s.Disabled,
		VerticalTopOffset:    s.VerticalTopOffset,
		VerticalBottomOffset: s.VerticalBottomOffset,
	}

	radius := game.ZeroDist
	if s.Radius != "" {
		r, err := game.ParseWDist(s.Radius)
		if err != nil {
			return nil, err
		}
		radius = r
	}

	switch strings.ToLower(s.Type) {
	case ShapeCircle, "":
		return &game.CircleShape{ShapeCommon: common, Radius: radius}, nil
	case ShapeRectangle:
		if s.TopLeft.X > s.BottomRight.X || s.TopLeft.Y > s.BottomRight.Y {
			return nil, fmt.Errorf("rectangle corners out of order: %v %v", s.TopLeft, s.BottomRight)
		}
		return &game.RectangleShape{ShapeCommon: common, TopLeft: s.TopLeft, BottomRight: s.BottomRight}, nil
	case ShapeCapsule:
		return &game.CapsuleShape{ShapeCommon: common, PointA: s.PointA, PointB: s.PointB, Radius: radius}, nil
	}
	return nil, fmt.Errorf("unknown shape type %q", s.Type)
}

// Spec resolves the authored actor into an ActorSpec.
func (a ActorDef) Spec() (ActorSpec, error) {
	spec := ActorSpec{
		Name:        a.Name,
		Team:        a.Team,
		Armors:      a.Armors,
		TargetTypes: a.TargetTypes,
		HP:          a.HP,
	}

	switch {
	case a.Pos != nil:
		spec.Pos = *a.Pos
	case a.Cell != nil:
		spec.Pos = a.Cell.Center()
	}
	origin := game.CellContaining(spec.Pos)
	if a.Cell != nil {
		origin = *a.Cell
	}

	for _, sd := range a.Shapes {
		s, err := sd.Build()
		if err != nil {
			return ActorSpec{}, fmt.Errorf("actor %q: %w", a.Name, err)
		}
		spec.Shapes = append(spec.Shapes, s)
	}

	spec.Footprint = ParseFootprint(origin, a.Footprint)
	return spec, nil
}

// ParseFootprint lays out rows of a footprint from origin. 'x' or 'X'
// marks an occupied cell; any other character is empty.
func ParseFootprint(origin game.CPos, rows []string) []game.CPos {
	var cells []game.CPos
	for y, row := range rows {
		for x, ch := range []rune(row) {
			if ch == 'x' || ch == 'X' {
				cells = append(cells, game.CPos{X: origin.X + x, Y: origin.Y + y})
			}
		}
	}
	return cells
}
