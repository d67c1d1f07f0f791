package server

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lab1702/cellspread/game"
	"github.com/lab1702/cellspread/logger"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// ErrUnknownActor is returned when an actor id does not name a live actor
var ErrUnknownActor = errors.New("unknown actor")

// IdentityData names an actor and ties its entity back to its ActorID.
type IdentityData struct {
	ID   game.ActorID
	Name string
}

// OwnerData is the team an actor belongs to. Team 0 is unowned.
type OwnerData struct {
	Team int
}

// TargetTypesData lists the target types an actor presents to warheads.
type TargetTypesData struct {
	Types []string
}

// HitShapesData holds the collision shapes of an actor.
type HitShapesData struct {
	Shapes []game.HitShape
}

// ArmorsData holds the armor layers of an actor.
type ArmorsData struct {
	Armors []game.Armor
}

// FootprintData lists the cells occupied by a structure.
type FootprintData struct {
	Cells []game.CPos
}

// OccupiedCells implements game.Building.
func (f *FootprintData) OccupiedCells() []game.CPos {
	return slices.Clone(f.Cells)
}

var (
	Identity    = donburi.NewComponentType[IdentityData]()
	Position    = donburi.NewComponentType[game.WPos]()
	Owner       = donburi.NewComponentType[OwnerData]()
	TargetTypes = donburi.NewComponentType[TargetTypesData]()
	HitShapes   = donburi.NewComponentType[HitShapesData]()
	Armors      = donburi.NewComponentType[ArmorsData]()
	Footprint   = donburi.NewComponentType[FootprintData]()
	Health      = donburi.NewComponentType[game.Health]()
)

var actorQuery = donburi.NewQuery(filter.Contains(Identity, Position, Health))

// ActorSpec describes an actor to spawn.
type ActorSpec struct {
	Name        string
	Team        int
	Pos         game.WPos
	Shapes      []game.HitShape
	Armors      []game.Armor
	TargetTypes []string
	// Footprint marks the actor as a structure occupying these cells
	Footprint []game.CPos
	HP        int
}

// ActorInfo is a read-only snapshot of an actor.
type ActorInfo struct {
	ID          game.ActorID `json:"id"`
	Name        string       `json:"name"`
	Team        int          `json:"team"`
	Pos         game.WPos    `json:"pos"`
	HP          int          `json:"hp"`
	MaxHP       int          `json:"maxHp"`
	Dead        bool         `json:"dead"`
	TargetTypes []string     `json:"targetTypes,omitempty"`
	Cells       []game.CPos  `json:"cells,omitempty"`
}

// DamageEvent records one call to InflictDamage.
type DamageEvent struct {
	Tick     int              `json:"tick" msgpack:"tick"`
	Victim   game.ActorID     `json:"victim" msgpack:"victim"`
	Attacker game.ActorID     `json:"attacker" msgpack:"attacker"`
	Amount   int              `json:"amount" msgpack:"amount"`
	Dealt    int              `json:"dealt" msgpack:"dealt"`
	Types    game.DamageTypes `json:"types,omitempty" msgpack:"types,omitempty"`
	Killed   bool             `json:"killed,omitempty" msgpack:"killed,omitempty"`
}

// World is the sandbox actor store. It implements game.World and
// game.DamageSink on top of a donburi ECS world. It is not safe for
// concurrent use; the owner serializes access.
type World struct {
	ecs      donburi.World
	entities map[game.ActorID]donburi.Entity
	nextID   game.ActorID
	grid     *SpatialGrid

	// largest outer radius of any spawned actor, added to queries so the
	// grid never misses a shape that reaches into the circle
	maxReach int

	width, height int
	tick          int
	events        []DamageEvent
}

// NewWorld creates an empty world spanning the given number of cells.
func NewWorld(cols, rows int, cfg Config) *World {
	width, height := cols*game.CellSize, rows*game.CellSize
	return &World{
		ecs:      donburi.NewWorld(),
		entities: make(map[game.ActorID]donburi.Entity),
		grid:     NewSpatialGrid(width, height, cfg.GridCellSize),
		width:    width,
		height:   height,
	}
}

// SpawnActor adds an actor and returns its id.
func (w *World) SpawnActor(spec ActorSpec) game.ActorID {
	w.nextID++
	id := w.nextID

	components := []donburi.IComponentType{Identity, Position, Owner, TargetTypes, HitShapes, Armors, Health}
	if len(spec.Footprint) > 0 {
		components = append(components, Footprint)
	}
	entity := w.ecs.Create(components...)
	entry := w.ecs.Entry(entity)

	Identity.SetValue(entry, IdentityData{ID: id, Name: spec.Name})
	Position.SetValue(entry, spec.Pos)
	Owner.SetValue(entry, OwnerData{Team: spec.Team})
	TargetTypes.SetValue(entry, TargetTypesData{Types: slices.Clone(spec.TargetTypes)})
	HitShapes.SetValue(entry, HitShapesData{Shapes: slices.Clone(spec.Shapes)})
	Armors.SetValue(entry, ArmorsData{Armors: slices.Clone(spec.Armors)})
	Health.SetValue(entry, game.Health{HP: spec.HP, MaxHP: spec.HP, Dead: spec.HP <= 0})
	if len(spec.Footprint) > 0 {
		Footprint.SetValue(entry, FootprintData{Cells: slices.Clone(spec.Footprint)})
	}

	w.entities[id] = entity
	w.grid.Insert(id, spec.Pos)
	for _, s := range spec.Shapes {
		w.maxReach = max(w.maxReach, s.OuterRadius().Length)
	}

	logger.Component("world").WithFields(logrus.Fields{
		"id":   id,
		"name": spec.Name,
		"team": spec.Team,
		"pos":  spec.Pos.String(),
	}).Debug("actor spawned")
	return id
}

func (w *World) entry(id game.ActorID) *donburi.Entry {
	e, ok := w.entities[id]
	if !ok || !w.ecs.Valid(e) {
		return nil
	}
	return w.ecs.Entry(e)
}

// SetTick stamps subsequent damage events.
func (w *World) SetTick(tick int) {
	w.tick = tick
}

// FindActorsOnCircle implements game.World. It over-selects from the
// spatial grid and returns ids in ascending order.
func (w *World) FindActorsOnCircle(origin game.WPos, r game.WDist) []game.ActorID {
	nearby := w.grid.GetNearby(origin, r.Length+w.maxReach)
	slices.Sort(nearby)
	return slices.Compact(nearby)
}

// CenterPosition implements game.World.
func (w *World) CenterPosition(id game.ActorID) game.WPos {
	if entry := w.entry(id); entry != nil {
		return *Position.Get(entry)
	}
	return game.WPos{}
}

// HitShapes implements game.World.
func (w *World) HitShapes(id game.ActorID) []game.HitShape {
	if entry := w.entry(id); entry != nil {
		return slices.Clone(HitShapes.Get(entry).Shapes)
	}
	return nil
}

// Armors implements game.World.
func (w *World) Armors(id game.ActorID) []game.Armor {
	if entry := w.entry(id); entry != nil {
		return slices.Clone(Armors.Get(entry).Armors)
	}
	return nil
}

// Building implements game.World. Returns nil for non-structures.
func (w *World) Building(id game.ActorID) game.Building {
	entry := w.entry(id)
	if entry == nil || !entry.HasComponent(Footprint) {
		return nil
	}
	return Footprint.Get(entry)
}

// CenterOfCell implements game.World.
func (w *World) CenterOfCell(c game.CPos) game.WPos {
	return c.Center()
}

// Team returns the owning team of an actor.
func (w *World) Team(id game.ActorID) (int, error) {
	entry := w.entry(id)
	if entry == nil {
		return 0, fmt.Errorf("team of %d: %w", id, ErrUnknownActor)
	}
	return Owner.Get(entry).Team, nil
}

// TargetTypesOf returns the target types an actor presents.
func (w *World) TargetTypesOf(id game.ActorID) []string {
	if entry := w.entry(id); entry != nil {
		return TargetTypes.Get(entry).Types
	}
	return nil
}

// Relationship reports how the owner of b regards the owner of a.
// Actors are allied with themselves and with their own team; unowned or
// unknown actors are neutral to everyone.
func (w *World) Relationship(a, b game.ActorID) game.Relationship {
	if a == b {
		return game.RelAlly
	}
	ta, errA := w.Team(a)
	tb, errB := w.Team(b)
	switch {
	case errA != nil || errB != nil || ta == 0 || tb == 0:
		return game.RelNeutral
	case ta == tb:
		return game.RelAlly
	default:
		return game.RelEnemy
	}
}

// IsDead reports whether the actor has no health left. Unknown actors
// count as dead.
func (w *World) IsDead(id game.ActorID) bool {
	entry := w.entry(id)
	return entry == nil || Health.Get(entry).Dead
}

// InflictDamage implements game.DamageSink.
func (w *World) InflictDamage(victim, attacker game.ActorID, d game.Damage) {
	entry := w.entry(victim)
	if entry == nil {
		return
	}

	health := Health.Get(entry)
	wasDead := health.Dead
	dealt := game.ApplyDamage(health, d.Value)

	ev := DamageEvent{
		Tick:     w.tick,
		Victim:   victim,
		Attacker: attacker,
		Amount:   d.Value,
		Dealt:    dealt,
		Types:    d.Types,
		Killed:   !wasDead && health.Dead,
	}
	w.events = append(w.events, ev)

	if ev.Killed {
		logger.Component("world").WithFields(logrus.Fields{
			"victim":   victim,
			"attacker": attacker,
			"tick":     w.tick,
		}).Info("actor destroyed")
	}
}

// DrainEvents returns and clears the damage events recorded so far.
func (w *World) DrainEvents() []DamageEvent {
	events := w.events
	w.events = nil
	return events
}

// Actor returns a snapshot of one actor.
func (w *World) Actor(id game.ActorID) (ActorInfo, error) {
	entry := w.entry(id)
	if entry == nil {
		return ActorInfo{}, fmt.Errorf("actor %d: %w", id, ErrUnknownActor)
	}
	return snapshot(entry), nil
}

// Actors returns snapshots of every actor ordered by id.
func (w *World) Actors() []ActorInfo {
	var infos []ActorInfo
	actorQuery.Each(w.ecs, func(entry *donburi.Entry) {
		infos = append(infos, snapshot(entry))
	})
	slices.SortFunc(infos, func(a, b ActorInfo) int {
		return cmpActorID(a.ID, b.ID)
	})
	return infos
}

func cmpActorID(a, b game.ActorID) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func snapshot(entry *donburi.Entry) ActorInfo {
	id := Identity.Get(entry)
	h := Health.Get(entry)
	info := ActorInfo{
		ID:    id.ID,
		Name:  id.Name,
		Team:  Owner.Get(entry).Team,
		Pos:   *Position.Get(entry),
		HP:    h.HP,
		MaxHP: h.MaxHP,
		Dead:  h.Dead,
	}
	if entry.HasComponent(TargetTypes) {
		info.TargetTypes = slices.Clone(TargetTypes.Get(entry).Types)
	}
	if entry.HasComponent(Footprint) {
		info.Cells = Footprint.Get(entry).OccupiedCells()
	}
	return info
}

// RemoveDead deletes destroyed actors and re-indexes the grid.
// Returns the removed ids in ascending order.
func (w *World) RemoveDead() []game.ActorID {
	var removed []game.ActorID
	for id, e := range w.entities {
		entry := w.ecs.Entry(e)
		if Health.Get(entry).Dead {
			removed = append(removed, id)
		}
	}
	if len(removed) == 0 {
		return nil
	}
	slices.Sort(removed)

	for _, id := range removed {
		w.ecs.Remove(w.entities[id])
		delete(w.entities, id)
	}

	w.grid.Clear()
	for id, e := range w.entities {
		w.grid.Insert(id, *Position.Get(w.ecs.Entry(e)))
	}
	return removed
}

// Len returns the number of actors in the world.
func (w *World) Len() int {
	return len(w.entities)
}
