package server

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/google/uuid"
	"github.com/lab1702/cellspread/game"
	"github.com/lab1702/cellspread/logger"
	"github.com/sirupsen/logrus"
)

// recordNamespace seeds the name-based ids of impact records so that
// re-running a scenario reproduces them.
var recordNamespace = uuid.MustParse("6f1c9a52-3d0e-4b8e-9a57-2c4b1e0d7f33")

// ImpactRecord is the outcome of one detonation.
type ImpactRecord struct {
	ID      uuid.UUID    `json:"id" msgpack:"id"`
	Tick    int          `json:"tick" msgpack:"tick"`
	Warhead string       `json:"warhead" msgpack:"warhead"`
	Pos     game.WPos    `json:"pos" msgpack:"pos"`
	FiredBy game.ActorID `json:"firedBy" msgpack:"firedBy"`
	Hits    []game.Hit   `json:"hits,omitempty" msgpack:"hits"`
}

// FireRequest asks for a detonation on the next tick.
type FireRequest struct {
	Warhead         string       `json:"warhead"`
	Pos             game.WPos    `json:"pos"`
	FiredBy         game.ActorID `json:"firedBy"`
	DamageModifiers []int        `json:"damageModifiers,omitempty"`
}

type pendingImpact struct {
	seq       int
	tick      int
	name      string
	warhead   *game.SpreadWarhead
	pos       *game.WPos
	target    game.ActorID
	firedBy   game.ActorID
	modifiers []int
}

// Simulation steps a world through a scenario, firing scheduled impacts.
// It is not safe for concurrent use.
type Simulation struct {
	name    string
	cfg     Config
	defs    Definitions
	world   *World
	overlay game.ImpactOverlay
	actors  map[string]game.ActorID

	pending []pendingImpact
	nextSeq int
	tick    int
	endTick int
	records []ImpactRecord
	events  []DamageEvent
}

// NewSimulation spawns the scenario's actors and schedules its impacts.
func NewSimulation(sc *Scenario, defs Definitions, cfg Config) (*Simulation, error) {
	s := &Simulation{
		name:    sc.Name,
		cfg:     cfg,
		defs:    defs,
		world:   NewWorld(sc.Map.Cols, sc.Map.Rows, cfg),
		actors:  make(map[string]game.ActorID, len(sc.Actors)),
		endTick: sc.Ticks,
	}

	for _, def := range sc.Actors {
		spec, err := def.Spec()
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		s.actors[def.Name] = s.world.SpawnActor(spec)
	}

	for i, imp := range sc.Impacts {
		w, err := defs.Lookup(imp.Warhead)
		if err != nil {
			return nil, fmt.Errorf("scenario %q impact %d: %w", sc.Name, i, err)
		}

		p := pendingImpact{
			tick:      imp.Tick,
			name:      imp.Warhead,
			warhead:   w,
			target:    s.actors[imp.Target],
			firedBy:   s.actors[imp.FiredBy],
			modifiers: slices.Clone(imp.DamageModifiers),
		}
		switch {
		case imp.Pos != nil:
			pos := *imp.Pos
			p.pos = &pos
		case imp.Cell != nil:
			pos := imp.Cell.Center()
			p.pos = &pos
		}
		s.schedule(p)
		s.endTick = max(s.endTick, imp.Tick+1)
	}
	return s, nil
}

func (s *Simulation) schedule(p pendingImpact) {
	p.seq = s.nextSeq
	s.nextSeq++
	s.pending = append(s.pending, p)
	slices.SortStableFunc(s.pending, func(a, b pendingImpact) int {
		return a.tick - b.tick
	})
}

// SetOverlay attaches a debug overlay used when CombatGeometry is on.
func (s *Simulation) SetOverlay(o game.ImpactOverlay) {
	s.overlay = o
}

// World returns the simulated world.
func (s *Simulation) World() *World {
	return s.world
}

// Tick returns the number of completed steps.
func (s *Simulation) Tick() int {
	return s.tick
}

// Records returns every impact fired so far.
func (s *Simulation) Records() []ImpactRecord {
	return slices.Clone(s.records)
}

// ActorID resolves an actor name from the scenario.
func (s *Simulation) ActorID(name string) (game.ActorID, error) {
	id, ok := s.actors[name]
	if !ok {
		return game.NoActor, fmt.Errorf("%q: %w", name, ErrUnknownActor)
	}
	return id, nil
}

// Queue schedules a live detonation for the current tick.
func (s *Simulation) Queue(req FireRequest) error {
	w, err := s.defs.Lookup(req.Warhead)
	if err != nil {
		return err
	}
	pos := req.Pos
	s.schedule(pendingImpact{
		tick:      s.tick,
		name:      req.Warhead,
		warhead:   w,
		pos:       &pos,
		firedBy:   req.FiredBy,
		modifiers: slices.Clone(req.DamageModifiers),
	})
	return nil
}

// Events returns the damage events of the most recent Step.
func (s *Simulation) Events() []DamageEvent {
	return s.events
}

// Done reports whether the scripted part of the run is over.
func (s *Simulation) Done() bool {
	return len(s.pending) == 0 && s.tick >= s.endTick
}

// Step fires every impact due on the current tick, removes destroyed
// actors and advances the clock. Returns the records produced. Damage
// events of the tick are kept until the next Step, see Events.
func (s *Simulation) Step() []ImpactRecord {
	s.world.SetTick(s.tick)

	var fired []ImpactRecord
	// Uses in-place filtering to keep impacts scheduled for later ticks
	writeIdx := 0
	for _, p := range s.pending {
		if p.tick > s.tick {
			s.pending[writeIdx] = p
			writeIdx++
			continue
		}
		if rec, ok := s.fire(p); ok {
			fired = append(fired, rec)
		}
	}
	clear(s.pending[writeIdx:])
	s.pending = s.pending[:writeIdx]

	if removed := s.world.RemoveDead(); len(removed) > 0 {
		logger.Component("simulation").WithFields(logrus.Fields{
			"scenario": s.name,
			"tick":     s.tick,
			"removed":  len(removed),
		}).Debug("destroyed actors removed")
	}

	s.records = append(s.records, fired...)
	s.events = s.world.DrainEvents()
	s.tick++
	return fired
}

func (s *Simulation) fire(p pendingImpact) (ImpactRecord, bool) {
	var pos game.WPos
	switch {
	case p.pos != nil:
		pos = *p.pos
	case p.target != game.NoActor && !s.world.IsDead(p.target):
		pos = s.world.CenterPosition(p.target)
	default:
		logger.Component("simulation").WithFields(logrus.Fields{
			"scenario": s.name,
			"tick":     s.tick,
			"warhead":  p.name,
		}).Warn("impact target no longer exists, skipping")
		return ImpactRecord{}, false
	}

	env := game.Env{
		World:          s.world,
		Validator:      Targeting{World: s.world, Warhead: p.warhead},
		Sink:           s.world,
		Overlay:        s.overlay,
		CombatGeometry: s.cfg.CombatGeometry,
	}
	hits := p.warhead.DoImpact(env, game.Impact{Pos: pos, FiredBy: p.firedBy, DamageModifiers: p.modifiers})
	for _, h := range hits {
		logImpactHit(p.name, s.tick, h)
	}

	return ImpactRecord{
		ID:      recordID(s.name, s.tick, p.seq),
		Tick:    s.tick,
		Warhead: p.name,
		Pos:     pos,
		FiredBy: p.firedBy,
		Hits:    hits,
	}, true
}

func recordID(scenario string, tick, seq int) uuid.UUID {
	name := scenario + "/" + strconv.Itoa(tick) + "/" + strconv.Itoa(seq)
	return uuid.NewSHA1(recordNamespace, []byte(name))
}

// RunToEnd steps until Done or ctx is cancelled.
func (s *Simulation) RunToEnd(ctx context.Context) ([]ImpactRecord, error) {
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return s.Records(), fmt.Errorf("scenario %q at tick %d: %w", s.name, s.tick, err)
		}
		s.Step()
	}
	return s.Records(), nil
}
