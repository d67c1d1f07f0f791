package game

import "slices"

// Falloff converts a distance from the impact into the percentage of
// damage delivered: 100 at distance zero, PercentAtMax at Spread. d is
// clamped into [0, Spread] first so callers never extrapolate past either
// end. Spread must be non-zero.
func (w *SpreadWarhead) Falloff(d int) int {
	if w.Spread.Length <= 0 {
		return FullPercent
	}
	d = Clamp(d, 0, w.Spread.Length)
	return Lerp(FullPercent, w.PercentAtMax, d, w.Spread.Length)
}

// DamageVersus returns the armor modifier for victim as seen through shape.
// Only enabled armors listed in Versus (and in the shape's armor filter,
// if it has one) contribute.
func (w *SpreadWarhead) DamageVersus(world World, victim ActorID, shape HitShape) int {
	if len(w.Versus) == 0 {
		return FullPercent
	}

	var filter []string
	if shape != nil {
		filter = shape.ArmorTypes()
	}

	var modifiers []int
	for _, a := range world.Armors(victim) {
		if a.Disabled || a.Type == "" {
			continue
		}
		v, ok := w.Versus[a.Type]
		if !ok {
			continue
		}
		if len(filter) > 0 && !slices.Contains(filter, a.Type) {
			continue
		}
		modifiers = append(modifiers, v)
	}
	return ApplyPercentageModifiers(FullPercent, modifiers)
}

// Resolve computes the damage every victim of the impact would receive
// without inflicting it. Hits are returned in the world's enumeration
// order; each one depends only on its own victim.
func (w *SpreadWarhead) Resolve(env Env, impact Impact) []Hit {
	if w.Spread.Length == 0 || env.World == nil {
		return nil
	}

	var hits []Hit
	for _, victim := range env.World.FindActorsOnCircle(impact.Pos, w.Spread) {
		if env.Validator != nil && !env.Validator.IsValidAgainst(victim, impact.FiredBy) {
			continue
		}

		center := env.World.CenterPosition(victim)
		shape, dist, ok := ClosestHitShape(env.World.HitShapes(victim), center, impact.Pos)

		// Cannot be damaged without an active hit shape or if it lies outside the spread
		if !ok || dist.Length > w.Spread.Length {
			continue
		}

		modifiers := make([]int, 0, len(impact.DamageModifiers)+2)
		modifiers = append(modifiers, impact.DamageModifiers...)
		modifiers = append(modifiers, w.DamageVersus(env.World, victim, shape))

		var building Building
		if w.Bounded() {
			building = env.World.Building(victim)
		}

		if building == nil {
			modifiers = append(modifiers, w.Falloff(dist.Length))
			hits = append(hits, Hit{
				Victim:   victim,
				Distance: dist,
				Damage:   Damage{Value: ApplyPercentageModifiers(w.Damage, modifiers), Types: w.DamageTypes},
			})
			continue
		}

		total, cells := w.distribute(env.World, building, impact.Pos, modifiers)
		if len(cells) == 0 {
			continue
		}
		hits = append(hits, Hit{
			Victim:   victim,
			Distance: dist,
			Damage:   Damage{Value: total, Types: w.DamageTypes},
			Cells:    cells,
		})
	}
	return hits
}

// distribute sums the damage of up to MaxAffect structure cells, each with
// its own falloff. Only cells whose centre lies strictly beyond Spread are
// considered, closest first. Falloff clamps to Spread, so every counted
// cell receives exactly PercentAtMax.
func (w *SpreadWarhead) distribute(world World, b Building, pos WPos, modifiers []int) (total int, cells []WDist) {
	occupied := b.OccupiedCells()
	distances := make([]int, 0, len(occupied))
	for _, c := range occupied {
		d := world.CenterOfCell(c).Sub(pos).Length()
		if d > w.Spread.Length {
			distances = append(distances, d)
		}
	}

	slices.Sort(distances)
	affected := distances[:Min(len(distances), w.MaxAffect)]

	cellModifiers := make([]int, len(modifiers)+1)
	copy(cellModifiers, modifiers)
	for _, d := range affected {
		cellModifiers[len(modifiers)] = w.Falloff(d)
		total += ApplyPercentageModifiers(w.Damage, cellModifiers)
		cells = append(cells, WDist{Length: d})
	}
	return total, cells
}

// DoImpact resolves the impact and hands every hit to env.Sink, one damage
// event per victim. The debug overlay is fed first when CombatGeometry is
// on. Returns the hits that were inflicted.
func (w *SpreadWarhead) DoImpact(env Env, impact Impact) []Hit {
	if w.Spread.Length == 0 {
		return nil
	}

	if env.CombatGeometry && env.Overlay != nil {
		env.Overlay.AddImpact(impact.Pos, []WDist{ZeroDist, w.Spread}, w.DebugOverlayColor)
	}

	hits := w.Resolve(env, impact)
	if env.Sink != nil {
		for _, h := range hits {
			env.Sink.InflictDamage(h.Victim, impact.FiredBy, h.Damage)
		}
	}
	return hits
}
