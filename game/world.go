package game

//go:generate go tool mockgen -destination=./mocks/world_mock.go -package=mocks . World,Building,TargetValidator,DamageSink,ImpactOverlay

// World exposes the read-only simulation state a warhead consults while
// resolving an impact. Implementations must not hand out state that the
// warhead could mutate.
type World interface {
	// FindActorsOnCircle returns actors that may lie within r of origin.
	// It may over-select; callers perform the exact range test.
	FindActorsOnCircle(origin WPos, r WDist) []ActorID
	CenterPosition(a ActorID) WPos
	HitShapes(a ActorID) []HitShape
	Armors(a ActorID) []Armor
	// Building returns nil when the actor is not a multi-cell structure.
	Building(a ActorID) Building
	CenterOfCell(c CPos) WPos
}

// Building is the capability exposed by multi-cell structures.
type Building interface {
	OccupiedCells() []CPos
}

// TargetValidator decides whether a victim may be affected by a warhead
// fired by attacker (alliance, target types, invulnerability).
type TargetValidator interface {
	IsValidAgainst(victim, attacker ActorID) bool
}

// DamageSink receives the damage produced by an impact. It is the only
// write path out of warhead resolution.
type DamageSink interface {
	InflictDamage(victim, attacker ActorID, d Damage)
}

// ImpactOverlay records impact geometry for debug visualization.
type ImpactOverlay interface {
	AddImpact(pos WPos, radii []WDist, color Color)
}

// Armor is one armor layer of an actor.
type Armor struct {
	Type     string `json:"type"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Env bundles the collaborators a warhead needs for one impact.
type Env struct {
	World     World
	Validator TargetValidator
	Sink      DamageSink
	Overlay   ImpactOverlay

	// CombatGeometry enables overlay recording
	CombatGeometry bool
}

// Impact describes a single warhead detonation.
type Impact struct {
	Pos             WPos    `json:"pos"`
	FiredBy         ActorID `json:"firedBy"`
	DamageModifiers []int   `json:"damageModifiers,omitempty"`
}

// Hit is the resolved outcome for one victim of an impact.
type Hit struct {
	Victim ActorID `json:"victim"`
	// Distance from the impact to the victim's closest enabled hit shape
	Distance WDist  `json:"distance"`
	Damage   Damage `json:"damage"`
	// Cells lists the distances of the structure cells that contributed,
	// closest first. Empty when the single-target policy was used.
	Cells []WDist `json:"cells,omitempty"`
}
