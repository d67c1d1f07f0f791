package server

import (
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/lab1702/cellspread/game"
)

// ImpactMarker is one impact drawn on the debug overlay.
type ImpactMarker struct {
	ID        uuid.UUID    `json:"id"`
	Pos       game.WPos    `json:"pos"`
	Radii     []game.WDist `json:"radii"`
	Color     game.Color   `json:"color"`
	Tick      int          `json:"tick"`
	ExpiresAt int          `json:"expiresAt"`
}

// WarheadDebugOverlay keeps the geometry of recent impacts for a limited
// number of ticks and forwards each new impact to publish.
type WarheadDebugOverlay struct {
	mu      sync.Mutex
	ttl     int
	tick    int
	impacts []ImpactMarker
	publish func(ServerMessage)
}

// NewWarheadDebugOverlay creates an overlay keeping impacts for ttl ticks.
// publish may be nil.
func NewWarheadDebugOverlay(ttl int, publish func(ServerMessage)) *WarheadDebugOverlay {
	return &WarheadDebugOverlay{ttl: max(ttl, 1), publish: publish}
}

// AddImpact implements game.ImpactOverlay.
func (o *WarheadDebugOverlay) AddImpact(pos game.WPos, radii []game.WDist, color game.Color) {
	o.mu.Lock()
	m := ImpactMarker{
		ID:        uuid.New(),
		Pos:       pos,
		Radii:     slices.Clone(radii),
		Color:     color,
		Tick:      o.tick,
		ExpiresAt: o.tick + o.ttl,
	}
	o.impacts = append(o.impacts, m)
	o.mu.Unlock()

	if o.publish != nil {
		o.publish(ServerMessage{Type: MsgTypeImpact, Data: m})
	}
}

// Tick advances the overlay clock and drops expired impacts.
func (o *WarheadDebugOverlay) Tick() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.tick++
	o.impacts = slices.DeleteFunc(o.impacts, func(m ImpactMarker) bool {
		return m.ExpiresAt <= o.tick
	})
}

// Impacts returns the impacts currently shown.
func (o *WarheadDebugOverlay) Impacts() []ImpactMarker {
	o.mu.Lock()
	defer o.mu.Unlock()
	return slices.Clone(o.impacts)
}
