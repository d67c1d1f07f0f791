package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lab1702/cellspread/game"
)

func TestWarheadDebugOverlayExpiry(t *testing.T) {
	var published []ServerMessage
	o := NewWarheadDebugOverlay(2, func(m ServerMessage) {
		published = append(published, m)
	})

	radii := []game.WDist{game.ZeroDist, {Length: 1024}}
	o.AddImpact(game.WPos{X: 1, Y: 2}, radii, game.Red)
	radii[1].Length = 0 // the overlay keeps its own copy

	impacts := o.Impacts()
	if len(impacts) != 1 {
		t.Fatalf("expected 1 impact, got %d", len(impacts))
	}
	m := impacts[0]
	if m.ID == uuid.Nil {
		t.Errorf("expected a generated impact id")
	}
	if m.Radii[1].Length != 1024 || m.Color != game.Red || m.Tick != 0 || m.ExpiresAt != 2 {
		t.Errorf("unexpected marker %+v", m)
	}

	if len(published) != 1 || published[0].Type != MsgTypeImpact {
		t.Fatalf("expected one impact message, got %+v", published)
	}

	o.Tick()
	if len(o.Impacts()) != 1 {
		t.Errorf("impact expired too early")
	}
	o.Tick()
	if len(o.Impacts()) != 0 {
		t.Errorf("impact should expire after its ttl")
	}
}

func TestWarheadDebugOverlayWithoutPublisher(t *testing.T) {
	o := NewWarheadDebugOverlay(0, nil)
	o.AddImpact(game.WPos{}, nil, game.Red)
	o.AddImpact(game.WPos{}, nil, game.Red)

	impacts := o.Impacts()
	if len(impacts) != 2 || impacts[0].ID == impacts[1].ID {
		t.Errorf("expected two distinct impacts, got %+v", impacts)
	}
	o.Tick()
	if len(o.Impacts()) != 0 {
		t.Errorf("minimum ttl is one tick")
	}
}
