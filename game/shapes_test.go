package game

import (
	"testing"
)

func TestCircleShapeDistanceFromEdge(t *testing.T) {
	shape := &CircleShape{Radius: WDist{Length: 512}}
	origin := WPos{X: 10240, Y: 10240}

	tests := []struct {
		name     string
		pos      WPos
		expected int
	}{
		{name: "centre", pos: origin, expected: 0},
		{name: "inside", pos: WPos{X: 10240 + 300, Y: 10240}, expected: 0},
		{name: "on edge", pos: WPos{X: 10240 + 512, Y: 10240}, expected: 0},
		{name: "outside", pos: WPos{X: 10240 + 1536, Y: 10240}, expected: 1024},
		{name: "diagonal", pos: WPos{X: 10240 + 3000, Y: 10240 + 4000}, expected: 5000 - 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := shape.DistanceFromEdge(origin, tt.pos)
			if d.Length != tt.expected {
				t.Errorf("DistanceFromEdge = %d, expected %d", d.Length, tt.expected)
			}
		})
	}
}

func TestCircleShapeVerticalSpan(t *testing.T) {
	shape := &CircleShape{
		ShapeCommon: ShapeCommon{VerticalTopOffset: 100, VerticalBottomOffset: -100},
		Radius:      WDist{Length: 200},
	}
	origin := WPos{}

	// Within the vertical span only horizontal distance counts
	if d := shape.DistanceFromEdge(origin, WPos{X: 500, Z: 80}); d.Length != 300 {
		t.Errorf("level distance = %d, expected 300", d.Length)
	}

	// Above the span the overshoot adds in: |(300, 0, 400)| - 200 = 300
	if d := shape.DistanceFromEdge(origin, WPos{X: 300, Z: 500}); d.Length != 300 {
		t.Errorf("elevated distance = %d, expected 300", d.Length)
	}
}

func TestRectangleShapeDistanceFromEdge(t *testing.T) {
	shape := &RectangleShape{
		TopLeft:     WVec{X: -1024, Y: -512},
		BottomRight: WVec{X: 1024, Y: 512},
	}
	origin := WPos{X: 5000, Y: 5000}

	tests := []struct {
		name     string
		pos      WPos
		expected int
	}{
		{name: "inside", pos: WPos{X: 5000 + 1000, Y: 5000}, expected: 0},
		{name: "right of box", pos: WPos{X: 5000 + 1524, Y: 5000}, expected: 500},
		{name: "below box", pos: WPos{X: 5000, Y: 5000 + 812}, expected: 300},
		{name: "off corner", pos: WPos{X: 5000 + 1024 + 300, Y: 5000 + 512 + 400}, expected: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := shape.DistanceFromEdge(origin, tt.pos)
			if d.Length != tt.expected {
				t.Errorf("DistanceFromEdge = %d, expected %d", d.Length, tt.expected)
			}
		})
	}

	// sqrt(1024^2 + 512^2) = 1144.9
	if r := shape.OuterRadius(); r.Length != 1144 {
		t.Errorf("OuterRadius = %d, expected 1144", r.Length)
	}
}

func TestCapsuleShapeDistanceFromEdge(t *testing.T) {
	shape := &CapsuleShape{
		PointA: WVec{X: -1000},
		PointB: WVec{X: 1000},
		Radius: WDist{Length: 100},
	}
	origin := WPos{}

	tests := []struct {
		name     string
		pos      WPos
		expected int
	}{
		{name: "on segment", pos: WPos{X: 250}, expected: 0},
		{name: "beside segment", pos: WPos{X: 250, Y: 600}, expected: 500},
		{name: "beyond end cap", pos: WPos{X: 1400}, expected: 300},
		{name: "before start cap", pos: WPos{X: -1000 - 300, Y: 400}, expected: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := shape.DistanceFromEdge(origin, tt.pos)
			if d.Length != tt.expected {
				t.Errorf("DistanceFromEdge = %d, expected %d", d.Length, tt.expected)
			}
		})
	}

	if r := shape.OuterRadius(); r.Length != 1100 {
		t.Errorf("OuterRadius = %d, expected 1100", r.Length)
	}
}

func TestClosestHitShape(t *testing.T) {
	near := &CircleShape{Radius: WDist{Length: 400}}
	far := &CircleShape{Radius: WDist{Length: 100}}
	origin := WPos{}
	pos := WPos{X: 1000}

	t.Run("picks nearest enabled", func(t *testing.T) {
		shape, dist, ok := ClosestHitShape([]HitShape{far, near}, origin, pos)
		if !ok || shape != near {
			t.Fatalf("expected the larger circle to be closest")
		}
		if dist.Length != 600 {
			t.Errorf("distance = %d, expected 600", dist.Length)
		}
	})

	t.Run("skips disabled", func(t *testing.T) {
		disabled := &CircleShape{ShapeCommon: ShapeCommon{Disabled: true}, Radius: WDist{Length: 999}}
		shape, dist, ok := ClosestHitShape([]HitShape{disabled, far}, origin, pos)
		if !ok || shape != far {
			t.Fatalf("expected disabled shape to be ignored")
		}
		if dist.Length != 900 {
			t.Errorf("distance = %d, expected 900", dist.Length)
		}
	})

	t.Run("first of equal distances wins", func(t *testing.T) {
		twin := &CircleShape{Radius: WDist{Length: 400}}
		shape, _, _ := ClosestHitShape([]HitShape{near, twin}, origin, pos)
		if shape != near {
			t.Errorf("expected first shape on tie")
		}
	})

	t.Run("none enabled", func(t *testing.T) {
		off := &CircleShape{ShapeCommon: ShapeCommon{Disabled: true}}
		if _, _, ok := ClosestHitShape([]HitShape{off, nil}, origin, pos); ok {
			t.Errorf("expected no shape to be selected")
		}
		if _, _, ok := ClosestHitShape(nil, origin, pos); ok {
			t.Errorf("expected no shape for an actor without shapes")
		}
	})
}

func TestShapeToggle(t *testing.T) {
	s := &CircleShape{}
	if !s.Enabled() {
		t.Fatal("new shape should be enabled")
	}
	s.SetEnabled(false)
	if s.Enabled() {
		t.Error("shape should be disabled after SetEnabled(false)")
	}
}
