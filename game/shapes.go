package game

// HitShape is a piece of collision geometry owned by an actor. Distances
// are measured from the shape's edge, so a point inside the shape is at
// distance zero.
type HitShape interface {
	Enabled() bool
	// DistanceFromEdge measures from the shape, anchored at the owning
	// actor's centre origin, to pos.
	DistanceFromEdge(origin, pos WPos) WDist
	// OuterRadius bounds the shape's horizontal extent from origin.
	OuterRadius() WDist
	// ArmorTypes restricts which armors this shape exposes; empty means all.
	ArmorTypes() []string
}

// ShapeCommon carries the settings shared by every shape kind.
type ShapeCommon struct {
	Armor    []string
	Disabled bool

	// Vertical span of the shape relative to the actor centre. Points
	// between the two offsets are treated as level with the shape.
	VerticalTopOffset    int
	VerticalBottomOffset int
}

// Enabled reports whether the shape currently takes part in hit tests.
func (s *ShapeCommon) Enabled() bool { return !s.Disabled }

// SetEnabled toggles the shape.
func (s *ShapeCommon) SetEnabled(on bool) { s.Disabled = !on }

// ArmorTypes returns the armor filter of the shape.
func (s *ShapeCommon) ArmorTypes() []string { return s.Armor }

// local returns pos relative to origin with Z reduced to the overshoot
// above or below the shape's vertical span.
func (s *ShapeCommon) local(origin, pos WPos) WVec {
	v := pos.Sub(origin)
	switch {
	case v.Z > s.VerticalTopOffset:
		v.Z -= s.VerticalTopOffset
	case v.Z < s.VerticalBottomOffset:
		v.Z -= s.VerticalBottomOffset
	default:
		v.Z = 0
	}
	return v
}

// CircleShape is a vertical cylinder around the actor centre.
type CircleShape struct {
	ShapeCommon
	Radius WDist
}

func (c *CircleShape) DistanceFromEdge(origin, pos WPos) WDist {
	return WDist{Length: Max(0, c.local(origin, pos).Length()-c.Radius.Length)}
}

func (c *CircleShape) OuterRadius() WDist { return c.Radius }

// RectangleShape is an axis-aligned box given by corner offsets from the
// actor centre.
type RectangleShape struct {
	ShapeCommon
	TopLeft     WVec
	BottomRight WVec
}

func (r *RectangleShape) DistanceFromEdge(origin, pos WPos) WDist {
	v := r.local(origin, pos)
	dx := Max(Max(r.TopLeft.X-v.X, 0), v.X-r.BottomRight.X)
	dy := Max(Max(r.TopLeft.Y-v.Y, 0), v.Y-r.BottomRight.Y)
	return WDist{Length: WVec{X: dx, Y: dy, Z: v.Z}.Length()}
}

func (r *RectangleShape) OuterRadius() WDist {
	corners := []WVec{
		r.TopLeft,
		r.BottomRight,
		{X: r.TopLeft.X, Y: r.BottomRight.Y},
		{X: r.BottomRight.X, Y: r.TopLeft.Y},
	}
	outer := 0
	for _, c := range corners {
		outer = Max(outer, c.HorizontalLength())
	}
	return WDist{Length: outer}
}

// CapsuleShape is a segment between two offsets swept by Radius.
type CapsuleShape struct {
	ShapeCommon
	PointA WVec
	PointB WVec
	Radius WDist
}

func (c *CapsuleShape) DistanceFromEdge(origin, pos WPos) WDist {
	v := c.local(origin, pos)
	p := WVec{X: v.X, Y: v.Y}
	a := WVec{X: c.PointA.X, Y: c.PointA.Y}
	ab := WVec{X: c.PointB.X - a.X, Y: c.PointB.Y - a.Y}

	closest := a
	if lenSq := ab.LengthSquared(); lenSq > 0 {
		t := WVec{X: p.X - a.X, Y: p.Y - a.Y}.Dot(ab)
		t = min(max(t, 0), lenSq)
		closest = WVec{
			X: a.X + int(int64(ab.X)*t/lenSq),
			Y: a.Y + int(int64(ab.Y)*t/lenSq),
		}
	}

	d := WVec{X: p.X - closest.X, Y: p.Y - closest.Y, Z: v.Z}
	return WDist{Length: Max(0, d.Length()-c.Radius.Length)}
}

func (c *CapsuleShape) OuterRadius() WDist {
	return WDist{Length: c.Radius.Length + Max(c.PointA.HorizontalLength(), c.PointB.HorizontalLength())}
}

// ClosestHitShape returns the enabled shape nearest to pos. The first shape
// wins when several report the same distance. ok is false when no shape is
// enabled.
func ClosestHitShape(shapes []HitShape, origin, pos WPos) (closest HitShape, dist WDist, ok bool) {
	dist = MaxDist
	for _, s := range shapes {
		if s == nil || !s.Enabled() {
			continue
		}

		d := s.DistanceFromEdge(origin, pos)
		if d.Length < dist.Length {
			closest, dist = s, d
		}
	}
	return closest, dist, closest != nil
}
