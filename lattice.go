package lattice

// Point is a position in the global compositor coordinate space.
// The origin is at the top-left, with Y increasing downward.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in global coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Output identifies a physical output. Only identity matters to the
// scenegraph; output discovery, mode-setting, and geometry live in the
// output layout collaborator. Two Output values identify the same output
// exactly when they compare equal.
type Output interface {
	Name() string
}

// Hit is the result of a spatial query: the frontmost node at a point,
// plus the content handle (typically a surface) that owns that point.
// A nil *Hit means the point hit no content, which is a normal outcome,
// not an error.
type Hit struct {
	Node Node

	// Surface is whatever the matched leaf reported as occupying the
	// point. Input dispatch routes events to it; the scenegraph itself
	// never inspects it.
	Surface any
}

// HitShape is a spatial region tested during hit traversal.
// Rect satisfies HitShape directly; HitCircle and HitPolygon cover
// non-rectangular content.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitCircle is a circular hit area in global coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in global coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Point
}

// Contains reports whether (x, y) lies inside a convex polygon using a
// cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}
