package lattice

import "testing"

// --- SurfaceNode ---

func TestSurfaceNodeHit(t *testing.T) {
	n := NewSurfaceNode(Rect{X: 10, Y: 10, Width: 100, Height: 100}, "surf")

	hit := n.FindNodeAt(Point{X: 50, Y: 50})
	if hit == nil {
		t.Fatal("expected a hit inside the shape")
	}
	if hit.Node != Node(n) {
		t.Error("Hit.Node should be the leaf itself")
	}
	if hit.Surface != "surf" {
		t.Errorf("Hit.Surface = %v, want %q", hit.Surface, "surf")
	}
}

func TestSurfaceNodeMiss(t *testing.T) {
	n := NewSurfaceNode(Rect{X: 10, Y: 10, Width: 100, Height: 100}, nil)
	if n.FindNodeAt(Point{X: 500, Y: 500}) != nil {
		t.Error("point outside the shape should not hit")
	}
}

func TestSurfaceNodeNilShape(t *testing.T) {
	n := NewSurfaceNode(nil, nil)
	if n.FindNodeAt(Point{}) != nil {
		t.Error("a nil shape never matches")
	}
}

func TestSurfaceNodeDisabled(t *testing.T) {
	n := NewSurfaceNode(Rect{Width: 10, Height: 10}, nil)
	n.SetEnabled(false)
	if n.FindNodeAt(Point{X: 5, Y: 5}) != nil {
		t.Error("a disabled node never matches")
	}
	n.SetEnabled(true)
	if n.FindNodeAt(Point{X: 5, Y: 5}) == nil {
		t.Error("re-enabling should restore matching")
	}
}

// --- Hit shapes ---

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 10}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"center", 50, 50, true},
		{"inside", 55, 55, true},
		{"on edge", 60, 50, true},
		{"outside", 61, 50, false},
		{"far outside", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.expect {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestHitPolygonContains(t *testing.T) {
	tri := HitPolygon{Points: []Point{{0, 0}, {10, 0}, {5, 10}}}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 5, 3, true},
		{"vertex", 0, 0, true},
		{"outside left", -1, 0, false},
		{"outside below", 5, 11, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tri.Contains(tt.x, tt.y); got != tt.expect {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestHitPolygonDegenerate(t *testing.T) {
	if (HitPolygon{}).Contains(0, 0) {
		t.Error("empty polygon should not contain anything")
	}
	if (HitPolygon{Points: []Point{{0, 0}, {1, 1}}}).Contains(0.5, 0.5) {
		t.Error("two-point polygon should not contain anything")
	}
}
