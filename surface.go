package lattice

// SurfaceNode is a ready-made leaf: a piece of content with a hit region
// and an opaque surface handle. Views, panels, and input-only grab regions
// are all SurfaceNodes as far as the scenegraph is concerned; collaborators
// that need richer behavior embed [BaseNode] and implement [Node] instead.
type SurfaceNode struct {
	BaseNode

	// Shape is the region this node occupies, in global coordinates.
	// A nil shape never matches.
	Shape HitShape

	// Surface is the content handle reported in a Hit. The scenegraph
	// carries it through untouched.
	Surface any
}

// NewSurfaceNode creates a leaf covering shape, reporting surface on a hit.
func NewSurfaceNode(shape HitShape, surface any) *SurfaceNode {
	return &SurfaceNode{BaseNode: NewBase(), Shape: shape, Surface: surface}
}

// FindNodeAt reports this node when the point falls inside its shape.
func (s *SurfaceNode) FindNodeAt(at Point) *Hit {
	if !s.Enabled() || s.Shape == nil {
		return nil
	}
	if !s.Shape.Contains(at.X, at.Y) {
		return nil
	}
	return &Hit{Node: s, Surface: s.Surface}
}
