package lattice

// Layer is one of the fixed stacking categories that partition all content
// by paint order. The values are declared bottom to top; the root stores
// the corresponding layer nodes frontmost first.
type Layer int

const (
	LayerBackground Layer = iota
	LayerBottom
	LayerWorkspace
	LayerTop
	LayerUnmanaged
	LayerOverlay

	// NumLayers is not a real layer, only the number of layers.
	NumLayers
)

// String returns the layer's name for logs and metrics labels.
func (l Layer) String() string {
	switch l {
	case LayerBackground:
		return "background"
	case LayerBottom:
		return "bottom"
	case LayerWorkspace:
		return "workspace"
	case LayerTop:
		return "top"
	case LayerUnmanaged:
		return "unmanaged"
	case LayerOverlay:
		return "overlay"
	default:
		return "invalid"
	}
}

// ChangeKind says what a TreeChange describes.
type ChangeKind uint8

const (
	// ChangeChildrenSwapped: an inner node's child list was replaced
	// through SetChildrenList.
	ChangeChildrenSwapped ChangeKind = iota
	// ChangeOutputAdded: a layer gained an output container.
	ChangeOutputAdded
	// ChangeOutputRemoved: a layer lost an output container.
	ChangeOutputRemoved
)

// TreeChange describes one successful tree mutation. Rejected mutations
// produce no change event.
type TreeChange struct {
	Kind  ChangeKind
	Inner *InnerNode

	// Output is set for output add/remove changes, nil otherwise.
	Output Output
}

// TreeListener receives change events from the tree it is installed on.
// The actual fan-out to interested parties (the compositor's signal system)
// lives outside the scenegraph; lattice only reports that a change happened.
//
// Listeners run synchronously after the mutation completed and must not
// mutate the tree from inside the callback.
type TreeListener interface {
	TreeChanged(change TreeChange)
}

// RootNode is the single top of the scenegraph. It owns one layer node per
// Layer value, frontmost first (overlay down to background), fixed at
// construction and never replaced. Everything an extension does happens
// below the layer nodes.
//
// Construct one per compositor and hand it to collaborators explicitly;
// there is no package-level tree.
type RootNode struct {
	InnerNode
	layers [NumLayers]*LayerNode
}

// NewRoot builds a root with all of its layer nodes.
func NewRoot() *RootNode {
	r := &RootNode{InnerNode: InnerNode{BaseNode: newBase(true)}}
	list := make([]Node, 0, NumLayers)
	for l := NumLayers - 1; l >= 0; l-- {
		r.layers[l] = newLayerNode(l)
		list = append(list, Node(r.layers[l]))
	}
	r.setChildrenUnchecked(list)
	return r
}

// Layers returns the node for the given layer. Panics on an out-of-range
// value.
func (r *RootNode) Layers(l Layer) *LayerNode {
	return r.layers[l]
}

// HandleOutputsChanged applies an output hotplug event to every layer, so
// each one gains or loses its container for o. Like the per-layer entry
// point, this belongs to the output lifecycle collaborator alone.
func (r *RootNode) HandleOutputsChanged(o Output, added bool) {
	for _, layer := range r.layers {
		layer.HandleOutputsChanged(o, added)
	}
}

// SetListener installs the change listener for the whole tree. Pass nil to
// remove it.
func (r *RootNode) SetListener(l TreeListener) {
	r.listener = l
}
