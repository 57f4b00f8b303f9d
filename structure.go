package lattice

import "slices"

// OutputNode is the per-(layer, output) container that isolates one output's
// content from the others. It is created with exactly two fixed structure
// children: the static container first (frontmost), then the dynamic one.
// The two are pinned for the node's lifetime; SetChildrenList rejects any
// list that drops or reorders them, but extra non-structure siblings may be
// inserted around them, e.g. an always-on-top node in front of both.
type OutputNode struct {
	InnerNode
	static  *InnerNode
	dynamic *InnerNode
}

func newOutputNode() *OutputNode {
	n := &OutputNode{
		InnerNode: InnerNode{BaseNode: newBase(true)},
		static:    newInnerNode(true),
		dynamic:   newInnerNode(true),
	}
	n.setChildrenUnchecked([]Node{n.static, n.dynamic})
	return n
}

// Static returns the container for content that does not change when the
// output switches workspaces: backgrounds, panels, layer-shell surfaces.
func (n *OutputNode) Static() *InnerNode { return n.static }

// Dynamic returns the container for content bound to the output's current
// workspace, most commonly ordinary views.
func (n *OutputNode) Dynamic() *InnerNode { return n.dynamic }

// LayerNode represents one stacking layer. It owns one OutputNode per
// currently enabled output, keyed by output identity; those containers are
// exactly the layer's structure children, and the output lifecycle entry
// point is the only thing that may change them.
type LayerNode struct {
	InnerNode
	layer   Layer
	outputs map[Output]*OutputNode
}

func newLayerNode(layer Layer) *LayerNode {
	return &LayerNode{
		InnerNode: InnerNode{BaseNode: newBase(true)},
		layer:     layer,
		outputs:   make(map[Output]*OutputNode),
	}
}

// NodeForOutput returns the container for the given output, or nil if the
// output is not enabled in this layer. The returned node is stable for as
// long as the output stays enabled.
func (l *LayerNode) NodeForOutput(o Output) *OutputNode {
	return l.outputs[o]
}

// HandleOutputsChanged records an output hotplug event in this layer.
//
// With added true, a fresh OutputNode is created for o and becomes the
// layer's topmost child. With added false, o's container is removed from
// the layer by identity, wherever extensions may have moved it in the
// meantime, and becomes detached.
//
// This is the authority over the layer's structure children: it bypasses
// the SetChildrenList structure check because it updates the output map and
// the child list together. Only the output lifecycle collaborator may call
// it, exactly once per hotplug event; a second add or a remove for an
// unknown output is a bug in the caller and panics.
func (l *LayerNode) HandleOutputsChanged(o Output, added bool) {
	if o == nil {
		panic("lattice: nil output")
	}

	list := slices.Clone(l.children)
	var kind ChangeKind

	if added {
		if _, exists := l.outputs[o]; exists {
			panic("lattice: output " + o.Name() + " is already enabled in this layer")
		}
		on := newOutputNode()
		l.outputs[o] = on
		list = slices.Insert(list, 0, Node(on))
		kind = ChangeOutputAdded
	} else {
		on, exists := l.outputs[o]
		if !exists {
			panic("lattice: output " + o.Name() + " is not enabled in this layer")
		}
		delete(l.outputs, o)
		for i, c := range list {
			if c.base() == on.base() {
				list = slices.Delete(list, i, i+1)
				break
			}
		}
		kind = ChangeOutputRemoved
	}

	l.setChildrenUnchecked(list)
	if globalDebug {
		debugLog.Debug().
			Str("layer", l.layer.String()).
			Str("output", o.Name()).
			Bool("added", added).
			Int("children", len(l.children)).
			Msg("layer outputs changed")
	}
	l.notify(TreeChange{Kind: kind, Inner: &l.InnerNode, Output: o})
}
