package lattice

import "slices"

// Node is the basic element of the scenegraph. Concrete node types embed
// [BaseNode] for identity, the structure flag, and the parent back-reference,
// and implement [Node.FindNodeAt] for their own content.
//
// A custom FindNodeAt implementation should return nil while the node is
// disabled; the built-in node types all do.
type Node interface {
	// ID returns the node's identifier, unique and stable for its lifetime.
	ID() uint32

	// IsStructure reports whether this is a structure node: one of the
	// load-bearing nodes (layers, output containers, their static/dynamic
	// children) created by the core itself. Structure nodes can never be
	// removed or reordered through SetChildrenList.
	IsStructure() bool

	// Parent returns the inner node currently containing this node, or nil
	// for a detached node and for the root.
	Parent() *InnerNode

	// Enabled reports whether the node participates in hit testing.
	Enabled() bool

	// FindNodeAt finds the frontmost content at the given position, or nil
	// if the node and its subtree have no content there.
	FindNodeAt(at Point) *Hit

	// base is unexported so that every Node embeds BaseNode. It anchors
	// node identity: two Node values refer to the same node exactly when
	// their bases are the same pointer.
	base() *BaseNode
}

// nodeIDCounter is a plain counter (no atomic — lattice is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// BaseNode holds the state shared by every node: identity, the structure
// flag, the enabled flag, and a non-owning reference to the parent.
// Embed it in custom node types and implement FindNodeAt.
type BaseNode struct {
	id        uint32
	structure bool
	enabled   bool
	parent    *InnerNode
}

// NewBase returns a BaseNode for a plain (non-structure) node.
// Structure nodes are only ever created by the core.
func NewBase() BaseNode {
	return newBase(false)
}

func newBase(structure bool) BaseNode {
	return BaseNode{id: nextNodeID(), structure: structure, enabled: true}
}

// ID returns the node's identifier, unique and stable for its lifetime.
func (b *BaseNode) ID() uint32 { return b.id }

// IsStructure reports whether this is a structure node.
func (b *BaseNode) IsStructure() bool { return b.structure }

// Parent returns the inner node currently containing this node, or nil.
// The reference is non-owning: the parent's child list is the single source
// of truth for tree shape, and this pointer always mirrors it.
func (b *BaseNode) Parent() *InnerNode { return b.parent }

// Enabled reports whether the node participates in hit testing.
func (b *BaseNode) Enabled() bool { return b.enabled }

// SetEnabled toggles the node's participation in hit testing. Disabling an
// inner node makes its whole subtree transparent to input without touching
// the tree shape.
func (b *BaseNode) SetEnabled(enabled bool) { b.enabled = enabled }

func (b *BaseNode) base() *BaseNode { return b }

// InnerNode owns an ordered list of child nodes, sorted from top to bottom:
// the first child is the frontmost. Extensions add and reorder children
// through the [InnerNode.SetChildrenList] protocol; structure nodes present
// in the list are pinned and survive every generic mutation.
type InnerNode struct {
	BaseNode
	children []Node

	// listener is only ever set on the root node; see RootNode.SetListener.
	listener TreeListener
}

// NewInnerNode creates an empty, non-structure inner node. Extensions use
// these as grouping containers anywhere below the structure skeleton.
func NewInnerNode() *InnerNode {
	return newInnerNode(false)
}

func newInnerNode(structure bool) *InnerNode {
	return &InnerNode{BaseNode: newBase(structure)}
}

// Children returns the child list, frontmost first. The returned slice MUST
// NOT be mutated by the caller; copy it, edit the copy, and submit it with
// SetChildrenList:
//
//	list := slices.Clone(n.Children())
//	// ... reorder, insert, or drop non-structure entries ...
//	if !n.SetChildrenList(list) {
//		// structure changed: state is untouched, recompute
//	}
func (n *InnerNode) Children() []Node {
	return n.children
}

// SetChildrenList atomically replaces the node's children with list.
//
// The replacement is validated first: the subsequence of structure nodes in
// list must be identical, in identity and order, to the structure nodes
// currently present. Any edit to non-structure children — reorder, insert,
// remove, move across containers — passes. If the check fails the tree is
// left completely unchanged and false is returned; callers must not ignore
// the result.
//
// On success every node in list has its parent set to n, previous children
// absent from list become detached, and true is returned. The given slice
// is copied, so the caller may keep using it.
//
// A nil entry, a duplicate entry, or an entry that would make the tree
// cyclic is a programmer error and panics.
func (n *InnerNode) SetChildrenList(list []Node) bool {
	seen := make(map[*BaseNode]struct{}, len(list))
	for _, c := range list {
		if c == nil {
			panic("lattice: nil node in children list")
		}
		if _, dup := seen[c.base()]; dup {
			panic("lattice: duplicate node in children list")
		}
		seen[c.base()] = struct{}{}
		if isAncestor(c, n) {
			panic("lattice: children list would create a cycle")
		}
		if globalDebug {
			debugCheckDetached(n, c)
		}
	}

	if !slices.Equal(structureNodes(n.children), structureNodes(list)) {
		if globalDebug {
			debugLog.Debug().
				Uint32("node", n.id).
				Int("proposed", len(list)).
				Msg("children swap rejected: structure nodes changed")
		}
		return false
	}

	n.setChildrenUnchecked(slices.Clone(list))
	if globalDebug {
		debugCheckTreeDepth(n)
		debugLog.Debug().
			Uint32("node", n.id).
			Int("children", len(n.children)).
			Msg("children swapped")
	}
	n.notify(TreeChange{Kind: ChangeChildrenSwapped, Inner: n})
	return true
}

// setChildrenUnchecked installs list without the structure check. It is the
// single point where parent back-references change: new children point at n,
// and previous children that did not survive the swap become detached.
func (n *InnerNode) setChildrenUnchecked(list []Node) {
	kept := make(map[*BaseNode]struct{}, len(list))
	for _, c := range list {
		kept[c.base()] = struct{}{}
	}
	for _, c := range n.children {
		if _, ok := kept[c.base()]; !ok && c.base().parent == n {
			c.base().parent = nil
		}
	}
	for _, c := range list {
		c.base().parent = n
	}
	n.children = list
}

// FindNodeAt iterates the children in stored order (frontmost first) and
// returns the first hit, recursing into inner children. This is what makes
// picking paint-order consistent: whatever is drawn on top is tested first.
func (n *InnerNode) FindNodeAt(at Point) *Hit {
	if !n.enabled {
		return nil
	}
	for _, c := range n.children {
		if h := c.FindNodeAt(at); h != nil {
			return h
		}
	}
	return nil
}

// notify delivers a change event to the root's listener, if any. The walk
// happens after the mutation completed, so listeners observe the new shape.
func (n *InnerNode) notify(change TreeChange) {
	top := n
	for top.parent != nil {
		top = top.parent
	}
	if top.listener != nil {
		top.listener.TreeChanged(change)
	}
}

// structureNodes extracts, in order, the identities of the structure nodes
// in list.
func structureNodes(list []Node) []*BaseNode {
	var structure []*BaseNode
	for _, c := range list {
		if c.IsStructure() {
			structure = append(structure, c.base())
		}
	}
	return structure
}

// isAncestor reports whether candidate is node itself or an ancestor of it.
// Identity goes through base pointers so that types embedding InnerNode
// compare correctly.
func isAncestor(candidate Node, node *InnerNode) bool {
	for p := node; p != nil; p = p.parent {
		if p.base() == candidate.base() {
			return true
		}
	}
	return false
}
