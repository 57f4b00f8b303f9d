// Package lattice is a retained-mode scenegraph core for windowing
// compositors.
//
// Lattice owns the authoritative tree of everything renderable and
// hit-testable, and the rules that keep that tree structurally sound while
// extensions rearrange it at runtime. It does no rendering and reads no
// input: renderers walk the tree for paint order, input dispatch queries it
// for picking, and the output lifecycle drives its per-output containers.
//
// # Tree shape
//
// The tree always has the same skeleton:
//
//	Level 1: the root node, one per compositor.
//	Level 2: one layer node per stacking layer, overlay down to background.
//	Level 3: in each layer, one output container per enabled output.
//	Level 4: in each output container, a static and a dynamic container.
//	Level 5+: views, effects, and whatever containers extensions insert.
//
// The skeleton nodes are structure nodes. They are created by lattice
// itself, and the children-swap protocol guarantees no extension can
// remove, duplicate, or reorder them. Everything else is fair game.
//
// # Quick start
//
//	root := lattice.NewRoot()
//	root.HandleOutputsChanged(output, true) // from the output lifecycle
//
//	ws := root.Layers(lattice.LayerWorkspace).NodeForOutput(output)
//	view := lattice.NewSurfaceNode(lattice.Rect{Width: 100, Height: 100}, surface)
//	ws.Dynamic().SetChildrenList([]lattice.Node{view})
//
//	if hit := root.FindNodeAt(lattice.Point{X: 50, Y: 50}); hit != nil {
//		// route input to hit.Surface
//	}
//
// # Mutation protocol
//
// All reordering goes through one transactional call,
// [InnerNode.SetChildrenList]: copy [InnerNode.Children], edit the copy,
// submit it. The swap is all-or-nothing and returns false, leaving the tree
// untouched, if the edit would disturb the structure nodes. Bringing a node
// to the front, moving it between the static and dynamic containers, or
// stacking an always-on-top node above an output's dynamic container are
// all single swaps.
//
// Everything runs on the compositor's single control thread; no call here
// blocks, and a traversal never observes a half-applied swap. Do not
// mutate the tree from inside a FindNodeAt implementation or a
// [TreeListener] callback.
//
// # Hit testing
//
// Children are stored frontmost first, and [InnerNode.FindNodeAt] tests
// them in stored order, so picking always agrees with paint order. Leaves
// report a [Hit] carrying the surface handle input dispatch needs.
//
// The metrics submodule (github.com/phanxgames/lattice/metrics) exposes
// tree shape as Prometheus collectors.
package lattice
