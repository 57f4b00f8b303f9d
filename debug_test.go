package lattice

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// withDebug runs fn with debug mode on and a captured trace buffer, then
// restores the package defaults.
func withDebug(t *testing.T, fn func(buf *bytes.Buffer)) {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	SetDebugMode(true)
	defer func() {
		SetDebugMode(false)
		SetLogger(zerolog.Nop())
	}()
	fn(&buf)
}

func TestDebugPanicsOnAttachedReuse(t *testing.T) {
	withDebug(t, func(buf *bytes.Buffer) {
		a := NewInnerNode()
		b := NewInnerNode()
		leaf := newTestLeaf(0, 0)
		a.SetChildrenList([]Node{leaf})

		// Submitting a node that is still a's child elsewhere, without
		// detaching it first, is caught in debug mode.
		mustPanic(t, func() { b.SetChildrenList([]Node{leaf}) })
	})
}

func TestDebugTracesRejectedSwap(t *testing.T) {
	withDebug(t, func(buf *bytes.Buffer) {
		n := NewInnerNode()
		s := newInnerNode(true)
		n.setChildrenUnchecked([]Node{s})

		if n.SetChildrenList(nil) {
			t.Fatal("dropping a structure child must be rejected")
		}
		if !strings.Contains(buf.String(), "rejected") {
			t.Errorf("expected a rejection trace, got %q", buf.String())
		}
	})
}

func TestDebugTracesOutputChange(t *testing.T) {
	withDebug(t, func(buf *bytes.Buffer) {
		l := newLayerNode(LayerWorkspace)
		l.HandleOutputsChanged(&fakeOutput{name: "DP-9"}, true)

		out := buf.String()
		if !strings.Contains(out, "DP-9") || !strings.Contains(out, "workspace") {
			t.Errorf("expected an output trace naming the output and layer, got %q", out)
		}
	})
}

func TestDebugOffIsSilent(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	defer SetLogger(zerolog.Nop())

	n := NewInnerNode()
	n.SetChildrenList([]Node{newTestLeaf(0, 0)})
	if buf.Len() != 0 {
		t.Errorf("no traces expected with debug mode off, got %q", buf.String())
	}
}
