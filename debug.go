package lattice

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// globalDebug mirrors the most recently set debug flag so node operations
// can check it cheaply. Covers the whole package: multiple trees share it.
var globalDebug bool

// debugLog receives structural trace events while debug mode is on.
var debugLog = zerolog.Nop()

// SetDebugMode enables or disables debug mode. When enabled, extra contract
// checks run on tree mutation (attaching a node that is still another
// parent's child panics, excessive depth is warned about) and every
// accepted or rejected mutation is traced through the debug logger.
//
// If no logger was installed with SetLogger, enabling debug mode wires a
// console writer on stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
	if enabled && debugLog.GetLevel() == zerolog.Disabled {
		debugLog = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}
}

// SetLogger replaces the logger used for debug traces. Traces are emitted
// at debug level and only while debug mode is on, so hit-test and render
// paths stay silent in normal operation.
func SetLogger(l zerolog.Logger) {
	debugLog = l
}

// debugCheckDetached panics when a proposed child is still attached to a
// different parent. The caller must detach a node from its old container
// before submitting it elsewhere; one node under two parents corrupts the
// tree. Only called in debug mode.
func debugCheckDetached(n *InnerNode, c Node) {
	if p := c.base().parent; p != nil && p != n {
		panic(fmt.Sprintf(
			"lattice debug: node %d is still a child of node %d; detach it first",
			c.ID(), p.ID()))
	}
}

// debugMaxTreeDepth is the depth beyond which a warning is logged.
const debugMaxTreeDepth = 32

// debugCheckTreeDepth warns when a node sits deeper than the threshold.
func debugCheckTreeDepth(n *InnerNode) {
	depth := 0
	for p := n; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLog.Warn().
			Uint32("node", n.id).
			Int("depth", depth).
			Int("threshold", debugMaxTreeDepth).
			Msg("tree depth exceeds threshold")
	}
}
