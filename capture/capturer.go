// Package capture implements Capturer, the per-search mutable state that
// records each capture group's accumulated text and which groups are
// currently open.
package capture

import (
	"fmt"
	"strings"
)

// Capturer tracks, for one search path, the substring captured so far for
// each group id and the stack of currently-open group ids.
//
// Capture state is per-path and must not leak across backtracks: every
// transition that opens, closes, or appends to a capture conceptually
// branches the Capturer. This implementation does so via Clone — each
// branch of the search gets its own independent copy, since a backtracking
// walk can explore many paths from the same point and must not let one
// path's captures bleed into a sibling's.
type Capturer struct {
	captures map[uint64]string
	currents []uint64 // stack of open group ids, lifo
}

// New returns an empty Capturer.
func New() *Capturer {
	return &Capturer{captures: make(map[uint64]string)}
}

// Clone returns a deep copy safe to mutate independently of the receiver.
func (c *Capturer) Clone() *Capturer {
	captures := make(map[uint64]string, len(c.captures))
	for k, v := range c.captures {
		captures[k] = v
	}
	currents := make([]uint64, len(c.currents))
	copy(currents, c.currents)
	return &Capturer{captures: captures, currents: currents}
}

// StartCapture opens group id. It panics if id is already open — this is
// an invariant violation (a compiler bug), not a user-facing error.
func (c *Capturer) StartCapture(id uint64) {
	for _, open := range c.currents {
		if open == id {
			panic(fmt.Sprintf("capture: group %d already open", id))
		}
	}
	c.currents = append(c.currents, id)
	if _, ok := c.captures[id]; !ok {
		c.captures[id] = ""
	}
}

// EndCapture closes the most recently opened group, asserting it is id. It
// panics on mismatch — again an invariant violation, not a user error.
func (c *Capturer) EndCapture(id uint64) {
	if len(c.currents) == 0 {
		panic(fmt.Sprintf("capture: end_capture(%d) with no open group", id))
	}
	top := c.currents[len(c.currents)-1]
	if top != id {
		panic(fmt.Sprintf("capture: end_capture(%d) does not match open group %d", id, top))
	}
	c.currents = c.currents[:len(c.currents)-1]
}

// Append appends consumed to every currently-open capture's buffer. It is
// called once per transition that consumes Char tokens, with the text of
// all of them (several at once for a backreference), and does nothing when
// no group is open.
func (c *Capturer) Append(consumed string) {
	if len(c.currents) == 0 || consumed == "" {
		return
	}
	for _, id := range c.currents {
		c.captures[id] += consumed
	}
}

// Get returns the text captured so far for id, and whether id has ever been
// opened.
func (c *Capturer) Get(id uint64) (string, bool) {
	v, ok := c.captures[id]
	return v, ok
}

// Snapshot returns the full captures map, safe for a caller to read but not
// retain across further mutation of c (it is not copied).
func (c *Capturer) Snapshot() map[uint64]string {
	return c.captures
}

// OpenDepth reports how many groups are currently open, for callers that
// want to assert the capture-stack discipline invariant (empty at the end
// of every accepting walk).
func (c *Capturer) OpenDepth() int {
	return len(c.currents)
}

// String renders the Capturer for debugging.
func (c *Capturer) String() string {
	var b strings.Builder
	b.WriteString("Capturer{")
	for id, text := range c.captures {
		fmt.Fprintf(&b, "%d:%q ", id, text)
	}
	fmt.Fprintf(&b, "open=%v}", c.currents)
	return b.String()
}
