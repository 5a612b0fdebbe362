// Package eval implements the evaluator: a depth-first backtracking search
// over a compiled graph.Graph, against a token.Token stream, producing the
// ranges the search discovers.
//
// The search is an explicit frame stack rather than a recursive walk with a
// visited bitset, since each path needs its own capture state and its own
// loop id, neither of which a bitset alone can express.
package eval

import (
	"github.com/coregx/scanrx/capture"
	"github.com/coregx/scanrx/graph"
	"github.com/coregx/scanrx/internal/visitset"
	"github.com/coregx/scanrx/ranges"
	"github.com/coregx/scanrx/token"
)

// Config tunes the evaluator's outer scanning loop: how much work the
// search is allowed to do before giving up, and which offsets it bothers to
// try. An offset whose search exhausts MaxSearchSteps is abandoned and
// reports no match there; apart from that, Config has no effect on which
// matches are found.
type Config struct {
	// MaxSearchSteps bounds the number of frame-pops performed for a single
	// offset's search. Zero means unlimited. This is a safety valve against
	// the exponential blowup pathological backtracking patterns can trigger:
	// when the budget runs out, the current offset is treated as unmatched,
	// even if a match there would have been found with more steps.
	MaxSearchSteps int

	// NextOffset, if non-nil, is consulted before starting the search at
	// each offset to pick the next offset actually worth trying. It must
	// return a value >= from; returning from itself (the default behavior
	// when NextOffset is nil) tries every offset in turn, and returning
	// anything greater than len(tokens) ends the outer loop early (no
	// further candidate exists). A caller that skips ahead here must
	// guarantee it never skips past an offset that could produce a match —
	// see the prefilter package.
	NextOffset func(tokens []token.Token, from int) int
}

// DefaultConfig returns the Config used by Evaluate.
func DefaultConfig() Config {
	return Config{MaxSearchSteps: 2_000_000}
}

// Evaluate runs the default-configured search. See EvaluateWithConfig.
func Evaluate(g *graph.Graph, tokens []token.Token) Matches {
	return EvaluateWithConfig(g, tokens, DefaultConfig())
}

// frame is one stack entry of the explicit depth-first search.
type frame struct {
	remaining []token.Token
	loopID    uint64
	state     graph.StateID
	cap       *capture.Capturer
}

// EvaluateWithConfig runs the outer scanning loop and, at each offset, the
// inner depth-first search.
//
// Outer loop: offset ranges over every attempted starting position in the
// augmented token stream, 0 through len(tokens) inclusive (the latter tries
// matching against an empty remainder, past the End sentinel). At each offset a fresh Capturer and a
// fresh visitset.Counters are created; the search explores from
// graph.StartState. The first accepting walk found at an offset wins — the
// rest of that offset's search tree is abandoned — and the outer loop then
// advances to max(end, offset+1), guaranteeing progress on zero-width
// matches.
//
// Inner search: an explicit stack of frames, each a (remaining tokens,
// loop id, state, capturer) tuple. Expanding a frame enumerates its
// outgoing transitions in pattern order and pushes successor frames in
// reverse, so the first-listed transition is popped and explored first —
// this is what makes the search greedy. The visitset.Counters instance is
// shared, by reference, across the whole offset's search tree — it is
// never cloned or rolled back on backtrack, since a bounded repeat's cap
// must hold over the full remaining search, not just the current path.
//
// Loop ids distinguish independent entries into the same repeat structure
// (so a repeat nested inside another repeat gets a fresh budget on every
// outer lap) while keeping the same id across the laps of a single entry
// (so a bounded repeat's own cap isn't reset lap over lap). A loop-start
// edge (per graph.Graph.LoopStarts) is crossed once per lap of its repeat,
// including the very first one, so minting unconditionally on every
// crossing would hand out a fresh id — and thus a fresh, always-zero
// counter — every lap, defeating the cap entirely. Instead each loop-start
// edge remembers the id it minted the last time it was crossed; crossing it
// again with that same id still live (inherited from the frame that just
// took its own back-edge) reuses it, and only a genuinely new entry (a
// different incoming id, or none recorded yet) mints fresh.
func EvaluateWithConfig(g *graph.Graph, tokens []token.Token, cfg Config) Matches {
	n := len(tokens)
	var found []ranges.Range
	var nextLoopID uint64

	offset := 0
	for offset <= n {
		if cfg.NextOffset != nil {
			next := cfg.NextOffset(tokens, offset)
			if next > offset {
				offset = next
				if offset > n {
					break
				}
			}
		}

		visited := visitset.New()
		established := make(map[int]uint64)
		stack := []frame{{
			remaining: tokens[offset:],
			loopID:    0,
			state:     graph.StartState,
			cap:       capture.New(),
		}}

		steps := 0
		matchedEnd := -1
	search:
		for len(stack) > 0 {
			steps++
			if cfg.MaxSearchSteps > 0 && steps > cfg.MaxSearchSteps {
				break search
			}

			fr := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if fr.state == graph.EndState {
				matchedEnd = n - len(fr.remaining)
				break search
			}

			idxs := g.OutgoingIdx(fr.state)
			for i := len(idxs) - 1; i >= 0; i-- {
				idx := idxs[i]
				tr := g.Transitions[idx]

				if tr.MaxUse != nil {
					if visited.Count(fr.loopID, uint64(fr.state)) >= *tr.MaxUse {
						continue
					}
				}

				consumed, ok := tr.Cond.Match(fr.remaining, fr.cap.Snapshot())
				if !ok {
					continue
				}

				if tr.MaxUse != nil {
					visited.Increment(fr.loopID, uint64(fr.state))
				}

				newLoopID := fr.loopID
				if g.LoopStarts[idx] {
					if est, ok := established[idx]; !ok || est != fr.loopID {
						nextLoopID++
						newLoopID = nextLoopID
						established[idx] = newLoopID
					}
				}

				newCap := fr.cap.Clone()
				if consumed > 0 {
					newCap.Append(charsOf(fr.remaining[:consumed]))
				}
				switch tr.CapIns.Op {
				case graph.StartCaptureOp:
					newCap.StartCapture(tr.CapIns.GroupID)
				case graph.EndCaptureOp:
					newCap.EndCapture(tr.CapIns.GroupID)
				}

				stack = append(stack, frame{
					remaining: fr.remaining[consumed:],
					loopID:    newLoopID,
					state:     tr.To,
					cap:       newCap,
				})
			}
		}

		if matchedEnd < 0 {
			offset++
			continue
		}
		found = append(found, ranges.Range{Start: offset, End: matchedEnd})
		if matchedEnd > offset {
			offset = matchedEnd
		} else {
			offset++
		}
	}

	if len(found) == 0 {
		return NoMatch
	}
	return newMatch(found)
}

// charsOf renders the Char tokens in consumed as a string; Start/End
// sentinels (consumed by anchor edges) are skipped.
func charsOf(consumed []token.Token) string {
	rs := make([]rune, 0, len(consumed))
	for _, t := range consumed {
		if t.Kind == token.Char {
			rs = append(rs, t.Ch)
		}
	}
	return string(rs)
}
