// Package scanrx is a small regex engine built for a grep-like line
// scanner: a pattern parser producing an AST, a graph compiler lowering
// the AST into a flat transition list, and a depth-first backtracking
// evaluator that searches that graph against a tokenized subject line.
//
// The engine supports anchors, quantifiers (greedy, bounded and
// unbounded), alternation, character classes, capture groups, and
// backreferences. It does not do DFA compilation, JIT, streaming/
// multi-line matching, lookaround, named groups, lazy quantifiers, or
// POSIX leftmost-longest disambiguation — see the package docs on eval
// for what "all matches" means here.
//
// Basic usage:
//
//	re, err := scanrx.Compile(`(cat|dog) and \1`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range re.FindAllStringRanges("cat and cat, dog and cat") {
//	    fmt.Println(r)
//	}
package scanrx

import (
	"github.com/coregx/scanrx/ast"
	"github.com/coregx/scanrx/eval"
	"github.com/coregx/scanrx/graph"
	"github.com/coregx/scanrx/prefilter"
	"github.com/coregx/scanrx/ranges"
	"github.com/coregx/scanrx/token"
)

// Regex is a compiled pattern: a graph ready to be evaluated against any
// number of subject lines. A Regex is immutable after Compile and safe to
// use concurrently from multiple goroutines.
type Regex struct {
	pattern string
	graph   *graph.Graph
	pf      *prefilter.Prefilter
	cfg     Config
}

// Compile parses pattern, compiles it into a graph, and builds a prefilter
// hint for its outer scanning loop, using DefaultConfig.
//
// Example:
//
//	re, err := scanrx.Compile(`\d{3}-\d{4}`)
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if pattern is invalid. Useful for
// patterns known to be valid at compile time, e.g. package-level vars.
//
// Example:
//
//	var phoneNumber = scanrx.MustCompile(`\d{3}-\d{4}`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("scanrx: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles pattern with a caller-supplied Config.
//
// Example:
//
//	config := scanrx.DefaultConfig()
//	config.EnablePrefilter = false
//	re, err := scanrx.CompileWithConfig(`(a+)+b`, config)
func CompileWithConfig(pattern string, cfg Config) (*Regex, error) {
	root, err := ast.Parse(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	g, err := graph.Compile(root)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	var pf *prefilter.Prefilter
	if cfg.EnablePrefilter {
		pf = prefilter.Build(root)
	}

	return &Regex{pattern: pattern, graph: g, pf: pf, cfg: cfg}, nil
}

// String returns the source pattern text Regex was compiled from.
func (r *Regex) String() string {
	return r.pattern
}

// MatchString reports whether line contains any match of the pattern.
//
// Example:
//
//	re := scanrx.MustCompile(`\d+`)
//	re.MatchString("hello 123") // true
func (r *Regex) MatchString(line string) bool {
	return r.evaluate(line).Found
}

// FindAllTokenRanges runs the evaluator against line and returns every
// match's range as (start, end) indices into the augmented token stream
// (including the Start/End sentinels), in ascending-offset order, exactly
// as eval.Evaluate produces them. Most callers want FindAllStringRanges
// instead, which converts these to rune offsets into line itself.
func (r *Regex) FindAllTokenRanges(line string) []ranges.Range {
	m := r.evaluate(line)
	if !m.Found {
		return nil
	}
	return m.Ranges
}

// FindAllStringRanges runs the evaluator against line and returns every
// match's range as rune offsets into line, with the Start/End sentinel
// adjustment already applied (see the ranges package).
//
// Example:
//
//	re := scanrx.MustCompile(`a`)
//	re.FindAllStringRanges("banana") // [{1 2} {3 4} {5 6}]
func (r *Regex) FindAllStringRanges(line string) []ranges.Range {
	tokenRanges := r.FindAllTokenRanges(line)
	if tokenRanges == nil {
		return nil
	}
	runeLen := len([]rune(line))
	out := make([]ranges.Range, len(tokenRanges))
	for i, tr := range tokenRanges {
		out[i] = ranges.Range{
			Start: ranges.AdjustStart(tr.Start),
			End:   ranges.AdjustEnd(tr.End, runeLen),
		}
	}
	return out
}

// FindAllStrings is a convenience wrapper over FindAllStringRanges that
// slices line into the matched substrings themselves.
func (r *Regex) FindAllStrings(line string) []string {
	rs := r.FindAllStringRanges(line)
	if rs == nil {
		return nil
	}
	runes := []rune(line)
	out := make([]string, len(rs))
	for i, rg := range rs {
		out[i] = string(runes[rg.Start:rg.End])
	}
	return out
}

func (r *Regex) evaluate(line string) eval.Matches {
	tokens := token.Stream(line)
	cfg := r.cfg.evalConfig()
	if r.pf != nil {
		cfg.NextOffset = func(_ []token.Token, from int) int {
			// Token offsets run one ahead of rune offsets (index 0 is the
			// Start sentinel); translate in both directions around the
			// prefilter's rune-offset API.
			runeFrom := from
			if runeFrom > 0 {
				runeFrom--
			}
			next, ok := r.pf.NextCandidate(line, runeFrom)
			if !ok {
				return len(tokens) + 1 // no further candidate; end the loop
			}
			return next + 1
		}
	}
	return eval.EvaluateWithConfig(r.graph, tokens, cfg)
}
