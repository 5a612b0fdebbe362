// Package prefilter accelerates the evaluator's outer offset-scanning loop
// by identifying candidate starting offsets ahead of time from a required
// literal (or small set of required literal alternatives) present at the
// start of the pattern. It never changes which matches are found — only how
// many offsets the evaluator bothers to try — and degrades to "try every
// offset" whenever no exploitable literal requirement can be extracted.
//
// A single required literal is located with strings.Index; two or more
// literal alternatives (a top-level alternation of pure-literal branches)
// are located together with an Aho-Corasick automaton so the scan over the
// subject happens once regardless of how many alternatives there are.
package prefilter

import (
	"strings"
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/scanrx/ast"
	"github.com/coregx/scanrx/literal"
)

// Prefilter offers NextCandidate, a hint for where in a subject string a
// match could possibly start.
type Prefilter struct {
	single string                 // non-empty when exactly one required literal was extracted
	auto   *ahocorasick.Automaton // non-nil when 2+ literal alternatives were extracted
}

// Build inspects root's top-level shape and extracts a literal requirement
// if one is apparent. It never fails outward: extraction or automaton
// construction problems simply yield a Prefilter that never skips (Build
// still returns a non-nil, always-safe value).
func Build(root ast.Node) *Prefilter {
	lits, ok := extract(root)
	if !ok || len(lits) == 0 {
		return &Prefilter{}
	}
	if len(lits) == 1 {
		return &Prefilter{single: lits[0]}
	}

	builder := ahocorasick.NewBuilder()
	for _, l := range lits {
		builder.AddPattern([]byte(l))
	}
	auto, err := builder.Build()
	if err != nil {
		return &Prefilter{}
	}
	return &Prefilter{auto: auto}
}

// NextCandidate returns the next rune offset >= fromRune in subject where a
// match could possibly begin, or ok=false if no further candidate exists
// (the remainder of subject provably cannot contain a match). When the
// Prefilter holds no literal requirement it always returns (fromRune,
// true): the conservative, always-correct default.
func (p *Prefilter) NextCandidate(subject string, fromRune int) (offset int, ok bool) {
	if p.single == "" && p.auto == nil {
		return fromRune, true
	}

	byteFrom := runeOffsetToByte(subject, fromRune)
	if byteFrom > len(subject) {
		return 0, false
	}

	var byteAt int
	if p.single != "" {
		idx := strings.Index(subject[byteFrom:], p.single)
		if idx < 0 {
			return 0, false
		}
		byteAt = byteFrom + idx
	} else {
		m := p.auto.Find([]byte(subject), byteFrom)
		if m == nil {
			return 0, false
		}
		byteAt = m.Start
	}
	return byteOffsetToRune(subject, byteAt), true
}

func runeOffsetToByte(s string, runeOffset int) int {
	if runeOffset <= 0 {
		return 0
	}
	i := 0
	for b := range s {
		if i == runeOffset {
			return b
		}
		i++
	}
	return len(s)
}

func byteOffsetToRune(s string, byteOffset int) int {
	return utf8.RuneCountInString(s[:byteOffset])
}

// extract inspects root's top-level shape for a usable literal requirement:
// a leading run of plain characters, or a top-level single parenthesized
// alternation whose every branch is itself a pure-literal run.
func extract(root ast.Node) ([]string, bool) {
	if root.Kind != ast.Root || root.Child == nil {
		return nil, false
	}
	body := *root.Child
	if body.Kind != ast.Seq || len(body.Children) == 0 {
		return leadingLiteralRun(body)
	}

	if lits, ok := leadingLiteralRun(body); ok {
		return lits, true
	}
	if body.Children[0].Kind == ast.Alt {
		return alternationLiterals(body.Children[0])
	}
	return nil, false
}

// leadingLiteralRun extracts a single required literal from a run of
// CharNode siblings starting at n (when n is itself a Seq) or from n alone
// when it is a single CharNode.
func leadingLiteralRun(n ast.Node) ([]string, bool) {
	var b strings.Builder
	switch n.Kind {
	case ast.CharNode:
		if n.Lit.Kind != literal.Single {
			return nil, false
		}
		b.WriteRune(n.Lit.Ch)
		return []string{b.String()}, true
	case ast.Seq:
		for _, c := range n.Children {
			if c.Kind != ast.CharNode || c.Lit.Kind != literal.Single {
				break
			}
			b.WriteRune(c.Lit.Ch)
		}
		if b.Len() == 0 {
			return nil, false
		}
		return []string{b.String()}, true
	default:
		return nil, false
	}
}

// alternationLiterals extracts one literal string per branch when every
// branch of alt is a pure run of CharNode (no nested structure). Returns
// ok=false if any branch fails to reduce to a plain literal.
func alternationLiterals(alt ast.Node) ([]string, bool) {
	out := make([]string, 0, len(alt.Children))
	for _, branch := range alt.Children {
		lits, ok := leadingLiteralRun(branch)
		if !ok || len(lits) != 1 {
			return nil, false
		}
		// The branch must be entirely consumed by the literal run: a Seq
		// whose children are all CharNode, not just a leading prefix.
		if branch.Kind == ast.Seq {
			for _, c := range branch.Children {
				if c.Kind != ast.CharNode || c.Lit.Kind != literal.Single {
					return nil, false
				}
			}
		}
		out = append(out, lits[0])
	}
	return out, true
}
