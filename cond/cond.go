// Package cond defines Condition, the predicate that labels a graph
// transition: a literal, any-character, a character class, an anchor, an
// epsilon (consumes nothing), or a capture-group backreference.
package cond

import (
	"strings"

	"github.com/coregx/scanrx/literal"
	"github.com/coregx/scanrx/token"
)

// Kind identifies which variant a Condition carries.
type Kind uint8

const (
	// Epsilon matches nothing and consumes no input.
	Epsilon Kind = iota
	// LiteralCond requires the head token to satisfy a single Literal.
	LiteralCond
	// AnyChar requires the head token to be any Char (not a sentinel).
	AnyChar
	// Class requires the head token to be a Char matching a character-class
	// set, honoring the set's negation flag.
	Class
	// StartAnchor requires the head token to be the Start sentinel.
	StartAnchor
	// EndAnchor requires the head token to be the End sentinel.
	EndAnchor
	// Backref requires the upcoming Char tokens to equal a previously
	// captured group's text.
	Backref
)

// Condition is the predicate labeling a transition.
type Condition struct {
	Kind     Kind
	Lit      literal.Literal   // valid when Kind == LiteralCond
	Negated  bool              // valid when Kind == Class
	Class    []literal.Literal // valid when Kind == Class
	GroupID  uint64            // valid when Kind == Backref
}

// Eps builds the epsilon condition.
func Eps() Condition { return Condition{Kind: Epsilon} }

// Lit builds a condition requiring a single Literal match.
func Lit(l literal.Literal) Condition { return Condition{Kind: LiteralCond, Lit: l} }

// Any builds the any-character condition (matches any Char token).
func Any() Condition { return Condition{Kind: AnyChar} }

// NewClass builds a character-class condition.
func NewClass(negated bool, chars []literal.Literal) Condition {
	return Condition{Kind: Class, Negated: negated, Class: chars}
}

// Start builds the Start-sentinel anchor condition.
func Start() Condition { return Condition{Kind: StartAnchor} }

// End builds the End-sentinel anchor condition.
func End() Condition { return Condition{Kind: EndAnchor} }

// Ref builds a backreference condition targeting groupID.
func Ref(groupID uint64) Condition { return Condition{Kind: Backref, GroupID: groupID} }

// Match evaluates the condition against the remaining token stream and the
// search's current capture map. It returns the number of tokens consumed on
// success, or ok=false on failure. It never mutates remaining or captures.
func (c Condition) Match(remaining []token.Token, captures map[uint64]string) (consumed int, ok bool) {
	switch c.Kind {
	case Epsilon:
		return 0, true

	case LiteralCond:
		if len(remaining) == 0 || remaining[0].Kind != token.Char {
			return 0, false
		}
		if c.Lit.Match(remaining[0].Ch) {
			return 1, true
		}
		return 0, false

	case AnyChar:
		if len(remaining) == 0 || remaining[0].Kind != token.Char {
			return 0, false
		}
		return 1, true

	case Class:
		if len(remaining) == 0 || remaining[0].Kind != token.Char {
			return 0, false
		}
		matched := false
		for _, l := range c.Class {
			if l.Match(remaining[0].Ch) {
				matched = true
				break
			}
		}
		if matched != c.Negated {
			return 1, true
		}
		return 0, false

	case StartAnchor:
		if len(remaining) > 0 && remaining[0].Kind == token.Start {
			return 1, true
		}
		return 0, false

	case EndAnchor:
		if len(remaining) > 0 && remaining[0].Kind == token.End {
			return 1, true
		}
		return 0, false

	case Backref:
		captured, present := captures[c.GroupID]
		if !present {
			// An absent capture (group inside an unreached alternative or a
			// never-iterated quantifier) makes the backref fail outright,
			// rather than matching the empty string as some engines do.
			return 0, false
		}
		want := []rune(captured)
		if len(remaining) < len(want) {
			return 0, false
		}
		var got strings.Builder
		for i := 0; i < len(want); i++ {
			if remaining[i].Kind != token.Char {
				return 0, false
			}
			got.WriteRune(remaining[i].Ch)
		}
		if got.String() != captured {
			return 0, false
		}
		return len(want), true

	default:
		return 0, false
	}
}
