package graph

import (
	"github.com/coregx/scanrx/ast"
	"github.com/coregx/scanrx/cond"
)

// compiler holds the monotone state-id counter threaded by reference
// through compilation, allocating fresh states incrementally as each node
// is lowered.
type compiler struct {
	transitions []Transition
	nextState   StateID
}

// Compile lowers root (the output of ast.Parse) into a flat transition
// graph. Root is compiled from StartState to EndState.
func Compile(root ast.Node) (*Graph, error) {
	if root.Kind != ast.Root {
		return nil, &CompileError{Err: ErrNotRoot}
	}
	c := &compiler{nextState: 2}
	if err := c.compileNode(*root.Child, StartState, EndState); err != nil {
		return nil, err
	}
	g := &Graph{Transitions: c.transitions, numStates: c.nextState}
	g.finalize()
	return g, nil
}

func (c *compiler) newState() StateID {
	id := c.nextState
	c.nextState++
	return id
}

func (c *compiler) emit(from, to StateID, condition cond.Condition, maxUse *uint64, capIns CaptureInstruction) {
	c.transitions = append(c.transitions, Transition{
		From:   from,
		To:     to,
		Cond:   condition,
		MaxUse: maxUse,
		CapIns: capIns,
	})
}

// compileNode compiles a single AST node into the fragment running from s
// to e.
func (c *compiler) compileNode(n ast.Node, s, e StateID) error {
	switch n.Kind {
	case ast.CharNode:
		c.emit(s, e, cond.Lit(n.Lit), nil, None())
		return nil

	case ast.StartNode:
		c.emit(s, e, cond.Start(), nil, None())
		return nil

	case ast.EndNode:
		c.emit(s, e, cond.End(), nil, None())
		return nil

	case ast.AnyCharNode:
		c.emit(s, e, cond.Any(), nil, None())
		return nil

	case ast.CharGroupNode:
		c.emit(s, e, cond.NewClass(n.Negated, n.Chars), nil, None())
		return nil

	case ast.CaptureRefNode:
		c.emit(s, e, cond.Ref(n.RefID), nil, None())
		return nil

	case ast.Seq:
		return c.compileSeq(n.Children, s, e)

	case ast.Alt:
		return c.compileAlt(n, s, e)

	case ast.RepeatNode:
		return c.compileRepeat(n, s, e)

	default:
		return &CompileError{Err: ErrNotRoot}
	}
}

// compileSeq emits k-1 fresh intermediate states for k items, chaining the
// sub-graphs linearly so the last one terminates at e. An empty sequence is
// a single epsilon edge.
func (c *compiler) compileSeq(items []ast.Node, s, e StateID) error {
	if len(items) == 0 {
		c.emit(s, e, cond.Eps(), nil, None())
		return nil
	}
	cur := s
	for i, item := range items {
		next := e
		if i != len(items)-1 {
			next = c.newState()
		}
		if err := c.compileNode(item, cur, next); err != nil {
			return err
		}
		cur = next
	}
	return nil
}

// compileAlt compiles a parenthesized group: s opens the capture on an
// epsilon into a shared inner_s/inner_e pair, every branch is compiled in
// parallel between inner_s and inner_e, and inner_e closes the capture on
// an epsilon into e.
func (c *compiler) compileAlt(n ast.Node, s, e StateID) error {
	innerS := c.newState()
	innerE := c.newState()
	c.emit(s, innerS, cond.Eps(), nil, StartCapture(n.GroupID))
	for _, branch := range n.Children {
		if err := c.compileNode(branch, innerS, innerE); err != nil {
			return err
		}
	}
	c.emit(innerE, e, cond.Eps(), nil, EndCapture(n.GroupID))
	return nil
}

// compileRepeat lowers a {min,max} quantifier into the minimum number of
// unrolled copies plus one reusable loop instance gated by a max_use-capped
// back-edge. This avoids fully unrolling bounded repetitions.
func (c *compiler) compileRepeat(n ast.Node, s, e StateID) error {
	if n.Max != nil && *n.Max == 0 {
		c.emit(s, e, cond.Eps(), nil, None())
		return nil
	}
	if n.Min != nil && n.Max != nil && *n.Max < *n.Min {
		return &CompileError{Err: ErrMaxLessThanMin}
	}

	var m uint64
	if n.Min != nil {
		m = *n.Min
	}

	var reqLen uint64
	if m >= 2 && (n.Max == nil || *n.Max >= m) {
		reqLen = m - 1
	}

	var optionalLen *uint64
	if n.Max != nil {
		v := *n.Max - reqLen - 1
		optionalLen = &v
	}

	innerS := c.newState()
	c.emit(s, innerS, cond.Eps(), nil, None())
	if m == 0 {
		c.emit(s, e, cond.Eps(), nil, None())
	}

	curS := innerS
	for i := uint64(0); i < reqLen; i++ {
		curE := c.newState()
		if err := c.compileNode(*n.Child, curS, curE); err != nil {
			return err
		}
		curS = curE
	}

	innerE := c.newState()
	c.emit(innerE, curS, cond.Eps(), optionalLen, None())
	if err := c.compileNode(*n.Child, curS, innerE); err != nil {
		return err
	}
	c.emit(innerE, e, cond.Eps(), nil, None())
	return nil
}
