package graph

import (
	"errors"
	"fmt"
)

// Sentinel compile-failure reasons. Only ErrMaxLessThanMin can survive past
// a well-formed parse (the parser already rejects {n,m} with m < n), but
// the compiler re-checks it as a fatal precondition since a hand-built AST
// (not produced by ast.Parse) could violate it.
var (
	ErrMaxLessThanMin = errors.New("repeat max is less than min")
	ErrNotRoot        = errors.New("compile input must be a Root node")
)

// CompileError wraps a graph-compilation failure with the underlying
// sentinel reason.
type CompileError struct {
	Err error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("graph compilation failed: %v", e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *CompileError) Unwrap() error {
	return e.Err
}
