package scanrx

import "fmt"

// CompileError wraps a failure from either the parser (a malformed
// pattern) or the graph compiler (a malformed but syntactically valid
// AST, such as a quantifier with max < min). NoMatch is never represented
// as an error — it is a normal outcome signaled through FindAllTokenRanges's
// return value.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("scanrx: compile(%q): %v", e.Pattern, e.Err)
}

// Unwrap exposes the underlying ast or graph error for errors.Is/As.
func (e *CompileError) Unwrap() error {
	return e.Err
}
