package scanrx

import "github.com/coregx/scanrx/eval"

// Config controls Regex's search-time behavior: how much work the
// evaluator is allowed to do per search, and whether the outer
// offset-scanning loop is accelerated by a literal prefilter. Apart from an
// offset whose search exhausts MaxSearchSteps (which then reports no match
// there), it never changes which matches are found, only how the search
// gets there.
//
// Example:
//
//	config := scanrx.DefaultConfig()
//	config.MaxSearchSteps = 100_000 // tighter bound for untrusted patterns
//	re, err := scanrx.CompileWithConfig(`(a+)+b`, config)
type Config struct {
	// EnablePrefilter turns on the literal-extraction fast-skip for the
	// outer scanning loop (see the prefilter package). Default: true.
	EnablePrefilter bool

	// MaxSearchSteps bounds the number of frame-pops the evaluator performs
	// per attempted offset, guarding against catastrophic backtracking on
	// pathological patterns. Zero means unlimited. Default: 2,000,000.
	MaxSearchSteps int
}

// DefaultConfig returns a Config with sensible defaults: prefiltering on,
// and a search-step budget generous enough for ordinary patterns while
// still bounding worst-case pathological ones.
//
// Example:
//
//	config := scanrx.DefaultConfig()
//	config.EnablePrefilter = false // force every offset through the evaluator
func DefaultConfig() Config {
	return Config{
		EnablePrefilter: true,
		MaxSearchSteps:  2_000_000,
	}
}

func (c Config) evalConfig() eval.Config {
	return eval.Config{MaxSearchSteps: c.MaxSearchSteps}
}
