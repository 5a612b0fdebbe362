package scanrx_test

import (
	"strings"
	"testing"

	"github.com/coregx/scanrx"
)

// FuzzRoundTrip asserts a round-trip property: any reported match range,
// when sliced out of the subject and anchored with ^...$, still matches the
// same pattern. It does not compare against stdlib regexp — this engine's
// semantics (all DFS matches, not leftmost-longest) are deliberately its
// own.
func FuzzRoundTrip(f *testing.F) {
	seeds := []struct {
		pattern, subject string
	}{
		{`ab{3}a`, "abbba"},
		{`(aab|aa)[cb]{2,}`, "aabb"},
		{`^[0-9]+$`, "5"},
		{`^\w+$`, "5cved"},
		{`^x{2,4}$`, "xxx"},
		{`(cat|dog) and \1`, "cat and cat"},
		{`a*b+`, "aaabbb"},
		{`[a-z]{1,3}`, "abc"},
	}
	for _, s := range seeds {
		f.Add(s.pattern, s.subject)
	}

	f.Fuzz(func(t *testing.T, pattern, subject string) {
		if len(pattern) > 64 || len(subject) > 256 {
			t.Skip("input too large to be an interesting case")
		}
		if !strings.HasPrefix(pattern, "^") {
			pattern = "^" + pattern
		}

		re, err := scanrx.Compile(pattern)
		if err != nil {
			return // not every random string is a valid pattern
		}

		ranges := re.FindAllStringRanges(subject)
		runes := []rune(subject)
		for _, r := range ranges {
			if r.Start < 0 || r.End > len(runes) || r.Start > r.End {
				t.Fatalf("range %v out of bounds for %d runes", r, len(runes))
			}
			piece := string(runes[r.Start:r.End])
			anchored, err := scanrx.Compile("^" + strings.TrimPrefix(pattern, "^") + "$")
			if err != nil {
				continue
			}
			if !anchored.MatchString(piece) {
				t.Fatalf("pattern %q matched range %v (%q) but the same pattern anchored does not re-match it", pattern, r, piece)
			}
		}
	})
}
