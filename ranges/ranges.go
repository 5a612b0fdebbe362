// Package ranges provides the token-index-to-host-coordinate conversion
// helpers consumed by a line-scanner host, and the overlap-merge used to
// turn this engine's all-matches output into POSIX-style disjoint ranges.
package ranges

import "sort"

// Range is a half-open [Start, End) span over token indices, or, after
// adjustment, over subject-string byte/rune offsets.
type Range struct {
	Start, End int
}

// AdjustStart strips the Start-sentinel offset: s-1 when s > 0, else 0.
func AdjustStart(s int) int {
	if s > 0 {
		return s - 1
	}
	return 0
}

// AdjustEnd strips the End-sentinel offset, clamped to the subject line's
// length: min(e-1, lineLen) when e >= 1, else e.
func AdjustEnd(e, lineLen int) int {
	if e >= 1 {
		if e-1 < lineLen {
			return e - 1
		}
		return lineLen
	}
	return e
}

// MergeOverlapping sorts ranges ascending by start, then folds
// adjacent/overlapping ranges into maxima. Idempotent: merging an
// already-merged list returns an equal, still-sorted, pairwise-disjoint
// list.
func MergeOverlapping(rs []Range) []Range {
	if len(rs) == 0 {
		return nil
	}
	sorted := make([]Range, len(rs))
	copy(sorted, rs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := []Range{sorted[0]}
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		if r.Start <= last.End {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
