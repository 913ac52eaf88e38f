package sortutil

import "sort"

// StableSort returns a new slice containing the input strings sorted
// lexicographically. The original slice is not modified.
func StableSort(vals []string) []string {
	out := make([]string, len(vals))
	copy(out, vals)
	sort.Strings(out)
	return out
}

// UniqueSorted returns a new sorted slice with duplicates removed.
// The original slice is not modified.
func UniqueSorted(vals []string) []string {
	if len(vals) == 0 {
		return []string{}
	}
	sorted := StableSort(vals)
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
