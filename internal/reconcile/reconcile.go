// Package reconcile joins two loaded snapshots on a key column and
// reports the intersection, with unmatched-key diagnostics on both sides.
//
// Semantics are standard relational inner join: equality is exact string
// equality of the CSV scalars (no coercion between "7" and "7.0", so keys
// with mismatched representations simply do not match), and a key that
// repeats on one side joins as the full cross product of matching rows.
package reconcile

import (
	"fmt"

	"stockfilter/internal/snapshot"
	"stockfilter/internal/sortutil"
)

const (
	// SuffixLeft and SuffixRight disambiguate columns that exist in
	// both inputs (except the key column, which appears once).
	SuffixLeft  = "_left"
	SuffixRight = "_right"
)

// Result is the outcome of one reconciliation. MatchedCount always
// equals Matched.Len(), and every key value in Matched appears in both
// inputs. LeftOnly / RightOnly list key values that found no partner,
// unique and sorted.
type Result struct {
	Matched      *snapshot.Table
	MatchedCount int
	LeftOnly     []string
	RightOnly    []string
}

// MissingKeyColumnError reports a violated join precondition: the key
// column is absent from one input. This is surfaced as an error, never
// as a zero-match result, because a silent empty join is misleading.
type MissingKeyColumnError struct {
	Side   string // "left" or "right"
	Column string
}

func (e *MissingKeyColumnError) Error() string {
	return fmt.Sprintf("%s snapshot has no column %q", e.Side, e.Column)
}

// Reconcile inner-joins left and right on keyColumn.
//
// Result columns: left's columns in their original order (the key column
// unsuffixed, other shared columns with "_left"), then right's non-key
// columns in their original order (shared columns with "_right").
// Rows come out in left-row order, then right-row order within a key.
func Reconcile(left, right *snapshot.Table, keyColumn string) (*Result, error) {
	lk := left.ColumnIndex(keyColumn)
	if lk < 0 {
		return nil, &MissingKeyColumnError{Side: "left", Column: keyColumn}
	}
	rk := right.ColumnIndex(keyColumn)
	if rk < 0 {
		return nil, &MissingKeyColumnError{Side: "right", Column: keyColumn}
	}

	shared := sharedColumns(left, right, keyColumn)

	cols := make([]string, 0, len(left.Columns)+len(right.Columns)-1)
	for _, c := range left.Columns {
		if c != keyColumn && shared[c] {
			cols = append(cols, c+SuffixLeft)
			continue
		}
		cols = append(cols, c)
	}
	for i, c := range right.Columns {
		if i == rk {
			continue
		}
		if shared[c] {
			cols = append(cols, c+SuffixRight)
			continue
		}
		cols = append(cols, c)
	}

	// Hash the right side by key, remembering row order per key.
	byKey := make(map[string][]int, right.Len())
	for i, row := range right.Rows {
		k := row[rk]
		byKey[k] = append(byKey[k], i)
	}

	matched := &snapshot.Table{Columns: cols}
	rightHit := make(map[string]bool, len(byKey))
	var leftOnly []string

	for _, lrow := range left.Rows {
		k := lrow[lk]
		partners := byKey[k]
		if len(partners) == 0 {
			leftOnly = append(leftOnly, k)
			continue
		}
		rightHit[k] = true
		for _, ri := range partners {
			rrow := right.Rows[ri]
			out := make([]string, 0, len(cols))
			out = append(out, lrow...)
			for j, v := range rrow {
				if j == rk {
					continue
				}
				out = append(out, v)
			}
			matched.Rows = append(matched.Rows, out)
		}
	}

	var rightOnly []string
	for _, rrow := range right.Rows {
		if k := rrow[rk]; !rightHit[k] {
			rightOnly = append(rightOnly, k)
		}
	}

	return &Result{
		Matched:      matched,
		MatchedCount: matched.Len(),
		LeftOnly:     sortutil.UniqueSorted(leftOnly),
		RightOnly:    sortutil.UniqueSorted(rightOnly),
	}, nil
}

func sharedColumns(left, right *snapshot.Table, keyColumn string) map[string]bool {
	inLeft := make(map[string]bool, len(left.Columns))
	for _, c := range left.Columns {
		inLeft[c] = true
	}
	shared := make(map[string]bool)
	for _, c := range right.Columns {
		if c != keyColumn && inLeft[c] {
			shared[c] = true
		}
	}
	return shared
}
