// Package freshness decides which of several candidate files is "current"
// and produces a fully deterministic ordering of all candidates.
//
// Two competing signals exist: a date encoded in the filename (YYYYMMDD)
// and the filesystem modification time. The encoded date is authoritative
// when present: a dated file always outranks a dateless one, even if the
// dateless file was modified more recently. Within each partition the
// order is descending by date (resp. mtime), with descending name as the
// final tiebreak so the ordering never depends on input order or platform.
package freshness

import (
	"regexp"
	"sort"
	"time"

	"stockfilter/internal/catalog"
)

// Candidate pairs a catalog entry with its extracted date, if any.
type Candidate struct {
	Entry   catalog.Entry
	Date    time.Time
	HasDate bool
}

// Extractor pulls an encoded date out of an entry. A nil Extractor means
// "no filenames carry dates" and the ordering degrades to pure
// mtime-descending (the CSV snapshot case).
type Extractor func(catalog.Entry) (time.Time, bool)

var dateToken = regexp.MustCompile(`\d{8}`)

// DateFromName extracts the first run of exactly 8 consecutive digits
// from the filename and interprets it as YYYYMMDD. Tokens that do not
// form a valid calendar date (e.g. month 13) are treated as absent.
//
// Only the first match is considered. A filename encoding two date-like
// tokens resolves on the first one; this is intentional policy.
func DateFromName(e catalog.Entry) (time.Time, bool) {
	tok := dateToken.FindString(e.Name)
	if tok == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("20060102", tok)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ResolveOrder orders entries most-current-first. It is a pure function:
// equal inputs produce equal output regardless of input order.
func ResolveOrder(entries []catalog.Entry, ex Extractor) []Candidate {
	dated := make([]Candidate, 0, len(entries))
	dateless := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		c := Candidate{Entry: e}
		if ex != nil {
			if d, ok := ex(e); ok {
				c.Date = d
				c.HasDate = true
			}
		}
		if c.HasDate {
			dated = append(dated, c)
		} else {
			dateless = append(dateless, c)
		}
	}

	sortCandidates(dated, func(a, b Candidate) (later, equal bool) {
		return a.Date.After(b.Date), a.Date.Equal(b.Date)
	})
	sortCandidates(dateless, func(a, b Candidate) (later, equal bool) {
		return a.Entry.ModTime.After(b.Entry.ModTime), a.Entry.ModTime.Equal(b.Entry.ModTime)
	})

	return append(dated, dateless...)
}

// ResolveLatest returns the most current entry, or false when entries is
// empty.
func ResolveLatest(entries []catalog.Entry, ex Extractor) (catalog.Entry, bool) {
	ordered := ResolveOrder(entries, ex)
	if len(ordered) == 0 {
		return catalog.Entry{}, false
	}
	return ordered[0].Entry, true
}

// sortCandidates sorts descending by the primary key with descending name
// as tiebreak.
func sortCandidates(cs []Candidate, cmp func(a, b Candidate) (later, equal bool)) {
	sort.SliceStable(cs, func(i, j int) bool {
		later, equal := cmp(cs[i], cs[j])
		if later {
			return true
		}
		if equal {
			return cs[i].Entry.Name > cs[j].Entry.Name
		}
		return false
	})
}
