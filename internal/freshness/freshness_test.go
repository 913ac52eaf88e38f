package freshness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockfilter/internal/catalog"
)

func entry(name string, mod time.Time) catalog.Entry {
	return catalog.Entry{Name: name, AbsPath: "/data/" + name, ModTime: mod}
}

func names(cs []Candidate) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Entry.Name)
	}
	return out
}

func TestDateFromName(t *testing.T) {
	cases := []struct {
		name string
		want string // "" means no date
	}{
		{"rrg_20241231.gif", "2024-12-31"},
		{"20240101_rrg.gif", "2024-01-01"},
		{"rrg.gif", ""},
		{"rrg_1234567.gif", ""},
		// Invalid calendar dates behave exactly like missing tokens.
		{"report_20251399.gif", ""},
		{"report_20240230.gif", ""},
		// First 8-digit run wins when two tokens are present.
		{"run_20240101_data_20231231.gif", "2024-01-01"},
	}
	for _, tc := range cases {
		d, ok := DateFromName(entry(tc.name, time.Now()))
		if tc.want == "" {
			assert.False(t, ok, "expected no date for %q", tc.name)
			continue
		}
		require.True(t, ok, "expected a date for %q", tc.name)
		assert.Equal(t, tc.want, d.Format("2006-01-02"), "date for %q", tc.name)
	}
}

func TestResolveOrderAllDated(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	entries := []catalog.Entry{
		entry("a_20240101.gif", base.Add(48*time.Hour)), // oldest date, newest mtime
		entry("c_20240301.gif", base),
		entry("b_20240201.gif", base.Add(24*time.Hour)),
	}
	got := ResolveOrder(entries, DateFromName)
	assert.Equal(t, []string{"c_20240301.gif", "b_20240201.gif", "a_20240101.gif"}, names(got))
}

func TestResolveOrderDatedBeatDateless(t *testing.T) {
	now := time.Now()
	entries := []catalog.Entry{
		// Dateless but modified a second ago: still ranks behind a
		// dated file encoding a date three years back.
		entry("fresh.gif", now.Add(-time.Second)),
		entry("stale_20210115.gif", now.Add(-3*365*24*time.Hour)),
	}
	got := ResolveOrder(entries, DateFromName)
	assert.Equal(t, []string{"stale_20210115.gif", "fresh.gif"}, names(got))
}

func TestResolveOrderSpecExample(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := []catalog.Entry{
		entry("a_20240101.gif", base),
		entry("b_20241231.gif", base.Add(time.Hour)),
		entry("c.gif", base.Add(48*time.Hour)), // newest mtime of the three
	}
	got := ResolveOrder(entries, DateFromName)
	assert.Equal(t, []string{"b_20241231.gif", "a_20240101.gif", "c.gif"}, names(got))
}

func TestResolveOrderEqualDatesTieBreakOnNameDescending(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	entries := []catalog.Entry{
		entry("alpha_20240501.gif", base),
		entry("gamma_20240501.gif", base),
		entry("beta_20240501.gif", base),
	}
	got := ResolveOrder(entries, DateFromName)
	assert.Equal(t, []string{"gamma_20240501.gif", "beta_20240501.gif", "alpha_20240501.gif"}, names(got))
}

func TestResolveOrderNilExtractorFallsBackToModTime(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	entries := []catalog.Entry{
		// Encoded dates must be ignored with a nil extractor.
		entry("old_20300101.csv", base),
		entry("mid.csv", base.Add(time.Hour)),
		entry("new.csv", base.Add(2*time.Hour)),
	}
	got := ResolveOrder(entries, nil)
	assert.Equal(t, []string{"new.csv", "mid.csv", "old_20300101.csv"}, names(got))
}

func TestResolveOrderEqualModTimesTieBreakOnNameDescending(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	entries := []catalog.Entry{
		entry("a.csv", base),
		entry("c.csv", base),
		entry("b.csv", base),
	}
	got := ResolveOrder(entries, nil)
	assert.Equal(t, []string{"c.csv", "b.csv", "a.csv"}, names(got))
}

func TestResolveOrderIndependentOfInputOrder(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	entries := []catalog.Entry{
		entry("x_20240101.gif", base),
		entry("y.gif", base.Add(time.Hour)),
		entry("z_20240301.gif", base.Add(2*time.Hour)),
	}
	forward := names(ResolveOrder(entries, DateFromName))
	reversed := names(ResolveOrder([]catalog.Entry{entries[2], entries[1], entries[0]}, DateFromName))
	assert.Equal(t, forward, reversed)
}

func TestResolveLatestEmpty(t *testing.T) {
	_, ok := ResolveLatest(nil, DateFromName)
	assert.False(t, ok)
	assert.Empty(t, ResolveOrder(nil, DateFromName))
}

func TestResolveLatestPicksHead(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	entries := []catalog.Entry{
		entry("a_20240101.gif", base),
		entry("b_20241231.gif", base),
	}
	got, ok := ResolveLatest(entries, DateFromName)
	require.True(t, ok)
	assert.Equal(t, "b_20241231.gif", got.Name)
}
