// Package catalog lists data files (CSV snapshots, GIF animations) in a
// directory. It is the only component that touches the filesystem for
// discovery; everything downstream works on the entries it returns.
//
// Goals:
//   - Deterministic output (entries sorted by name)
//   - "No data yet" is an empty result, never an error
//   - Tolerant scans: a file whose metadata cannot be read is excluded
//     rather than failing the whole listing
package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Entry describes one file found by a scan. ModTime is captured at scan
// time; entries are not cached and a re-scan produces a fresh set.
type Entry struct {
	Name    string    // base filename, e.g. "vcp_20240105.csv"
	AbsPath string    // full path for loading
	ModTime time.Time // filesystem modification time at scan time
}

// List returns the files directly under dir whose extension equals ext
// (case-insensitive; ext includes the dot, e.g. ".csv"). A missing or
// unreadable directory yields an empty slice. Files whose info cannot be
// stat'ed (permission error, deleted mid-scan) are skipped.
func List(dir, ext string) []Entry {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	ext = strings.ToLower(ext)

	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		if strings.ToLower(filepath.Ext(name)) != ext {
			continue
		}
		info, err := de.Info()
		if err != nil {
			// Race with deletion or a permission problem on one file
			// must not fail the scan.
			continue
		}
		entries = append(entries, Entry{
			Name:    name,
			AbsPath: filepath.Join(dir, name),
			ModTime: info.ModTime(),
		})
	}

	// os.ReadDir already sorts by name, but we do not rely on that:
	// stable output is a contract here, not a platform accident.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// Names projects a listing onto base filenames, preserving order.
func Names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}
