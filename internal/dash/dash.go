// Package dash is the facade the presentation layer calls. It wires the
// catalog, freshness, snapshot, reconcile and frames components together
// around one configuration, and adds the logging the core packages stay
// free of.
//
// Every method is synchronous and stateless: each call re-scans or
// re-loads from the filesystem, sees whatever is there at call time, and
// shares nothing with other calls.
package dash

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"stockfilter/internal/catalog"
	"stockfilter/internal/config"
	"stockfilter/internal/diff"
	"stockfilter/internal/freshness"
	"stockfilter/internal/reconcile"
	"stockfilter/internal/sectors"
	"stockfilter/internal/snapshot"
)

const (
	snapshotExt  = ".csv"
	animationExt = ".gif"
)

// Service exposes the core operations to a UI. Construct with New.
type Service struct {
	cfg config.Config
	log *zap.Logger
}

// New builds a Service. A nil logger disables logging.
func New(cfg config.Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{cfg: cfg, log: log}
}

// ListSnapshotNames returns every snapshot filename, sorted by name.
// An absent or empty directory yields an empty list.
func (s *Service) ListSnapshotNames() []string {
	return catalog.Names(catalog.List(s.cfg.SnapshotDir, snapshotExt))
}

// ResolveLatestSnapshot picks the current snapshot. CSV filenames are
// not guaranteed to carry an encoded date, so freshness here is pure
// modification-time fallback.
func (s *Service) ResolveLatestSnapshot() (catalog.Entry, bool) {
	entries := catalog.List(s.cfg.SnapshotDir, snapshotExt)
	e, ok := freshness.ResolveLatest(entries, nil)
	if ok {
		s.log.Debug("resolved latest snapshot",
			zap.String("name", e.Name), zap.Time("modified", e.ModTime))
	}
	return e, ok
}

// ComparisonSnapshotNames lists the snapshots a user may compare the
// current one against: every snapshot name except the current one.
func (s *Service) ComparisonSnapshotNames() []string {
	latest, ok := s.ResolveLatestSnapshot()
	names := s.ListSnapshotNames()
	if !ok {
		return names
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != latest.Name {
			out = append(out, n)
		}
	}
	return out
}

// LoadSnapshot loads the named snapshot from the configured directory.
// name must be a bare filename; anything path-like is rejected.
func (s *Service) LoadSnapshot(name string) (*snapshot.Table, error) {
	if name == "" || name != filepath.Base(name) {
		return nil, fmt.Errorf("invalid snapshot name %q", name)
	}
	t, err := snapshot.Load(filepath.Join(s.cfg.SnapshotDir, name))
	if err != nil {
		s.log.Warn("snapshot load failed", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return t, nil
}

// Reconcile joins two named snapshots on the configured key column.
func (s *Service) Reconcile(leftName, rightName string) (*reconcile.Result, error) {
	left, err := s.LoadSnapshot(leftName)
	if err != nil {
		return nil, err
	}
	right, err := s.LoadSnapshot(rightName)
	if err != nil {
		return nil, err
	}
	res, err := reconcile.Reconcile(left, right, s.cfg.KeyColumn)
	if err != nil {
		return nil, err
	}
	s.log.Info("reconciled snapshots",
		zap.String("left", leftName),
		zap.String("right", rightName),
		zap.String("key", s.cfg.KeyColumn),
		zap.Int("matched", res.MatchedCount),
		zap.Int("left_only", len(res.LeftOnly)),
		zap.Int("right_only", len(res.RightOnly)))
	return res, nil
}

// SnapshotDiff renders a unified text diff between the canonical CSV
// renderings of two named snapshots. An empty string means the
// snapshots render identically.
func (s *Service) SnapshotDiff(leftName, rightName string) (string, error) {
	left, err := s.LoadSnapshot(leftName)
	if err != nil {
		return "", err
	}
	right, err := s.LoadSnapshot(rightName)
	if err != nil {
		return "", err
	}
	a, err := left.RenderCSV()
	if err != nil {
		return "", err
	}
	b, err := right.RenderCSV()
	if err != nil {
		return "", err
	}
	body, _ := diff.Unified(leftName, rightName, a, b, diff.Options{})
	return body, nil
}

// ListAnimationNames returns every animation filename, most current
// first (encoded date beats modification time).
func (s *Service) ListAnimationNames() []string {
	entries := catalog.List(s.cfg.AnimationDir, animationExt)
	ordered := freshness.ResolveOrder(entries, freshness.DateFromName)
	out := make([]string, 0, len(ordered))
	for _, c := range ordered {
		out = append(out, c.Entry.Name)
	}
	return out
}

// ResolveLatestAnimation picks the current animation.
func (s *Service) ResolveLatestAnimation() (catalog.Entry, bool) {
	entries := catalog.List(s.cfg.AnimationDir, animationExt)
	return freshness.ResolveLatest(entries, freshness.DateFromName)
}

// SectorReference returns the static ticker→sector table for the given
// symbols (DefaultSymbols when nil).
func (s *Service) SectorReference(symbols []string) []sectors.Row {
	if symbols == nil {
		symbols = sectors.DefaultSymbols()
	}
	return sectors.Reference(symbols)
}
