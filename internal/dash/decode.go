package dash

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"stockfilter/internal/frames"
)

// DecodeState tags a DecodeResult.
type DecodeState int

const (
	// DecodeAbsent means no file of that name exists, an expected
	// steady state rather than a failure.
	DecodeAbsent DecodeState = iota
	// DecodeOK means the animation decoded into at least one frame.
	DecodeOK
	// DecodeFailed means the file exists but produced no frames
	// (corrupt data or an unsupported encoding).
	DecodeFailed
)

// DecodeResult distinguishes "no animation exists" from "animation
// exists but is corrupt", which the collapsed empty-sequence contract of
// the core decoder cannot.
type DecodeResult struct {
	State  DecodeState
	Reason string // set when State == DecodeFailed

	frames []frames.Frame
}

// Frames returns the decoded sequence. For Absent and Failed states it
// is empty, reproducing the core decoder's fail-closed contract for
// callers that only care about "is there anything to show".
func (r DecodeResult) Frames() []frames.Frame {
	return r.frames
}

// DecodeAnimation decodes the named animation into normalized frames.
// name must be a bare filename from ListAnimationNames.
func (s *Service) DecodeAnimation(name string) DecodeResult {
	if name == "" || name != filepath.Base(name) {
		return DecodeResult{State: DecodeFailed, Reason: fmt.Sprintf("invalid animation name %q", name)}
	}
	path := filepath.Join(s.cfg.AnimationDir, name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return DecodeResult{State: DecodeAbsent}
		}
		return DecodeResult{State: DecodeFailed, Reason: err.Error()}
	}

	seq := frames.Decode(path)
	if len(seq) == 0 {
		s.log.Warn("animation decode failed", zap.String("name", name))
		return DecodeResult{State: DecodeFailed, Reason: "no decodable frames"}
	}
	s.log.Debug("decoded animation",
		zap.String("name", name),
		zap.Int("frames", len(seq)),
		zap.Int("width", seq[0].W),
		zap.Int("height", seq[0].H))
	return DecodeResult{State: DecodeOK, frames: seq}
}
