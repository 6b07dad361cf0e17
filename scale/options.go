// SPDX-License-Identifier: MIT
// Package: scatspectra/scale
//
// options.go — functional options for NewScaleIndexer.
//
// Contract:
//   • Options are functional (type Option func(*options)), applied in order;
//     the last writer wins.
//   • WithX constructors PANIC on meaningless input (nil logger, limit < 1).
//     NewScaleIndexer itself never panics.
//   • Defaults are deterministic and documented below.

package scale

import (
	"io"

	"github.com/charmbracelet/log"
)

// CollapseMode selects which adjacent-order pairs the collapse self-check
// covers. The check only applies when every wavelet density equals 1.
type CollapseMode int

const (
	// CollapseAllOrders checks every pair (r-1, r) for r = 2..maxOrder.
	CollapseAllOrders CollapseMode = iota

	// CollapseSecondOrder checks only the pair (1, 2).
	CollapseSecondOrder
)

const (
	// DefaultPathLimit caps the number of enumerated paths (empty path excluded).
	DefaultPathLimit = 1 << 22

	// DefaultCollapseMode is the collapse coverage used when no option is given.
	DefaultCollapseMode = CollapseAllOrders
)

const (
	panicNilLogger    = "scale: WithLogger(nil)"
	panicPathLimit    = "scale: WithPathLimit: limit must be >= 1"
	panicCollapseMode = "scale: WithCollapseMode: unknown mode"
)

// Option customizes NewScaleIndexer.
type Option func(*options)

type options struct {
	logger    *log.Logger
	pathLimit int
	collapse  CollapseMode
}

// WithLogger routes construction diagnostics (per-order counts, self-check
// outcomes) to l at Debug level. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithPathLimit caps the enumeration size. Construction fails with
// ErrConfiguration/ErrPathLimit once more than limit paths are produced.
// Panics if limit < 1.
func WithPathLimit(limit int) Option {
	if limit < 1 {
		panic(panicPathLimit)
	}
	return func(o *options) {
		o.pathLimit = limit
	}
}

// WithCollapseMode sets the coverage of the collapse self-check.
// Panics on an unknown mode.
func WithCollapseMode(mode CollapseMode) Option {
	if mode != CollapseAllOrders && mode != CollapseSecondOrder {
		panic(panicCollapseMode)
	}
	return func(o *options) {
		o.collapse = mode
	}
}

// gatherOptions resolves opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		logger:    log.New(io.Discard),
		pathLimit: DefaultPathLimit,
		collapse:  DefaultCollapseMode,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
