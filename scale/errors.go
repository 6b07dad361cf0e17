// SPDX-License-Identifier: MIT
// Package: scatspectra/scale
//
// errors.go — sentinel errors for the scale package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Validation failures wrap BOTH the class sentinel (ErrConfiguration) and
//     the precise cause (ErrOctaveCount, …), so either can be matched.
//   • Query failures wrap ErrKeyNotFound with the offending path or index.
//   • Nothing here panics on user input; only WithX option constructors panic.

package scale

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration classifies malformed construction parameters.
	// It is returned before any enumeration work starts.
	ErrConfiguration = errors.New("scale: invalid configuration")

	// ErrConsistency classifies a failed construction-time self-check.
	// It means the enumeration is not trustworthy; no indexer is returned.
	ErrConsistency = errors.New("scale: consistency check failed")

	// ErrKeyNotFound is returned by lookups given a path or an index that
	// was never enumerated.
	ErrKeyNotFound = errors.New("scale: key not found")

	// ErrEmptyPath is returned by queries that need a last coordinate
	// (IsLowPass) when asked about the order-0 path.
	ErrEmptyPath = errors.New("scale: empty path has no last coordinate")
)

// Precise configuration causes. Always returned together with ErrConfiguration.
var (
	// ErrOctaveCount: octave count J must be >= 1.
	ErrOctaveCount = errors.New("scale: octave count must be positive")

	// ErrMaxOrder: maximum scattering order must be >= 1.
	ErrMaxOrder = errors.New("scale: max order must be positive")

	// ErrDensityCount: fewer wavelet densities than scattering orders.
	ErrDensityCount = errors.New("scale: not enough wavelets-per-octave entries")

	// ErrDensityValue: a wavelet density Q_k is not positive.
	ErrDensityValue = errors.New("scale: wavelets per octave must be positive")

	// ErrWaveletOverflow: J·Q_k does not fit in an int.
	ErrWaveletOverflow = errors.New("scale: wavelet count overflows int")

	// ErrPathLimit: the enumeration would exceed the configured path limit.
	ErrPathLimit = errors.New("scale: path limit exceeded")

	// ErrOrderRange: a per-order accessor was called with order outside 1..maxOrder.
	ErrOrderRange = errors.New("scale: order out of range")
)

// Method names used as error context prefixes.
const (
	methodNew         = "NewScaleIndexer"
	methodPathToIndex = "PathToIndex"
	methodIndexToPath = "IndexToPath"
	methodIndexToRow  = "IndexToRow"
	methodIsLowPass   = "IsLowPass"
	methodR           = "R"
	methodOrder       = "order"
)

// configErrorf wraps a precise cause under ErrConfiguration with method context.
func configErrorf(method string, cause error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %w: %s", method, ErrConfiguration, cause, fmt.Sprintf(format, args...))
}

// consistencyErrorf reports a failed self-check.
func consistencyErrorf(check, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s: %s", methodNew, ErrConsistency, check, fmt.Sprintf(format, args...))
}

// notFoundf wraps ErrKeyNotFound with method context.
func notFoundf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", method, ErrKeyNotFound, fmt.Sprintf(format, args...))
}
