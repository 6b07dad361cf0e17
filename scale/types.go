// SPDX-License-Identifier: MIT
// Package: scatspectra/scale
//
// types.go — the two path representations and their conversions.
//
//	Path — variable-length (j1, …, jr); the empty Path is order 0.
//	Row  — fixed-width row of a path table; real coordinates first, then
//	       Unused in every remaining slot.
//
// Unused is negative, so it can never collide with a real coordinate.

package scale

import (
	"cmp"
	"encoding/binary"
	"slices"
	"strconv"
	"strings"
)

const (
	// Unused marks an empty slot of a fixed-width Row.
	Unused = -1

	// NoIndex is the "no path yet" index (pre-scattering state).
	// IndexToPath(NoIndex) yields the empty path.
	NoIndex = -1
)

// Path is a scale path (j1, …, jr). The empty Path denotes order 0.
type Path []int

// Row is a fixed-width path row padded with Unused.
type Row []int

// Order returns the scattering order of p, i.e. its length.
func (p Path) Order() int { return len(p) }

// Clone returns an independent copy of p. The empty path clones to Path{}.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Equal reports whether p and q hold the same coordinates.
func (p Path) Equal(q Path) bool { return slices.Equal(p, q) }

// Row pads p with Unused up to width. If width < len(p) the full path
// is kept so no coordinate is ever dropped.
func (p Path) Row(width int) Row {
	if width < len(p) {
		width = len(p)
	}
	out := make(Row, width)
	n := copy(out, p)
	for i := n; i < width; i++ {
		out[i] = Unused
	}
	return out
}

// String renders p as "(j1, j2, …)", "()" for the empty path.
func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, j := range p {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(j))
	}
	b.WriteByte(')')
	return b.String()
}

// Path truncates r at its first Unused slot.
// ok is false when a real coordinate follows an Unused slot, which no
// well-formed row ever contains.
func (r Row) Path() (p Path, ok bool) {
	end := slices.Index(r, Unused)
	if end < 0 {
		return Path(slices.Clone([]int(r))), true
	}
	for _, j := range r[end:] {
		if j != Unused {
			return nil, false
		}
	}
	return Path(slices.Clone([]int(r[:end]))), true
}

// ComparePaths orders paths by scattering order first, then lexicographically.
// It returns -1, 0 or +1 and is the order in which indices are assigned.
func ComparePaths(p, q Path) int {
	if c := cmp.Compare(len(p), len(q)); c != 0 {
		return c
	}
	return slices.Compare(p, q)
}

// pathKey encodes p as a map key. Uvarints are prefix-free, so the
// concatenation is unique per path. All coordinates must be >= 0.
func pathKey(p []int) string {
	buf := make([]byte, 0, len(p)*2)
	for _, j := range p {
		buf = binary.AppendUvarint(buf, uint64(j))
	}
	return string(buf)
}
