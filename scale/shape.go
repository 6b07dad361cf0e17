// SPDX-License-Identifier: MIT

package scale

import "fmt"

// ScatteringShape describes the dimensions of a scattering tensor as it is
// passed between the callers of this package. It carries no behavior.
type ScatteringShape struct {
	SignalLength           int // N, number of independent signals
	ScaleCount             int // number of scale paths (see ScaleIndexer.PathCount)
	BatchDimension         int // A, channel/batch axis
	TimeDownsamplingFactor int // T, time axis after downsampling
}

// String renders the shape as "N×scales×A×T".
func (s ScatteringShape) String() string {
	return fmt.Sprintf("%d×%d×%d×%d", s.SignalLength, s.ScaleCount, s.BatchDimension, s.TimeDownsamplingFactor)
}
