// SPDX-License-Identifier: MIT

package scale

import (
	"math"

	"github.com/samber/lo"
)

// validateConfig rejects malformed construction parameters.
//
// Check order (first failure wins):
//
//	octaveCount >= 1 → maxOrder >= 1 → len(densities) >= maxOrder → densities > 0
//	→ J·Q_k + 1 fits in an int for k = 1..maxOrder
//
// Only the first maxOrder densities are used by the enumeration, but every
// supplied entry must be positive.
func validateConfig(octaveCount int, densities []int, maxOrder int) error {
	// Scalar bounds first.
	if octaveCount < 1 {
		return configErrorf(methodNew, ErrOctaveCount, "J=%d", octaveCount)
	}
	if maxOrder < 1 {
		return configErrorf(methodNew, ErrMaxOrder, "r_max=%d", maxOrder)
	}
	// One density per enumerated order.
	if len(densities) < maxOrder {
		return configErrorf(methodNew, ErrDensityCount, "got %d entries for r_max=%d", len(densities), maxOrder)
	}
	if q, at, _ := lo.FindIndexOf(densities, func(q int) bool { return q < 1 }); at >= 0 {
		return configErrorf(methodNew, ErrDensityValue, "Q[%d]=%d", at, q)
	}
	// JQ(k) and the range bound JQ(k)+1 must not wrap around.
	if q, at, _ := lo.FindIndexOf(densities[:maxOrder], func(q int) bool { return q > (math.MaxInt-1)/octaveCount }); at >= 0 {
		return configErrorf(methodNew, ErrWaveletOverflow, "J=%d × Q[%d]=%d", octaveCount, at, q)
	}
	return nil
}
