// SPDX-License-Identifier: MIT

package scale

import "github.com/samber/lo"

// computeLowPassMask marks, per order r, which table entries end with the
// low-pass coordinate JQ(r). Every order 1..maxOrder gets a mask.
func computeLowPassMask(octaveCount int, densities []int, tables [][]Path) [][]bool {
	return lo.Map(tables, func(t []Path, o int) []bool {
		jq := waveletCount(octaveCount, densities, o+1)
		return lo.Map(t, func(p Path, _ int) bool {
			return p[len(p)-1] == jq
		})
	})
}
