// SPDX-License-Identifier: MIT

package scale

// White-box bridge: exposes the private self-checks and builders to
// scale_test so their failure branches can be driven with tampered input.
var (
	CreateScalePaths   = createScalePaths
	BuildCoding        = buildCoding
	ComputeLowPassMask = computeLowPassMask
	CheckBijection     = checkBijection
	CheckOrdering      = checkOrdering
	CheckIndexTables   = checkIndexTables
	CheckCollapse      = checkCollapse
	CollapseOrders     = collapseOrders
	PathKey            = pathKey
)
