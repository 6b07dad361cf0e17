// SPDX-License-Identifier: MIT
package scale_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scatspectra/scale"
)

// TestOptions_PanicOnNonsense verifies WithX constructors fail fast.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { scale.WithLogger(nil) })
	assert.Panics(t, func() { scale.WithPathLimit(0) })
	assert.Panics(t, func() { scale.WithCollapseMode(scale.CollapseMode(42)) })
}

// TestWithPathLimit stops the enumeration once the cap is crossed.
func TestWithPathLimit(t *testing.T) {
	// J=4, Q=[1,1], r_max=2 has 5 + 10 paths.
	_, err := scale.NewScaleIndexer(4, []int{1, 1}, 2, scale.WithPathLimit(4))
	assert.ErrorIs(t, err, scale.ErrPathLimit, "order 1 alone has 5 paths")
	assert.ErrorIs(t, err, scale.ErrConfiguration)

	_, err = scale.NewScaleIndexer(4, []int{1, 1}, 2, scale.WithPathLimit(14))
	assert.ErrorIs(t, err, scale.ErrPathLimit)

	sc, err := scale.NewScaleIndexer(4, []int{1, 1}, 2, scale.WithPathLimit(15))
	require.NoError(t, err)
	assert.Equal(t, 16, sc.PathCount())
}

// TestWithLogger captures the construction diagnostics.
func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, err := scale.NewScaleIndexer(3, []int{1, 1}, 2, scale.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "enumerated scale paths")
	assert.Contains(t, out, "self-check passed")
}

// TestWithCollapseMode builds under both modes; the last option wins.
func TestWithCollapseMode(t *testing.T) {
	for _, mode := range []scale.CollapseMode{scale.CollapseAllOrders, scale.CollapseSecondOrder} {
		sc, err := scale.NewScaleIndexer(5, []int{1, 1, 1}, 3,
			scale.WithCollapseMode(scale.CollapseAllOrders), scale.WithCollapseMode(mode))
		require.NoError(t, err)
		assert.Equal(t, 42, sc.PathCount(), "1 + 6 + C(6,2) + C(6,3)")
	}
}
