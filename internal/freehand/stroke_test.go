package freehand

import (
	"math"
	"testing"

	"SketchBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func horizontal(n int, step float64) []state.Point {
	pts := make([]state.Point, n)
	for i := range pts {
		pts[i] = state.Point{X: float64(i) * step}
	}
	return pts
}

func TestOutlineEmpty(t *testing.T) {
	assert.Nil(t, Outline(nil, DefaultStrokeOptions()))

	opts := DefaultStrokeOptions()
	opts.Size = 0
	assert.Nil(t, Outline(horizontal(5, 10), opts))
}

func TestOutlineSinglePointIsDot(t *testing.T) {
	opts := DefaultStrokeOptions()
	out := Outline([]state.Point{{X: 50, Y: 50}}, opts)
	require.NotEmpty(t, out)

	for _, p := range out {
		d := p.Dist(state.Point{X: 50, Y: 50})
		assert.LessOrEqual(t, d, opts.Size)
	}
}

func TestOutlineStaysNearStroke(t *testing.T) {
	opts := DefaultStrokeOptions()
	opts.Complete = true
	out := Outline(horizontal(30, 4), opts)
	require.NotEmpty(t, out)

	above, below := false, false
	for _, p := range out {
		assert.LessOrEqual(t, math.Abs(p.Y), opts.Size)
		assert.GreaterOrEqual(t, p.X, -opts.Size)
		assert.LessOrEqual(t, p.X, 29*4+opts.Size)
		if p.Y > 0.5 {
			above = true
		}
		if p.Y < -0.5 {
			below = true
		}
	}
	assert.True(t, above, "outline should have width on one side")
	assert.True(t, below, "outline should have width on the other side")
}

func TestThinningChangesWidth(t *testing.T) {
	pts := horizontal(40, 6)
	width := func(thinning float64) float64 {
		opts := DefaultStrokeOptions()
		opts.Thinning = thinning
		opts.Complete = true
		maxY := 0.0
		for _, p := range Outline(pts, opts) {
			maxY = math.Max(maxY, math.Abs(p.Y))
		}
		return maxY
	}

	assert.InDelta(t, 4.0, width(0), 0.2)
	assert.NotEqual(t, width(0), width(0.9))
}

func TestStreamlineSmoothsJitter(t *testing.T) {
	var jittery []state.Point
	for i := 0; i < 40; i++ {
		y := 0.0
		if i%2 == 1 {
			y = 6
		}
		jittery = append(jittery, state.Point{X: float64(i) * 5, Y: y})
	}
	spread := func(streamline float64) float64 {
		opts := DefaultStrokeOptions()
		opts.Streamline = streamline
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, sp := range filter(jittery, opts)[5:] {
			lo = math.Min(lo, sp.point.Y)
			hi = math.Max(hi, sp.point.Y)
		}
		return hi - lo
	}

	assert.Less(t, spread(0.9), spread(0.1))
}

func TestFilterRunningLength(t *testing.T) {
	opts := DefaultStrokeOptions()
	opts.Streamline = 0
	opts.Complete = true
	sps := filter(horizontal(10, 10), opts)
	require.NotEmpty(t, sps)

	for i := 1; i < len(sps); i++ {
		assert.Greater(t, sps[i].length, sps[i-1].length)
		assert.InDelta(t, 1.0, math.Hypot(sps[i].vector.X, sps[i].vector.Y), 1e-9)
	}
	assert.InDelta(t, 90.0, sps[len(sps)-1].length, 1e-9)
}
