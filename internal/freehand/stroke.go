package freehand

import (
	"math"

	"SketchBoard/internal/state"
)

// StrokeOptions tunes the outline produced for a point sequence.
type StrokeOptions struct {
	// Size is the base diameter of the stroke.
	Size float64
	// Thinning is how much speed narrows the stroke, in [-1, 1].
	Thinning float64
	// Smoothing is how far apart outline points must be, in [0, 1].
	Smoothing float64
	// Streamline low-pass filters the input, in [0, 1].
	Streamline float64
	// Complete marks the last input point as final so it is not filtered.
	Complete bool
}

// DefaultStrokeOptions matches the pen used on the board.
func DefaultStrokeOptions() StrokeOptions {
	return StrokeOptions{Size: 8, Thinning: 0.5, Smoothing: 0.5, Streamline: 0.5}
}

const (
	defaultPressure = 0.5
	pressureRate    = 0.275
	// slightly over pi so the cap arcs close
	arcPi = math.Pi + 0.0001
)

type strokePoint struct {
	point    state.Point
	pressure float64
	vector   state.Point
	distance float64
	length   float64
}

// Outline converts raw samples into a closed polygon describing a
// variable-width stroke. It returns nil for no input.
func Outline(points []state.Point, opts StrokeOptions) []state.Point {
	return outline(filter(points, opts), opts)
}

// filter runs the streamline low-pass and computes per-point direction,
// distance and running length.
func filter(input []state.Point, opts StrokeOptions) []strokePoint {
	if len(input) == 0 {
		return nil
	}
	t := 0.15 + (1-opts.Streamline)*0.85

	pts := append([]state.Point(nil), input...)
	switch len(pts) {
	case 1:
		pts = append(pts, pts[0].Add(state.Point{X: 1, Y: 1}))
	case 2:
		a, b := pts[0], pts[1]
		pts = pts[:1]
		for i := 1; i < 5; i++ {
			pts = append(pts, a.Lerp(b, float64(i)/4))
		}
	}

	out := []strokePoint{{point: pts[0], pressure: defaultPressure, vector: state.Point{X: 1, Y: 1}}}
	reachedMin := false
	length := 0.0
	prev := out[0]
	last := len(pts) - 1
	for i := 1; i < len(pts); i++ {
		p := prev.point.Lerp(pts[i], t)
		if opts.Complete && i == last {
			p = pts[i]
		}
		if p.Equal(prev.point) {
			continue
		}
		d := p.Dist(prev.point)
		length += d
		if i < last && !reachedMin {
			if length < opts.Size {
				continue
			}
			reachedMin = true
		}
		prev = strokePoint{
			point:    p,
			pressure: defaultPressure,
			vector:   unit(prev.point.Sub(p)),
			distance: d,
			length:   length,
		}
		out = append(out, prev)
	}
	if len(out) > 1 {
		out[0].vector = out[1].vector
	} else {
		out[0].vector = state.Point{}
	}
	return out
}

func outline(points []strokePoint, opts StrokeOptions) []state.Point {
	if len(points) == 0 || opts.Size <= 0 {
		return nil
	}
	total := points[len(points)-1].length
	minDist := math.Pow(opts.Size*opts.Smoothing, 2)

	var left, right []state.Point

	prevPressure := points[0].pressure
	for _, sp := range points[:min(10, len(points))] {
		prevPressure = (prevPressure + simulatePressure(prevPressure, sp.distance, opts.Size)) / 2
	}

	radius := strokeRadius(opts.Size, opts.Thinning, points[len(points)-1].pressure)
	firstRadius := -1.0
	prevVector := points[0].vector
	pl, pr := points[0].point, points[0].point
	tl, tr := pl, pr
	prevSharp := false

	for i, sp := range points {
		if i < len(points)-1 && total-sp.length < 3 {
			continue
		}
		pressure := sp.pressure
		if opts.Thinning != 0 {
			pressure = simulatePressure(prevPressure, sp.distance, opts.Size)
			radius = strokeRadius(opts.Size, opts.Thinning, pressure)
		} else {
			radius = opts.Size / 2
		}
		if firstRadius < 0 {
			firstRadius = radius
		}
		radius = math.Max(0.01, radius)

		nextVector := sp.vector
		nextDot := 1.0
		if i < len(points)-1 {
			nextVector = points[i+1].vector
			nextDot = dot(sp.vector, nextVector)
		}
		prevDot := dot(sp.vector, prevVector)

		sharp := prevDot < 0 && !prevSharp
		nextSharp := nextDot < 0
		if sharp || nextSharp {
			// round the corner with a half circle
			offset := perp(prevVector).Mul(radius)
			for step, t := 1.0/13, 0.0; t <= 1; t += step {
				tl = rotateAround(sp.point.Sub(offset), sp.point, arcPi*t)
				left = append(left, tl)
				tr = rotateAround(sp.point.Add(offset), sp.point, -arcPi*t)
				right = append(right, tr)
			}
			pl, pr = tl, tr
			if nextSharp {
				prevSharp = true
			}
			continue
		}
		prevSharp = false

		if i == len(points)-1 {
			offset := perp(sp.vector).Mul(radius)
			left = append(left, sp.point.Sub(offset))
			right = append(right, sp.point.Add(offset))
			continue
		}

		offset := perp(nextVector.Lerp(sp.vector, nextDot)).Mul(radius)
		tl = sp.point.Sub(offset)
		if i <= 1 || dist2(pl, tl) > minDist {
			left = append(left, tl)
			pl = tl
		}
		tr = sp.point.Add(offset)
		if i <= 1 || dist2(pr, tr) > minDist {
			right = append(right, tr)
			pr = tr
		}
		prevPressure = pressure
		prevVector = sp.vector
	}

	first := points[0].point
	lastPt := first.Add(state.Point{X: 1, Y: 1})
	if len(points) > 1 {
		lastPt = points[len(points)-1].point
	}

	if len(points) == 1 || len(left) == 0 || len(right) == 0 {
		// a dot
		r := firstRadius
		if r < 0 {
			r = radius
		}
		start := first.Add(unit(perp(first.Sub(lastPt))).Mul(-r))
		var ring []state.Point
		for step, t := 1.0/13, 1.0/13; t <= 1; t += step {
			ring = append(ring, rotateAround(start, first, arcPi*2*t))
		}
		return ring
	}

	var startCap []state.Point
	for step, t := 1.0/13, 1.0/13; t <= 1; t += step {
		startCap = append(startCap, rotateAround(right[0], first, arcPi*t))
	}

	var endCap []state.Point
	direction := perp(points[len(points)-1].vector.Mul(-1))
	start := lastPt.Add(direction.Mul(radius))
	for step, t := 1.0/29, 1.0/29; t < 1; t += step {
		endCap = append(endCap, rotateAround(start, lastPt, arcPi*3*t))
	}

	out := make([]state.Point, 0, len(left)+len(endCap)+len(right)+len(startCap))
	out = append(out, left...)
	out = append(out, endCap...)
	for i := len(right) - 1; i >= 0; i-- {
		out = append(out, right[i])
	}
	return append(out, startCap...)
}

func simulatePressure(prev, distance, size float64) float64 {
	sp := math.Min(1, distance/size)
	rp := math.Min(1, 1-sp)
	return math.Min(1, prev+(rp-prev)*(sp*pressureRate))
}

func strokeRadius(size, thinning, pressure float64) float64 {
	return size * (0.5 - thinning*(0.5-pressure))
}

func unit(p state.Point) state.Point {
	l := math.Hypot(p.X, p.Y)
	if l == 0 {
		return state.Point{}
	}
	return state.Point{X: p.X / l, Y: p.Y / l}
}

func perp(p state.Point) state.Point { return state.Point{X: p.Y, Y: -p.X} }

func dot(a, b state.Point) float64 { return a.X*b.X + a.Y*b.Y }

func dist2(a, b state.Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

func rotateAround(p, c state.Point, rad float64) state.Point {
	s, co := math.Sincos(rad)
	px, py := p.X-c.X, p.Y-c.Y
	return state.Point{X: px*co - py*s + c.X, Y: px*s + py*co + c.Y}
}
