package render

import (
	"math"

	"SketchBoard/internal/state"

	"github.com/ojrac/opensimplex-go"
)

// Sketcher turns exact geometry into wobbly two-pass polylines. Jitter
// comes from seeded simplex noise so the same seed and key always give the
// same strokes.
type Sketcher struct {
	roughness float64
	bowing    float64
	noise     opensimplex.Noise
}

const (
	sketchPasses   = 2
	lineSamples    = 8
	ellipseSamples = 36
)

func NewSketcher(seed int64, roughness, bowing float64) *Sketcher {
	return &Sketcher{
		roughness: math.Max(0, roughness),
		bowing:    math.Max(0, bowing),
		noise:     opensimplex.New(seed),
	}
}

func (s *Sketcher) Roughness() float64 { return s.roughness }

// jitter returns a value in [-amount, amount].
func (s *Sketcher) jitter(key, pass, i, amount float64) float64 {
	if amount == 0 {
		return 0
	}
	return amount * s.noise.Eval2(key*0.173+pass*7.31, i*0.917+pass*3.7)
}

// Line sketches a straight segment.
func (s *Sketcher) Line(a, b state.Point, key float64) [][]state.Point {
	if s.roughness == 0 {
		return [][]state.Point{{a, b}}
	}
	length := a.Dist(b)
	offset := s.roughness * math.Min(math.Max(length*0.02, 0.5), 2.5)
	bow := s.bowing * s.roughness * length / 200

	dir := state.Point{}
	if length > 0 {
		dir = b.Sub(a).Mul(1 / length)
	}
	normal := state.Point{X: -dir.Y, Y: dir.X}

	passes := make([][]state.Point, 0, sketchPasses)
	for pass := 0.0; pass < sketchPasses; pass++ {
		start := a.Add(state.Point{X: s.jitter(key, pass, 0, offset), Y: s.jitter(key, pass, 1, offset)})
		end := b.Add(state.Point{X: s.jitter(key, pass, 2, offset), Y: s.jitter(key, pass, 3, offset)})
		mid := start.Lerp(end, 0.5).Add(normal.Mul(bow + s.jitter(key, pass, 4, offset)))

		line := make([]state.Point, 0, lineSamples+1)
		for i := 0; i <= lineSamples; i++ {
			t := float64(i) / lineSamples
			line = append(line, quadAt(start, mid, end, t))
		}
		passes = append(passes, line)
	}
	return passes
}

// Polyline sketches each edge of pts, closing back to the start if closed.
func (s *Sketcher) Polyline(pts []state.Point, closed bool, key float64) [][]state.Point {
	var out [][]state.Point
	n := len(pts)
	edges := n - 1
	if closed {
		edges = n
	}
	for i := 0; i < edges; i++ {
		out = append(out, s.Line(pts[i], pts[(i+1)%n], key+float64(i)*11)...)
	}
	return out
}

// Ellipse sketches an ellipse as two slightly offset loops.
func (s *Sketcher) Ellipse(c state.Point, rx, ry, key float64) [][]state.Point {
	passes := 1
	if s.roughness > 0 {
		passes = sketchPasses
	}
	out := make([][]state.Point, 0, passes)
	for pass := 0; pass < passes; pass++ {
		p := float64(pass)
		amount := s.roughness * math.Min(math.Max(math.Min(rx, ry)*0.05, 0.5), 2.5)
		loop := make([]state.Point, 0, ellipseSamples+1)
		for i := 0; i <= ellipseSamples; i++ {
			a := 2 * math.Pi * float64(i) / ellipseSamples
			// overshoot the seam a little on rough passes
			if i == ellipseSamples && s.roughness > 0 {
				a += 0.15
			}
			r := s.jitter(key, p, float64(i%ellipseSamples), amount)
			loop = append(loop, state.Point{
				X: c.X + (rx+r)*math.Cos(a),
				Y: c.Y + (ry+r)*math.Sin(a),
			})
		}
		out = append(out, loop)
	}
	return out
}

func quadAt(a, c, b state.Point, t float64) state.Point {
	u := 1 - t
	return state.Point{
		X: u*u*a.X + 2*u*t*c.X + t*t*b.X,
		Y: u*u*a.Y + 2*u*t*c.Y + t*t*b.Y,
	}
}
