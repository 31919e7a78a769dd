package state

import "math"

// Rect is an axis-aligned world box with non-negative extents.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect builds a Rect from a possibly negative width/height.
func NewRect(x, y, w, h float64) Rect {
	if w < 0 {
		x += w
		w = -w
	}
	if h < 0 {
		y += h
		h = -h
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MaxY() float64 { return r.Y + r.Height }

func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Expand grows the rect by padding on all sides.
func (r Rect) Expand(padding float64) Rect {
	return Rect{
		X:      r.X - padding,
		Y:      r.Y - padding,
		Width:  r.Width + 2*padding,
		Height: r.Height + 2*padding,
	}
}

// Union returns the smallest rect covering both.
func (r Rect) Union(o Rect) Rect {
	minX := math.Min(r.MinX(), o.MinX())
	minY := math.Min(r.MinY(), o.MinY())
	maxX := math.Max(r.MaxX(), o.MaxX())
	maxY := math.Max(r.MaxY(), o.MaxY())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Overlaps treats touching edges as overlapping.
func (r Rect) Overlaps(o Rect) bool {
	return !(r.MaxX() < o.MinX() || o.MaxX() < r.MinX() ||
		r.MaxY() < o.MinY() || o.MaxY() < r.MinY())
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() &&
		p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// PointsBounds returns the box of pts and false when pts is empty.
func PointsBounds(pts []Point) (Rect, bool) {
	if len(pts) == 0 {
		return Rect{}, false
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}

// ShapesBounds returns the union of all shape boxes and false when shapes
// is empty.
func ShapesBounds(shapes []Shape) (Rect, bool) {
	if len(shapes) == 0 {
		return Rect{}, false
	}
	b := shapes[0].Bounds()
	for _, s := range shapes[1:] {
		b = b.Union(s.Bounds())
	}
	return b, true
}

// HitTest returns the top-most shape (last in paint order) under p.
// tolerance is the world distance within which a segment counts as hit.
func HitTest(shapes []Shape, p Point, tolerance float64) (Shape, bool) {
	for i := len(shapes) - 1; i >= 0; i-- {
		if hits(shapes[i], p, tolerance) {
			return shapes[i], true
		}
	}
	return Shape{}, false
}

func hits(s Shape, p Point, tolerance float64) bool {
	if s.Rotation != 0 {
		// test in the shape's local frame
		p = rotateAbout(p, s.Center(), -s.Rotation*math.Pi/180)
	}
	switch s.Type {
	case Line, Arrow:
		a := Point{X: s.X, Y: s.Y}
		b := Point{X: s.X + s.Width, Y: s.Y + s.Height}
		return segmentDistance(p, a, b) <= tolerance
	case Circle:
		b := s.Bounds()
		rx, ry := b.Width/2+tolerance, b.Height/2+tolerance
		c := b.Center()
		dx, dy := (p.X-c.X)/rx, (p.Y-c.Y)/ry
		return dx*dx+dy*dy <= 1
	default:
		return s.Bounds().Expand(tolerance).Contains(p)
	}
}

func segmentDistance(p, a, b Point) float64 {
	d := b.Sub(a)
	l2 := d.X*d.X + d.Y*d.Y
	if l2 == 0 {
		return p.Dist(a)
	}
	t := ((p.X-a.X)*d.X + (p.Y-a.Y)*d.Y) / l2
	t = math.Max(0, math.Min(1, t))
	return p.Dist(a.Add(d.Mul(t)))
}

func rotateAbout(p, c Point, rad float64) Point {
	s, co := math.Sincos(rad)
	dx, dy := p.X-c.X, p.Y-c.Y
	return Point{X: c.X + dx*co - dy*s, Y: c.Y + dx*s + dy*co}
}
