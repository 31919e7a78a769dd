package state

import "math"

// Point is a world-space sample.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) Mul(f float64) Point { return Point{X: p.X * f, Y: p.Y * f} }
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }
func (p Point) Equal(q Point) bool { return p.X == q.X && p.Y == q.Y }
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// ShapeType is the closed set of drawable kinds.
type ShapeType string

const (
	Rectangle ShapeType = "rectangle"
	Circle    ShapeType = "circle"
	Line      ShapeType = "line"
	Arrow     ShapeType = "arrow"
	Drawing   ShapeType = "drawing"
)

// ShapeTypes lists every valid ShapeType.
var ShapeTypes = []ShapeType{Rectangle, Circle, Line, Arrow, Drawing}

func (t ShapeType) Valid() bool {
	switch t {
	case Rectangle, Circle, Line, Arrow, Drawing:
		return true
	}
	return false
}

// IsSegment reports whether width/height describe a signed vector rather
// than a box.
func (t ShapeType) IsSegment() bool {
	return t == Line || t == Arrow
}

// Shape is a drawable object. For line and arrow, (X,Y)->(X+Width,Y+Height)
// is the segment. Rotation is in degrees about the bounding-box center.
type Shape struct {
	ID          string    `json:"id"`
	Type        ShapeType `json:"type"`
	X           float64   `json:"x"`
	Y           float64   `json:"y"`
	Width       float64   `json:"width"`
	Height      float64   `json:"height"`
	Rotation    float64   `json:"rotation,omitempty"`
	Points      []Point   `json:"points,omitempty"`
	ConnectedTo []string  `json:"connectedTo,omitempty"`
}

// Bounds returns the non-negative world box covered by the shape, ignoring
// rotation.
func (s Shape) Bounds() Rect {
	return NewRect(s.X, s.Y, s.Width, s.Height)
}

// Center is the rotation pivot.
func (s Shape) Center() Point {
	return s.Bounds().Center()
}

// IsConnectedTo reports whether id is already in ConnectedTo.
func (s Shape) IsConnectedTo(id string) bool {
	for _, c := range s.ConnectedTo {
		if c == id {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with s.
func (s Shape) Clone() Shape {
	c := s
	if s.Points != nil {
		c.Points = append([]Point(nil), s.Points...)
	}
	if s.ConnectedTo != nil {
		c.ConnectedTo = append([]string(nil), s.ConnectedTo...)
	}
	return c
}

// Normalize flips negative box extents so Width and Height are >= 0 with
// X/Y moved to the top-left. Segments keep their signed vector since it
// carries the arrow direction; use Bounds for their box.
func Normalize(s Shape) Shape {
	if s.Type.IsSegment() {
		return s
	}
	if s.Width < 0 {
		s.X += s.Width
		s.Width = -s.Width
	}
	if s.Height < 0 {
		s.Y += s.Height
		s.Height = -s.Height
	}
	return s
}
