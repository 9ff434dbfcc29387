package hexgrid

import (
	"errors"
	"fmt"
	"math"
)

// Sqrt3 is the square root of 3.
const Sqrt3 = 1.7320508075688772935274463415059

// ErrInvalidRadius is returned when a layout radius component is not positive.
var ErrInvalidRadius = errors.New("hexgrid: layout radius must be positive")

// Point is a position in screen space (pixels, or terminal cells).
// Y grows downward.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// PointPair is a line segment between two points.
type PointPair struct {
	A, B Point
}

// Mat2 is a row-major 2x2 matrix.
type Mat2 [2][2]float64

// Apply multiplies the matrix by the column vector (x, y).
func (m Mat2) Apply(x, y float64) (float64, float64) {
	return m[0][0]*x + m[0][1]*y, m[1][0]*x + m[1][1]*y
}

// Orientation fixes how the grid is laid out on screen.
type Orientation struct {
	toScreen   Mat2
	toCoord    Mat2
	startAngle float64 // in units of 60 degrees

	// sideVertex[d] is the index of the first vertex of the side facing d.
	sideVertex [6]int
}

// NewOrientation builds an orientation from the hex-to-screen matrix, its
// inverse and the angle of vertex 0 in units of 60 degrees.
func NewOrientation(toScreen, toCoord Mat2, startAngle float64) Orientation {
	o := Orientation{
		toScreen:   toScreen,
		toCoord:    toCoord,
		startAngle: startAngle,
	}
	// The side shared with the neighbour in direction d is the one whose
	// midpoint lies halfway to that neighbour's center.
	for _, d := range Directions {
		dir := DirectionOffset(d)
		nx, ny := toScreen.Apply(float64(dir.q), float64(dir.r))
		best, bestDist := 0, math.Inf(1)
		for k := 0; k < 6; k++ {
			a := unitVertex(startAngle, k)
			b := unitVertex(startAngle, (k+1)%6)
			mx, my := (a.X+b.X)/2-nx/2, (a.Y+b.Y)/2-ny/2
			if dist := mx*mx + my*my; dist < bestDist {
				best, bestDist = k, dist
			}
		}
		o.sideVertex[d] = best
	}
	return o
}

// StartAngle returns the angle of vertex 0 in units of 60 degrees.
func (o Orientation) StartAngle() float64 {
	return o.startAngle
}

// SideVertices returns the indices of the two vertices bounding the side
// that faces direction d, in increasing cyclic order.
func (o Orientation) SideVertices(d Direction) (int, int) {
	k := o.sideVertex[d]
	return k, (k + 1) % 6
}

func unitVertex(startAngle float64, index int) Point {
	angle := math.Pi * (startAngle + float64(index)) / 3
	return Point{X: math.Cos(angle), Y: math.Sin(angle)}
}

// The two canonical orientations.
var (
	PointyTop = NewOrientation(
		Mat2{{Sqrt3, Sqrt3 / 2}, {0, 1.5}},
		Mat2{{Sqrt3 / 3, -1.0 / 3}, {0, 2.0 / 3}},
		0.5,
	)
	FlatTop = NewOrientation(
		Mat2{{1.5, 0}, {Sqrt3 / 2, Sqrt3}},
		Mat2{{2.0 / 3, 0}, {-1.0 / 3, Sqrt3 / 3}},
		0,
	)
)

// Layout maps grid cells to screen positions and back.
// Build one with NewLayout; the zero value is not usable.
type Layout struct {
	orientation Orientation
	radius      Point
	origin      Point
}

// NewLayout builds a layout. Both radius components must be positive.
func NewLayout(o Orientation, radius, origin Point) (Layout, error) {
	if !(radius.X > 0) || !(radius.Y > 0) {
		return Layout{}, fmt.Errorf("%w: got (%g, %g)", ErrInvalidRadius, radius.X, radius.Y)
	}
	return Layout{orientation: o, radius: radius, origin: origin}, nil
}

// Orientation returns the layout orientation.
func (l Layout) Orientation() Orientation {
	return l.orientation
}

// Radius returns the center-to-corner radius per axis.
func (l Layout) Radius() Point {
	return l.radius
}

// Origin returns the screen position of the origin cell's center.
func (l Layout) Origin() Point {
	return l.origin
}

// WithOrigin returns a copy of the layout centered on a different origin.
func (l Layout) WithOrigin(origin Point) Layout {
	l.origin = origin
	return l
}

// CenterPixel returns the screen position of the cell's center.
func (l Layout) CenterPixel(h Hex) Point {
	x, y := l.orientation.toScreen.Apply(float64(h.q), float64(h.r))
	return Point{
		X: x*l.radius.X + l.origin.X,
		Y: y*l.radius.Y + l.origin.Y,
	}
}

// VertexOffset returns the offset of corner index (0..5) from a cell center.
func (l Layout) VertexOffset(index int) Point {
	u := unitVertex(l.orientation.startAngle, index)
	return Point{X: l.radius.X * u.X, Y: l.radius.Y * u.Y}
}

// Vertices returns the six corners of the cell.
func (l Layout) Vertices(h Hex) [6]Point {
	var out [6]Point
	center := l.CenterPixel(h)
	for i := range out {
		out[i] = center.Add(l.VertexOffset(i))
	}
	return out
}

// Edges returns the six sides of the cell; edge i joins vertex i and
// vertex i+1 (mod 6).
func (l Layout) Edges(h Hex) [6]PointPair {
	var out [6]PointPair
	v := l.Vertices(h)
	for i := range out {
		out[i] = PointPair{A: v[i], B: v[(i+1)%6]}
	}
	return out
}

// Side returns the segment the cell shares with its neighbour in direction d.
func (l Layout) Side(h Hex, d Direction) PointPair {
	v := l.Vertices(h)
	a, b := l.orientation.SideVertices(d)
	return PointPair{A: v[a], B: v[b]}
}

// BoundingBox returns the top-left and bottom-right corners of the smallest
// axis-aligned box containing the cell.
func (l Layout) BoundingBox(h Hex) (Point, Point) {
	v := l.Vertices(h)
	lo, hi := v[0], v[0]
	for _, p := range v[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}

// PixelToHex returns the cell containing the screen point p.
func (l Layout) PixelToHex(p Point) Hex {
	px := (p.X - l.origin.X) / l.radius.X
	py := (p.Y - l.origin.Y) / l.radius.Y
	q, r := l.orientation.toCoord.Apply(px, py)
	return cubeRound(q, r, -q-r)
}

// cubeRound snaps fractional cube coordinates to the nearest cell. The axis
// with the largest rounding error is recomputed from the other two; ties
// fall through in q, r, s order.
func cubeRound(fq, fr, fs float64) Hex {
	q := math.Round(fq)
	r := math.Round(fr)
	s := math.Round(fs)
	dq := math.Abs(q - fq)
	dr := math.Abs(r - fr)
	ds := math.Abs(s - fs)
	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	default:
		s = -q - r
	}
	return Hex{q: int(q), s: int(s), r: int(r)}
}
