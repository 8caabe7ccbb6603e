package curvefit

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats"
)

// epsilon bounds the squared-distance near-equality test used throughout
// the package (EqualsOrClose, RemoveDuplicates, Spline continuity checks).
const epsilon = 1.2e-12

// machineEpsilon is the float64 analogue of the reference implementation's
// std::numeric_limits<float>::epsilon(), used for the least-squares
// conditioning checks in fitcore.go.
const machineEpsilon = 2.220446049250313e-16

// Point is a coordinate on the 2-D plane. Points are affine: adding a
// Vector to a Point yields a Point, but two Points cannot be added directly.
type Point struct {
	xy mgl64.Vec2
}

// Pt constructs a Point from its x and y coordinates.
func Pt(x, y float64) Point {
	return Point{xy: mgl64.Vec2{x, y}}
}

// X returns the x coordinate.
func (p Point) X() float64 { return p.xy[0] }

// Y returns the y coordinate.
func (p Point) Y() float64 { return p.xy[1] }

// String renders the point for debugging and test failure messages.
func (p Point) String() string {
	return fmt.Sprintf("Point(%g, %g)", p.xy[0], p.xy[1])
}

// Add returns p translated by v.
func (p Point) Add(v Vector) Point {
	return Point{xy: mgl64.Vec2{p.xy[0] + v.ij[0], p.xy[1] + v.ij[1]}}
}

// VectorTo returns the vector that points from p to q.
func (p Point) VectorTo(q Point) Vector {
	return Vector{ij: mgl64.Vec2{q.xy[0] - p.xy[0], q.xy[1] - p.xy[1]}}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.xy[0]-p.xy[0], q.xy[1]-p.xy[1])
}

// DistanceSquared returns the squared Euclidean distance between p and q,
// cheaper than Distance when only relative magnitude matters.
func (p Point) DistanceSquared(q Point) float64 {
	dx, dy := q.xy[0]-p.xy[0], q.xy[1]-p.xy[1]
	return dx*dx + dy*dy
}

// Lerp linearly interpolates between p and q; t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{xy: mgl64.Vec2{
		p.xy[0] + (q.xy[0]-p.xy[0])*t,
		p.xy[1] + (q.xy[1]-p.xy[1])*t,
	}}
}

// EqualsOrClose reports whether p and q are within epsilon of each other,
// compared as squared distance.
func (p Point) EqualsOrClose(q Point) bool {
	return p.DistanceSquared(q) < epsilon
}

// Equal reports whether p and q have identical coordinates. Unlike
// EqualsOrClose, this is exact component equality; it also doubles as the
// hook go-cmp uses to compare Points and slices of Points without needing
// cmp.AllowUnexported.
func (p Point) Equal(q Point) bool {
	return p.xy == q.xy
}

// Vector is a 2-D direction and magnitude, distinct from Point so that the
// two cannot be accidentally added together.
type Vector struct {
	ij mgl64.Vec2
}

// Vec constructs a Vector from its i and j components.
func Vec(i, j float64) Vector {
	return Vector{ij: mgl64.Vec2{i, j}}
}

// zeroVector is the degenerate-direction sentinel returned by Normalize and
// CubicBezier.Tangent when the input has no well-defined direction.
var zeroVector = Vector{}

// I returns the i (x) component.
func (v Vector) I() float64 { return v.ij[0] }

// J returns the j (y) component.
func (v Vector) J() float64 { return v.ij[1] }

// String renders the vector for debugging and test failure messages.
func (v Vector) String() string {
	return fmt.Sprintf("Vector(%g, %g)", v.ij[0], v.ij[1])
}

// Add returns the component-wise sum of v and w.
func (v Vector) Add(w Vector) Vector {
	return Vector{ij: mgl64.Vec2{v.ij[0] + w.ij[0], v.ij[1] + w.ij[1]}}
}

// Scale returns v multiplied by the scalar s.
func (v Vector) Scale(s float64) Vector {
	return Vector{ij: mgl64.Vec2{v.ij[0] * s, v.ij[1] * s}}
}

// Negate returns -v.
func (v Vector) Negate() Vector {
	return Vector{ij: mgl64.Vec2{-v.ij[0], -v.ij[1]}}
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) float64 {
	return v.ij[0]*w.ij[0] + v.ij[1]*w.ij[1]
}

// CrossZ returns the z component of the 3-D cross product of v and w,
// treating both as lying in the z=0 plane. Used by the RDP perpendicular
// distance calculation.
func (v Vector) CrossZ(w Vector) float64 {
	return v.ij[0]*w.ij[1] - v.ij[1]*w.ij[0]
}

// Magnitude returns the Euclidean length of v.
func (v Vector) Magnitude() float64 {
	return math.Hypot(v.ij[0], v.ij[1])
}

// MagnitudeSquared returns the squared Euclidean length of v.
func (v Vector) MagnitudeSquared() float64 {
	return v.ij[0]*v.ij[0] + v.ij[1]*v.ij[1]
}

// Normalize returns v scaled to unit length, or the zero vector if v's
// magnitude is below epsilon (a degenerate direction).
func (v Vector) Normalize() Vector {
	m := v.Magnitude()
	if m < epsilon {
		return zeroVector
	}
	return v.Scale(1 / m)
}

// IsZero reports whether v is within epsilon of the zero vector.
func (v Vector) IsZero() bool {
	return v.MagnitudeSquared() < epsilon
}

// Equal reports whether v and w have identical components. Like
// Point.Equal, this also serves as go-cmp's comparison hook for Vector.
func (v Vector) Equal(w Vector) bool {
	return v.ij == w.ij
}

// isClose reports whether a and b agree to within the given absolute or
// relative tolerance, whichever is looser. A thin wrapper around
// gonum's floats.EqualWithinAbsOrRel, used by the tests for approximate
// scalar comparisons.
func isClose(a, b, tol float64) bool {
	return floats.EqualWithinAbsOrRel(a, b, tol, tol)
}
