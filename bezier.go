package curvefit

import "github.com/go-gl/mathgl/mgl64"

// CubicBezier is a cubic Bezier curve in classical Bernstein form:
//
//	B(t) = (1-t)^3 P0 + 3(1-t)^2 t P1 + 3(1-t) t^2 P2 + t^3 P3,  t in [0,1]
//
// P0 and P3 are literal data points the curve passes through; P1 and P2 are
// control points that steer the tangent direction and magnitude at the
// endpoints.
type CubicBezier struct {
	P0, P1, P2, P3 Point
}

// NewCubicBezier constructs a CubicBezier from its four control points.
func NewCubicBezier(p0, p1, p2, p3 Point) CubicBezier {
	return CubicBezier{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Sample evaluates B(t).
func (c CubicBezier) Sample(t float64) Point {
	ti := 1 - t
	t0 := ti * ti * ti
	t1 := 3 * ti * ti * t
	t2 := 3 * ti * t * t
	t3 := t * t * t
	return Point{xy: mgl64.Vec2{
		t0*c.P0.xy[0] + t1*c.P1.xy[0] + t2*c.P2.xy[0] + t3*c.P3.xy[0],
		t0*c.P0.xy[1] + t1*c.P1.xy[1] + t2*c.P2.xy[1] + t3*c.P3.xy[1],
	}}
}

// Derivative evaluates B'(t).
func (c CubicBezier) Derivative(t float64) Vector {
	ti := 1 - t
	tp0 := 3 * ti * ti
	tp1 := 6 * t * ti
	tp2 := 3 * t * t
	d0 := c.P0.VectorTo(c.P1)
	d1 := c.P1.VectorTo(c.P2)
	d2 := c.P2.VectorTo(c.P3)
	return d0.Scale(tp0).Add(d1.Scale(tp1)).Add(d2.Scale(tp2))
}

// Tangent returns the unit tangent direction at t, or the zero vector if
// the derivative is degenerate (magnitude below epsilon) — callers that
// need a direction regardless should fall back to the chord direction.
func (c CubicBezier) Tangent(t float64) Vector {
	return c.Derivative(t).Normalize()
}

// Equal reports whether c and other have component-equal control points.
func (c CubicBezier) Equal(other CubicBezier) bool {
	return c.P0 == other.P0 && c.P1 == other.P1 && c.P2 == other.P2 && c.P3 == other.P3
}
