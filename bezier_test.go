package curvefit

import "testing"

func TestCubicBezierSample(t *testing.T) {
	// A straight-line cubic (control points on the chord) must sample
	// exactly onto the line at every t.
	line := NewCubicBezier(Pt(0, 0), Pt(10.0/3, 0), Pt(20.0/3, 0), Pt(10, 0))

	tests := []struct {
		t    float64
		want Point
	}{
		{0, Pt(0, 0)},
		{1, Pt(10, 0)},
		{0.5, Pt(5, 0)},
		{0.25, Pt(2.5, 0)},
	}
	for h, test := range tests {
		got := line.Sample(test.t)
		if !got.EqualsOrClose(test.want) {
			t.Errorf("[%d]Sample(%g) failed. %v != %v", h, test.t, got, test.want)
		}
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	c := NewCubicBezier(Pt(1, 2), Pt(3, 9), Pt(7, -2), Pt(9, 4))
	if got := c.Sample(0); !got.EqualsOrClose(c.P0) {
		t.Errorf("Sample(0) failed. %v != %v", got, c.P0)
	}
	if got := c.Sample(1); !got.EqualsOrClose(c.P3) {
		t.Errorf("Sample(1) failed. %v != %v", got, c.P3)
	}
}

func TestCubicBezierDerivativeOfLine(t *testing.T) {
	// Straight-line cubic with uniformly spaced control points has a
	// constant derivative equal to 3*(P1-P0) at every t.
	line := NewCubicBezier(Pt(0, 0), Pt(10.0/3, 0), Pt(20.0/3, 0), Pt(10, 0))
	want := Vec(10, 0)
	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		got := line.Derivative(tt)
		if !isClose(got.I(), want.I(), 1e-9) || !isClose(got.J(), want.J(), 1e-9) {
			t.Errorf("Derivative(%g) failed. %v != %v", tt, got, want)
		}
	}
}

func TestCubicBezierTangentDegenerate(t *testing.T) {
	// All four control points coincide: the derivative is zero everywhere,
	// so Tangent must report the zero vector rather than panic or NaN out.
	p := Pt(2, 2)
	c := NewCubicBezier(p, p, p, p)
	got := c.Tangent(0.5)
	if !got.IsZero() {
		t.Errorf("Tangent(0.5) on a degenerate curve failed. %v is not zero", got)
	}
}

func TestCubicBezierEqual(t *testing.T) {
	a := NewCubicBezier(Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3))
	b := NewCubicBezier(Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3))
	c := NewCubicBezier(Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 4))
	if !a.Equal(b) {
		t.Errorf("Equal() failed. %v != %v", a, b)
	}
	if a.Equal(c) {
		t.Errorf("Equal() failed. %v == %v, expected inequality", a, c)
	}
}
