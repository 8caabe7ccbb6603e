package curvefit

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func straightCurve(x0, x1 float64) CubicBezier {
	return NewCubicBezier(
		Pt(x0, 0),
		Pt(x0+(x1-x0)/3, 0),
		Pt(x0+2*(x1-x0)/3, 0),
		Pt(x1, 0),
	)
}

func TestNewSplineRejectsBadSampleCount(t *testing.T) {
	if _, err := NewSpline(MinSamplesPerCurve - 1); err == nil {
		t.Error("NewSpline(too few) failed. expected an error")
	}
	if _, err := NewSpline(MaxSamplesPerCurve + 1); err == nil {
		t.Error("NewSpline(too many) failed. expected an error")
	}
	if _, err := NewSpline(MinSamplesPerCurve); err != nil {
		t.Errorf("NewSpline(min) failed: %v", err)
	}
}

func TestSplineAddRejectsDisconnected(t *testing.T) {
	s, _ := NewSpline(8)
	if err := s.Add(straightCurve(0, 10)); err != nil {
		t.Fatalf("Add(first curve) failed: %v", err)
	}
	if err := s.Add(straightCurve(20, 30)); err == nil {
		t.Error("Add(disconnected curve) failed. expected an error")
	}
}

func TestSplineLengthAndSample(t *testing.T) {
	s, _ := NewSpline(16)
	if err := s.Add(straightCurve(0, 10)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Add(straightCurve(10, 20)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if got := s.Length(); !isClose(got, 20, 1e-6) {
		t.Errorf("Length() failed. %g != 20", got)
	}

	tests := []struct {
		u    float64
		want Point
	}{
		{0, Pt(0, 0)},
		{1, Pt(20, 0)},
		{0.5, Pt(10, 0)},
		{0.25, Pt(5, 0)},
		{-1, Pt(0, 0)},
		{2, Pt(20, 0)},
	}
	for h, test := range tests {
		got, err := s.Sample(test.u)
		if err != nil {
			t.Fatalf("[%d]Sample(%g) failed: %v", h, test.u, err)
		}
		if !isClose(got.X(), test.want.X(), 1e-6) || !isClose(got.Y(), test.want.Y(), 1e-6) {
			t.Errorf("[%d]Sample(%g) failed. %v != %v", h, test.u, got, test.want)
		}
	}
}

func TestSplineSampleMonotoneArcLength(t *testing.T) {
	s, _ := NewSpline(32)
	for i := 0; i < 4; i++ {
		if err := s.Add(straightCurve(float64(i*5), float64((i+1)*5))); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	prevX := math.Inf(-1)
	for i := 0; i <= 100; i++ {
		u := float64(i) / 100
		p, err := s.Sample(u)
		if err != nil {
			t.Fatalf("Sample(%g) failed: %v", u, err)
		}
		if p.X() < prevX-1e-9 {
			t.Errorf("Sample(%g) failed. x went backwards: %g < %g", u, p.X(), prevX)
		}
		prevX = p.X()
	}
}

func TestSplineUpdate(t *testing.T) {
	s, _ := NewSpline(8)
	if err := s.Add(straightCurve(0, 10)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Add(straightCurve(10, 20)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if _, err := s.Sample(0.5); err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	replacement := straightCurve(0, 10)
	if err := s.Update(0, replacement); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	want := []CubicBezier{replacement, straightCurve(10, 20)}
	if diff := cmp.Diff(want, s.Curves()); diff != "" {
		t.Errorf("Update produced unexpected curve sequence (-want +got):\n%s", diff)
	}

	if err := s.Update(5, replacement); err == nil {
		t.Error("Update(out of range) failed. expected an error")
	}
}

func TestSplineGetSamplePositionNoCurves(t *testing.T) {
	s, _ := NewSpline(8)
	if _, err := s.GetSamplePosition(0.5); err == nil {
		t.Error("GetSamplePosition on empty spline failed. expected an error")
	}
}

func TestSplineClear(t *testing.T) {
	s, _ := NewSpline(8)
	if err := s.Add(straightCurve(0, 10)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	s.Clear()
	if len(s.Curves()) != 0 {
		t.Errorf("Clear() failed. expected no curves, got %d", len(s.Curves()))
	}
	if s.Length() != 0 {
		t.Errorf("Clear() failed. expected zero length, got %g", s.Length())
	}
}
