package curvefit

import "testing"

func TestNewSplineBuilderRejectsBadArgs(t *testing.T) {
	if _, err := NewSplineBuilder(0, 0.1, 8); err == nil {
		t.Error("NewSplineBuilder(0, ...) failed. expected error for non-positive pointDistance")
	}
	if _, err := NewSplineBuilder(1, 0.1, MinSamplesPerCurve-1); err == nil {
		t.Error("NewSplineBuilder(..., too few samples) failed. expected error")
	}
}

func TestSplineBuilderTracksCurveBuilder(t *testing.T) {
	sb, err := NewSplineBuilder(1, 0.05, 16)
	if err != nil {
		t.Fatalf("NewSplineBuilder failed: %v", err)
	}

	for i := 0; i <= 30; i++ {
		if _, err := sb.Add(Pt(float64(i), 0)); err != nil {
			t.Fatalf("Add failed at i=%d: %v", i, err)
		}
	}

	curves := sb.Curves()
	if len(curves) == 0 {
		t.Fatal("SplineBuilder produced no curves for a straight line")
	}

	p, err := sb.Sample(0)
	if err != nil {
		t.Fatalf("Sample(0) failed: %v", err)
	}
	if !p.EqualsOrClose(curves[0].P0) {
		t.Errorf("Sample(0) failed. %v != %v", p, curves[0].P0)
	}

	p, err = sb.Sample(1)
	if err != nil {
		t.Fatalf("Sample(1) failed: %v", err)
	}
	if !p.EqualsOrClose(curves[len(curves)-1].P3) {
		t.Errorf("Sample(1) failed. %v != %v", p, curves[len(curves)-1].P3)
	}

	tan, err := sb.Tangent(0.5)
	if err != nil {
		t.Fatalf("Tangent(0.5) failed: %v", err)
	}
	// The path is a straight horizontal run, so the tangent anywhere along
	// it should point purely in +x.
	if !isClose(tan.J(), 0, 1e-6) || tan.I() <= 0 {
		t.Errorf("Tangent(0.5) failed. expected a +x direction, got %v", tan)
	}
}

func TestSplineBuilderClear(t *testing.T) {
	sb, err := NewSplineBuilder(1, 0.05, 16)
	if err != nil {
		t.Fatalf("NewSplineBuilder failed: %v", err)
	}
	for i := 0; i <= 10; i++ {
		sb.Add(Pt(float64(i), 0))
	}
	if len(sb.Curves()) == 0 {
		t.Fatal("setup failed: expected curves before Clear")
	}
	sb.Clear()
	if len(sb.Curves()) != 0 {
		t.Errorf("Clear() failed. expected no curves, got %d", len(sb.Curves()))
	}
}
