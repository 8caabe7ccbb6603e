package curvefit

// SplineBuilder combines a CurveBuilder with a Spline, so callers that feed
// in points one at a time can also sample and take tangents along the
// in-progress curve without re-deriving a Spline from CurveBuilder.Curves()
// on every point.
type SplineBuilder struct {
	builder *CurveBuilder
	spline  *Spline
}

// NewSplineBuilder creates a SplineBuilder that resamples incoming points to
// roughly pointDistance apart, fits within maxError, and samples each curve
// samplesPerCurve times for the underlying Spline's arc-length table.
func NewSplineBuilder(pointDistance, maxError float64, samplesPerCurve int) (*SplineBuilder, error) {
	b, err := NewCurveBuilder(pointDistance, maxError)
	if err != nil {
		return nil, err
	}
	sp, err := NewSpline(samplesPerCurve)
	if err != nil {
		return nil, err
	}
	return &SplineBuilder{builder: b, spline: sp}, nil
}

// Add feeds a new raw point into the builder and keeps the underlying
// Spline in sync, reporting whether anything changed.
func (sb *SplineBuilder) Add(p Point) (bool, error) {
	res := sb.builder.AddPoint(p)
	if !res.Changed {
		return false, nil
	}

	curves := sb.builder.Curves()
	switch {
	case res.Added && len(curves) == 1:
		if err := sb.spline.Add(curves[0]); err != nil {
			return false, err
		}
	case res.Added:
		if err := sb.spline.Update(len(sb.spline.Curves())-1, curves[res.FirstChangedIndex]); err != nil {
			return false, err
		}
		for i := res.FirstChangedIndex + 1; i < len(curves); i++ {
			if err := sb.spline.Add(curves[i]); err != nil {
				return false, err
			}
		}
	default:
		if err := sb.spline.Update(len(sb.spline.Curves())-1, curves[len(curves)-1]); err != nil {
			return false, err
		}
	}
	return true, nil
}

// Sample evaluates the in-progress spline at normalized arc-length
// position u.
func (sb *SplineBuilder) Sample(u float64) (Point, error) {
	return sb.spline.Sample(u)
}

// Tangent returns the unit tangent direction at normalized arc-length
// position u.
func (sb *SplineBuilder) Tangent(u float64) (Vector, error) {
	pos, err := sb.spline.GetSamplePosition(u)
	if err != nil {
		return Vector{}, err
	}
	return sb.spline.Curves()[pos.Index].Tangent(pos.T), nil
}

// Curves returns the curves fitted so far. The slice is owned by the
// builder and its contents may change on the next Add call.
func (sb *SplineBuilder) Curves() []CubicBezier {
	return sb.spline.Curves()
}

// Clear discards all accumulated points and curves, returning the builder
// to its initial state.
func (sb *SplineBuilder) Clear() {
	sb.builder.Clear()
	sb.spline.Clear()
}
