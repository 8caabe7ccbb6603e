package curvefit

// MinSamplesPerCurve and MaxSamplesPerCurve bound NewSpline's
// samplesPerCurve argument: the number of polyline samples Spline takes
// along each curve to build its arc-length table.
const (
	MinSamplesPerCurve = 4
	MaxSamplesPerCurve = 1024
)

// SamplePos locates a point along a Spline: curve index and the local
// parameter t within that curve.
type SamplePos struct {
	Index int
	T     float64
}

// Spline is an ordered, end-to-end connected sequence of cubic Bezier
// curves, indexed by normalized arc length so Sample(u) for u in [0,1]
// advances along the spline at a roughly constant rate regardless of how
// unevenly the underlying curves are parameterized.
//
// Arc length is approximated by sampling samplesPerCurve points along each
// curve and accumulating chord distances between them; it is never exact,
// but converges quickly as samplesPerCurve grows.
type Spline struct {
	curves          []CubicBezier
	arclen          []float64
	samplesPerCurve int
}

// NewSpline creates an empty Spline that samples samplesPerCurve points per
// curve for its arc-length table.
func NewSpline(samplesPerCurve int) (*Spline, error) {
	if samplesPerCurve < MinSamplesPerCurve || samplesPerCurve > MaxSamplesPerCurve {
		return nil, invalidArgument("curvefit: NewSpline: samplesPerCurve must be between %d and %d", MinSamplesPerCurve, MaxSamplesPerCurve)
	}
	return &Spline{samplesPerCurve: samplesPerCurve}, nil
}

// Add appends curve to the end of the spline. curve.P0 must equal (within
// epsilon) the P3 of the current last curve, unless the spline is empty.
func (s *Spline) Add(curve CubicBezier) error {
	if len(s.curves) > 0 && !s.curves[len(s.curves)-1].P3.EqualsOrClose(curve.P0) {
		return invalidArgument("curvefit: Spline.Add: curve does not connect to the current last curve")
	}
	s.curves = append(s.curves, curve)
	s.arclen = append(s.arclen, make([]float64, s.samplesPerCurve)...)
	s.updateArcLengths(len(s.curves) - 1)
	return nil
}

// Update replaces the curve at index, leaving the rest of the spline
// unchanged, and recomputes the arc-length table from that point on. curve
// must still connect to its neighbors on both sides.
func (s *Spline) Update(index int, curve CubicBezier) error {
	if index < 0 || index >= len(s.curves) {
		return outOfRange("curvefit: Spline.Update: index %d out of range (%d curves)", index, len(s.curves))
	}
	if index > 0 && !s.curves[index-1].P3.EqualsOrClose(curve.P0) {
		return invalidArgument("curvefit: Spline.Update: curve at index %d would not connect to curve %d", index, index-1)
	}
	if index < len(s.curves)-1 && !s.curves[index+1].P0.EqualsOrClose(curve.P3) {
		return invalidArgument("curvefit: Spline.Update: curve at index %d would not connect to curve %d", index, index+1)
	}

	s.curves[index] = curve
	for i := index; i < len(s.curves); i++ {
		s.updateArcLengths(i)
	}
	return nil
}

// Clear removes every curve, returning the spline to its initial state.
func (s *Spline) Clear() {
	s.curves = nil
	s.arclen = nil
}

// Curves returns the spline's curves in order. The slice is owned by the
// Spline and its contents may change on the next Add/Update call.
func (s *Spline) Curves() []CubicBezier {
	return s.curves
}

// Length returns the spline's total approximate arc length.
func (s *Spline) Length() float64 {
	if len(s.arclen) == 0 {
		return 0
	}
	return s.arclen[len(s.arclen)-1]
}

// Sample evaluates the spline at normalized arc-length position u. u is
// clamped to [0,1]: u<=0 returns the first curve's start and u>=1 returns
// the last curve's end.
func (s *Spline) Sample(u float64) (Point, error) {
	pos, err := s.GetSamplePosition(u)
	if err != nil {
		return Point{}, err
	}
	return s.curves[pos.Index].Sample(pos.T), nil
}

// GetSamplePosition maps a normalized arc-length position u to a curve
// index and local parameter, via a binary search over the cumulative
// per-sample arc-length table built by Add/Update.
func (s *Spline) GetSamplePosition(u float64) (SamplePos, error) {
	if len(s.curves) == 0 {
		return SamplePos{}, invalidArgument("curvefit: Spline.GetSamplePosition: spline has no curves")
	}
	if u < 0 {
		return SamplePos{Index: 0, T: 0}, nil
	}
	if u > 1 {
		return SamplePos{Index: len(s.curves) - 1, T: 1}, nil
	}

	total := s.Length()
	target := u * total

	low, high := 0, len(s.arclen)-1
	index := 0
	var found float64
	for low < high {
		index = (low + high) / 2
		found = s.arclen[index]
		if found < target {
			low = index + 1
		} else {
			high = index
		}
	}

	if index >= len(s.arclen)-1 {
		return SamplePos{Index: len(s.curves) - 1, T: 1}, nil
	}
	if found > target {
		index--
	}

	spc := s.samplesPerCurve
	if index < 0 {
		lim := s.arclen[0]
		part := target / lim
		return SamplePos{Index: 0, T: part / float64(spc)}, nil
	}

	lo, hi := s.arclen[index], s.arclen[index+1]
	var part float64
	switch {
	case target < lo:
		part = 0
	case target > hi:
		part = 1
	default:
		part = (target - lo) / (hi - lo)
	}

	t := (float64((index+1)%spc) + part) / float64(spc)
	curveIndex := (index + 1) / spc
	return SamplePos{Index: curveIndex, T: t}, nil
}

// updateArcLengths recomputes the samplesPerCurve arc-length table entries
// belonging to curves[iCurve], chaining off the previous curve's final
// cumulative length.
func (s *Spline) updateArcLengths(iCurve int) {
	curve := s.curves[iCurve]
	n := s.samplesPerCurve

	clen := 0.0
	if iCurve > 0 {
		clen = s.arclen[iCurve*n-1]
	}

	pp := curve.Sample(0)
	for i := 0; i < n; i++ {
		t := float64(i+1) / float64(n)
		np := curve.Sample(t)
		clen += pp.Distance(np)
		s.arclen[iCurve*n+i] = clen
		pp = np
	}
}
