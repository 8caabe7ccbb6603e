package curvefit

// AddPointResult reports what AddPoint changed, if anything. Changed is
// false when the incoming point was absorbed without crossing the
// builder's point-distance threshold. When Changed is true,
// FirstChangedIndex names the earliest curve index that may have moved and
// Added reports whether a new trailing curve was appended (as opposed to
// only the existing last curve being refit in place).
type AddPointResult struct {
	Changed           bool
	FirstChangedIndex int
	Added             bool
}

// CurveBuilder fits a growing point sequence one point at a time, keeping
// only the trailing curve (and, on a split, the curve before it) subject to
// refitting as new points arrive. Raw input points are resampled to a fixed
// spacing (pointDistance) before they ever reach the fitter, so CurveBuilder
// never has to store the full unthinned input.
type CurveBuilder struct {
	state       fitState
	linDist     float64
	totalLength float64
	first       int
	tanL        Vector
	prev        Point
	result      []CubicBezier
}

// NewCurveBuilder creates a CurveBuilder that resamples incoming points to
// roughly pointDistance apart and keeps the fitted curves within maxError.
func NewCurveBuilder(pointDistance, maxError float64) (*CurveBuilder, error) {
	if pointDistance <= epsilon {
		return nil, invalidArgument("curvefit: NewCurveBuilder: pointDistance must be greater than epsilon")
	}
	if maxError < machineEpsilon {
		return nil, invalidArgument("curvefit: NewCurveBuilder: maxError must be >= epsilon")
	}
	return &CurveBuilder{
		linDist: pointDistance,
		state:   fitState{squaredError: maxError * maxError},
	}, nil
}

// AddPoint feeds a new raw point into the builder. The point is consumed
// immediately; CurveBuilder resamples along the chord from the last
// resampled point (initially the first point added) to p at pointDistance
// intervals, feeding each resampled point to the incremental fitter in turn.
// A point no farther than pointDistance from the last resampled point
// produces no resampled points and is reported as unchanged.
func (b *CurveBuilder) AddPoint(p Point) AddPointResult {
	if len(b.state.pts) == 0 {
		b.prev = p
		b.state.pts = append(b.state.pts, p)
		b.state.arclen = append(b.state.arclen, 0)
		return AddPointResult{}
	}

	prev := b.prev
	td := prev.Distance(p)
	md := b.linDist
	if td <= md {
		return AddPointResult{}
	}

	dir := prev.VectorTo(p).Normalize()
	rd := td - md
	first := -1
	added := false
	for {
		np := prev.Add(dir.Scale(md))
		res := b.addInternal(np)
		if first == -1 || res.FirstChangedIndex < first {
			first = res.FirstChangedIndex
		}
		added = added || res.Added
		prev = np
		rd -= md
		if rd <= md {
			break
		}
	}
	b.prev = prev
	return AddPointResult{Changed: true, FirstChangedIndex: first, Added: added}
}

// addInternal appends one resampled point and refits the trailing curve (or
// splits it if it no longer fits within tolerance).
func (b *CurveBuilder) addInternal(np Point) AddPointResult {
	last := len(b.state.pts)
	b.state.pts = append(b.state.pts, np)
	b.totalLength += b.linDist
	b.state.arclen = append(b.state.arclen, b.totalLength)

	if last == 1 {
		p0 := b.state.pts[0]
		tanL := p0.VectorTo(np).Normalize()
		tanR := tanL.Negate()
		b.tanL = tanL
		alpha := b.linDist / 3
		curve := NewCubicBezier(p0, p0.Add(tanL.Scale(alpha)), np.Add(tanR.Scale(alpha)), np)
		b.result = append(b.result, curve)
		return AddPointResult{Changed: true, FirstChangedIndex: 0, Added: true}
	}

	lastCurve := len(b.result) - 1
	first := b.first
	tanL := b.tanL
	if lastCurve == 0 {
		tanL = b.state.getLeftTangent(last)
	}
	tanR := b.state.getRightTangent(first)

	curve, ok, split := b.state.fitCurve(first, last, tanL, tanR)
	if ok {
		b.result[lastCurve] = curve
		return AddPointResult{Changed: true, FirstChangedIndex: lastCurve, Added: false}
	}

	tanM1 := b.state.getCenterTangent(first, last, split)
	tanM2 := tanM1.Negate()
	if first == 0 && split < endTangentNPts {
		tanL = b.state.getLeftTangent(split)
	}

	leftCurve, _, _ := b.state.fitCurve(first, split, tanL, tanM1)
	b.result[lastCurve] = leftCurve

	rightCurve, _, _ := b.state.fitCurve(split, last, tanM2, tanR)
	b.result = append(b.result, rightCurve)

	b.first = split
	b.tanL = tanM2
	return AddPointResult{Changed: true, FirstChangedIndex: lastCurve, Added: true}
}

// Curves returns the curves fitted so far. The slice is owned by the
// builder and its contents may change on the next AddPoint call.
func (b *CurveBuilder) Curves() []CubicBezier {
	return b.result
}

// Clear discards all accumulated points and curves, returning the builder
// to its initial state.
func (b *CurveBuilder) Clear() {
	b.state.pts = nil
	b.state.arclen = nil
	b.state.u = nil
	b.totalLength = 0
	b.first = 0
	b.tanL = Vector{}
	b.prev = Point{}
	b.result = nil
}
