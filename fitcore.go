package curvefit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Tunable shape constants for the tangent-estimation windows and the
// least-squares refinement loop.
const (
	endTangentNPts = 8
	midTangentNPts = 4
	maxIters       = 4
)

// fitState is the shared numeric kernel behind both the batch Fit entry
// point and the incremental CurveBuilder: tangent estimation, arc-length
// parameterization, the least-squares cubic solve, Newton-Raphson
// reparameterization, and the fit-or-split decision. Both drivers own their
// own fitState and differ only in how pts/arclen are populated and how the
// resulting curves are assembled.
type fitState struct {
	pts          []Point
	arclen       []float64
	u            []float64
	squaredError float64
}

// initializeArcLengths fills arclen from scratch for the current pts,
// where arclen[0] = 0 and arclen[i] is the cumulative chord length up to
// pts[i].
func (s *fitState) initializeArcLengths() {
	s.arclen = make([]float64, len(s.pts))
	clen := 0.0
	for i := 1; i < len(s.pts); i++ {
		clen += s.pts[i-1].Distance(s.pts[i])
		s.arclen[i] = clen
	}
}

// getLeftTangent estimates the tangent direction at pts[0] as a
// cubic-falloff weighted average of unit vectors toward the first few
// points of the span, falling back to the raw chord direction pts[0]->pts[1]
// if the weighted sum is degenerate.
func (s *fitState) getLeftTangent(last int) Vector {
	totalLen := s.arclen[len(s.pts)-1]
	p0 := s.pts[0]
	tanL := p0.VectorTo(s.pts[1]).Normalize()
	total := tanL
	weightTotal := 1.0

	upper := min(endTangentNPts, last-1)
	for i := 2; i <= upper; i++ {
		ti := 1 - (s.arclen[i] / totalLen)
		weight := ti * ti * ti
		v := p0.VectorTo(s.pts[i]).Normalize()
		total = total.Add(v.Scale(weight))
		weightTotal += weight
	}
	if total.Magnitude() > machineEpsilon {
		tanL = total.Scale(1 / weightTotal).Normalize()
	}
	return tanL
}

// getRightTangent is the mirror image of getLeftTangent, estimating the
// tangent direction at the last point of the full buffer pointing back
// toward first.
func (s *fitState) getRightTangent(first int) Vector {
	count := len(s.pts)
	totalLen := s.arclen[count-1]
	p3 := s.pts[count-1]
	tanR := p3.VectorTo(s.pts[count-2]).Normalize()
	total := tanR
	weightTotal := 1.0

	lower := max(count-(endTangentNPts+1), first+1)
	for i := count - 3; i >= lower; i-- {
		t := s.arclen[i] / totalLen
		weight := t * t * t
		v := p3.VectorTo(s.pts[i]).Normalize()
		total = total.Add(v.Scale(weight))
		weightTotal += weight
	}
	if total.Magnitude() > machineEpsilon {
		tanR = total.Scale(1 / weightTotal).Normalize()
	}
	return tanR
}

// getCenterTangent estimates the tangent at the split point of a failed
// fit, used as the right tangent of the left sub-segment (and, negated, as
// the left tangent of the right sub-segment). It averages independent
// left-side and right-side weighted estimates, falling back to the
// immediate-neighbor chord direction when a side's weighted sum is
// degenerate, and to the one-sided tangent if the combined average is
// itself degenerate.
func (s *fitState) getCenterTangent(first, last, split int) Vector {
	pSplit := s.pts[split]
	splitLen := s.arclen[split]

	firstLen := s.arclen[first]
	partLen := splitLen - firstLen
	total := zeroVector
	weightTotal := 0.0
	lo := max(first, split-midTangentNPts)
	for i := lo; i < split; i++ {
		t := (s.arclen[i] - firstLen) / partLen
		weight := t * t * t
		v := pSplit.VectorTo(s.pts[i]).Normalize()
		total = total.Add(v.Scale(weight))
		weightTotal += weight
	}
	tanL := pSplit.VectorTo(s.pts[split-1]).Normalize()
	if total.Magnitude() > machineEpsilon && weightTotal > machineEpsilon {
		tanL = total.Scale(1 / weightTotal).Normalize()
	}

	partLen = s.arclen[last] - splitLen
	rMax := min(last, split+midTangentNPts)
	total = zeroVector
	weightTotal = 0
	for i := split + 1; i <= rMax; i++ {
		ti := 1 - ((s.arclen[i] - splitLen) / partLen)
		weight := ti * ti * ti
		v := s.pts[i].VectorTo(pSplit).Normalize()
		total = total.Add(v.Scale(weight))
		weightTotal += weight
	}
	tanR := s.pts[split+1].VectorTo(pSplit).Normalize()
	if total.Magnitude() > machineEpsilon && weightTotal > machineEpsilon {
		tanR = total.Scale(1 / weightTotal).Normalize()
	}

	sum := tanL.Add(tanR)
	if sum.MagnitudeSquared() < machineEpsilon {
		tanL = pSplit.VectorTo(s.pts[split-1]).Normalize()
		tanR = s.pts[split+1].VectorTo(pSplit).Normalize()
		sum = tanL.Add(tanR)
		if sum.MagnitudeSquared() < machineEpsilon {
			return tanL
		}
	}
	return sum.Scale(0.5).Normalize()
}

// arcLengthParameterize fills u[0..last-first] with a chord-length
// parameterization of pts[first..last]: u[0]=0, u[last-first]=1, and
// interior values proportional to cumulative arc length within the span.
func (s *fitState) arcLengthParameterize(first, last int) {
	nPts := last - first
	u := make([]float64, nPts+1)
	start := s.arclen[first]
	diff := s.arclen[last] - start
	for i := 1; i < nPts; i++ {
		u[i] = (s.arclen[first+i] - start) / diff
	}
	u[nPts] = 1
	s.u = u
}

// generateBezier solves the 2x2 least-squares system for the tangent
// magnitudes alphaL/alphaR such that P1 = P0 + alphaL*tanL and
// P2 = P3 + alphaR*tanR minimize the summed squared distance to pts[first..last]
// under the current parameterization u. Falls back to the Wu/Barsky
// heuristic (alpha = |P3-P0|/3) when the system is ill-conditioned.
func (s *fitState) generateBezier(first, last int, tanL, tanR Vector) CubicBezier {
	nPts := last - first + 1
	p0, p3 := s.pts[first], s.pts[last]

	var c00, c01, c11, x0, x1 float64
	for i := 1; i < nPts; i++ {
		t := s.u[i]
		ti := 1 - t
		t0 := ti * ti * ti
		t1 := 3 * ti * ti * t
		t2 := 3 * ti * t * t
		t3 := t * t * t

		// Q(t) with P1==P0 and P2==P3, i.e. the offset the actual P1/P2
		// contribute on top of.
		base := Point{xy: mgl64.Vec2{
			t0*p0.xy[0] + t1*p0.xy[0] + t2*p3.xy[0] + t3*p3.xy[0],
			t0*p0.xy[1] + t1*p0.xy[1] + t2*p3.xy[1] + t3*p3.xy[1],
		}}
		v := base.VectorTo(s.pts[first+i])

		a0 := tanL.Scale(t1)
		a1 := tanR.Scale(t2)
		c00 += a0.Dot(a0)
		c01 += a0.Dot(a1)
		c11 += a1.Dot(a1)
		x0 += a0.Dot(v)
		x1 += a1.Dot(v)
	}

	detC0C1 := c00*c11 - c01*c01
	detC0X := c00*x1 - c01*x0
	detXC1 := x0*c11 - x1*c01
	alphaL := detXC1 / detC0C1
	alphaR := detC0X / detC0C1

	linDist := p0.Distance(p3)
	thresh := machineEpsilon * linDist
	if math.Abs(detC0C1) < machineEpsilon || alphaL < thresh || alphaR < thresh {
		alpha := linDist / 3
		return NewCubicBezier(p0, p0.Add(tanL.Scale(alpha)), p3.Add(tanR.Scale(alpha)), p3)
	}
	return NewCubicBezier(p0, p0.Add(tanL.Scale(alphaL)), p3.Add(tanR.Scale(alphaR)), p3)
}

// reparameterize refines each interior u[i] with one step of Newton's
// method against curve, leaving u[i] unchanged when the step would be
// numerically unreliable (near-zero denominator) or would leave [0,1].
func (s *fitState) reparameterize(first, last int, curve CubicBezier) {
	nPts := last - first

	qp0 := curve.P0.VectorTo(curve.P1).Scale(3)
	qp1 := curve.P1.VectorTo(curve.P2).Scale(3)
	qp2 := curve.P2.VectorTo(curve.P3).Scale(3)
	qpp0 := qp1.Add(qp0.Negate()).Scale(2)
	qpp1 := qp2.Add(qp1.Negate()).Scale(2)

	for i := 1; i < nPts; i++ {
		p := s.pts[first+i]
		t := s.u[i]
		ti := 1 - t

		q0 := curve.Sample(t)
		q1 := qp0.Scale(ti * ti).Add(qp1.Scale(2 * ti * t)).Add(qp2.Scale(t * t))
		q2 := qpp0.Scale(ti).Add(qpp1.Scale(t))

		dx, dy := q0.X()-p.X(), q0.Y()-p.Y()
		num := dx*q1.I() + dy*q1.J()
		den := q1.I()*q1.I() + q1.J()*q1.J() + dx*q2.I() + dy*q2.J()
		newU := t - num/den
		if math.Abs(den) > machineEpsilon && newU >= 0 && newU <= 1 {
			s.u[i] = newU
		}
	}
}

// findMaxSquaredError scans the interior points of the span for the one
// farthest (in squared distance) from curve under the current
// parameterization, returning that squared distance and the global index
// at which it occurs, clamped into (first, last).
func (s *fitState) findMaxSquaredError(first, last int, curve CubicBezier) (maxSq float64, split int) {
	nPts := last - first + 1
	si := nPts / 2
	for i := 1; i < nPts; i++ {
		v0 := s.pts[first+i]
		v1 := curve.Sample(s.u[i])
		if d := v0.DistanceSquared(v1); d > maxSq {
			maxSq = d
			si = i
		}
	}

	split = si + first
	if split <= first {
		split = first + 1
	}
	if split >= last {
		split = last - 1
	}
	return maxSq, split
}

// fitCurve tries to fit a single cubic to pts[first..last]. With exactly
// two points it always succeeds via the Wu/Barsky heuristic. Otherwise it
// iterates up to maxIters+1 passes of GenerateBezier/FindMaxSquaredError,
// reparameterizing with Newton's method between passes, and reports
// whether the final pass landed within the squared-error tolerance. Even
// on failure the returned curve is a reasonable (just out-of-tolerance) fit
// and split names where the caller should divide the span.
func (s *fitState) fitCurve(first, last int, tanL, tanR Vector) (curve CubicBezier, inTolerance bool, split int) {
	nPts := last - first + 1
	if nPts < 2 {
		panic("curvefit: fitCurve: span must contain at least 2 points")
	}
	if nPts == 2 {
		p0, p3 := s.pts[first], s.pts[last]
		alpha := p0.Distance(p3) / 3
		return NewCubicBezier(p0, p0.Add(tanL.Scale(alpha)), p3.Add(tanR.Scale(alpha)), p3), true, 0
	}

	s.arcLengthParameterize(first, last)
	for i := 0; i <= maxIters; i++ {
		if i != 0 {
			s.reparameterize(first, last, curve)
		}
		curve = s.generateBezier(first, last, tanL, tanR)
		errSq, sp := s.findMaxSquaredError(first, last, curve)
		split = sp
		if errSq < s.squaredError {
			return curve, true, split
		}
	}
	return curve, false, split
}
