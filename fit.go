package curvefit

// defaultReduceError is the RDP tolerance Fit applies to its input before
// handing the reduced point list to the least-squares fitter. It trims
// redundant points cheaply up front so the fitter's O(n) passes run over a
// much shorter buffer. The fitter only sees the reduced points, so points
// dropped by the reduction are not checked against maxError.
const defaultReduceError = 0.03

// Reduce simplifies points with Ramer-Douglas-Peucker thresholding at the
// given tolerance. It is RdpReduce exposed at the package's top level for
// callers that only need preprocessing, independent of fitting.
func Reduce(points []Point, maxError float64) ([]Point, error) {
	return RdpReduce(points, maxError)
}

// ReduceDefault simplifies points with the same RDP tolerance Fit applies
// internally before fitting, for callers that want to preview or reuse that
// reduction without also running the least-squares fitter.
func ReduceDefault(points []Point) ([]Point, error) {
	return RdpReduce(points, defaultReduceError)
}

// Fit reduces points and fits them with a sequence of connected cubic
// Bezier segments such that no segment deviates from the reduced points by
// more than maxError (compared internally as squared distance). Adjacent
// segments share an endpoint: result[i].P3 == result[i+1].P0.
//
// An empty points returns a nil slice with no error. maxError must be at
// least the machine epsilon.
func Fit(points []Point, maxError float64) ([]CubicBezier, error) {
	if len(points) == 0 {
		return nil, nil
	}

	reduced, err := RdpReduce(points, defaultReduceError)
	if err != nil {
		return nil, err
	}
	if maxError < machineEpsilon {
		return nil, invalidArgument("curvefit: Fit: maxError must be >= epsilon")
	}
	if len(reduced) < 2 {
		return nil, nil
	}

	s := &fitState{squaredError: maxError * maxError}
	s.pts = reduced
	s.initializeArcLengths()

	last := len(s.pts) - 1
	tanL := s.getLeftTangent(last)
	tanR := s.getRightTangent(0)

	return s.fitRecursive(0, last, tanL, tanR), nil
}

// fitJob is one pending span of fitState.pts awaiting a fit-or-split
// decision, used by fitRecursive's explicit work stack in place of true
// recursion.
type fitJob struct {
	first, last int
	tanL, tanR  Vector
}

// fitRecursive fits pts[first..last], splitting at the point of maximum
// error and recursing on both halves whenever a span can't be fit within
// tolerance, using an explicit stack rather than the call stack so the
// traversal depth is bounded by the number of pending spans rather than by
// Go's goroutine stack growth. Pushing the right half before the left
// preserves left-to-right result ordering under LIFO popping.
func (s *fitState) fitRecursive(first, last int, tanL, tanR Vector) []CubicBezier {
	var result []CubicBezier
	stack := []fitJob{{first, last, tanL, tanR}}

	for len(stack) > 0 {
		job := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		curve, ok, split := s.fitCurve(job.first, job.last, job.tanL, job.tanR)
		if ok {
			result = append(result, curve)
			continue
		}

		tanM1 := s.getCenterTangent(job.first, job.last, split)
		tanM2 := tanM1.Negate()

		leftTanL := job.tanL
		if job.first == 0 && split < endTangentNPts {
			leftTanL = s.getLeftTangent(split)
		}
		rightTanR := job.tanR
		if job.last == len(s.pts)-1 && split > len(s.pts)-(endTangentNPts+1) {
			rightTanR = s.getRightTangent(split)
		}

		stack = append(stack, fitJob{split, job.last, tanM2, rightTanR})
		stack = append(stack, fitJob{job.first, split, leftTanL, tanM1})
	}

	return result
}
