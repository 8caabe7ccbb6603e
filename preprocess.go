package curvefit

import "sort"

// RemoveDuplicates returns a new point list with the first point preserved
// and each subsequent point kept only if it is farther than epsilon from
// the last point that was kept. The result has length <= len(pts) and is
// idempotent: RemoveDuplicates(RemoveDuplicates(pts)) == RemoveDuplicates(pts).
func RemoveDuplicates(pts []Point) []Point {
	if len(pts) < 2 {
		out := make([]Point, len(pts))
		copy(out, pts)
		return out
	}

	dst := make([]Point, 0, len(pts))
	dst = append(dst, pts[0])
	for i := 1; i < len(pts); i++ {
		if !dst[len(dst)-1].EqualsOrClose(pts[i]) {
			dst = append(dst, pts[i])
		}
	}
	return dst
}

// Linearize resamples src so that adjacent points in the result are
// approximately md apart. It walks the polyline accumulating chord
// distance, emitting an interpolated point every time the accumulator
// crosses a multiple of md, and preserves the final point of src if it
// isn't already within epsilon of the last emitted point.
func Linearize(src []Point, md float64) ([]Point, error) {
	if len(src) == 0 {
		return nil, invalidArgument("curvefit: Linearize: src cannot be empty")
	}
	if md <= epsilon {
		return nil, invalidArgument("curvefit: Linearize: md must be greater than epsilon")
	}

	pp := src[0]
	dst := []Point{pp}
	cd := 0.0
	for ip := 1; ip < len(src); ip++ {
		p0, p1 := src[ip-1], src[ip]
		td := p0.Distance(p1)
		if cd+td > md {
			pd := md - cd
			dst = append(dst, p0.Lerp(p1, pd/td))
			rd := td - pd
			for rd > md {
				rd -= md
				np := p0.Lerp(p1, (td-rd)/td)
				if !np.EqualsOrClose(pp) {
					dst = append(dst, np)
					pp = np
				}
			}
			cd = rd
		} else {
			cd += td
		}
	}

	lp := src[len(src)-1]
	if !pp.EqualsOrClose(lp) {
		dst = append(dst, lp)
	}
	return dst, nil
}

// RdpReduce simplifies pts using Ramer-Douglas-Peucker thresholding: after
// removing duplicates, the first and last points are always kept, and the
// interior point of maximum perpendicular distance from the chord between
// the current endpoints is kept (and recursed on both sides of it) whenever
// that distance exceeds maxError. The result preserves original ordering.
func RdpReduce(pts []Point, maxError float64) ([]Point, error) {
	if len(pts) == 0 {
		return nil, invalidArgument("curvefit: RdpReduce: pts cannot be empty")
	}

	unique := RemoveDuplicates(pts)
	if len(unique) < 3 {
		return unique, nil
	}

	reserve := len(unique) / 2
	if reserve < 16 {
		reserve = 16
	}
	keep := make([]int, 0, reserve)
	keep = append(keep, 0, len(unique)-1)
	keep = rdpRecursive(unique, maxError, 0, len(unique)-1, keep)
	sort.Ints(keep)

	out := make([]Point, len(keep))
	for i, idx := range keep {
		out[i] = unique[idx]
	}
	return out, nil
}

func rdpRecursive(pts []Point, maxError float64, first, last int, keep []int) []int {
	if last-first+1 < 3 {
		return keep
	}

	a, b := pts[first], pts[last]
	abDist := a.Distance(b)
	if abDist < epsilon {
		// Degenerate chord: fall back to distance from a alone so the loop
		// below still finds the farthest interior point.
		split, maxDist := 0, maxError
		for i := first + 1; i < last; i++ {
			d := a.Distance(pts[i])
			if d > maxDist {
				maxDist, split = d, i
			}
		}
		if split != 0 {
			keep = append(keep, split)
			keep = rdpRecursive(pts, maxError, first, split, keep)
			keep = rdpRecursive(pts, maxError, split, last, keep)
		}
		return keep
	}

	ab := a.VectorTo(b)
	split, maxDist := 0, maxError
	for i := first + 1; i < last; i++ {
		d := perpendicularDistance(a, ab, abDist, pts[i])
		if d > maxDist {
			maxDist, split = d, i
		}
	}

	if split != 0 {
		keep = append(keep, split)
		keep = rdpRecursive(pts, maxError, first, split, keep)
		keep = rdpRecursive(pts, maxError, split, last, keep)
	}
	return keep
}

// perpendicularDistance returns the distance from p to the infinite line
// through a and b, computed as the absolute triangle area of (a, b, p)
// divided by the chord length |ab|.
func perpendicularDistance(a Point, ab Vector, abDist float64, p Point) float64 {
	ap := a.VectorTo(p)
	area := ab.CrossZ(ap)
	if area < 0 {
		area = -area
	}
	return area / abDist
}

