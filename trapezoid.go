package near2far

// Trapezoid integrates samples over non-uniformly spaced points using the
// trapezoidal rule. A single sample is returned unscaled: a degenerate axis
// contributes its value directly rather than integrating to zero.
func Trapezoid(vals []complex128, pts []float64) complex128 {
	if len(vals) != len(pts) {
		panic("near2far: sample and point counts differ")
	}
	if len(vals) == 0 {
		return 0
	}
	if len(vals) == 1 {
		return vals[0]
	}
	var sum complex128
	for i := 1; i < len(vals); i++ {
		sum += (vals[i] + vals[i-1]) * complex((pts[i]-pts[i-1])/2, 0)
	}
	return sum
}

// trapezoidAxis integrates a (x, y, z, f) array along one spatial axis,
// collapsing that axis to length 1. A single-point axis passes through
// unchanged.
func trapezoidAxis(vals [][][][]complex128, pts []float64, axis Axis) [][][][]complex128 {
	n := [3]int{len(vals), 0, 0}
	if n[0] > 0 {
		n[1] = len(vals[0])
		if n[1] > 0 {
			n[2] = len(vals[0][0])
		}
	}
	if n[axis] <= 1 {
		return vals
	}
	nf := len(vals[0][0][0])

	out := n
	out[axis] = 1
	res := alloc4(out[0], out[1], out[2], nf)
	line := make([]complex128, n[axis])
	for ix := 0; ix < out[0]; ix++ {
		for iy := 0; iy < out[1]; iy++ {
			for iz := 0; iz < out[2]; iz++ {
				for fi := 0; fi < nf; fi++ {
					idx := [3]int{ix, iy, iz}
					for k := 0; k < n[axis]; k++ {
						idx[axis] = k
						line[k] = vals[idx[0]][idx[1]][idx[2]][fi]
					}
					res[ix][iy][iz][fi] = Trapezoid(line, pts)
				}
			}
		}
	}
	return res
}

// trapezoid3Axis integrates a (x, y, z) array along one spatial axis,
// collapsing that axis to length 1; a single-point axis passes through.
func trapezoid3Axis(vals [][][]complex128, pts []float64, axis Axis) [][][]complex128 {
	n := [3]int{len(vals), 0, 0}
	if n[0] > 0 {
		n[1] = len(vals[0])
		if n[1] > 0 {
			n[2] = len(vals[0][0])
		}
	}
	if n[axis] <= 1 {
		return vals
	}

	out := n
	out[axis] = 1
	res := alloc3(out[0], out[1], out[2])
	line := make([]complex128, n[axis])
	for ix := 0; ix < out[0]; ix++ {
		for iy := 0; iy < out[1]; iy++ {
			for iz := 0; iz < out[2]; iz++ {
				idx := [3]int{ix, iy, iz}
				for k := 0; k < n[axis]; k++ {
					idx[axis] = k
					line[k] = vals[idx[0]][idx[1]][idx[2]]
				}
				res[ix][iy][iz] = Trapezoid(line, pts)
			}
		}
	}
	return res
}

func alloc3(nx, ny, nz int) [][][]complex128 {
	vals := make([][][]complex128, nx)
	for ix := range vals {
		vals[ix] = make([][]complex128, ny)
		for iy := range vals[ix] {
			vals[ix][iy] = make([]complex128, nz)
		}
	}
	return vals
}
