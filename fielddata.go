package near2far

import "sort"

// ScalarField holds one frequency-domain field component sampled on its own
// spatial grid. Values are indexed [x][y][z][f]; an axis the monitor is
// degenerate along carries a single coordinate.
type ScalarField struct {
	X, Y, Z []float64
	Freqs   []float64
	Values  [][][][]complex128
}

// NewScalarField allocates a zero-valued field over the given coordinates.
func NewScalarField(x, y, z, freqs []float64) *ScalarField {
	return &ScalarField{
		X:      x,
		Y:      y,
		Z:      z,
		Freqs:  freqs,
		Values: alloc4(len(x), len(y), len(z), len(freqs)),
	}
}

func alloc4(nx, ny, nz, nf int) [][][][]complex128 {
	vals := make([][][][]complex128, nx)
	for ix := range vals {
		vals[ix] = make([][][]complex128, ny)
		for iy := range vals[ix] {
			vals[ix][iy] = make([][]complex128, nz)
			for iz := range vals[ix][iy] {
				vals[ix][iy][iz] = make([]complex128, nf)
			}
		}
	}
	return vals
}

func (f *ScalarField) coords(axis Axis) []float64 {
	switch axis {
	case AxisX:
		return f.X
	case AxisY:
		return f.Y
	default:
		return f.Z
	}
}

// Fill sets every sample of the field to the given value.
func (f *ScalarField) Fill(v complex128) *ScalarField {
	for _, vx := range f.Values {
		for _, vy := range vx {
			for _, vz := range vy {
				for i := range vz {
					vz[i] = v
				}
			}
		}
	}
	return f
}

// scale returns a copy of the field with every sample multiplied by the given
// real factor.
func (f *ScalarField) scale(factor float64) *ScalarField {
	out := NewScalarField(f.X, f.Y, f.Z, f.Freqs)
	c := complex(factor, 0)
	for ix, vx := range f.Values {
		for iy, vy := range vx {
			for iz, vz := range vy {
				for fi, v := range vz {
					out.Values[ix][iy][iz][fi] = v * c
				}
			}
		}
	}
	return out
}

// Colocate resamples the component onto the given per-axis points via linear
// interpolation. A nil entry leaves that axis' native coordinates in place.
func (f *ScalarField) Colocate(pts [3][]float64) *ScalarField {
	out := f
	for axis := AxisX; axis <= AxisZ; axis++ {
		if pts[axis] != nil {
			out = out.interpAxis(axis, pts[axis])
		}
	}
	return out
}

// interpAxis linearly resamples the field along one spatial axis onto the
// given points, clamping beyond the first and last samples.
func (f *ScalarField) interpAxis(axis Axis, pts []float64) *ScalarField {
	src := f.coords(axis)
	lo := make([]int, len(pts))
	hi := make([]int, len(pts))
	frac := make([]float64, len(pts))
	for i, p := range pts {
		j := sort.SearchFloat64s(src, p)
		switch {
		case j == 0:
			lo[i], hi[i] = 0, 0
		case j >= len(src):
			lo[i], hi[i] = len(src)-1, len(src)-1
		default:
			lo[i], hi[i] = j-1, j
			frac[i] = (p - src[j-1]) / (src[j] - src[j-1])
		}
	}

	coords := [3][]float64{f.X, f.Y, f.Z}
	coords[axis] = pts
	out := NewScalarField(coords[0], coords[1], coords[2], f.Freqs)
	for ix := range out.Values {
		for iy := range out.Values[ix] {
			for iz := range out.Values[ix][iy] {
				idx := [3]int{ix, iy, iz}
				a, b := idx, idx
				a[axis], b[axis] = lo[idx[axis]], hi[idx[axis]]
				t := complex(frac[idx[axis]], 0)
				va := f.Values[a[0]][a[1]][a[2]]
				vb := f.Values[b[0]][b[1]][b[2]]
				dst := out.Values[ix][iy][iz]
				for fi := range dst {
					dst[fi] = va[fi] + (vb[fi]-va[fi])*t
				}
			}
		}
	}
	return out
}

// FieldData is the near-field sample container for one monitor. Components
// are keyed "Ex", "Ey", "Ez", "Hx", "Hy", "Hz"; the four components
// tangential to the monitor plane are required for projection.
type FieldData struct {
	Monitor    *FieldMonitor
	Components map[string]*ScalarField
}
