package near2far

import (
	"math"
	"sort"
)

// DefaultPtsPerWavelength is the default number of points per wavelength in
// the background medium used to resample surface currents.
const DefaultPtsPerWavelength = 10

// SurfaceCurrents holds the equivalent electric (J) and magnetic (M) surface
// current components for one surface, colocated on a shared grid. Components
// live in the local tangential basis: index 1 runs along the lower of the two
// in-plane axes. Arrays are indexed [x][y][z][f] with a single coordinate
// along the normal axis.
type SurfaceCurrents struct {
	Axis    Axis
	X, Y, Z []float64
	Freqs   []float64

	J1, J2, M1, M2 [][][][]complex128
}

func (c *SurfaceCurrents) coords(axis Axis) []float64 {
	switch axis {
	case AxisX:
		return c.X
	case AxisY:
		return c.Y
	default:
		return c.Z
	}
}

func (c *SurfaceCurrents) freqIndex(freq float64) int {
	for i, f := range c.Freqs {
		if f == freq {
			return i
		}
	}
	return -1
}

// shiftOrigin subtracts the local origin from every sample coordinate.
func (c *SurfaceCurrents) shiftOrigin(origin [3]float64) {
	for axis, pts := range [3][]float64{c.X, c.Y, c.Z} {
		for i := range pts {
			pts[i] -= origin[axis]
		}
	}
}

func (c *SurfaceCurrents) clone() *SurfaceCurrents {
	out := &SurfaceCurrents{
		Axis:  c.Axis,
		X:     append([]float64(nil), c.X...),
		Y:     append([]float64(nil), c.Y...),
		Z:     append([]float64(nil), c.Z...),
		Freqs: append([]float64(nil), c.Freqs...),
	}
	cp := func(src [][][][]complex128) [][][][]complex128 {
		dst := alloc4(len(c.X), len(c.Y), len(c.Z), len(c.Freqs))
		for ix := range src {
			for iy := range src[ix] {
				for iz := range src[ix][iy] {
					copy(dst[ix][iy][iz], src[ix][iy][iz])
				}
			}
		}
		return dst
	}
	out.J1, out.J2, out.M1, out.M2 = cp(c.J1), cp(c.J2), cp(c.M1), cp(c.M2)
	return out
}

// scaleAxis multiplies all four components by per-sample weights along one
// spatial axis, broadcast over the remaining dimensions.
func (c *SurfaceCurrents) scaleAxis(axis Axis, weights []float64) {
	for _, comp := range [][][][][]complex128{c.J1, c.J2, c.M1, c.M2} {
		for ix := range comp {
			for iy := range comp[ix] {
				for iz := range comp[ix][iy] {
					idx := [3]int{ix, iy, iz}
					w := complex(weights[idx[axis]], 0)
					vals := comp[ix][iy][iz]
					for fi := range vals {
						vals[fi] *= w
					}
				}
			}
		}
	}
}

// rawCurrents are extracted surface currents still on the native (possibly
// staggered) sampling grids.
type rawCurrents struct {
	J1, J2, M1, M2 *ScalarField
}

// ComputeSurfaceCurrents derives the equivalent surface currents for one
// surface and colocates them on a resampled grid sized by ptsPerWavelength
// points per wavelength in the given medium. A non-positive ptsPerWavelength
// disables resampling: the simulation grid boundary lines are used instead,
// clamped to the monitor bounds.
func ComputeSurfaceCurrents(simData *SimulationData, surface ProjectionSurface, medium Medium, ptsPerWavelength int) (*SurfaceCurrents, error) {
	fieldData, ok := simData.MonitorData[surface.Monitor.Name]
	if !ok {
		return nil, setupErrorf("no data for monitor named %q", surface.Monitor.Name)
	}
	axis, err := surface.Monitor.Axis()
	if err != nil {
		return nil, err
	}

	raw, err := fieldsToCurrents(fieldData, surface, axis)
	if err != nil {
		return nil, err
	}
	return resampleSurfaceCurrents(raw, simData, surface, medium, ptsPerWavelength, axis)
}

// fieldsToCurrents relabels the tangential near-field components into
// equivalent surface currents, applying the sign convention J = n x H,
// M = -n x E for the outward normal n. The base sign pattern [-1, +1] is
// negated for odd axis indices and again for "-" normals.
func fieldsToCurrents(fieldData *FieldData, surface ProjectionSurface, axis Axis) (*rawCurrents, error) {
	idxU, idxV := tangentialAxes(axis)
	cmp1, cmp2 := axisNames[idxU], axisNames[idxV]

	signs := [2]float64{-1, 1}
	if axis%2 != 0 {
		signs[0], signs[1] = -signs[0], -signs[1]
	}
	if surface.NormalDir == Minus {
		signs[0], signs[1] = -signs[0], -signs[1]
	}

	comp := func(name string) (*ScalarField, error) {
		f, ok := fieldData.Components[name]
		if !ok {
			return nil, setupErrorf("monitor %q is missing tangential field component %q", surface.Monitor.Name, name)
		}
		return f, nil
	}
	e1, err := comp("E" + cmp1)
	if err != nil {
		return nil, err
	}
	e2, err := comp("E" + cmp2)
	if err != nil {
		return nil, err
	}
	h1, err := comp("H" + cmp1)
	if err != nil {
		return nil, err
	}
	h2, err := comp("H" + cmp2)
	if err != nil {
		return nil, err
	}

	return &rawCurrents{
		J1: h2.scale(signs[0]),
		J2: h1.scale(signs[1]),
		M1: e2.scale(signs[1]),
		M2: e1.scale(signs[0]),
	}, nil
}

// resampleSurfaceCurrents colocates raw currents on a regular grid clipped to
// the overlap of the monitor and simulation extents. The highest monitor
// frequency sets the shortest wavelength, and therefore the densest sampling.
func resampleSurfaceCurrents(raw *rawCurrents, simData *SimulationData, surface ProjectionSurface, medium Medium, ptsPerWavelength int, axis Axis) (*SurfaceCurrents, error) {
	monitor := surface.Monitor
	if len(monitor.Freqs) == 0 {
		return nil, setupErrorf("monitor %q has no frequencies", monitor.Name)
	}
	sim := simData.Simulation

	var colocationPts [3][]float64
	colocationPts[axis] = []float64{monitor.Center[axis]}

	frequency := monitor.Freqs[0]
	for _, f := range monitor.Freqs {
		frequency = math.Max(frequency, f)
	}
	index, _ := RefractiveIndex(medium, frequency)
	wavelength := C0 / frequency / index

	idxU, idxV := tangentialAxes(axis)
	for _, idx := range [2]Axis{idxU, idxV} {
		// clip to the overlap of monitor and simulation, never extrapolate
		start := math.Max(monitor.Center[idx]-monitor.Size[idx]/2, sim.Center[idx]-sim.Size[idx]/2)
		stop := math.Min(monitor.Center[idx]+monitor.Size[idx]/2, sim.Center[idx]+sim.Size[idx]/2)

		if ptsPerWavelength <= 0 {
			pts := make([]float64, 0, len(sim.GridBoundaries[idx]))
			for _, b := range sim.GridBoundaries[idx] {
				if b < start {
					b = start
				}
				if b > stop {
					b = stop
				}
				pts = append(pts, b)
			}
			colocationPts[idx] = uniqueSorted(pts)
		} else {
			numPts := int(math.Ceil(float64(ptsPerWavelength) * (stop - start) / wavelength))
			colocationPts[idx] = Linspace(start, stop, numPts)
		}

		// an axis whose span collapses, for instance against a 2D domain,
		// keeps a single pinned sample and is never integrated over
		if len(colocationPts[idx]) < 2 {
			colocationPts[idx] = []float64{(start + stop) / 2}
		}
	}

	j1 := raw.J1.Colocate(colocationPts)
	j2 := raw.J2.Colocate(colocationPts)
	m1 := raw.M1.Colocate(colocationPts)
	m2 := raw.M2.Colocate(colocationPts)

	return &SurfaceCurrents{
		Axis:  axis,
		X:     colocationPts[0],
		Y:     colocationPts[1],
		Z:     colocationPts[2],
		Freqs: append([]float64(nil), j1.Freqs...),
		J1:    j1.Values,
		J2:    j2.Values,
		M1:    m1.Values,
		M2:    m2.Values,
	}, nil
}

func uniqueSorted(pts []float64) []float64 {
	sort.Float64s(pts)
	out := pts[:0]
	for i, p := range pts {
		if i == 0 || p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return append([]float64(nil), out...)
}
