package near2far

// FieldComponentNames lists the six spherical field components of a
// projection result, in the order they are stored.
var FieldComponentNames = [6]string{"Er", "Etheta", "Ephi", "Hr", "Htheta", "Hphi"}

// ProjectionData is the labeled result of one projection: the six spherical
// field components over the observation grid's native coordinates plus
// frequency, together with the provenance of the computation.
type ProjectionData struct {
	// Dims names the four array dimensions in index order; the last is
	// always "f".
	Dims [4]string
	// Coords holds the coordinate sequence of each named dimension.
	Coords map[string][]float64
	// Components maps each FieldComponentNames entry to an array indexed
	// per Dims. Contributions from every projection surface are summed in.
	Components map[string][][][][]complex128

	Surfaces       []ProjectionSurface
	Medium         Medium
	TwoDimensional bool
}

func newProjectionData(p *FieldProjector, medium Medium, dims [4]string, coords map[string][]float64) *ProjectionData {
	n := [4]int{}
	for i, d := range dims {
		n[i] = len(coords[d])
	}
	components := make(map[string][][][][]complex128, len(FieldComponentNames))
	for _, name := range FieldComponentNames {
		components[name] = alloc4(n[0], n[1], n[2], n[3])
	}
	return &ProjectionData{
		Dims:           dims,
		Coords:         coords,
		Components:     components,
		Surfaces:       p.surfaces,
		Medium:         medium,
		TwoDimensional: p.is2D,
	}
}

// addPoint accumulates one observation point's six field components so that
// contributions from multiple surfaces sum.
func (d *ProjectionData) addPoint(i0, i1, i2, fi int, fields [6]complex128) {
	for c, name := range FieldComponentNames {
		d.Components[name][i0][i1][i2][fi] += fields[c]
	}
}

// Component returns the labeled array for one field component name.
func (d *ProjectionData) Component(name string) ([][][][]complex128, bool) {
	vals, ok := d.Components[name]
	return vals, ok
}
