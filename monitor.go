package near2far

// FieldMonitor describes a planar near-field sampling region. Exactly one
// entry of Size must be zero; that entry fixes the axis the plane is
// perpendicular to.
type FieldMonitor struct {
	Name   string
	Center [3]float64
	Size   [3]float64
	Freqs  []float64
}

// Axis returns the axis perpendicular to the monitor plane.
func (m *FieldMonitor) Axis() (Axis, error) {
	found := -1
	for i, s := range m.Size {
		if s == 0 {
			if found >= 0 {
				return 0, setupErrorf("monitor %q is not planar: more than one zero-size dimension", m.Name)
			}
			found = i
		}
	}
	if found < 0 {
		return 0, setupErrorf("monitor %q is not planar: no zero-size dimension", m.Name)
	}
	return Axis(found), nil
}

// ProjectionSurface pairs a near-field monitor with the side its outward
// normal points to. Immutable once constructed.
type ProjectionSurface struct {
	Monitor   *FieldMonitor
	NormalDir Direction
}
