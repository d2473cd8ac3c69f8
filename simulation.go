package near2far

// Simulation describes the domain the near fields were captured in: its
// extent (used to clip monitor sampling bounds), its grid boundary lines
// (used when currents are colocated without resampling) and the background
// medium.
type Simulation struct {
	Center         [3]float64
	Size           [3]float64
	GridBoundaries [3][]float64
	Medium         Medium
}

// IsTwoDimensional reports whether exactly two axes of the domain have a
// nonzero size.
func (s *Simulation) IsTwoDimensional() bool {
	nonZero := 0
	for _, size := range s.Size {
		if size != 0 {
			nonZero++
		}
	}
	return nonZero == 2
}

func (s *Simulation) zeroSizeAxes() []Axis {
	var zero []Axis
	for i, size := range s.Size {
		if size == 0 {
			zero = append(zero, Axis(i))
		}
	}
	return zero
}

// MonitorMedium returns the medium a monitor is immersed in. The domain is
// homogeneous for projection purposes, so this is the simulation background.
func (s *Simulation) MonitorMedium(_ *FieldMonitor) Medium {
	if s.Medium == nil {
		return Vacuum
	}
	return s.Medium
}

// SimulationData bundles the simulation description with the recorded
// near-field data, keyed by monitor name.
type SimulationData struct {
	Simulation  *Simulation
	MonitorData map[string]*FieldData
}
