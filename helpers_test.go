package near2far

// Builders for synthetic planar near-field data used across the tests.

func testMonitor(name string, center, size [3]float64, freqs []float64) *FieldMonitor {
	return &FieldMonitor{Name: name, Center: center, Size: size, Freqs: freqs}
}

// constantFieldData samples spatially uniform complex field values on an
// n-point grid along each nonzero monitor axis.
func constantFieldData(monitor *FieldMonitor, n int, vals map[string]complex128) *FieldData {
	var coords [3][]float64
	for axis := AxisX; axis <= AxisZ; axis++ {
		if monitor.Size[axis] == 0 {
			coords[axis] = []float64{monitor.Center[axis]}
			continue
		}
		coords[axis] = Linspace(
			monitor.Center[axis]-monitor.Size[axis]/2,
			monitor.Center[axis]+monitor.Size[axis]/2,
			n,
		)
	}

	components := make(map[string]*ScalarField, len(vals))
	for name, v := range vals {
		components[name] = NewScalarField(coords[0], coords[1], coords[2], monitor.Freqs).Fill(v)
	}
	return &FieldData{Monitor: monitor, Components: components}
}

func testSimData(size [3]float64, monitors ...*FieldData) *SimulationData {
	sim := &Simulation{Size: size}
	for axis := AxisX; axis <= AxisZ; axis++ {
		if size[axis] > 0 {
			sim.GridBoundaries[axis] = Linspace(-size[axis]/2, size[axis]/2, 11)
		} else {
			sim.GridBoundaries[axis] = []float64{0}
		}
	}
	data := &SimulationData{
		Simulation:  sim,
		MonitorData: make(map[string]*FieldData, len(monitors)),
	}
	for _, fd := range monitors {
		data.MonitorData[fd.Monitor.Name] = fd
	}
	return data
}

// uniformAperture builds the canonical test source: an x-polarized uniform
// aperture in a z-normal plane, carrying the field pair of a plane wave
// traveling toward +z in vacuum.
func uniformAperture(center [3]float64, sizeX, sizeY, freq float64) (*SimulationData, *FieldMonitor) {
	monitor := testMonitor("aperture", center, [3]float64{sizeX, sizeY, 0}, []float64{freq})
	fd := constantFieldData(monitor, 21, map[string]complex128{
		"Ex": 1,
		"Ey": 0,
		"Hx": 0,
		"Hy": complex(1/Eta0, 0),
	})
	return testSimData([3]float64{20, 20, 20}, fd), monitor
}
