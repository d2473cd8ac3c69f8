package near2far

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Equivalence-principle sign checks against hand-evaluated n x H and -n x E
// for each normal axis and direction.

func TestSurfaceCurrentSignsZNormal(t *testing.T) {
	monitor := testMonitor("m", [3]float64{0, 0, 0}, [3]float64{2, 2, 0}, []float64{C0})
	fd := constantFieldData(monitor, 11, map[string]complex128{
		"Ex": 2, "Ey": 3, "Hx": 5, "Hy": 7,
	})
	simData := testSimData([3]float64{10, 10, 10}, fd)

	cur, err := ComputeSurfaceCurrents(simData, ProjectionSurface{Monitor: monitor, NormalDir: Plus}, Vacuum, 5)
	require.NoError(t, err)
	require.Equal(t, AxisZ, cur.Axis)

	// n = +z: J = (-Hy, Hx), M = (Ey, -Ex)
	require.InDelta(t, -7, real(cur.J1[0][0][0][0]), 1e-12)
	require.InDelta(t, 5, real(cur.J2[0][0][0][0]), 1e-12)
	require.InDelta(t, 3, real(cur.M1[0][0][0][0]), 1e-12)
	require.InDelta(t, -2, real(cur.M2[0][0][0][0]), 1e-12)
}

func TestSurfaceCurrentSignsYNormal(t *testing.T) {
	monitor := testMonitor("m", [3]float64{0, 0, 0}, [3]float64{2, 0, 2}, []float64{C0})
	fd := constantFieldData(monitor, 11, map[string]complex128{
		"Ex": 2, "Ez": 3, "Hx": 5, "Hz": 7,
	})
	simData := testSimData([3]float64{10, 10, 10}, fd)

	cur, err := ComputeSurfaceCurrents(simData, ProjectionSurface{Monitor: monitor, NormalDir: Plus}, Vacuum, 5)
	require.NoError(t, err)
	require.Equal(t, AxisY, cur.Axis)

	// the odd axis index flips the base sign pattern: J = (Hz, -Hx),
	// M = (-Ez, Ex)
	require.InDelta(t, 7, real(cur.J1[0][0][0][0]), 1e-12)
	require.InDelta(t, -5, real(cur.J2[0][0][0][0]), 1e-12)
	require.InDelta(t, -3, real(cur.M1[0][0][0][0]), 1e-12)
	require.InDelta(t, 2, real(cur.M2[0][0][0][0]), 1e-12)
}

func TestSurfaceCurrentSignsFlipWithNormalDirection(t *testing.T) {
	monitor := testMonitor("m", [3]float64{0, 0, 0}, [3]float64{2, 2, 0}, []float64{C0})
	fd := constantFieldData(monitor, 11, map[string]complex128{
		"Ex": 2, "Ey": 3, "Hx": 5, "Hy": 7,
	})
	simData := testSimData([3]float64{10, 10, 10}, fd)

	plus, err := ComputeSurfaceCurrents(simData, ProjectionSurface{Monitor: monitor, NormalDir: Plus}, Vacuum, 5)
	require.NoError(t, err)
	minus, err := ComputeSurfaceCurrents(simData, ProjectionSurface{Monitor: monitor, NormalDir: Minus}, Vacuum, 5)
	require.NoError(t, err)

	require.InDelta(t, -real(plus.J1[0][0][0][0]), real(minus.J1[0][0][0][0]), 1e-12)
	require.InDelta(t, -real(plus.J2[0][0][0][0]), real(minus.J2[0][0][0][0]), 1e-12)
	require.InDelta(t, -real(plus.M1[0][0][0][0]), real(minus.M1[0][0][0][0]), 1e-12)
	require.InDelta(t, -real(plus.M2[0][0][0][0]), real(minus.M2[0][0][0][0]), 1e-12)
}

func TestSurfaceCurrentsMissingComponent(t *testing.T) {
	monitor := testMonitor("m", [3]float64{0, 0, 0}, [3]float64{2, 2, 0}, []float64{C0})
	fd := constantFieldData(monitor, 11, map[string]complex128{
		"Ex": 2, "Ey": 3, "Hx": 5, // Hy missing
	})
	simData := testSimData([3]float64{10, 10, 10}, fd)

	_, err := ComputeSurfaceCurrents(simData, ProjectionSurface{Monitor: monitor, NormalDir: Plus}, Vacuum, 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), `"Hy"`)

	var se *SetupError
	require.ErrorAs(t, err, &se)
}

func TestSurfaceCurrentsUnknownMonitor(t *testing.T) {
	monitor := testMonitor("m", [3]float64{0, 0, 0}, [3]float64{2, 2, 0}, []float64{C0})
	simData := testSimData([3]float64{10, 10, 10})

	_, err := ComputeSurfaceCurrents(simData, ProjectionSurface{Monitor: monitor, NormalDir: Plus}, Vacuum, 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no data for monitor")
}

func TestResampleDensityFollowsWavelength(t *testing.T) {
	// f = C0 gives a 1 um wavelength in vacuum, so the sample count per axis
	// is ptsPerWavelength * span
	monitor := testMonitor("m", [3]float64{0, 0, 0}, [3]float64{3.25, 2, 0}, []float64{C0})
	fd := constantFieldData(monitor, 11, map[string]complex128{
		"Ex": 1, "Ey": 1, "Hx": 1, "Hy": 1,
	})
	simData := testSimData([3]float64{10, 10, 10}, fd)

	cur, err := ComputeSurfaceCurrents(simData, ProjectionSurface{Monitor: monitor, NormalDir: Plus}, Vacuum, 10)
	require.NoError(t, err)
	require.Len(t, cur.X, 33) // ceil(10 * 3.25)
	require.Len(t, cur.Y, 20)
	require.Len(t, cur.Z, 1)
	require.Equal(t, 0.0, cur.Z[0])
}

func TestResampleDisabledUsesClippedGridBoundaries(t *testing.T) {
	monitor := testMonitor("m", [3]float64{0, 0, 0}, [3]float64{2, 2, 0}, []float64{C0})
	fd := constantFieldData(monitor, 11, map[string]complex128{
		"Ex": 1, "Ey": 1, "Hx": 1, "Hy": 1,
	})
	simData := testSimData([3]float64{10, 10, 10}, fd)
	simData.Simulation.GridBoundaries[0] = []float64{-2, -1, -0.5, 0, 0.5, 1, 2}

	cur, err := ComputeSurfaceCurrents(simData, ProjectionSurface{Monitor: monitor, NormalDir: Plus}, Vacuum, -1)
	require.NoError(t, err)
	// boundaries outside the monitor clamp to its edges and collapse
	require.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, cur.X)
}

func TestResampleClipsToSimulationBounds(t *testing.T) {
	// a monitor wider than the domain never samples beyond the domain edge
	monitor := testMonitor("m", [3]float64{0, 0, 0}, [3]float64{40, 2, 0}, []float64{C0})
	fd := constantFieldData(monitor, 11, map[string]complex128{
		"Ex": 1, "Ey": 1, "Hx": 1, "Hy": 1,
	})
	simData := testSimData([3]float64{10, 10, 10}, fd)

	cur, err := ComputeSurfaceCurrents(simData, ProjectionSurface{Monitor: monitor, NormalDir: Plus}, Vacuum, 10)
	require.NoError(t, err)
	require.InDelta(t, -5, cur.X[0], 1e-9)
	require.InDelta(t, 5, cur.X[len(cur.X)-1], 1e-9)
}

func TestNonPlanarMonitorRejected(t *testing.T) {
	monitor := testMonitor("m", [3]float64{0, 0, 0}, [3]float64{2, 2, 2}, []float64{C0})
	fd := constantFieldData(monitor, 5, map[string]complex128{
		"Ex": 1, "Ey": 1, "Hx": 1, "Hy": 1,
	})
	simData := testSimData([3]float64{10, 10, 10}, fd)

	_, err := ComputeSurfaceCurrents(simData, ProjectionSurface{Monitor: monitor, NormalDir: Plus}, Vacuum, 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not planar")
}
