package near2far

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWindowFunctionShape(t *testing.T) {
	pts := Linspace(-1, 1, 201)
	w := windowFunction(pts, 0.25)

	require.Zero(t, w[0])
	require.Zero(t, w[len(w)-1])
	require.Equal(t, 1.0, w[100]) // flat in the middle

	// symmetric about the span center
	for i := range w {
		require.InDelta(t, w[i], w[len(w)-1-i], 1e-12)
	}

	// monotone over the rising edge
	for i := 1; i < 25; i++ {
		require.Greater(t, w[i], w[i-1])
	}
}

func TestWindowFunctionZeroFraction(t *testing.T) {
	pts := Linspace(0, 1, 11)
	for _, v := range windowFunction(pts, 0) {
		require.Equal(t, 1.0, v)
	}
}

func TestApplyWindowZeroIsPassthrough(t *testing.T) {
	monitor := testMonitor("m", [3]float64{0, 0, 0}, [3]float64{2, 2, 0}, []float64{C0})
	fd := constantFieldData(monitor, 11, map[string]complex128{
		"Ex": 1, "Ey": 1, "Hx": 1, "Hy": 1,
	})
	simData := testSimData([3]float64{10, 10, 10}, fd)
	cur, err := ComputeSurfaceCurrents(simData, ProjectionSurface{Monitor: monitor, NormalDir: Plus}, Vacuum, 5)
	require.NoError(t, err)

	out := applyWindowToCurrents(cur, WindowFractions{})
	require.Same(t, cur, out)
}

func TestApplyWindowTwiceSquaresTheWeights(t *testing.T) {
	monitor := testMonitor("m", [3]float64{0, 0, 0}, [3]float64{2, 2, 0}, []float64{C0})
	fd := constantFieldData(monitor, 11, map[string]complex128{
		"Ex": 1, "Ey": 1, "Hx": 1, "Hy": 1,
	})
	simData := testSimData([3]float64{10, 10, 10}, fd)
	cur, err := ComputeSurfaceCurrents(simData, ProjectionSurface{Monitor: monitor, NormalDir: Plus}, Vacuum, 10)
	require.NoError(t, err)

	w := WindowFractions{0.4, 0.3}
	twice := applyWindowToCurrents(applyWindowToCurrents(cur, w), w)

	// windowing is pointwise multiplicative, so applying it twice equals
	// one application with every weight squared
	wx := windowFunction(cur.X, w[0])
	wy := windowFunction(cur.Y, w[1])
	for ix := range cur.X {
		for iy := range cur.Y {
			weight := wx[ix] * wx[ix] * wy[iy] * wy[iy]
			want := cur.J1[ix][iy][0][0] * complex(weight, 0)
			require.InDelta(t, real(want), real(twice.J1[ix][iy][0][0]), 1e-12)
			require.InDelta(t, imag(want), imag(twice.J1[ix][iy][0][0]), 1e-12)
		}
	}
}

func TestApplyWindowTapersEdgesAndPreservesInput(t *testing.T) {
	monitor := testMonitor("m", [3]float64{0, 0, 0}, [3]float64{2, 2, 0}, []float64{C0})
	fd := constantFieldData(monitor, 11, map[string]complex128{
		"Ex": 1, "Ey": 1, "Hx": 1, "Hy": 1,
	})
	simData := testSimData([3]float64{10, 10, 10}, fd)
	cur, err := ComputeSurfaceCurrents(simData, ProjectionSurface{Monitor: monitor, NormalDir: Plus}, Vacuum, 10)
	require.NoError(t, err)

	before := cur.J1[0][0][0][0]
	out := applyWindowToCurrents(cur, WindowFractions{0.4, 0.4})
	require.NotSame(t, cur, out)

	// edges go to zero along both in-plane axes, the center survives
	require.Zero(t, out.J1[0][5][0][0])
	require.Zero(t, out.J1[5][0][0][0])
	mid := len(out.X) / 2
	require.InDelta(t, real(cur.J1[mid][mid][0][0]), real(out.J1[mid][mid][0][0]), 1e-12)

	// the cached input is untouched
	require.Equal(t, before, cur.J1[0][0][0][0])
}
