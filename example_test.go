package near2far_test

import (
	"fmt"
	"log"

	"github.com/bob-anderson-ok/near2far"
)

// Example projects the near fields of a uniformly illuminated 2 um x 2 um
// aperture to the far field. The aperture carries the tangential fields of an
// x-polarized plane wave traveling toward +z, so the broadside field reduces
// to the closed form Etheta = 2 * area.
func Example() {
	freq := near2far.C0 / 1.0 // a 1 um wavelength
	freqs := []float64{freq}

	// Near-field samples on the aperture plane
	xs := near2far.Linspace(-1, 1, 21)
	ys := near2far.Linspace(-1, 1, 21)
	zs := []float64{0}

	monitor := &near2far.FieldMonitor{
		Name:   "aperture",
		Center: [3]float64{0, 0, 0},
		Size:   [3]float64{2, 2, 0},
		Freqs:  freqs,
	}

	fieldData := &near2far.FieldData{
		Monitor: monitor,
		Components: map[string]*near2far.ScalarField{
			"Ex": near2far.NewScalarField(xs, ys, zs, freqs).Fill(1),
			"Ey": near2far.NewScalarField(xs, ys, zs, freqs),
			"Hx": near2far.NewScalarField(xs, ys, zs, freqs),
			"Hy": near2far.NewScalarField(xs, ys, zs, freqs).Fill(complex(1/near2far.Eta0, 0)),
		},
	}

	simData := &near2far.SimulationData{
		Simulation: &near2far.Simulation{
			Size: [3]float64{20, 20, 20},
		},
		MonitorData: map[string]*near2far.FieldData{monitor.Name: fieldData},
	}

	projector, err := near2far.NewFieldProjector(simData,
		[]near2far.ProjectionSurface{{Monitor: monitor, NormalDir: near2far.Plus}})
	if err != nil {
		log.Fatal(err)
	}

	result, err := projector.Project(near2far.AngularGrid{
		Theta: []float64{0},
		Phi:   []float64{0},
	})
	if err != nil {
		log.Fatal(err)
	}

	etheta := result.Components["Etheta"][0][0][0][0]
	hphi := result.Components["Hphi"][0][0][0][0]
	fmt.Printf("broadside Etheta: %.2f\n", real(etheta))
	fmt.Printf("wave impedance: %.4f\n", real(etheta/hphi))

	// Output:
	// broadside Etheta: 8.00
	// wave impedance: 376.7303
}
