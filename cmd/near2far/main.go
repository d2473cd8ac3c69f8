// Command near2far computes the radiation pattern of a uniformly illuminated
// rectangular aperture described by a json5 scenario file and saves a theta
// cut of the pattern as a PNG plot.
package main

import (
	"fmt"
	"math"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bob-anderson-ok/near2far"
	"github.com/bob-anderson-ok/near2far/pattern"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "near2far scenario.json5",
		Short: "Project aperture near fields to a far-field radiation pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			return run(args[0])
		},
		SilenceUsage: true,
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func run(scenarioPath string) error {
	data, err := os.ReadFile(scenarioPath)
	if err != nil {
		return err
	}
	scenario, msg, ok := parseScenarioFile(data)
	if !ok {
		return fmt.Errorf("scenario file %s: %s", scenarioPath, msg)
	}
	if scenario.Title != "" {
		log.Infof("scenario: %s", scenario.Title)
	}

	frequency := near2far.C0 / scenario.WavelengthUm
	medium := near2far.IsotropicMedium{
		Permittivity: scenario.Permittivity,
		Conductivity: scenario.Conductivity,
	}

	simData, monitor := buildApertureFields(scenario, frequency, medium)

	projector, err := near2far.NewFieldProjector(simData,
		[]near2far.ProjectionSurface{{Monitor: monitor, NormalDir: near2far.Plus}},
		near2far.WithPtsPerWavelength(scenario.SamplesPerWavelength),
		near2far.WithProgress(logProgress()),
	)
	if err != nil {
		return err
	}

	thetaMax := scenario.ThetaMaxDeg * math.Pi / 180
	grid := near2far.AngularGrid{
		Theta:        near2far.Linspace(0, thetaMax, scenario.NumTheta),
		Phi:          []float64{scenario.PhiDeg * math.Pi / 180},
		ProjDistance: scenario.ProjDistanceUm,
		GridOptions: near2far.GridOptions{
			Exact:  scenario.Exact,
			Window: near2far.WindowFractions{scenario.WindowX, scenario.WindowY},
		},
	}

	log.Infof("projecting %d observation angles at r = %g um (exact = %v)",
		scenario.NumTheta, scenario.ProjDistanceUm, scenario.Exact)
	result, err := projector.Project(grid)
	if err != nil {
		return err
	}

	cut, err := pattern.NewCut(result, 0, 0)
	if err != nil {
		return err
	}
	if err := cut.SavePlot(scenario.OutputFile, scenario.FloorDB); err != nil {
		return err
	}
	log.Infof("wrote %s", scenario.OutputFile)
	return nil
}

// buildApertureFields synthesizes the tangential near fields of a uniform
// x-polarized aperture in the z = 0 plane: Ex = 1 V/um and Hy = 1/eta A/um,
// the field pair of a plane wave traveling toward +z.
func buildApertureFields(scenario *Scenario, frequency float64, medium near2far.Medium) (*near2far.SimulationData, *near2far.FieldMonitor) {
	freqs := []float64{frequency}
	eta := near2far.Impedance(medium, frequency)

	nx := sampleCount(scenario.ApertureXum, scenario.WavelengthUm, scenario.SamplesPerWavelength)
	ny := sampleCount(scenario.ApertureYum, scenario.WavelengthUm, scenario.SamplesPerWavelength)
	xs := near2far.Linspace(-scenario.ApertureXum/2, scenario.ApertureXum/2, nx)
	ys := near2far.Linspace(-scenario.ApertureYum/2, scenario.ApertureYum/2, ny)
	zs := []float64{0}

	monitor := &near2far.FieldMonitor{
		Name:   "aperture",
		Center: [3]float64{0, 0, 0},
		Size:   [3]float64{scenario.ApertureXum, scenario.ApertureYum, 0},
		Freqs:  freqs,
	}

	fieldData := &near2far.FieldData{
		Monitor: monitor,
		Components: map[string]*near2far.ScalarField{
			"Ex": near2far.NewScalarField(xs, ys, zs, freqs).Fill(1),
			"Ey": near2far.NewScalarField(xs, ys, zs, freqs),
			"Hx": near2far.NewScalarField(xs, ys, zs, freqs),
			"Hy": near2far.NewScalarField(xs, ys, zs, freqs).Fill(1 / eta),
		},
	}

	sim := &near2far.Simulation{
		Size:   [3]float64{scenario.ApertureXum, scenario.ApertureYum, scenario.WavelengthUm},
		Medium: medium,
		GridBoundaries: [3][]float64{
			xs,
			ys,
			near2far.Linspace(-scenario.WavelengthUm/2, scenario.WavelengthUm/2, 3),
		},
	}

	return &near2far.SimulationData{
		Simulation:  sim,
		MonitorData: map[string]*near2far.FieldData{monitor.Name: fieldData},
	}, monitor
}

func sampleCount(span, wavelength float64, perWavelength int) int {
	n := int(math.Ceil(float64(perWavelength)*span/wavelength)) + 1
	if n < 2 {
		n = 2
	}
	return n
}

// logProgress reports exact-projection progress at roughly 10% intervals.
func logProgress() func(done, total int) {
	lastDecile := 0
	return func(done, total int) {
		if total == 0 {
			return
		}
		decile := 10 * done / total
		if decile > lastDecile {
			lastDecile = decile
			log.Debugf("projection %d%% complete (%d of %d points)", decile*10, done, total)
		}
	}
}
