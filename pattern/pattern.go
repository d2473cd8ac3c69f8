// Package pattern turns projected far-field data into radiation pattern cuts
// and saves them as plots.
package pattern

import (
	"fmt"
	"image/color"
	"math"
	"math/cmplx"

	"gonum.org/v1/plot"

	// Liberation fonts register automatically on import
	_ "gonum.org/v1/plot/font/liberation"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bob-anderson-ok/near2far"
)

// Cut is a one-dimensional slice of a projected angular result: electric
// field magnitude versus polar angle at a fixed azimuth and frequency.
type Cut struct {
	Theta     []float64 // radians
	Magnitude []float64 // |E|, sqrt(|Etheta|^2 + |Ephi|^2)
	Phi       float64
	Frequency float64
}

// NewCut extracts a theta cut from angular projection data.
func NewCut(data *near2far.ProjectionData, phiIndex, freqIndex int) (*Cut, error) {
	if data.Dims != [4]string{"r", "theta", "phi", "f"} {
		return nil, fmt.Errorf("pattern cuts require angular projection data, got dims %v", data.Dims)
	}
	theta := data.Coords["theta"]
	phi := data.Coords["phi"]
	freqs := data.Coords["f"]
	if phiIndex < 0 || phiIndex >= len(phi) {
		return nil, fmt.Errorf("phi index %d out of range [0, %d)", phiIndex, len(phi))
	}
	if freqIndex < 0 || freqIndex >= len(freqs) {
		return nil, fmt.Errorf("frequency index %d out of range [0, %d)", freqIndex, len(freqs))
	}

	eTheta, _ := data.Component("Etheta")
	ePhi, _ := data.Component("Ephi")

	cut := &Cut{
		Theta:     append([]float64(nil), theta...),
		Magnitude: make([]float64, len(theta)),
		Phi:       phi[phiIndex],
		Frequency: freqs[freqIndex],
	}
	for it := range theta {
		et := eTheta[0][it][phiIndex][freqIndex]
		ep := ePhi[0][it][phiIndex][freqIndex]
		cut.Magnitude[it] = math.Hypot(cmplx.Abs(et), cmplx.Abs(ep))
	}
	return cut, nil
}

// DecibelsNormalized returns the cut in dB relative to its own maximum,
// clipped at floorDB from below. A cut with no radiated power returns the
// floor everywhere.
func (c *Cut) DecibelsNormalized(floorDB float64) []float64 {
	peak := 0.0
	for _, m := range c.Magnitude {
		peak = math.Max(peak, m)
	}
	out := make([]float64, len(c.Magnitude))
	for i, m := range c.Magnitude {
		if peak == 0 || m == 0 {
			out[i] = floorDB
			continue
		}
		out[i] = math.Max(20*math.Log10(m/peak), floorDB)
	}
	return out
}

// SavePlot writes the normalized cut as a PNG line plot.
func (c *Cut) SavePlot(filename string, floorDB float64) error {
	p := plot.New()

	// Modify the font fields directly on existing styles
	p.Title.TextStyle.Font.Typeface = "Liberation"
	p.Title.TextStyle.Font.Variant = "Sans"
	p.Title.TextStyle.Font.Size = vg.Points(12)

	p.X.Label.TextStyle.Font.Typeface = "Liberation"
	p.X.Label.TextStyle.Font.Variant = "Sans"
	p.X.Label.TextStyle.Font.Size = vg.Points(12)

	p.Y.Label.TextStyle.Font.Typeface = "Liberation"
	p.Y.Label.TextStyle.Font.Variant = "Sans"
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)

	p.X.Tick.Label.Font.Typeface = "Liberation"
	p.X.Tick.Label.Font.Variant = "Sans"
	p.X.Tick.Label.Font.Size = vg.Points(10)

	p.Y.Tick.Label.Font.Typeface = "Liberation"
	p.Y.Tick.Label.Font.Variant = "Sans"
	p.Y.Tick.Label.Font.Size = vg.Points(10)

	p.Title.Text = fmt.Sprintf("Radiation pattern cut at phi = %0.1f deg, f = %0.4g Hz", c.Phi*180/math.Pi, c.Frequency)
	p.X.Label.Text = "theta (degrees)"
	p.Y.Label.Text = "normalized magnitude (dB)"

	p.X.Tick.Marker = StepTicks{Step: 15.0, Format: "%.0f"}
	p.Y.Tick.Marker = StepTicks{Step: 10.0, Format: "%.0f"}
	p.Add(plotter.NewGrid()) // grid + ticks

	p.Y.Min = floorDB
	p.Y.Max = 2.0

	db := c.DecibelsNormalized(floorDB)
	pts := make(plotter.XYs, len(c.Theta))
	for i := range c.Theta {
		pts[i].X = c.Theta[i] * 180 / math.Pi
		pts[i].Y = db[i]
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{R: 0, G: 0, B: 255, A: 255} // blue
	line.Width = vg.Points(1)

	p.Add(line)

	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}

// StepTicks places ticks at fixed intervals with a shared numeric format.
type StepTicks struct {
	Step   float64
	Format string
}

func (t StepTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	start := math.Ceil(min/t.Step) * t.Step
	for v := start; v <= max; v += t.Step {
		ticks = append(ticks, plot.Tick{
			Value: v,
			Label: fmt.Sprintf(t.Format, v),
		})
	}
	return ticks
}
