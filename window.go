package near2far

import "math"

// WindowFractions sets, per in-plane axis, the fraction of the sampled span
// over which surface currents are tapered to zero at each end. Tapering
// suppresses the diffraction ripple caused by truncating currents abruptly at
// the monitor edges. The zero value disables windowing.
type WindowFractions [2]float64

// applyWindowToCurrents returns the currents multiplied pointwise by a
// cosine-squared taper along each in-plane axis. A zero window, or an axis
// with a single sample, passes through unchanged.
func applyWindowToCurrents(cur *SurfaceCurrents, window WindowFractions) *SurfaceCurrents {
	if window[0] == 0 && window[1] == 0 {
		return cur
	}

	idxU, idxV := tangentialAxes(cur.Axis)
	out := cur.clone()
	for dim, idx := range [2]Axis{idxU, idxV} {
		pts := out.coords(idx)
		if len(pts) <= 1 || window[dim] == 0 {
			continue
		}
		out.scaleAxis(idx, windowFunction(pts, window[dim]))
	}
	return out
}

// windowFunction evaluates the taper pointwise over the sample span. The
// bounds are the first and last sample along the axis; the taper rises from
// zero over fraction*span at each end and is one in between.
func windowFunction(pts []float64, fraction float64) []float64 {
	lo, hi := pts[0], pts[len(pts)-1]
	ramp := fraction * (hi - lo)
	out := make([]float64, len(pts))
	for i, p := range pts {
		switch {
		case ramp <= 0:
			out[i] = 1
		case p < lo+ramp:
			s := math.Sin((p - lo) / ramp * math.Pi / 2)
			out[i] = s * s
		case p > hi-ramp:
			s := math.Sin((hi - p) / ramp * math.Pi / 2)
			out[i] = s * s
		default:
			out[i] = 1
		}
	}
	return out
}
