package near2far

import (
	"math"
	"math/cmplx"
)

// farFieldComponents holds the six spherical field components over a
// (theta, phi) observation grid for one frequency. Er and Hr are identically
// zero in the radiation zone.
type farFieldComponents struct {
	Er, Etheta, Ephi, Hr, Htheta, Hphi [][]complex128
}

func newFarFieldComponents(nTheta, nPhi int) *farFieldComponents {
	grid := func() [][]complex128 {
		g := make([][]complex128, nTheta)
		for i := range g {
			g[i] = make([]complex128, nPhi)
		}
		return g
	}
	return &farFieldComponents{
		Er: grid(), Etheta: grid(), Ephi: grid(),
		Hr: grid(), Htheta: grid(), Hphi: grid(),
	}
}

// farFieldsForSurface projects one surface's currents to the given
// observation angles under the radiation-zone approximation: propagation
// enters only as a phase across the source plane, and the radiated field is
// assembled from the equivalence-principle radiation vectors N and L. The
// scalar propagation factor for the observation distance is applied by the
// caller.
func (p *FieldProjector) farFieldsForSurface(frequency float64, theta, phi []float64, surface ProjectionSurface, cur *SurfaceCurrents, medium Medium) (*farFieldComponents, error) {
	fi := cur.freqIndex(frequency)
	if fi < 0 {
		return nil, setupErrorf("frequency %g not found in fields for monitor %q", frequency, surface.Monitor.Name)
	}

	axis := cur.Axis
	idxU, idxV := tangentialAxes(axis)
	coords := [3][]float64{cur.X, cur.Y, cur.Z}

	// For a 2D simulation only the in-plane axis orthogonal to the collapsed
	// simulation dimension is integrated over.
	var idxInt1D Axis
	if p.is2D {
		zeroDims := p.simData.Simulation.zeroSizeAxes()
		if len(zeroDims) != 1 {
			return nil, setupErrorf("expected exactly one zero-size dimension for a 2D simulation, found %d", len(zeroDims))
		}
		for a := AxisX; a <= AxisZ; a++ {
			if a != zeroDims[0] && a != axis {
				idxInt1D = a
			}
		}
	}

	propagation := -1i * Wavenumber(medium, frequency)
	eta := Impedance(medium, frequency)

	components := [4][][][][]complex128{cur.J1, cur.J2, cur.M1, cur.M2}

	out := newFarFieldComponents(len(theta), len(phi))
	for it, th := range theta {
		sinT, cosT := math.Sincos(th)

		// the z-axis phase does not depend on phi
		phaseZ := make([]complex128, len(coords[2]))
		for i, z := range coords[2] {
			phaseZ[i] = cmplx.Exp(propagation * complex(z*cosT, 0))
		}

		for ip, ph := range phi {
			sinP, cosP := math.Sincos(ph)

			phaseX := make([]complex128, len(coords[0]))
			for i, x := range coords[0] {
				phaseX[i] = cmplx.Exp(propagation * complex(x*sinT*cosP, 0))
			}
			phaseY := make([]complex128, len(coords[1]))
			for i, y := range coords[1] {
				phaseY[i] = cmplx.Exp(propagation * complex(y*sinT*sinP, 0))
			}

			// phase-weight each current component, then integrate away the
			// in-plane source axes
			var jm [4]complex128
			for ci, comp := range components {
				integrand := alloc3(len(coords[0]), len(coords[1]), len(coords[2]))
				for ix := range integrand {
					for iy := range integrand[ix] {
						for iz := range integrand[ix][iy] {
							integrand[ix][iy][iz] = comp[ix][iy][iz][fi] * phaseX[ix] * phaseY[iy] * phaseZ[iz]
						}
					}
				}
				if p.is2D {
					integrand = trapezoid3Axis(integrand, coords[idxInt1D], idxInt1D)
				} else {
					integrand = trapezoid3Axis(integrand, coords[idxU], idxU)
					integrand = trapezoid3Axis(integrand, coords[idxV], idxV)
				}
				jm[ci] = integrand[0][0][0]
			}

			// currents are purely tangential: the normal Cartesian slot is zero
			var J, M [3]complex128
			J[idxU], J[idxV] = jm[0], jm[1]
			M[idxU], M[idxV] = jm[2], jm[3]

			ctcp := complex(cosT*cosP, 0)
			ctsp := complex(cosT*sinP, 0)
			st := complex(sinT, 0)
			sp := complex(sinP, 0)
			cp := complex(cosP, 0)

			// radiation vectors, Balanis 8.33/8.34
			nTheta := J[0]*ctcp + J[1]*ctsp - J[2]*st
			nPhi := -J[0]*sp + J[1]*cp
			lTheta := M[0]*ctcp + M[1]*ctsp - M[2]*st
			lPhi := -M[0]*sp + M[1]*cp

			out.Etheta[it][ip] = -(lPhi + eta*nTheta)
			out.Ephi[it][ip] = lTheta - eta*nPhi
			out.Htheta[it][ip] = -out.Ephi[it][ip] / eta
			out.Hphi[it][ip] = out.Etheta[it][ip] / eta
		}
	}
	return out, nil
}
