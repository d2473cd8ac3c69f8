package near2far

import (
	"math"
	"math/cmplx"
)

// exactFieldsForSurface computes the six spherical field components at one
// observation point, for every stored frequency, using the exact homogeneous
// medium Green's function with no geometric approximations. The observation
// point is given relative to the local origin and must not coincide with a
// source sample point: the scalar Green's function is singular at r = 0, and
// the caller is responsible for keeping observation grids off the source
// surfaces.
func (p *FieldProjector) exactFieldsForSurface(x, y, z float64, surface ProjectionSurface, cur *SurfaceCurrents, medium Medium) [6][]complex128 {
	freqs := cur.Freqs
	nf := len(freqs)
	axis := cur.Axis
	idxU, idxV := tangentialAxes(axis)
	coords := [3][]float64{cur.X, cur.Y, cur.Z}

	iOmega := make([]complex128, nf)
	wavenumber := make([]complex128, nf)
	epsilon := make([]complex128, nf)
	for i, f := range freqs {
		iOmega[i] = complex(0, 2*math.Pi*f)
		wavenumber[i] = Wavenumber(medium, f)
		epsilon[i] = complex(Epsilon0, 0) * medium.EpsModel(f)
	}

	// Cartesian integrands for E and H at every source point and frequency
	var eInt, hInt [3][][][][]complex128
	for c := 0; c < 3; c++ {
		eInt[c] = alloc4(len(cur.X), len(cur.Y), len(cur.Z), nf)
		hInt[c] = alloc4(len(cur.X), len(cur.Y), len(cur.Z), nf)
	}

	for ix, xs := range cur.X {
		for iy, ys := range cur.Y {
			for iz, zs := range cur.Z {
				// translate the coordinate system so the source point is the
				// origin
				r, thetaSrc, phiSrc := carToSph(x-xs, y-ys, z-zs)
				sinT, cosT := math.Sincos(thetaSrc)
				sinP, cosP := math.Sincos(phiSrc)

				for fi := 0; fi < nf; fi++ {
					// tangential currents placed into their Cartesian slots
					var J, M [3]complex128
					J[idxU], J[idxV] = cur.J1[ix][iy][iz][fi], cur.J2[ix][iy][iz][fi]
					M[idxU], M[idxV] = cur.M1[ix][iy][iz][fi], cur.M2[ix][iy][iz][fi]

					// scalar Green's function and its radial derivatives,
					// analytic so the pipeline stays smooth near small r
					ikr := 1i * wavenumber[fi] * complex(r, 0)
					G := cmplx.Exp(ikr) / complex(4*math.Pi*r, 0)
					dGdr := G * (ikr - 1) / complex(r, 0)
					d2Gdr2 := dGdr*(ikr-1)/complex(r, 0) + G/complex(r*r, 0)

					// magnetic vector potential terms from J, electric vector
					// potential terms from M
					A, curlA, gradDivA := potentialTerms(J, complex(Mu0, 0), G, dGdr, d2Gdr2, r, sinT, cosT, sinP, cosP, thetaSrc, phiSrc)
					F, curlF, gradDivF := potentialTerms(M, epsilon[fi], G, dGdr, d2Gdr2, r, sinT, cosT, sinP, cosP, thetaSrc, phiSrc)

					// mixed-potential integrands, Taflove 8.24/8.25 and
					// 8.27/8.28
					k2 := wavenumber[fi] * wavenumber[fi]
					for c := 0; c < 3; c++ {
						eInt[c][ix][iy][iz][fi] = iOmega[fi]*(A[c]+gradDivA[c]/k2) - curlF[c]/epsilon[fi]
						hInt[c][ix][iy][iz][fi] = iOmega[fi]*(F[c]+gradDivF[c]/k2) + curlA[c]/complex(Mu0, 0)
					}
				}
			}
		}
	}

	// integrate over the in-plane surface axes, per frequency
	var eCar, hCar [3][]complex128
	for c := 0; c < 3; c++ {
		e := trapezoidAxis(trapezoidAxis(eInt[c], coords[idxU], idxU), coords[idxV], idxV)
		h := trapezoidAxis(trapezoidAxis(hInt[c], coords[idxU], idxU), coords[idxV], idxV)
		eCar[c] = e[0][0][0]
		hCar[c] = h[0][0][0]
	}

	// back to spherical components at the untranslated observation direction
	_, thetaObs, phiObs := carToSph(x, y, z)
	var out [6][]complex128
	for i := range out {
		out[i] = make([]complex128, nf)
	}
	for fi := 0; fi < nf; fi++ {
		er, et, ep := carToSphField(eCar[0][fi], eCar[1][fi], eCar[2][fi], thetaObs, phiObs)
		hr, ht, hp := carToSphField(hCar[0][fi], hCar[1][fi], hCar[2][fi], thetaObs, phiObs)
		out[0][fi], out[1][fi], out[2][fi] = er, et, ep
		out[3][fi], out[4][fi], out[5][fi] = hr, ht, hp
	}
	return out
}

// potentialTerms assembles the plain, curl and gradient-of-divergence terms
// of the vector potential produced by a current element at one source point,
// all expressed in Cartesian components.
func potentialTerms(current [3]complex128, constFactor, G, dGdr, d2Gdr2 complex128, r, sinT, cosT, sinP, cosP, theta, phi float64) (pot, curlPot, gradDivPot [3]complex128) {
	st := complex(sinT, 0)
	ct := complex(cosT, 0)
	sp := complex(sinP, 0)
	cp := complex(cosP, 0)

	// cross product of the radial unit vector with the current
	rxc := [3]complex128{
		st*sp*current[2] - ct*current[1],
		ct*current[0] - st*cp*current[2],
		st*cp*current[1] - st*sp*current[0],
	}

	rDot := st*cp*current[0] + st*sp*current[1] + ct*current[2]
	rDotDTheta := ct*cp*current[0] + ct*sp*current[1] - st*current[2]
	// the phi derivative carries a 1/sin(theta) that cancels analytically
	rDotDPhiDivSinT := -sp*current[0] + cp*current[1]

	// gradient of dG/dr times the radial projection of the current, rotated
	// into Cartesian coordinates
	gx, gy, gz := sphToCarField(
		d2Gdr2*rDot,
		dGdr*rDotDTheta/complex(r, 0),
		dGdr*rDotDPhiDivSinT/complex(r, 0),
		theta, phi,
	)

	for c := 0; c < 3; c++ {
		pot[c] = constFactor * current[c] * G
		curlPot[c] = constFactor * rxc[c] * dGdr
	}
	gradDivPot = [3]complex128{constFactor * gx, constFactor * gy, constFactor * gz}
	return pot, curlPot, gradDivPot
}
