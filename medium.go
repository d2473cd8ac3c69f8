package near2far

import (
	"math"
	"math/cmplx"
)

// Medium describes a homogeneous background medium through which near fields
// are projected.
type Medium interface {
	// EpsModel returns the relative complex permittivity at the given
	// frequency (Hz).
	EpsModel(freq float64) complex128
}

// IsotropicMedium is a non-dispersive medium characterized by a real relative
// permittivity and an electric conductivity (S/um).
type IsotropicMedium struct {
	Permittivity float64
	Conductivity float64
}

// Vacuum is the default background medium.
var Vacuum Medium = IsotropicMedium{Permittivity: 1}

func (m IsotropicMedium) EpsModel(freq float64) complex128 {
	return complex(m.Permittivity, m.Conductivity/(2*math.Pi*freq*Epsilon0))
}

// RefractiveIndex returns (n, kappa), the real and imaginary parts of the
// complex refractive index sqrt(eps) of the medium at the given frequency.
func RefractiveIndex(medium Medium, freq float64) (n, kappa float64) {
	nk := cmplx.Sqrt(medium.EpsModel(freq))
	return real(nk), imag(nk)
}

// Wavenumber returns the complex wavenumber in the medium at the given
// frequency.
func Wavenumber(medium Medium, freq float64) complex128 {
	n, kappa := RefractiveIndex(medium, freq)
	return complex(2*math.Pi*freq/C0, 0) * complex(n, kappa)
}

// Impedance returns the intrinsic impedance of the medium at the given
// frequency.
func Impedance(medium Medium, freq float64) complex128 {
	return complex(Eta0, 0) / cmplx.Sqrt(medium.EpsModel(freq))
}

// PropagationFactor is the scalar factor that carries radiation-zone fields
// from the source region to an observation distance. A 2D simulation radiates
// cylindrical waves, so its radial falloff follows a 1/sqrt(r) law instead of
// the spherical 1/r law.
func PropagationFactor(dist float64, k complex128, is2D bool) complex128 {
	ikr := 1i * k * complex(dist, 0)
	if is2D {
		return -cmplx.Exp(ikr) * cmplx.Sqrt(1i*k/complex(8*math.Pi*dist, 0))
	}
	return -1i * k * cmplx.Exp(ikr) / complex(4*math.Pi*dist, 0)
}
