package near2far

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Physical constants in the micrometer length convention.
const (
	C0       = 2.99792458e14      // speed of light in vacuum, um/s
	Epsilon0 = 8.8541878128e-18   // vacuum permittivity, F/um
	Mu0      = 1.25663706212e-12  // vacuum permeability, H/um
	Eta0     = 376.73031346177066 // vacuum intrinsic impedance, ohm
)

// Axis indexes the three Cartesian coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

var axisNames = [3]string{"x", "y", "z"}

// Direction selects which side of a surface its outward normal points to.
type Direction string

const (
	Plus  Direction = "+"
	Minus Direction = "-"
)

// tangentialAxes returns the two in-plane axis indices for a plane
// perpendicular to the given axis, in ascending order.
func tangentialAxes(axis Axis) (Axis, Axis) {
	switch axis {
	case AxisX:
		return AxisY, AxisZ
	case AxisY:
		return AxisX, AxisZ
	default:
		return AxisX, AxisY
	}
}

// unpopAxis reassembles a 3-vector from its normal-axis value and the two
// in-plane values, undoing the ordering of tangentialAxes.
func unpopAxis(w float64, uv [2]float64, axis Axis) [3]float64 {
	switch axis {
	case AxisX:
		return [3]float64{w, uv[0], uv[1]}
	case AxisY:
		return [3]float64{uv[0], w, uv[1]}
	default:
		return [3]float64{uv[0], uv[1], w}
	}
}

// carToSph converts a Cartesian point to spherical coordinates. The polar
// angle theta is measured from the +z axis, the azimuth phi from the +x axis.
func carToSph(x, y, z float64) (r, theta, phi float64) {
	r = math.Sqrt(x*x + y*y + z*z)
	if r == 0 {
		return 0, 0, 0
	}
	theta = math.Acos(z / r)
	phi = math.Atan2(y, x)
	return r, theta, phi
}

// sphToCar converts spherical coordinates to a Cartesian point.
func sphToCar(r, theta, phi float64) (x, y, z float64) {
	sinT, cosT := math.Sincos(theta)
	sinP, cosP := math.Sincos(phi)
	return r * sinT * cosP, r * sinT * sinP, r * cosT
}

// kSpaceToSph converts direction cosines (ux, uy) in the plane perpendicular
// to the projection axis into global observation angles. The local frame has
// its w axis along the projection axis and its u, v axes along the remaining
// two axes in ascending order.
func kSpaceToSph(ux, uy float64, axis Axis) (theta, phi float64) {
	phiLocal := math.Atan2(uy, ux)
	thetaLocal := math.Asin(math.Sqrt(ux*ux + uy*uy))
	if axis == AxisZ {
		return thetaLocal, phiLocal
	}
	w := math.Cos(thetaLocal)
	uv := [2]float64{
		math.Sin(thetaLocal) * math.Cos(phiLocal),
		math.Sin(thetaLocal) * math.Sin(phiLocal),
	}
	p := unpopAxis(w, uv, axis)
	_, theta, phi = carToSph(p[0], p[1], p[2])
	return theta, phi
}

// sphToCarField rotates spherical vector-field components into Cartesian
// components at the observation angles (theta, phi).
func sphToCarField(fr, ftheta, fphi complex128, theta, phi float64) (fx, fy, fz complex128) {
	sinT, cosT := math.Sincos(theta)
	sinP, cosP := math.Sincos(phi)
	fx = fr*complex(sinT*cosP, 0) + ftheta*complex(cosT*cosP, 0) - fphi*complex(sinP, 0)
	fy = fr*complex(sinT*sinP, 0) + ftheta*complex(cosT*sinP, 0) + fphi*complex(cosP, 0)
	fz = fr*complex(cosT, 0) - ftheta*complex(sinT, 0)
	return fx, fy, fz
}

// carToSphField rotates Cartesian vector-field components into spherical
// components at the observation angles (theta, phi).
func carToSphField(fx, fy, fz complex128, theta, phi float64) (fr, ftheta, fphi complex128) {
	sinT, cosT := math.Sincos(theta)
	sinP, cosP := math.Sincos(phi)
	fr = fx*complex(sinT*cosP, 0) + fy*complex(sinT*sinP, 0) + fz*complex(cosT, 0)
	ftheta = fx*complex(cosT*cosP, 0) + fy*complex(cosT*sinP, 0) - fz*complex(sinT, 0)
	fphi = -fx*complex(sinP, 0) + fy*complex(cosP, 0)
	return fr, ftheta, fphi
}

// Linspace returns n evenly spaced samples over [start, end] inclusive.
func Linspace(start, end float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, end)
}
