// Package near2far converts frequency-domain near-field samples captured on
// surfaces enclosing a radiating structure into far-field (or arbitrary
// distance) electromagnetic field predictions.
//
// Tangential E and H fields recorded on one or more planar monitors are
// turned into equivalent surface currents (J = n x H, M = -n x E), resampled
// onto a uniform grid, optionally tapered at the monitor edges, and then
// projected to an observation grid. Two projection engines are available: a
// radiation-zone approximation, valid many wavelengths from the source, and
// an exact homogeneous-medium Green's-function integral valid at any
// distance.
//
// Lengths are expressed in micrometers and frequencies in Hz throughout, so a
// 300 THz wave in vacuum has a wavelength of 1.0.
package near2far
