package near2far

// ObservationGrid describes a set of observation points and how projected
// fields are laid out over them. Each grid kind drives the projection loop
// natural to its geometry.
type ObservationGrid interface {
	project(p *FieldProjector) (*ProjectionData, error)
}

// GridOptions carries settings shared by every observation grid kind.
type GridOptions struct {
	// Exact selects the exact Green's function engine instead of the
	// radiation-zone approximation.
	Exact bool
	// Medium overrides the projector's background medium when non-nil.
	Medium Medium
	// Window tapers surface currents near the monitor edges before
	// projecting.
	Window WindowFractions
}

// AngularGrid observes fields on the product of polar angles Theta and
// azimuth angles Phi (radians) at radius ProjDistance from the local origin.
type AngularGrid struct {
	Theta, Phi []float64
	// ProjDistance is the observation radius in um. With the radiation-zone
	// approximation a non-positive distance leaves the scalar propagation
	// factor off, yielding fields that scale with distance only through it.
	ProjDistance float64
	GridOptions
}

// CartesianGrid observes fields on a plane perpendicular to ProjAxis, offset
// by ProjDistance from the local origin, at the in-plane positions XS x YS
// (um, ascending axis order).
type CartesianGrid struct {
	XS, YS       []float64
	ProjAxis     Axis
	ProjDistance float64
	GridOptions
}

// KSpaceGrid observes fields at direction cosines UX x UY in the plane
// perpendicular to ProjAxis, at radius ProjDistance from the local origin.
// Each (ux, uy) pair must satisfy ux*ux+uy*uy <= 1.
type KSpaceGrid struct {
	UX, UY       []float64
	ProjAxis     Axis
	ProjDistance float64
	GridOptions
}

func (g AngularGrid) project(p *FieldProjector) (*ProjectionData, error) {
	if len(g.Theta) == 0 || len(g.Phi) == 0 {
		return nil, setupErrorf("angular grid requires at least one theta and one phi sample")
	}
	if g.Exact && g.ProjDistance <= 0 {
		return nil, setupErrorf("exact projection requires a positive projection distance")
	}
	medium := p.gridMedium(g.Medium)
	freqs := p.Frequencies()

	data := newProjectionData(p, medium, [4]string{"r", "theta", "phi", "f"}, map[string][]float64{
		"r":     {g.ProjDistance},
		"theta": g.Theta,
		"phi":   g.Phi,
		"f":     freqs,
	})

	total := len(p.surfaces) * len(g.Theta) * len(g.Phi)
	done := 0
	for _, surface := range p.surfaces {
		cur := applyWindowToCurrents(p.currents[surface.Monitor.Name], g.Window)

		if g.Exact {
			for it, th := range g.Theta {
				for ip, ph := range g.Phi {
					x, y, z := sphToCar(g.ProjDistance, th, ph)
					fields := p.exactFieldsForSurface(x, y, z, surface, cur, medium)
					for fi := range freqs {
						data.addPoint(0, it, ip, fi, [6]complex128{
							fields[0][fi], fields[1][fi], fields[2][fi],
							fields[3][fi], fields[4][fi], fields[5][fi],
						})
					}
					done++
					p.reportProgress(done, total)
				}
			}
			continue
		}

		for fi, freq := range freqs {
			ff, err := p.farFieldsForSurface(freq, g.Theta, g.Phi, surface, cur, medium)
			if err != nil {
				return nil, err
			}
			phase := complex(1, 0)
			if g.ProjDistance > 0 {
				phase = PropagationFactor(g.ProjDistance, Wavenumber(medium, freq), p.is2D)
			}
			for it := range g.Theta {
				for ip := range g.Phi {
					data.addPoint(0, it, ip, fi, [6]complex128{
						0, ff.Etheta[it][ip] * phase, ff.Ephi[it][ip] * phase,
						0, ff.Htheta[it][ip] * phase, ff.Hphi[it][ip] * phase,
					})
				}
			}
		}
	}
	return data, nil
}

func (g CartesianGrid) project(p *FieldProjector) (*ProjectionData, error) {
	if len(g.XS) == 0 || len(g.YS) == 0 {
		return nil, setupErrorf("cartesian grid requires at least one sample along each in-plane axis")
	}
	if g.ProjAxis < AxisX || g.ProjAxis > AxisZ {
		return nil, setupErrorf("invalid projection axis %d", g.ProjAxis)
	}
	medium := p.gridMedium(g.Medium)
	freqs := p.Frequencies()

	idxU, idxV := tangentialAxes(g.ProjAxis)
	coords := map[string][]float64{"f": freqs}
	coords[axisNames[idxU]] = g.XS
	coords[axisNames[idxV]] = g.YS
	coords[axisNames[g.ProjAxis]] = []float64{g.ProjDistance}
	data := newProjectionData(p, medium, [4]string{"x", "y", "z", "f"}, coords)

	total := len(p.surfaces) * len(g.XS) * len(g.YS)
	done := 0
	for _, surface := range p.surfaces {
		cur := applyWindowToCurrents(p.currents[surface.Monitor.Name], g.Window)

		for iu, u := range g.XS {
			for iv, v := range g.YS {
				pt := unpopAxis(g.ProjDistance, [2]float64{u, v}, g.ProjAxis)
				idx := unpopAxisIdx(0, [2]int{iu, iv}, g.ProjAxis)

				if g.Exact {
					fields := p.exactFieldsForSurface(pt[0], pt[1], pt[2], surface, cur, medium)
					for fi := range freqs {
						data.addPoint(idx[0], idx[1], idx[2], fi, [6]complex128{
							fields[0][fi], fields[1][fi], fields[2][fi],
							fields[3][fi], fields[4][fi], fields[5][fi],
						})
					}
				} else {
					r, theta, phi := carToSph(pt[0], pt[1], pt[2])
					for fi, freq := range freqs {
						ff, err := p.farFieldsForSurface(freq, []float64{theta}, []float64{phi}, surface, cur, medium)
						if err != nil {
							return nil, err
						}
						phase := PropagationFactor(r, Wavenumber(medium, freq), p.is2D)
						data.addPoint(idx[0], idx[1], idx[2], fi, [6]complex128{
							0, ff.Etheta[0][0] * phase, ff.Ephi[0][0] * phase,
							0, ff.Htheta[0][0] * phase, ff.Hphi[0][0] * phase,
						})
					}
				}
				done++
				p.reportProgress(done, total)
			}
		}
	}
	return data, nil
}

func (g KSpaceGrid) project(p *FieldProjector) (*ProjectionData, error) {
	if len(g.UX) == 0 || len(g.UY) == 0 {
		return nil, setupErrorf("k-space grid requires at least one sample along each direction cosine axis")
	}
	for _, ux := range g.UX {
		for _, uy := range g.UY {
			if ux*ux+uy*uy > 1 {
				return nil, setupErrorf("direction cosines (%g, %g) lie outside the unit disk", ux, uy)
			}
		}
	}
	if g.Exact && g.ProjDistance <= 0 {
		return nil, setupErrorf("exact projection requires a positive projection distance")
	}
	medium := p.gridMedium(g.Medium)
	freqs := p.Frequencies()

	data := newProjectionData(p, medium, [4]string{"ux", "uy", "r", "f"}, map[string][]float64{
		"ux": g.UX,
		"uy": g.UY,
		"r":  {g.ProjDistance},
		"f":  freqs,
	})

	total := len(p.surfaces) * len(g.UX) * len(g.UY)
	done := 0
	for _, surface := range p.surfaces {
		cur := applyWindowToCurrents(p.currents[surface.Monitor.Name], g.Window)

		for iu, ux := range g.UX {
			for iv, uy := range g.UY {
				theta, phi := kSpaceToSph(ux, uy, g.ProjAxis)

				if g.Exact {
					x, y, z := sphToCar(g.ProjDistance, theta, phi)
					fields := p.exactFieldsForSurface(x, y, z, surface, cur, medium)
					for fi := range freqs {
						data.addPoint(iu, iv, 0, fi, [6]complex128{
							fields[0][fi], fields[1][fi], fields[2][fi],
							fields[3][fi], fields[4][fi], fields[5][fi],
						})
					}
				} else {
					for fi, freq := range freqs {
						ff, err := p.farFieldsForSurface(freq, []float64{theta}, []float64{phi}, surface, cur, medium)
						if err != nil {
							return nil, err
						}
						phase := complex(1, 0)
						if g.ProjDistance > 0 {
							phase = PropagationFactor(g.ProjDistance, Wavenumber(medium, freq), p.is2D)
						}
						data.addPoint(iu, iv, 0, fi, [6]complex128{
							0, ff.Etheta[0][0] * phase, ff.Ephi[0][0] * phase,
							0, ff.Htheta[0][0] * phase, ff.Hphi[0][0] * phase,
						})
					}
				}
				done++
				p.reportProgress(done, total)
			}
		}
	}
	return data, nil
}

// unpopAxisIdx mirrors unpopAxis for integer array indices.
func unpopAxisIdx(w int, uv [2]int, axis Axis) [3]int {
	switch axis {
	case AxisX:
		return [3]int{w, uv[0], uv[1]}
	case AxisY:
		return [3]int{uv[0], w, uv[1]}
	default:
		return [3]int{uv[0], uv[1], w}
	}
}
