package near2far

import "gonum.org/v1/gonum/floats"

// FieldProjector projects near fields captured on surface monitors to
// arbitrary observation points. The derived surface currents are computed
// once at construction and cached per monitor; to change the configuration,
// construct a new projector.
type FieldProjector struct {
	simData  *SimulationData
	surfaces []ProjectionSurface

	ptsPerWavelength int // <= 0 keeps the native grid lines
	origin           [3]float64
	originSet        bool
	medium           Medium
	is2D             bool
	progress         func(done, total int)

	currents map[string]*SurfaceCurrents
}

// ProjectorOption configures a FieldProjector at construction time.
type ProjectorOption func(*FieldProjector)

// WithPtsPerWavelength sets the density used to resample surface currents.
func WithPtsPerWavelength(n int) ProjectorOption {
	return func(p *FieldProjector) { p.ptsPerWavelength = n }
}

// WithoutResampling keeps the simulation's native grid boundary lines;
// currents are still colocated onto a shared set of points per axis.
func WithoutResampling() ProjectorOption {
	return func(p *FieldProjector) { p.ptsPerWavelength = -1 }
}

// WithOrigin sets the local origin observation points are defined against.
// By default the centroid of all surface monitor centers is used.
func WithOrigin(x, y, z float64) ProjectorOption {
	return func(p *FieldProjector) {
		p.origin = [3]float64{x, y, z}
		p.originSet = true
	}
}

// WithProgress registers a callback reporting per-point completion of the
// exact projection path, whose per-point cost dominates everything else.
func WithProgress(fn func(done, total int)) ProjectorOption {
	return func(p *FieldProjector) { p.progress = fn }
}

// NewFieldProjector validates the configuration and computes the surface
// currents for every projection surface.
func NewFieldProjector(simData *SimulationData, surfaces []ProjectionSurface, opts ...ProjectorOption) (*FieldProjector, error) {
	if simData == nil || simData.Simulation == nil {
		return nil, setupErrorf("simulation data is required")
	}
	if len(surfaces) == 0 {
		return nil, setupErrorf("at least one projection surface is required")
	}

	p := &FieldProjector{
		simData:          simData,
		surfaces:         surfaces,
		ptsPerWavelength: DefaultPtsPerWavelength,
		currents:         make(map[string]*SurfaceCurrents, len(surfaces)),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.is2D = simData.Simulation.IsTwoDimensional()

	for _, surface := range surfaces {
		if surface.Monitor == nil {
			return nil, setupErrorf("projection surface has no monitor")
		}
		if surface.NormalDir != Plus && surface.NormalDir != Minus {
			return nil, setupErrorf("monitor %q has invalid normal direction %q", surface.Monitor.Name, surface.NormalDir)
		}
		if _, err := surface.Monitor.Axis(); err != nil {
			return nil, err
		}
		if len(surface.Monitor.Freqs) == 0 {
			return nil, setupErrorf("monitor %q has no frequencies", surface.Monitor.Name)
		}
		// all surfaces must share one frequency axis: projected fields are
		// accumulated per frequency index across surfaces
		if !floats.Equal(surface.Monitor.Freqs, surfaces[0].Monitor.Freqs) {
			return nil, setupErrorf("monitor %q frequency axis does not match monitor %q",
				surface.Monitor.Name, surfaces[0].Monitor.Name)
		}
	}

	if !p.originSet {
		var centroid [3]float64
		for _, surface := range surfaces {
			for i := 0; i < 3; i++ {
				centroid[i] += surface.Monitor.Center[i]
			}
		}
		for i := 0; i < 3; i++ {
			centroid[i] /= float64(len(surfaces))
		}
		p.origin = centroid
	}

	p.medium = simData.Simulation.MonitorMedium(surfaces[0].Monitor)

	for _, surface := range surfaces {
		cur, err := ComputeSurfaceCurrents(simData, surface, p.medium, p.ptsPerWavelength)
		if err != nil {
			return nil, err
		}
		cur.shiftOrigin(p.origin)
		p.currents[surface.Monitor.Name] = cur
	}

	return p, nil
}

// NewFieldProjectorFromMonitors pairs near-field monitors with the outward
// direction of each surface normal.
func NewFieldProjectorFromMonitors(simData *SimulationData, monitors []*FieldMonitor, normalDirs []Direction, opts ...ProjectorOption) (*FieldProjector, error) {
	if len(monitors) != len(normalDirs) {
		return nil, setupErrorf("number of monitors (%d) does not equal the number of directions (%d)", len(monitors), len(normalDirs))
	}
	surfaces := make([]ProjectionSurface, len(monitors))
	for i, monitor := range monitors {
		surfaces[i] = ProjectionSurface{Monitor: monitor, NormalDir: normalDirs[i]}
	}
	return NewFieldProjector(simData, surfaces, opts...)
}

// Frequencies returns the frequency list associated with the projection
// surfaces.
func (p *FieldProjector) Frequencies() []float64 {
	return p.surfaces[0].Monitor.Freqs
}

// Origin returns the local origin subtracted from all surface coordinates.
func (p *FieldProjector) Origin() [3]float64 { return p.origin }

// Medium returns the medium fields are projected through.
func (p *FieldProjector) Medium() Medium { return p.medium }

// Surfaces returns the projection surfaces.
func (p *FieldProjector) Surfaces() []ProjectionSurface { return p.surfaces }

// Currents returns the cached, origin-shifted surface currents for one
// monitor name. The returned value is shared and must be treated read-only.
func (p *FieldProjector) Currents(monitorName string) (*SurfaceCurrents, bool) {
	cur, ok := p.currents[monitorName]
	return cur, ok
}

// Project computes projected fields on the given observation grid,
// accumulating the contributions of every projection surface.
func (p *FieldProjector) Project(grid ObservationGrid) (*ProjectionData, error) {
	return grid.project(p)
}

func (p *FieldProjector) reportProgress(done, total int) {
	if p.progress != nil {
		p.progress(done, total)
	}
}

func (p *FieldProjector) gridMedium(override Medium) Medium {
	if override != nil {
		return override
	}
	return p.medium
}
