package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const validScenario = `{
	// uniformly illuminated slot antenna aperture
	title: "test aperture",
	aperture: {
		x_size_um: 4.0,
		y_size_um: 2.0,
	},
	wavelength_um: 1.0,
	observation: {
		distance_um: 1000.0,
		theta_max_degrees: 60.0,
		num_theta: 61,
	},
}`

func TestParseScenarioFile(t *testing.T) {
	scenario, msg, ok := parseScenarioFile([]byte(validScenario))
	require.True(t, ok, msg)

	require.Equal(t, "test aperture", scenario.Title)
	require.Equal(t, 4.0, scenario.ApertureXum)
	require.Equal(t, 2.0, scenario.ApertureYum)
	require.Equal(t, 1.0, scenario.WavelengthUm)
	require.Equal(t, 1000.0, scenario.ProjDistanceUm)
	require.Equal(t, 60.0, scenario.ThetaMaxDeg)
	require.Equal(t, 61, scenario.NumTheta)

	// defaulted fields
	require.Equal(t, 10, scenario.SamplesPerWavelength)
	require.Equal(t, 1.0, scenario.Permittivity)
	require.False(t, scenario.Exact)
	require.Equal(t, "pattern.png", scenario.OutputFile)
	require.Equal(t, -60.0, scenario.FloorDB)
}

func TestParseScenarioFileMissingAperture(t *testing.T) {
	_, msg, ok := parseScenarioFile([]byte(`{wavelength_um: 1.0}`))
	require.False(t, ok)
	require.Contains(t, msg, "aperture.x_size_um")
}

func TestParseScenarioFileWrongType(t *testing.T) {
	_, msg, ok := parseScenarioFile([]byte(`{
		aperture: {x_size_um: "wide", y_size_um: 2.0},
		wavelength_um: 1.0,
		observation: {distance_um: 100.0},
	}`))
	require.False(t, ok)
	require.Contains(t, msg, "aperture.x_size_um: is not a float64")
}

func TestParseScenarioFileRejectsBadValues(t *testing.T) {
	_, msg, ok := parseScenarioFile([]byte(`{
		aperture: {x_size_um: -1.0, y_size_um: 2.0},
		wavelength_um: 1.0,
		observation: {distance_um: 100.0},
	}`))
	require.False(t, ok)
	require.Contains(t, msg, "aperture sizes must be positive")
}
