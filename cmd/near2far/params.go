package main

import json "github.com/KevinWang15/go-json5"

// Scenario describes a uniformly illuminated rectangular aperture and the
// observation grid its radiation pattern is computed on. All lengths are in
// micrometers; the aperture lies in the z = 0 plane and radiates toward +z.
type Scenario struct {
	Title string

	ApertureXum  float64
	ApertureYum  float64
	WavelengthUm float64

	SamplesPerWavelength int

	Permittivity float64
	Conductivity float64

	ProjDistanceUm float64
	ThetaMaxDeg    float64
	NumTheta       int
	PhiDeg         float64
	Exact          bool

	WindowX float64
	WindowY float64

	OutputFile string
	FloorDB    float64
}

func getLeafValue(jsonTable map[string]interface{}, path ...string) (interface{}, bool) {
	var cur interface{} = jsonTable
	for _, p := range path {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func validateJsonFileAndFillScenario(jsonTable map[string]interface{}, scenario *Scenario) (string, bool) {
	msg := "No problem found in json file" // Initialize msg to presumed success.

	title, ok := getLeafValue(jsonTable, "title")
	if ok {
		scenario.Title, ok = title.(string)
		if !ok {
			msg = "title: is not a string"
			return msg, false
		}
	}

	apertureX, ok := getLeafValue(jsonTable, "aperture", "x_size_um")
	if !ok {
		msg = "aperture.x_size_um: not found"
		return msg, false
	}
	scenario.ApertureXum, ok = apertureX.(float64)
	if !ok {
		msg = "aperture.x_size_um: is not a float64"
		return msg, false
	}

	apertureY, ok := getLeafValue(jsonTable, "aperture", "y_size_um")
	if !ok {
		msg = "aperture.y_size_um: not found"
		return msg, false
	}
	scenario.ApertureYum, ok = apertureY.(float64)
	if !ok {
		msg = "aperture.y_size_um: is not a float64"
		return msg, false
	}

	wavelength, ok := getLeafValue(jsonTable, "wavelength_um")
	if !ok {
		msg = "wavelength_um: not found"
		return msg, false
	}
	scenario.WavelengthUm, ok = wavelength.(float64)
	if !ok {
		msg = "wavelength_um: is not a float64"
		return msg, false
	}

	samples, ok := getLeafValue(jsonTable, "samples_per_wavelength")
	if !ok {
		scenario.SamplesPerWavelength = 10 // Default value
	} else {
		s, ok := samples.(float64)
		if !ok {
			msg = "samples_per_wavelength: is not a float64"
			return msg, false
		}
		scenario.SamplesPerWavelength = int(s)
	}

	permittivity, ok := getLeafValue(jsonTable, "medium", "permittivity")
	if !ok {
		scenario.Permittivity = 1.0 // Default: vacuum
	} else {
		scenario.Permittivity, ok = permittivity.(float64)
		if !ok {
			msg = "medium.permittivity: is not a float64"
			return msg, false
		}
	}

	conductivity, ok := getLeafValue(jsonTable, "medium", "conductivity")
	if ok {
		scenario.Conductivity, ok = conductivity.(float64)
		if !ok {
			msg = "medium.conductivity: is not a float64"
			return msg, false
		}
	}

	projDistance, ok := getLeafValue(jsonTable, "observation", "distance_um")
	if !ok {
		msg = "observation.distance_um: not found"
		return msg, false
	}
	scenario.ProjDistanceUm, ok = projDistance.(float64)
	if !ok {
		msg = "observation.distance_um: is not a float64"
		return msg, false
	}

	thetaMax, ok := getLeafValue(jsonTable, "observation", "theta_max_degrees")
	if !ok {
		scenario.ThetaMaxDeg = 90.0 // Default value
	} else {
		scenario.ThetaMaxDeg, ok = thetaMax.(float64)
		if !ok {
			msg = "observation.theta_max_degrees: is not a float64"
			return msg, false
		}
	}

	numTheta, ok := getLeafValue(jsonTable, "observation", "num_theta")
	if !ok {
		scenario.NumTheta = 181 // Default value
	} else {
		n, ok := numTheta.(float64)
		if !ok {
			msg = "observation.num_theta: is not a float64"
			return msg, false
		}
		scenario.NumTheta = int(n)
	}

	phiDeg, ok := getLeafValue(jsonTable, "observation", "phi_degrees")
	if ok { // We allow this field to be missing - if missing, it defaults to 0
		scenario.PhiDeg, ok = phiDeg.(float64)
		if !ok {
			msg = "observation.phi_degrees: is not a float64"
			return msg, false
		}
	}

	exact, ok := getLeafValue(jsonTable, "observation", "exact_bool")
	if !ok {
		scenario.Exact = false // Default: radiation-zone approximation
	} else {
		scenario.Exact, ok = exact.(bool)
		if !ok {
			msg = "observation.exact_bool: is not a bool"
			return msg, false
		}
	}

	windowX, ok := getLeafValue(jsonTable, "window", "x_fraction")
	if ok {
		scenario.WindowX, ok = windowX.(float64)
		if !ok {
			msg = "window.x_fraction: is not a float64"
			return msg, false
		}
	}

	windowY, ok := getLeafValue(jsonTable, "window", "y_fraction")
	if ok {
		scenario.WindowY, ok = windowY.(float64)
		if !ok {
			msg = "window.y_fraction: is not a float64"
			return msg, false
		}
	}

	outputFile, ok := getLeafValue(jsonTable, "output_file")
	if !ok {
		scenario.OutputFile = "pattern.png" // Default value
	} else {
		scenario.OutputFile, ok = outputFile.(string)
		if !ok {
			msg = "output_file: is not a string"
			return msg, false
		}
	}

	floorDB, ok := getLeafValue(jsonTable, "floor_db")
	if !ok {
		scenario.FloorDB = -60.0 // Default value
	} else {
		scenario.FloorDB, ok = floorDB.(float64)
		if !ok {
			msg = "floor_db: is not a float64"
			return msg, false
		}
	}

	if scenario.ApertureXum <= 0 || scenario.ApertureYum <= 0 {
		msg = "aperture sizes must be positive"
		return msg, false
	}
	if scenario.WavelengthUm <= 0 {
		msg = "wavelength_um must be positive"
		return msg, false
	}
	if scenario.NumTheta < 2 {
		msg = "observation.num_theta must be at least 2"
		return msg, false
	}

	return msg, true
}

func parseScenarioFile(data []byte) (*Scenario, string, bool) {
	var jsonTable map[string]interface{}
	if err := json.Unmarshal(data, &jsonTable); err != nil {
		return nil, err.Error(), false
	}
	scenario := &Scenario{}
	msg, ok := validateJsonFileAndFillScenario(jsonTable, scenario)
	return scenario, msg, ok
}
