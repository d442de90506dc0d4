package stac

import (
	"fmt"
	"strings"
)

// Extension schema URIs advertised in a serialized item
const (
	EOExtensionURI         = "https://stac-extensions.github.io/eo/v1.0.0/schema.json"
	SatExtensionURI        = "https://stac-extensions.github.io/sat/v1.0.0/schema.json"
	ProjectionExtensionURI = "https://stac-extensions.github.io/projection/v1.0.0/schema.json"
)

// EOFields holds item-level electro-optical extension fields
type EOFields struct {
	CloudCover *float64
}

// SatFields holds item-level satellite extension fields
type SatFields struct {
	OrbitState    OrbitState
	RelativeOrbit int
}

// ProjFields holds item-level projection extension fields
type ProjFields struct {
	EPSG *int
}

// OrbitState is an enum type for the sat extension's orbit state vocabulary
type OrbitState string

// Recognized orbit states
const (
	OrbitStateAscending     OrbitState = "ascending"
	OrbitStateDescending    OrbitState = "descending"
	OrbitStateGeostationary OrbitState = "geostationary"
)

// ParseOrbitState case-normalizes a raw orbit direction value into the
// fixed OrbitState enumeration
func ParseOrbitState(value string) (OrbitState, error) {
	switch state := OrbitState(strings.ToLower(value)); state {
	case OrbitStateAscending, OrbitStateDescending, OrbitStateGeostationary:
		return state, nil
	}
	return "", fmt.Errorf("unrecognized orbit state: %q", value)
}
