package stac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrbitState(t *testing.T) {
	for input, expected := range map[string]OrbitState{
		"DESCENDING":    OrbitStateDescending,
		"descending":    OrbitStateDescending,
		"Ascending":     OrbitStateAscending,
		"GEOSTATIONARY": OrbitStateGeostationary,
	} {
		state, err := ParseOrbitState(input)
		assert.Nil(t, err, input)
		assert.Equal(t, expected, state, input)
	}
}

func TestParseOrbitState_Unrecognized(t *testing.T) {
	_, err := ParseOrbitState("SIDEWAYS")
	assert.NotNil(t, err)
}
