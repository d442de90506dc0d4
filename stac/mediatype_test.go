package stac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaTypeFromExtension(t *testing.T) {
	for href, expected := range map[string]MediaType{
		"T01CCV_B04_10m.jp2": JPEG2000,
		"T01CCV_B04_10m.JP2": JPEG2000,
		"LC8TEST123_B4.tif":  GeoTIFF,
		"LC8TEST123_B4.tiff": GeoTIFF,
		"LC8TEST123_B4.TIFF": GeoTIFF,
	} {
		mediaType, ok := MediaTypeFromExtension(href)
		assert.True(t, ok, href)
		assert.Equal(t, expected, mediaType, href)
	}
}

func TestMediaTypeFromExtension_Unrecognized(t *testing.T) {
	for _, href := range []string{"scene.png", "scene", "scene.xml"} {
		_, ok := MediaTypeFromExtension(href)
		assert.False(t, ok, href)
	}
}
