package stac

import (
	"path"
	"strings"
)

// MediaType is an enum type for recognized asset media types
type MediaType string

// JPEG2000 corresponds to .jp2 imagery
const JPEG2000 MediaType = "image/jp2"

// GeoTIFF corresponds to .tif/.tiff files with geospatial info
const GeoTIFF MediaType = "image/tiff; application=geotiff"

// COG is a cloud-optimized GeoTIFF
const COG MediaType = "image/tiff; application=geotiff; profile=cloud-optimized"

// XML corresponds to XML metadata documents
const XML MediaType = "application/xml"

// MediaTypeFromExtension infers a media type from an href's file extension.
// The second return value is false when the extension is not recognized.
func MediaTypeFromExtension(href string) (MediaType, bool) {
	switch strings.ToLower(path.Ext(href)) {
	case ".jp2":
		return JPEG2000, true
	case ".tif", ".tiff":
		return GeoTIFF, true
	}
	return "", false
}
