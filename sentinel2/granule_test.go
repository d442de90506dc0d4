package sentinel2

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const granuleMetadataHref = safeArchiveHref + "/GRANULE/L2A_T01CCV_A003893_20160327T204522/MTD_TL.xml"

func TestReadGranuleMetadata(t *testing.T) {
	// Tested code
	metadata, err := ReadGranuleMetadata(testLogContext, granuleMetadataHref, nil)

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, 74.653548, metadata.CloudinessPercentage)
	assert.NotNil(t, metadata.EPSG)
	assert.Equal(t, 32701, *metadata.EPSG)
	assert.Equal(t, map[int][2]int{
		10: {10980, 10980},
		20: {5490, 5490},
		60: {1830, 1830},
	}, metadata.ResolutionToShape)
	assert.Equal(t, []float64{499980, 6090220, 609780, 6200020}, metadata.ProjBbox)
}

func TestReadGranuleMetadata_MetadataDict(t *testing.T) {
	metadata, err := ReadGranuleMetadata(testLogContext, granuleMetadataHref, nil)
	assert.Nil(t, err)

	dict := metadata.MetadataDict()

	assert.Equal(t, 78.2757540518105, dict["s2:mean_solar_zenith"])
	assert.Equal(t, 59.8964325031844, dict["s2:mean_solar_azimuth"])
	assert.Equal(t, 64.235861, dict["s2:nodata_pixel_percentage"])
	assert.Equal(t, 14.586775, dict["s2:water_percentage"])
	assert.Equal(t, 63.294747, dict["s2:high_proba_clouds_percentage"])
	assert.Equal(t, 8.275406, dict["s2:snow_ice_percentage"])
	assert.NotContains(t, dict, "s2:cloudy_pixel_percentage", "cloudiness is surfaced as eo:cloud_cover, not duplicated here")
}

func TestReadGranuleMetadata_NoCRSCode(t *testing.T) {
	metadata, err := ReadGranuleMetadata(testLogContext, "testdata/no-epsg.SAFE/MTD_TL.xml", nil)

	assert.Nil(t, err, "a missing CRS is not a parse failure; the assembler decides")
	assert.Nil(t, metadata.EPSG)
}

func TestReadGranuleMetadata_NoSizes(t *testing.T) {
	// Mock
	dir := t.TempDir()
	href := filepath.Join(dir, "MTD_TL.xml")
	assert.Nil(t, os.WriteFile(href, []byte(`<?xml version="1.0"?>
<n1:Level-2A_Tile_ID xmlns:n1="https://psd-14.sentinel2.eo.esa.int/PSD/S2_PDI_Level-2A_Tile_Metadata.xsd">
  <n1:Geometric_Info>
    <Tile_Geocoding>
      <HORIZONTAL_CS_CODE>EPSG:32701</HORIZONTAL_CS_CODE>
    </Tile_Geocoding>
  </n1:Geometric_Info>
</n1:Level-2A_Tile_ID>`), 0644))

	// Tested code
	metadata, err := ReadGranuleMetadata(testLogContext, href, nil)

	// Asserts
	assert.Nil(t, metadata)
	var parseErr MetadataParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "Tile_Geocoding Size", parseErr.Field)
}

func TestReadGranuleMetadata_NoReferenceGeoposition(t *testing.T) {
	// Mock: sizes are present but only a 20m geoposition is declared
	dir := t.TempDir()
	href := filepath.Join(dir, "MTD_TL.xml")
	assert.Nil(t, os.WriteFile(href, []byte(`<?xml version="1.0"?>
<n1:Level-2A_Tile_ID xmlns:n1="https://psd-14.sentinel2.eo.esa.int/PSD/S2_PDI_Level-2A_Tile_Metadata.xsd">
  <n1:Geometric_Info>
    <Tile_Geocoding>
      <HORIZONTAL_CS_CODE>EPSG:32701</HORIZONTAL_CS_CODE>
      <Size resolution="10">
        <NROWS>10980</NROWS>
        <NCOLS>10980</NCOLS>
      </Size>
      <Geoposition resolution="20">
        <ULX>499980</ULX>
        <ULY>6200020</ULY>
        <XDIM>20</XDIM>
        <YDIM>-20</YDIM>
      </Geoposition>
    </Tile_Geocoding>
  </n1:Geometric_Info>
</n1:Level-2A_Tile_ID>`), 0644))

	// Tested code
	metadata, err := ReadGranuleMetadata(testLogContext, href, nil)

	// Asserts
	assert.Nil(t, metadata)
	var parseErr MetadataParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "Tile_Geocoding Geoposition", parseErr.Field)
}
