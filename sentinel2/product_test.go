package sentinel2

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JamesTownend/stactools/stac"
)

const productMetadataHref = safeArchiveHref + "/MTD_MSIL2A.xml"

func TestReadProductMetadata(t *testing.T) {
	// Tested code
	metadata, err := ReadProductMetadata(testLogContext, productMetadataHref, nil)

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, productID, metadata.ProductID)
	assert.Equal(t, time.Date(2016, 3, 27, 20, 45, 22, 7000000, time.UTC), metadata.Datetime)
	assert.Equal(t, "Sentinel-2A", metadata.Platform)
	assert.Equal(t, "DESCENDING", metadata.OrbitState)
	assert.Equal(t, 128, metadata.RelativeOrbit)
	assert.Equal(t, stac.JPEG2000, metadata.ImageMediaType)

	assert.NotNil(t, metadata.Geometry)
	assert.Nil(t, metadata.Bbox.Valid())

	assert.Len(t, metadata.ImagePaths, 10)
	assert.Equal(t, "GRANULE/L2A_T01CCV_A003893_20160327T204522/IMG_DATA/R10m/T01CCV_20160327T204522_B02_10m.jp2", metadata.ImagePaths[0])
	for _, imagePath := range metadata.ImagePaths {
		assert.Contains(t, imagePath, ".jp2", "declared image format fixes the extension")
	}
}

func TestReadProductMetadata_MetadataDict(t *testing.T) {
	metadata, err := ReadProductMetadata(testLogContext, productMetadataHref, nil)
	assert.Nil(t, err)

	dict := metadata.MetadataDict()

	assert.Equal(t, productID+".SAFE", dict["s2:product_uri"])
	assert.Equal(t, "2021-02-14T04:27:02.000000Z", dict["s2:generation_time"])
	assert.Equal(t, "02.12", dict["s2:processing_baseline"])
	assert.Equal(t, "S2MSI2A", dict["s2:product_type"])
	assert.Equal(t, "GS2A_20160327T204522_003893_N02.12", dict["s2:datatake_id"])
	assert.Equal(t, "INS-NOBS", dict["s2:datatake_type"])
	assert.Equal(t, "S2A_OPER_MSI_L2A_DS_ESRI_20210214T042703_S20160327T204522_N02.12", dict["s2:datastrip_id"])
	assert.Equal(t, "S2A_OPER_MSI_L2A_TL_ESRI_20210214T042703_A003893_T01CCV_N02.12", dict["s2:granule_id"])
	assert.Equal(t, "01CCV", dict["s2:mgrs_tile"])
	assert.Equal(t, 1.0304977, dict["s2:reflectance_conversion_factor"])
	assert.Equal(t, 0.0, dict["s2:degraded_msi_data_percentage"])
}

func TestReadProductMetadata_MissingProductURI(t *testing.T) {
	// Mock
	dir := t.TempDir()
	href := filepath.Join(dir, "MTD_MSIL2A.xml")
	assert.Nil(t, os.WriteFile(href, []byte(`<?xml version="1.0"?>
<n1:Level-2A_User_Product xmlns:n1="https://psd-14.sentinel2.eo.esa.int/PSD/User_Product_Level-2A.xsd">
  <n1:General_Info>
    <Product_Info>
      <PRODUCT_START_TIME>2016-03-27T20:45:22.007Z</PRODUCT_START_TIME>
    </Product_Info>
  </n1:General_Info>
</n1:Level-2A_User_Product>`), 0644))

	// Tested code
	metadata, err := ReadProductMetadata(testLogContext, href, nil)

	// Asserts
	assert.Nil(t, metadata)
	var parseErr MetadataParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "PRODUCT_URI", parseErr.Field)
}

func TestReadProductMetadata_UnparseableBody(t *testing.T) {
	dir := t.TempDir()
	href := filepath.Join(dir, "MTD_MSIL2A.xml")
	assert.Nil(t, os.WriteFile(href, []byte("this is not XML"), 0644))

	metadata, err := ReadProductMetadata(testLogContext, href, nil)

	assert.Nil(t, metadata)
	var parseErr MetadataParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestFootprintFromPosList(t *testing.T) {
	// Lat/lon pairs; the ring is already closed
	geometry, bbox, err := footprintFromPosList("-75.9 178.5 -75.9 179.9 -74.9 179.9 -74.9 178.5 -75.9 178.5")

	assert.Nil(t, err)
	assert.NotNil(t, geometry)
	assert.Nil(t, bbox.Valid())
	assert.Equal(t, [][]float64{
		{178.5, -75.9}, {179.9, -75.9}, {179.9, -74.9}, {178.5, -74.9}, {178.5, -75.9},
	}, geometry.Coordinates[0])
}

func TestFootprintFromPosList_ClosesOpenRing(t *testing.T) {
	geometry, _, err := footprintFromPosList("-75.9 178.5 -75.9 179.9 -74.9 179.9 -74.9 178.5")

	assert.Nil(t, err)
	ring := geometry.Coordinates[0]
	assert.Len(t, ring, 5)
	assert.Equal(t, ring[0], ring[len(ring)-1])
}

func TestFootprintFromPosList_Invalid(t *testing.T) {
	for _, posList := range []string{
		"",
		"-75.9 178.5 -75.9", // odd value count
		"-75.9 178.5 -75.9 not-a-lon -74.9 179.9",
	} {
		_, _, err := footprintFromPosList(posList)
		assert.NotNil(t, err, posList)
	}
}
