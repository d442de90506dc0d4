// Copyright 2018, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sentinel2

import (
	"github.com/JamesTownend/stactools/stac"
)

// SentinelConstellation is the constellation value for all Sentinel-2 items
const SentinelConstellation = "sentinel-2"

// SentinelInstruments is the instrument list for all Sentinel-2 items
var SentinelInstruments = []string{"msi"}

// Asset keys for the non-image metadata documents of a SAFE archive
const (
	ManifestAssetKey          = "safe-manifest"
	ProductMetadataAssetKey   = "product-metadata"
	GranuleMetadataAssetKey   = "granule-metadata"
	InspireMetadataAssetKey   = "inspire-metadata"
	DatastripMetadataAssetKey = "datastrip-metadata"
)

// SentinelProvider is the fixed default provider entry for Sentinel-2 items
var SentinelProvider = stac.Provider{
	Name:  "ESA",
	Roles: []string{"producer", "processor", "licensor"},
	URL:   "https://earth.esa.int/web/guest/home",
}

// SentinelLicense is the fixed license link appended to every item
var SentinelLicense = stac.Link{
	Rel:  "license",
	Href: "https://sentinel.esa.int/documents/247904/690755/Sentinel_Data_Legal_Notice",
}

// SentinelBands is the fixed spectral band lookup table, keyed by band code
var SentinelBands = map[string]stac.Band{
	"B01": {Name: "B01", CommonName: "coastal", Description: "Band 1 - Coastal aerosol - 60m", CenterWavelength: 0.443, FullWidthHalfMax: 0.027},
	"B02": {Name: "B02", CommonName: "blue", Description: "Band 2 - Blue - 10m", CenterWavelength: 0.490, FullWidthHalfMax: 0.098},
	"B03": {Name: "B03", CommonName: "green", Description: "Band 3 - Green - 10m", CenterWavelength: 0.560, FullWidthHalfMax: 0.045},
	"B04": {Name: "B04", CommonName: "red", Description: "Band 4 - Red - 10m", CenterWavelength: 0.665, FullWidthHalfMax: 0.038},
	"B05": {Name: "B05", CommonName: "rededge", Description: "Band 5 - Vegetation red edge 1 - 20m", CenterWavelength: 0.704, FullWidthHalfMax: 0.019},
	"B06": {Name: "B06", CommonName: "rededge", Description: "Band 6 - Vegetation red edge 2 - 20m", CenterWavelength: 0.740, FullWidthHalfMax: 0.018},
	"B07": {Name: "B07", CommonName: "rededge", Description: "Band 7 - Vegetation red edge 3 - 20m", CenterWavelength: 0.783, FullWidthHalfMax: 0.028},
	"B08": {Name: "B08", CommonName: "nir", Description: "Band 8 - NIR - 10m", CenterWavelength: 0.842, FullWidthHalfMax: 0.145},
	"B8A": {Name: "B8A", CommonName: "nir08", Description: "Band 8A - Vegetation red edge 4 - 20m", CenterWavelength: 0.865, FullWidthHalfMax: 0.033},
	"B09": {Name: "B09", CommonName: "nir09", Description: "Band 9 - Water vapor - 60m", CenterWavelength: 0.945, FullWidthHalfMax: 0.026},
	"B10": {Name: "B10", CommonName: "cirrus", Description: "Band 10 - Cirrus - 60m", CenterWavelength: 1.3735, FullWidthHalfMax: 0.075},
	"B11": {Name: "B11", CommonName: "swir16", Description: "Band 11 - SWIR (1.6) - 20m", CenterWavelength: 1.610, FullWidthHalfMax: 0.143},
	"B12": {Name: "B12", CommonName: "swir22", Description: "Band 12 - SWIR (2.2) - 20m", CenterWavelength: 2.190, FullWidthHalfMax: 0.242},
}
