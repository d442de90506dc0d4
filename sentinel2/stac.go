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
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/JamesTownend/stactools/stac"
	"github.com/JamesTownend/stactools/util"
)

var (
	bandCodePattern = regexp.MustCompile(`_(B\w{2})_`)
	gsdPattern      = regexp.MustCompile(`_(\d+)m`)
)

// CreateItem assembles a STAC item from the Sentinel-2 SAFE archive at
// safeHref. Additional providers, if any, are appended after the fixed
// default provider in caller order. The resolver, if non-nil, is applied to
// every href before it is dereferenced. A record is either fully assembled
// or not produced at all; there is no partial-success mode.
func CreateItem(context util.LogContext, safeHref string, additionalProviders []stac.Provider, resolver HrefResolver) (*stac.Item, error) {
	manifest, err := ReadSafeManifest(context, safeHref, resolver)
	if err != nil {
		return nil, err
	}

	productMetadata, err := ReadProductMetadata(context, manifest.ProductMetadataHref, resolver)
	if err != nil {
		return nil, err
	}
	granuleMetadata, err := ReadGranuleMetadata(context, manifest.GranuleMetadataHref, resolver)
	if err != nil {
		return nil, err
	}

	item := stac.NewItem(productMetadata.ProductID, productMetadata.Geometry, productMetadata.Bbox, productMetadata.Datetime)

	// Common metadata
	item.Providers = append([]stac.Provider{SentinelProvider}, additionalProviders...)
	item.Platform = productMetadata.Platform
	item.Constellation = SentinelConstellation
	item.Instruments = SentinelInstruments

	// Extensions
	cloudCover := granuleMetadata.CloudinessPercentage
	item.EO.CloudCover = &cloudCover

	orbitState, err := stac.ParseOrbitState(productMetadata.OrbitState)
	if err != nil {
		return nil, MetadataParseError{Href: productMetadata.Href, Field: "SENSING_ORBIT_DIRECTION", Err: err}
	}
	item.Sat.OrbitState = orbitState
	item.Sat.RelativeOrbit = productMetadata.RelativeOrbit

	if granuleMetadata.EPSG == nil {
		return nil, ConfigurationError{Message: fmt.Sprintf("Could not determine EPSG code for %s; which is required.", safeHref)}
	}
	item.Proj.EPSG = granuleMetadata.EPSG

	// Scene properties; the granule dict is merged second and wins on collision
	for key, value := range productMetadata.MetadataDict() {
		item.Properties[key] = value
	}
	for key, value := range granuleMetadata.MetadataDict() {
		item.Properties[key] = value
	}

	// Metadata assets
	manifestKey, manifestAsset := manifest.CreateAsset()
	if err = item.AddAsset(manifestKey, manifestAsset); err != nil {
		return nil, err
	}
	productKey, productAsset := productMetadata.CreateAsset()
	if err = item.AddAsset(productKey, productAsset); err != nil {
		return nil, err
	}
	granuleKey, granuleAsset := granuleMetadata.CreateAsset()
	if err = item.AddAsset(granuleKey, granuleAsset); err != nil {
		return nil, err
	}
	if err = item.AddAsset(InspireMetadataAssetKey, stac.Asset{
		Href:      manifest.InspireMetadataHref,
		MediaType: stac.XML,
		Roles:     []string{"metadata"},
	}); err != nil {
		return nil, err
	}
	if err = item.AddAsset(DatastripMetadataAssetKey, stac.Asset{
		Href:      manifest.DatastripMetadataHref,
		MediaType: stac.XML,
		Roles:     []string{"metadata"},
	}); err != nil {
		return nil, err
	}

	// Image assets
	for _, imagePath := range productMetadata.ImagePaths {
		key, asset, err := ImageAssetFromHref(joinHref(safeHref, imagePath), granuleMetadata.ResolutionToShape, granuleMetadata.ProjBbox, productMetadata.ImageMediaType)
		if err != nil {
			return nil, err
		}
		// A duplicate key here indicates a metadata-parsing bug, not a data
		// problem; AddAsset surfaces it as an InvariantViolation
		if err = item.AddAsset(key, asset); err != nil {
			return nil, err
		}
	}

	// Thumbnail
	if manifest.ThumbnailHref != "" {
		if err = item.AddAsset("preview", stac.Asset{
			Href:      manifest.ThumbnailHref,
			MediaType: stac.COG,
			Roles:     []string{"thumbnail"},
		}); err != nil {
			return nil, err
		}
	}

	item.Links = append(item.Links, SentinelLicense)

	return item, nil
}

// ImageAssetFromHref classifies a single image file by its naming
// convention and builds its annotated asset descriptor. It is a pure
// function of its inputs; the classification cascade is fixed-priority and
// first match wins.
func ImageAssetFromHref(assetHref string, resolutionToShape map[int][2]int, projBbox []float64, mediaType stac.MediaType) (string, stac.Asset, error) {
	assetMediaType := mediaType
	if assetMediaType == "" {
		var ok bool
		if assetMediaType, ok = stac.MediaTypeFromExtension(assetHref); !ok {
			return "", stac.Asset{}, UnknownMediaTypeError{Href: assetHref}
		}
	}

	// The preview is not geometrically registered like the main bands, so it
	// carries no shape or projection fields
	if strings.Contains(assetHref, "_PVI") {
		return "preview", stac.Asset{
			Href:      assetHref,
			MediaType: assetMediaType,
			Title:     "True color preview",
			Roles:     []string{"data"},
			Bands:     trueColorBands(),
		}, nil
	}

	gsd, shape, transform, err := projFieldsForHref(assetHref, resolutionToShape, projBbox)
	if err != nil {
		return "", stac.Asset{}, err
	}

	annotate := func(asset stac.Asset) stac.Asset {
		asset.GSD = &gsd
		asset.ProjShape = shape
		asset.ProjBbox = projBbox
		asset.ProjTransform = transform
		return asset
	}

	if m := bandCodePattern.FindStringSubmatch(assetHref); m != nil {
		bandID := m[1]
		band, ok := SentinelBands[bandID]
		if !ok {
			return "", stac.Asset{}, UnclassifiedAssetError{Href: assetHref}
		}
		return bandID, annotate(stac.Asset{
			Href:      assetHref,
			MediaType: assetMediaType,
			Title:     band.Description,
			Roles:     []string{"data"},
			Bands:     []stac.Band{band},
		}), nil
	}

	suffix, ok := resolutionSuffix(assetHref)
	if !ok {
		return "", stac.Asset{}, UnclassifiedAssetError{Href: assetHref}
	}

	switch {
	case strings.Contains(assetHref, "_TCI_"):
		return "visual-" + suffix, annotate(stac.Asset{
			Href:      assetHref,
			MediaType: assetMediaType,
			Title:     "True color image",
			Roles:     []string{"data"},
			Bands:     trueColorBands(),
		}), nil
	case strings.Contains(assetHref, "_AOT_"):
		return "AOT-" + suffix, annotate(stac.Asset{
			Href:      assetHref,
			MediaType: assetMediaType,
			Title:     "Aerosol optical thickness (AOT)",
			Roles:     []string{"data"},
		}), nil
	case strings.Contains(assetHref, "_WVP_"):
		return "WVP-" + suffix, annotate(stac.Asset{
			Href:      assetHref,
			MediaType: assetMediaType,
			Title:     "Water vapour (WVP)",
			Roles:     []string{"data"},
		}), nil
	case strings.Contains(assetHref, "_SCL_"):
		return "SCL-" + suffix, annotate(stac.Asset{
			Href:      assetHref,
			MediaType: assetMediaType,
			Title:     "Scene classification map (SCL)",
			Roles:     []string{"data"},
		}), nil
	}

	return "", stac.Asset{}, UnclassifiedAssetError{Href: assetHref}
}

// projFieldsForHref extracts the ground sample distance encoded in an image
// filename and derives the pixel shape and geotransform for that resolution
func projFieldsForHref(assetHref string, resolutionToShape map[int][2]int, projBbox []float64) (float64, []int, []float64, error) {
	m := gsdPattern.FindStringSubmatch(assetHref)
	if m == nil {
		return 0, nil, nil, UnclassifiedAssetError{Href: assetHref}
	}
	resolution, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, nil, nil, UnclassifiedAssetError{Href: assetHref}
	}

	rawShape, ok := resolutionToShape[resolution]
	if !ok {
		return 0, nil, nil, MetadataParseError{
			Href:  assetHref,
			Field: "resolution",
			Err:   fmt.Errorf("no shape known for resolution %dm", resolution),
		}
	}

	shape := []int{rawShape[0], rawShape[1]}
	return float64(resolution), shape, stac.TransformFromBbox(projBbox, shape), nil
}

// resolutionSuffix returns the 3 characters immediately before the file
// extension, which encode the resolution tier in the source naming
// convention (e.g. "10m", "20m", "60m")
func resolutionSuffix(assetHref string) (string, bool) {
	if len(assetHref) < 7 {
		return "", false
	}
	return assetHref[len(assetHref)-7 : len(assetHref)-4], true
}

func trueColorBands() []stac.Band {
	return []stac.Band{SentinelBands["B04"], SentinelBands["B03"], SentinelBands["B02"]}
}
