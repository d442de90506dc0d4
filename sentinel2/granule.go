package sentinel2

import (
	"strconv"
	"strings"

	"github.com/JamesTownend/stactools/stac"
	"github.com/JamesTownend/stactools/util"
)

type granuleMetadataDoc struct {
	GeometricInfo struct {
		TileGeocoding struct {
			HorizontalCSCode string `xml:"HORIZONTAL_CS_CODE"`
			Sizes            []struct {
				Resolution int `xml:"resolution,attr"`
				NRows      int `xml:"NROWS"`
				NCols      int `xml:"NCOLS"`
			} `xml:"Size"`
			Geopositions []struct {
				Resolution int     `xml:"resolution,attr"`
				ULX        float64 `xml:"ULX"`
				ULY        float64 `xml:"ULY"`
				XDim       float64 `xml:"XDIM"`
				YDim       float64 `xml:"YDIM"`
			} `xml:"Geoposition"`
		} `xml:"Tile_Geocoding"`
		TileAngles struct {
			MeanSunAngle struct {
				Zenith  float64 `xml:"ZENITH_ANGLE"`
				Azimuth float64 `xml:"AZIMUTH_ANGLE"`
			} `xml:"Mean_Sun_Angle"`
		} `xml:"Tile_Angles"`
	} `xml:"Geometric_Info"`
	QualityIndicatorsInfo struct {
		ImageContentQI struct {
			CloudyPixelPercentage             float64 `xml:"CLOUDY_PIXEL_PERCENTAGE"`
			NodataPixelPercentage             float64 `xml:"NODATA_PIXEL_PERCENTAGE"`
			SaturatedDefectivePixelPercentage float64 `xml:"SATURATED_DEFECTIVE_PIXEL_PERCENTAGE"`
			DarkFeaturesPercentage            float64 `xml:"DARK_FEATURES_PERCENTAGE"`
			CloudShadowPercentage             float64 `xml:"CLOUD_SHADOW_PERCENTAGE"`
			VegetationPercentage              float64 `xml:"VEGETATION_PERCENTAGE"`
			NotVegetatedPercentage            float64 `xml:"NOT_VEGETATED_PERCENTAGE"`
			WaterPercentage                   float64 `xml:"WATER_PERCENTAGE"`
			UnclassifiedPercentage            float64 `xml:"UNCLASSIFIED_PERCENTAGE"`
			MediumProbaCloudsPercentage       float64 `xml:"MEDIUM_PROBA_CLOUDS_PERCENTAGE"`
			HighProbaCloudsPercentage         float64 `xml:"HIGH_PROBA_CLOUDS_PERCENTAGE"`
			ThinCirrusPercentage              float64 `xml:"THIN_CIRRUS_PERCENTAGE"`
			SnowIcePercentage                 float64 `xml:"SNOW_ICE_PERCENTAGE"`
		} `xml:"Image_Content_QI"`
	} `xml:"Quality_Indicators_Info"`
}

// GranuleMetadata holds the projection and quality fields parsed from a
// granule-level (tile) metadata document
type GranuleMetadata struct {
	Href                 string
	CloudinessPercentage float64
	EPSG                 *int // nil when the document declares no CRS
	ResolutionToShape    map[int][2]int
	ProjBbox             []float64

	meanSolarZenith  float64
	meanSolarAzimuth float64
	contentQI        map[string]float64
}

// The projected bbox and geotransforms are anchored on the 10m grid
const referenceResolution = 10

// ReadGranuleMetadata parses a granule-level metadata document
func ReadGranuleMetadata(context util.LogContext, href string, resolver HrefResolver) (*GranuleMetadata, error) {
	var doc granuleMetadataDoc
	if err := readXML(context, href, resolver, &doc); err != nil {
		return nil, MetadataParseError{Href: href, Field: "granule metadata", Err: err}
	}

	geocoding := doc.GeometricInfo.TileGeocoding

	metadata := GranuleMetadata{
		Href:                 href,
		CloudinessPercentage: doc.QualityIndicatorsInfo.ImageContentQI.CloudyPixelPercentage,
		ResolutionToShape:    make(map[int][2]int, len(geocoding.Sizes)),
	}

	if code := geocoding.HorizontalCSCode; code != "" {
		epsg, err := strconv.Atoi(strings.TrimPrefix(code, "EPSG:"))
		if err != nil {
			return nil, MetadataParseError{Href: href, Field: "HORIZONTAL_CS_CODE", Err: err}
		}
		metadata.EPSG = &epsg
	}

	if len(geocoding.Sizes) == 0 {
		return nil, MetadataParseError{Href: href, Field: "Tile_Geocoding Size"}
	}
	for _, size := range geocoding.Sizes {
		metadata.ResolutionToShape[size.Resolution] = [2]int{size.NRows, size.NCols}
	}

	shape, hasShape := metadata.ResolutionToShape[referenceResolution]
	var projBbox []float64
	for _, geoposition := range geocoding.Geopositions {
		if geoposition.Resolution != referenceResolution || !hasShape {
			continue
		}
		res := float64(referenceResolution)
		projBbox = []float64{
			geoposition.ULX,
			geoposition.ULY - res*float64(shape[0]),
			geoposition.ULX + res*float64(shape[1]),
			geoposition.ULY,
		}
	}
	if projBbox == nil {
		return nil, MetadataParseError{Href: href, Field: "Tile_Geocoding Geoposition"}
	}
	metadata.ProjBbox = projBbox

	qi := doc.QualityIndicatorsInfo.ImageContentQI
	metadata.meanSolarZenith = doc.GeometricInfo.TileAngles.MeanSunAngle.Zenith
	metadata.meanSolarAzimuth = doc.GeometricInfo.TileAngles.MeanSunAngle.Azimuth
	metadata.contentQI = map[string]float64{
		"s2:nodata_pixel_percentage":              qi.NodataPixelPercentage,
		"s2:saturated_defective_pixel_percentage": qi.SaturatedDefectivePixelPercentage,
		"s2:dark_features_percentage":             qi.DarkFeaturesPercentage,
		"s2:cloud_shadow_percentage":              qi.CloudShadowPercentage,
		"s2:vegetation_percentage":                qi.VegetationPercentage,
		"s2:not_vegetated_percentage":             qi.NotVegetatedPercentage,
		"s2:water_percentage":                     qi.WaterPercentage,
		"s2:unclassified_percentage":              qi.UnclassifiedPercentage,
		"s2:medium_proba_clouds_percentage":       qi.MediumProbaCloudsPercentage,
		"s2:high_proba_clouds_percentage":         qi.HighProbaCloudsPercentage,
		"s2:thin_cirrus_percentage":               qi.ThinCirrusPercentage,
		"s2:snow_ice_percentage":                  qi.SnowIcePercentage,
	}

	return &metadata, nil
}

// MetadataDict returns the flat scene-level property mapping contributed by
// the granule metadata
func (g *GranuleMetadata) MetadataDict() map[string]interface{} {
	dict := map[string]interface{}{
		"s2:mean_solar_zenith":  g.meanSolarZenith,
		"s2:mean_solar_azimuth": g.meanSolarAzimuth,
	}
	for key, value := range g.contentQI {
		dict[key] = value
	}
	return dict
}

// CreateAsset returns the asset key and asset descriptor for the granule
// metadata document itself
func (g *GranuleMetadata) CreateAsset() (string, stac.Asset) {
	return GranuleMetadataAssetKey, stac.Asset{
		Href:      g.Href,
		MediaType: stac.XML,
		Roles:     []string{"metadata"},
	}
}
