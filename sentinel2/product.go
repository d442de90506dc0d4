package sentinel2

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/venicegeo/geojson-go/geojson"

	"github.com/JamesTownend/stactools/stac"
	"github.com/JamesTownend/stactools/util"
)

var mgrsTilePattern = regexp.MustCompile(`_T([0-9A-Z]{5})_`)

type productMetadataDoc struct {
	GeneralInfo struct {
		ProductInfo struct {
			ProductStartTime   string `xml:"PRODUCT_START_TIME"`
			ProductURI         string `xml:"PRODUCT_URI"`
			ProcessingBaseline string `xml:"PROCESSING_BASELINE"`
			ProductType        string `xml:"PRODUCT_TYPE"`
			GenerationTime     string `xml:"GENERATION_TIME"`
			Datatake           struct {
				ID                    string `xml:"datatakeIdentifier,attr"`
				SpacecraftName        string `xml:"SPACECRAFT_NAME"`
				DatatakeType          string `xml:"DATATAKE_TYPE"`
				SensingOrbitNumber    string `xml:"SENSING_ORBIT_NUMBER"`
				SensingOrbitDirection string `xml:"SENSING_ORBIT_DIRECTION"`
			} `xml:"Datatake"`
			ProductOrganisation struct {
				GranuleLists []struct {
					Granule struct {
						GranuleIdentifier   string   `xml:"granuleIdentifier,attr"`
						DatastripIdentifier string   `xml:"datastripIdentifier,attr"`
						ImageFormat         string   `xml:"imageFormat,attr"`
						ImageFiles          []string `xml:"IMAGE_FILE"`
					} `xml:"Granule"`
				} `xml:"Granule_List"`
			} `xml:"Product_Organisation"`
		} `xml:"Product_Info"`
		ProductImageCharacteristics struct {
			ReflectanceConversionU string `xml:"Reflectance_Conversion>U"`
		} `xml:"Product_Image_Characteristics"`
	} `xml:"General_Info"`
	GeometricInfo struct {
		ExtPosList string `xml:"Product_Footprint>Product_Footprint>Global_Footprint>EXT_POS_LIST"`
	} `xml:"Geometric_Info"`
	QualityIndicatorsInfo struct {
		DegradedMSIDataPercentage string `xml:"Technical_Quality_Assessment>DEGRADED_MSI_DATA_PERCENTAGE"`
	} `xml:"Quality_Indicators_Info"`
}

// ProductMetadata holds the scene identity and organisation fields parsed
// from a product-level metadata document
type ProductMetadata struct {
	Href           string
	ProductID      string
	Geometry       *geojson.Polygon
	Bbox           geojson.BoundingBox
	Datetime       time.Time
	Platform       string
	OrbitState     string
	RelativeOrbit  int
	ImageMediaType stac.MediaType // empty when the archive does not declare one
	ImagePaths     []string

	productURI                  string
	generationTime              string
	processingBaseline          string
	productType                 string
	datatakeID                  string
	datatakeType                string
	datastripID                 string
	granuleID                   string
	mgrsTile                    string
	reflectanceConversionFactor float64
	degradedMSIDataPercentage   float64
}

// ReadProductMetadata parses a product-level metadata document
func ReadProductMetadata(context util.LogContext, href string, resolver HrefResolver) (*ProductMetadata, error) {
	var doc productMetadataDoc
	if err := readXML(context, href, resolver, &doc); err != nil {
		return nil, MetadataParseError{Href: href, Field: "product metadata", Err: err}
	}

	info := doc.GeneralInfo.ProductInfo
	if info.ProductURI == "" {
		return nil, MetadataParseError{Href: href, Field: "PRODUCT_URI"}
	}

	datetime, err := stac.ParseSafeTime(info.ProductStartTime)
	if err != nil {
		return nil, MetadataParseError{Href: href, Field: "PRODUCT_START_TIME", Err: err}
	}

	relativeOrbit, err := strconv.Atoi(strings.TrimSpace(info.Datatake.SensingOrbitNumber))
	if err != nil {
		return nil, MetadataParseError{Href: href, Field: "SENSING_ORBIT_NUMBER", Err: err}
	}

	geometry, bbox, err := footprintFromPosList(doc.GeometricInfo.ExtPosList)
	if err != nil {
		return nil, MetadataParseError{Href: href, Field: "EXT_POS_LIST", Err: err}
	}

	if len(info.ProductOrganisation.GranuleLists) == 0 {
		return nil, MetadataParseError{Href: href, Field: "Granule_List"}
	}
	granule := info.ProductOrganisation.GranuleLists[0].Granule

	var mediaType stac.MediaType
	switch granule.ImageFormat {
	case "JPEG2000":
		mediaType = stac.JPEG2000
	case "GEOTIFF":
		mediaType = stac.GeoTIFF
	}

	imageExt := ".jp2"
	if mediaType == stac.GeoTIFF {
		imageExt = ".tif"
	}
	var imagePaths []string
	for _, granuleList := range info.ProductOrganisation.GranuleLists {
		for _, imageFile := range granuleList.Granule.ImageFiles {
			imagePaths = append(imagePaths, imageFile+imageExt)
		}
	}

	metadata := ProductMetadata{
		Href:           href,
		ProductID:      strings.TrimSuffix(info.ProductURI, ".SAFE"),
		Geometry:       geometry,
		Bbox:           bbox,
		Datetime:       datetime,
		Platform:       info.Datatake.SpacecraftName,
		OrbitState:     info.Datatake.SensingOrbitDirection,
		RelativeOrbit:  relativeOrbit,
		ImageMediaType: mediaType,
		ImagePaths:     imagePaths,

		productURI:         info.ProductURI,
		generationTime:     info.GenerationTime,
		processingBaseline: info.ProcessingBaseline,
		productType:        info.ProductType,
		datatakeID:         info.Datatake.ID,
		datatakeType:       info.Datatake.DatatakeType,
		datastripID:        granule.DatastripIdentifier,
		granuleID:          granule.GranuleIdentifier,
	}

	if m := mgrsTilePattern.FindStringSubmatch(granule.GranuleIdentifier); m != nil {
		metadata.mgrsTile = m[1]
	}
	metadata.reflectanceConversionFactor, _ = strconv.ParseFloat(strings.TrimSpace(doc.GeneralInfo.ProductImageCharacteristics.ReflectanceConversionU), 64)
	metadata.degradedMSIDataPercentage, _ = strconv.ParseFloat(strings.TrimSpace(doc.QualityIndicatorsInfo.DegradedMSIDataPercentage), 64)

	return &metadata, nil
}

// footprintFromPosList converts the space-separated lat/lon pairs of a
// global footprint into a closed GeoJSON polygon and its bounding box
func footprintFromPosList(posList string) (*geojson.Polygon, geojson.BoundingBox, error) {
	fields := strings.Fields(posList)
	if len(fields) < 6 || len(fields)%2 != 0 {
		return nil, nil, fmt.Errorf("footprint position list has %d values", len(fields))
	}

	ring := make([][]float64, 0, len(fields)/2+1)
	for i := 0; i < len(fields); i += 2 {
		lat, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, nil, err
		}
		lon, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, nil, err
		}
		ring = append(ring, []float64{lon, lat})
	}

	first, last := ring[0], ring[len(ring)-1]
	if first[0] != last[0] || first[1] != last[1] {
		ring = append(ring, []float64{first[0], first[1]})
	}

	polygon := geojson.NewPolygon([][][]float64{ring})
	bbox := polygon.ForceBbox()
	if err := bbox.Valid(); err != nil {
		return nil, nil, err
	}
	return polygon, bbox, nil
}

// MetadataDict returns the flat scene-level property mapping contributed by
// the product metadata
func (p *ProductMetadata) MetadataDict() map[string]interface{} {
	return map[string]interface{}{
		"s2:product_uri":                   p.productURI,
		"s2:generation_time":               p.generationTime,
		"s2:processing_baseline":           p.processingBaseline,
		"s2:product_type":                  p.productType,
		"s2:datatake_id":                   p.datatakeID,
		"s2:datatake_type":                 p.datatakeType,
		"s2:datastrip_id":                  p.datastripID,
		"s2:granule_id":                    p.granuleID,
		"s2:mgrs_tile":                     p.mgrsTile,
		"s2:reflectance_conversion_factor": p.reflectanceConversionFactor,
		"s2:degraded_msi_data_percentage":  p.degradedMSIDataPercentage,
	}
}

// CreateAsset returns the asset key and asset descriptor for the product
// metadata document itself
func (p *ProductMetadata) CreateAsset() (string, stac.Asset) {
	return ProductMetadataAssetKey, stac.Asset{
		Href:      p.Href,
		MediaType: stac.XML,
		Roles:     []string{"metadata"},
	}
}
