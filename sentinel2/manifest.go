package sentinel2

import (
	"github.com/JamesTownend/stactools/stac"
	"github.com/JamesTownend/stactools/util"
)

const manifestFilename = "manifest.safe"

// Data object IDs used by the SAFE manifest to label the archive's
// metadata documents, for both processing levels
var (
	productMetadataObjectIDs   = []string{"S2_Level-1C_Product_Metadata", "S2_Level-2A_Product_Metadata"}
	granuleMetadataObjectIDs   = []string{"S2_Level-1C_Tile1_Metadata", "S2_Level-2A_Tile1_Metadata"}
	inspireMetadataObjectIDs   = []string{"INSPIRE_Metadata"}
	datastripMetadataObjectIDs = []string{"S2_Level-1C_Datastrip1_Metadata", "S2_Level-2A_Datastrip1_Metadata"}
	thumbnailObjectIDs         = []string{"S2_Level-1C_Preview_Tile1_Data", "S2_Level-2A_Preview_Tile1_Data"}
)

type safeManifestDoc struct {
	DataObjects []safeDataObject `xml:"dataObjectSection>dataObject"`
}

type safeDataObject struct {
	ID         string `xml:"ID,attr"`
	ByteStream struct {
		FileLocation struct {
			Href string `xml:"href,attr"`
		} `xml:"fileLocation"`
	} `xml:"byteStream"`
}

// SafeManifest holds the hrefs discovered from an archive's top-level
// manifest document
type SafeManifest struct {
	Href                  string
	ProductMetadataHref   string
	GranuleMetadataHref   string
	InspireMetadataHref   string
	DatastripMetadataHref string
	ThumbnailHref         string // optional; empty when the archive carries no preview
}

// ReadSafeManifest parses the manifest.safe document of the SAFE archive at
// safeHref and discovers the hrefs of the archive's other files
func ReadSafeManifest(context util.LogContext, safeHref string, resolver HrefResolver) (*SafeManifest, error) {
	manifestHref := joinHref(safeHref, manifestFilename)

	var doc safeManifestDoc
	if err := readXML(context, manifestHref, resolver, &doc); err != nil {
		return nil, MetadataParseError{Href: manifestHref, Field: "manifest", Err: err}
	}

	hrefByID := make(map[string]string, len(doc.DataObjects))
	for _, object := range doc.DataObjects {
		hrefByID[object.ID] = object.ByteStream.FileLocation.Href
	}

	find := func(ids []string) string {
		for _, id := range ids {
			if href, ok := hrefByID[id]; ok && href != "" {
				return joinHref(safeHref, href)
			}
		}
		return ""
	}

	manifest := SafeManifest{
		Href:                  manifestHref,
		ProductMetadataHref:   find(productMetadataObjectIDs),
		GranuleMetadataHref:   find(granuleMetadataObjectIDs),
		InspireMetadataHref:   find(inspireMetadataObjectIDs),
		DatastripMetadataHref: find(datastripMetadataObjectIDs),
		ThumbnailHref:         find(thumbnailObjectIDs),
	}

	for field, href := range map[string]string{
		"product metadata href":   manifest.ProductMetadataHref,
		"granule metadata href":   manifest.GranuleMetadataHref,
		"INSPIRE metadata href":   manifest.InspireMetadataHref,
		"datastrip metadata href": manifest.DatastripMetadataHref,
	} {
		if href == "" {
			return nil, MetadataParseError{Href: manifestHref, Field: field}
		}
	}

	return &manifest, nil
}

// CreateAsset returns the asset key and asset descriptor for the manifest
// document itself
func (m *SafeManifest) CreateAsset() (string, stac.Asset) {
	return ManifestAssetKey, stac.Asset{
		Href:      m.Href,
		MediaType: stac.XML,
		Roles:     []string{"metadata"},
	}
}
