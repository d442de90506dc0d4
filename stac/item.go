package stac

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/venicegeo/geojson-go/geojson"
)

// Item is a single catalog record: one scene with its geometry, merged
// scene properties, extension fields, typed assets and links
type Item struct {
	ID            string
	Geometry      interface{}
	Bbox          geojson.BoundingBox
	Datetime      time.Time
	Properties    map[string]interface{}
	Providers     []Provider
	Platform      string
	Constellation string
	Instruments   []string
	EO            EOFields
	Sat           SatFields
	Proj          ProjFields
	Links         []Link

	assets    map[string]Asset
	assetKeys []string
}

// InvariantViolation indicates a programming error, such as two assets
// classifying to the same key; it is a defect, not a recoverable condition
type InvariantViolation struct {
	Message string
}

func (err InvariantViolation) Error() string {
	return err.Message
}

// NewItem creates an Item with the given identity fields and no assets
func NewItem(id string, geometry interface{}, bbox geojson.BoundingBox, datetime time.Time) *Item {
	return &Item{
		ID:         id,
		Geometry:   geometry,
		Bbox:       bbox,
		Datetime:   datetime,
		Properties: make(map[string]interface{}),
		assets:     make(map[string]Asset),
	}
}

// AddAsset attaches an asset under the given key. Keys are unique within an
// item: a duplicate key returns an InvariantViolation and leaves the item
// unchanged.
func (item *Item) AddAsset(key string, asset Asset) error {
	if _, exists := item.assets[key]; exists {
		return InvariantViolation{Message: fmt.Sprintf("duplicate asset key %q (href: %s)", key, asset.Href)}
	}
	item.assets[key] = asset
	item.assetKeys = append(item.assetKeys, key)
	return nil
}

// Asset returns the asset stored under key, if any
func (item *Item) Asset(key string) (Asset, bool) {
	asset, ok := item.assets[key]
	return asset, ok
}

// Assets returns a copy of the item's asset map
func (item *Item) Assets() map[string]Asset {
	assets := make(map[string]Asset, len(item.assets))
	for key, asset := range item.assets {
		assets[key] = asset
	}
	return assets
}

// AssetKeys returns the asset keys in insertion order
func (item *Item) AssetKeys() []string {
	return append([]string{}, item.assetKeys...)
}

type itemDocument struct {
	Type           string                 `json:"type"`
	StacVersion    string                 `json:"stac_version"`
	StacExtensions []string               `json:"stac_extensions,omitempty"`
	ID             string                 `json:"id"`
	Geometry       interface{}            `json:"geometry"`
	Bbox           []float64              `json:"bbox,omitempty"`
	Properties     map[string]interface{} `json:"properties"`
	Assets         map[string]Asset       `json:"assets"`
	Links          []Link                 `json:"links"`
}

const stacVersion = "1.0.0"

// MarshalJSON serializes the item as a standard STAC item document
func (item *Item) MarshalJSON() ([]byte, error) {
	properties := map[string]interface{}{
		"datetime": item.Datetime.UTC().Format(StandardTimeLayout),
	}
	if item.Platform != "" {
		properties["platform"] = item.Platform
	}
	if item.Constellation != "" {
		properties["constellation"] = item.Constellation
	}
	if len(item.Instruments) > 0 {
		properties["instruments"] = item.Instruments
	}
	if len(item.Providers) > 0 {
		properties["providers"] = item.Providers
	}

	extensions := []string{}
	if item.EO.CloudCover != nil {
		properties["eo:cloud_cover"] = *item.EO.CloudCover
		extensions = append(extensions, EOExtensionURI)
	}
	if item.Sat.OrbitState != "" {
		properties["sat:orbit_state"] = string(item.Sat.OrbitState)
		properties["sat:relative_orbit"] = item.Sat.RelativeOrbit
		extensions = append(extensions, SatExtensionURI)
	}
	if item.Proj.EPSG != nil {
		properties["proj:epsg"] = *item.Proj.EPSG
		extensions = append(extensions, ProjectionExtensionURI)
	}

	for key, value := range item.Properties {
		properties[key] = value
	}

	links := item.Links
	if links == nil {
		links = []Link{}
	}

	return json.Marshal(itemDocument{
		Type:           "Feature",
		StacVersion:    stacVersion,
		StacExtensions: extensions,
		ID:             item.ID,
		Geometry:       item.Geometry,
		Bbox:           item.Bbox,
		Properties:     properties,
		Assets:         item.Assets(),
		Links:          links,
	})
}

// String returns the item serialized as a STAC item JSON document
func (item *Item) String() string {
	data, err := json.Marshal(item)
	if err != nil {
		return ""
	}
	return string(data)
}
