package stac

// Asset is a single file belonging to an Item, annotated with its media
// type, semantic role and optional per-asset extension fields
type Asset struct {
	Href          string    `json:"href"`
	MediaType     MediaType `json:"type,omitempty"`
	Title         string    `json:"title,omitempty"`
	Roles         []string  `json:"roles,omitempty"`
	Bands         []Band    `json:"eo:bands,omitempty"`
	GSD           *float64  `json:"gsd,omitempty"`
	ProjShape     []int     `json:"proj:shape,omitempty"`
	ProjBbox      []float64 `json:"proj:bbox,omitempty"`
	ProjTransform []float64 `json:"proj:transform,omitempty"`
}

// Band describes a single spectral band of an electro-optical sensor
type Band struct {
	Name             string  `json:"name"`
	CommonName       string  `json:"common_name,omitempty"`
	Description      string  `json:"description,omitempty"`
	CenterWavelength float64 `json:"center_wavelength,omitempty"`
	FullWidthHalfMax float64 `json:"full_width_half_max,omitempty"`
}

// Provider identifies an organization that captured, processed or hosts the data
type Provider struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles,omitempty"`
	URL   string   `json:"url,omitempty"`
}

// Link relates an Item to another resource
type Link struct {
	Rel   string `json:"rel"`
	Href  string `json:"href"`
	Type  string `json:"type,omitempty"`
	Title string `json:"title,omitempty"`
}
