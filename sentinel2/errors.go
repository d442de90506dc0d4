package sentinel2

import "fmt"

// The converter never recovers locally: each of these errors aborts the
// whole assembly and surfaces to the caller. They are distinct types so
// callers can tell the kinds apart with errors.As.

// MetadataParseError indicates a required field is missing or malformed in
// one of the source metadata documents
type MetadataParseError struct {
	Href  string
	Field string
	Err   error
}

func (err MetadataParseError) Error() string {
	message := fmt.Sprintf("failed to parse %s from %s", err.Field, err.Href)
	if err.Err != nil {
		message += ": " + err.Err.Error()
	}
	return message
}

func (err MetadataParseError) Unwrap() error {
	return err.Err
}

// ConfigurationError indicates a record-critical field (the coordinate
// reference system) is absent after parsing
type ConfigurationError struct {
	Message string
}

func (err ConfigurationError) Error() string {
	return err.Message
}

// UnknownMediaTypeError indicates an image file's media type could not be
// determined from its extension and none was supplied
type UnknownMediaTypeError struct {
	Href string
}

func (err UnknownMediaTypeError) Error() string {
	return "must supply a media type for asset: " + err.Href
}

// UnclassifiedAssetError indicates an image file matched no known naming
// pattern; mislabeling geospatial data silently is worse than aborting
type UnclassifiedAssetError struct {
	Href string
}

func (err UnclassifiedAssetError) Error() string {
	return "unexpected asset: " + err.Href
}
