package stac

import (
	"fmt"
	"time"
)

// SAFE archive metadata carries datetimes that are close to RFC 3339 but do
// not consistently include subseconds or a zone designator, so we need
// lenient "multi-format" parsing functionality, implemented here.

// StandardTimeLayout is the preferred format when writing datetimes into a
// serialized item
const StandardTimeLayout = "2006-01-02T15:04:05.999999Z"

var safeTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999Z",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
}

// ParseSafeTime is a drop-in replacement for time.Parse, but matching
// against multiple possible SAFE metadata time formats
func ParseSafeTime(safeTime string) (time.Time, error) {
	for _, layout := range safeTimeLayouts {
		if output, err := time.Parse(layout, safeTime); err == nil {
			return output, nil
		}
	}
	return time.Time{}, fmt.Errorf("Date could not be parsed by any expected time format: `%s`", safeTime)
}
