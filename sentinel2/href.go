package sentinel2

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/JamesTownend/stactools/util"
)

// HrefResolver takes an href and returns a modified href. This can be used
// to make an href readable, e.g. appending an Azure SAS token or creating a
// signed URL. Resolvers are applied wherever a remote href is dereferenced;
// retry and backoff are the resolver side's concern, not handled here.
type HrefResolver func(href string) string

// SASTokenResolver returns an HrefResolver that appends the given shared
// access token as a query string to http(s) hrefs
func SASTokenResolver(token string) HrefResolver {
	return func(href string) string {
		if token == "" || !strings.HasPrefix(href, "http") {
			return href
		}
		separator := "?"
		if strings.Contains(href, "?") {
			separator = "&"
		}
		return href + separator + token
	}
}

// joinHref resolves an archive-relative href against a base archive href.
// It works uniformly for URL and filesystem bases.
func joinHref(baseHref, relHref string) string {
	rel := strings.TrimPrefix(relHref, "./")
	return strings.TrimSuffix(baseHref, "/") + "/" + rel
}

// readXML fetches an href (applying the resolver, if any) and unmarshals
// the body into doc
func readXML(context util.LogContext, href string, resolver HrefResolver, doc interface{}) error {
	resolved := href
	if resolver != nil {
		resolved = resolver(href)
	}
	data, err := util.ReadHrefBytes(context, resolved)
	if err != nil {
		return err
	}
	if err = xml.Unmarshal(data, doc); err != nil {
		return util.LogSimpleErr(context, fmt.Sprintf("Failed to parse XML document at %v.", href), err)
	}
	return nil
}
