package sentinel2

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/JamesTownend/stactools/util"
)

// Context is the context for a Sentinel-2 conversion operation
type Context struct {
	sessionID string
}

// AppName returns the name of the application
func (c *Context) AppName() string {
	return "stactools"
}

// SessionID returns a Session ID, creating one if needed
func (c *Context) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = util.PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *Context) LogRootDir() string {
	return ""
}

// CreateItemHandler is a handler for /sentinel2/item
// @Title sentinel2CreateItemHandler
// @Description converts a Sentinel-2 SAFE archive into a STAC item
// @Accept  plain
// @Param   href   query   string  true   "The href of the SAFE archive"
// @Success 200 {object}  stac.Item
// @Failure 400 {object}  string
// @Router /sentinel2/item [get]
type CreateItemHandler struct {
	Context Context
}

// NewCreateItemHandler creates a new handler using configuration from
// environment variables
func NewCreateItemHandler() *CreateItemHandler {
	return &CreateItemHandler{Context: Context{}}
}

// ServeHTTP implements the http.Handler interface for the CreateItemHandler type
func (h CreateItemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	safeHref := r.FormValue("href")
	if safeHref == "" {
		message := "No archive href found in request"
		util.LogAlert(&h.Context, message)
		util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
		return
	}
	if !strings.HasPrefix(safeHref, "http") {
		if host := util.GetSentinelHost(); host != "" {
			safeHref = joinHref(host, safeHref)
		}
	}

	resolver := SASTokenResolver(util.GetSentinelSASToken())

	item, err := CreateItem(&h.Context, safeHref, nil, resolver)
	if err != nil {
		message := fmt.Sprintf("Error creating item for %s: %v", safeHref, err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, statusForError(err))
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.Write([]byte(item.String()))
}

// statusForError maps the converter's error kinds onto HTTP statuses: bad
// source metadata reads as an upstream failure, everything else is ours
func statusForError(err error) int {
	var (
		parseErr        MetadataParseError
		configErr       ConfigurationError
		mediaTypeErr    UnknownMediaTypeError
		unclassifiedErr UnclassifiedAssetError
	)
	switch {
	case errors.As(err, &parseErr), errors.As(err, &configErr),
		errors.As(err, &mediaTypeErr), errors.As(err, &unclassifiedErr):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
