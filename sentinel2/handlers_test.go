package sentinel2

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func createTestRouter() *mux.Router {
	router := mux.NewRouter()
	router.Handle("/sentinel2/item", NewCreateItemHandler())
	return router
}

func TestCreateItemHandler(t *testing.T) {
	// Mock
	server := httptest.NewServer(createTestRouter())
	defer server.Close()

	// Tested code
	response, err := http.Get(server.URL + "/sentinel2/item?href=" + url.QueryEscape(safeArchiveHref))

	// Asserts
	assert.Nil(t, err)
	defer response.Body.Close()
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "application/geo+json", response.Header.Get("Content-Type"))

	body, err := io.ReadAll(response.Body)
	assert.Nil(t, err)
	var document map[string]interface{}
	assert.Nil(t, json.Unmarshal(body, &document))
	assert.Equal(t, "Feature", document["type"])
	assert.Equal(t, productID, document["id"])
}

func TestCreateItemHandler_ResolvesRelativeHref(t *testing.T) {
	// Mock
	fileServer := httptest.NewServer(http.FileServer(http.Dir("testdata")))
	defer fileServer.Close()
	t.Setenv("SENTINEL_HOST", fileServer.URL)

	server := httptest.NewServer(createTestRouter())
	defer server.Close()

	// Tested code
	response, err := http.Get(server.URL + "/sentinel2/item?href=" + url.QueryEscape("S2A_MSIL2A_20160327T204522_N0212_R128_T01CCV_20210214T042702.SAFE"))

	// Asserts
	assert.Nil(t, err)
	defer response.Body.Close()
	assert.Equal(t, http.StatusOK, response.StatusCode)
}

func TestCreateItemHandler_NoHref(t *testing.T) {
	server := httptest.NewServer(createTestRouter())
	defer server.Close()

	response, err := http.Get(server.URL + "/sentinel2/item")

	assert.Nil(t, err)
	defer response.Body.Close()
	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestCreateItemHandler_UnreadableArchive(t *testing.T) {
	server := httptest.NewServer(createTestRouter())
	defer server.Close()

	response, err := http.Get(server.URL + "/sentinel2/item?href=" + url.QueryEscape("testdata/does-not-exist.SAFE"))

	assert.Nil(t, err)
	defer response.Body.Close()
	assert.Equal(t, http.StatusBadGateway, response.StatusCode)
}

func TestCreateItemHandler_MissingEPSG(t *testing.T) {
	server := httptest.NewServer(createTestRouter())
	defer server.Close()

	response, err := http.Get(server.URL + "/sentinel2/item?href=" + url.QueryEscape("testdata/no-epsg.SAFE"))

	assert.Nil(t, err)
	defer response.Body.Close()
	assert.Equal(t, http.StatusBadGateway, response.StatusCode)
}

func TestStatusForError(t *testing.T) {
	assert.Equal(t, http.StatusBadGateway, statusForError(MetadataParseError{Href: "a"}))
	assert.Equal(t, http.StatusBadGateway, statusForError(ConfigurationError{Message: "m"}))
	assert.Equal(t, http.StatusBadGateway, statusForError(UnknownMediaTypeError{Href: "a"}))
	assert.Equal(t, http.StatusBadGateway, statusForError(UnclassifiedAssetError{Href: "a"}))
	assert.Equal(t, http.StatusInternalServerError, statusForError(io.ErrUnexpectedEOF))
}
